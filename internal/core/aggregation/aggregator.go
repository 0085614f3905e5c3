package aggregation

import (
	v1 "github.com/aevon-lab/reward-points/internal/api/v1"
	"github.com/aevon-lab/reward-points/internal/core/rewards"
)

// Single wraps one transaction as a one-record increment. Streaming
// strategies persist these one line at a time.
func Single(tx v1.Transaction) Increment {
	return Increment{
		Key:      rewards.KeyOf(tx),
		Identity: tx.Identity,
		Month:    tx.Month(),
		Year:     tx.Year(),
		Rewards:  []v1.Reward{rewardOf(tx)},
	}
}

// Aggregate collapses a run's transactions into exactly one increment per
// distinct period key. Increments come out in the order their key was first
// seen; rewards inside an increment keep input order.
func Aggregate(txs []v1.Transaction) []Increment {
	index := make(map[string]int)
	var out []Increment

	for _, tx := range txs {
		key := rewards.KeyOf(tx)
		if pos, ok := index[key]; ok {
			out[pos].Rewards = append(out[pos].Rewards, rewardOf(tx))
			continue
		}
		index[key] = len(out)
		out = append(out, Increment{
			Key:      key,
			Identity: tx.Identity,
			Month:    tx.Month(),
			Year:     tx.Year(),
			Rewards:  []v1.Reward{rewardOf(tx)},
		})
	}

	return out
}

func rewardOf(tx v1.Transaction) v1.Reward {
	return v1.Reward{Timestamp: tx.Timestamp, RewardPointAmt: tx.RewardPoints}
}
