package aggregation

import (
	v1 "github.com/aevon-lab/reward-points/internal/api/v1"
)

// Increment is the unit of persistence: every new reward for one period key
// that must land in that key's document in a single logical write.
type Increment struct {
	Key      string
	Identity string
	Month    int
	Year     int
	Rewards  []v1.Reward // input encounter order
}

// Document returns the brand-new document the increment would create when no
// document exists yet for its key.
func (i Increment) Document() *v1.PeriodDocument {
	rewards := make([]v1.Reward, len(i.Rewards))
	copy(rewards, i.Rewards)
	return &v1.PeriodDocument{
		ID:       i.Key,
		Identity: i.Identity,
		Month:    i.Month,
		Year:     i.Year,
		Rewards:  rewards,
	}
}

// Points returns the sum of reward points carried by the increment.
func (i Increment) Points() int64 {
	var total int64
	for _, r := range i.Rewards {
		total += r.RewardPointAmt
	}
	return total
}
