package aggregation

import (
	"testing"

	v1 "github.com/aevon-lab/reward-points/internal/api/v1"
	"github.com/aevon-lab/reward-points/internal/core/rewards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, lines ...string) []v1.Transaction {
	t.Helper()
	txs := make([]v1.Transaction, 0, len(lines))
	for _, line := range lines {
		tx, err := rewards.ParseLine(line)
		require.NoError(t, err)
		txs = append(txs, tx)
	}
	return txs
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}

func TestAggregate_SameKeyMergesInInputOrder(t *testing.T) {
	txs := mustParse(t,
		"u1,2023-01-15T10:00:00+00:00,75.0",
		"u1,2023-01-20T10:00:00+00:00,120",
	)

	incs := Aggregate(txs)
	require.Len(t, incs, 1)

	inc := incs[0]
	assert.Equal(t, rewards.PeriodKey("u1", 1, 2023), inc.Key)
	assert.Equal(t, "u1", inc.Identity)
	assert.Equal(t, 1, inc.Month)
	assert.Equal(t, 2023, inc.Year)
	assert.Equal(t, []v1.Reward{
		{Timestamp: "2023-01-15T10:00:00+00:00", RewardPointAmt: 25},
		{Timestamp: "2023-01-20T10:00:00+00:00", RewardPointAmt: 90},
	}, inc.Rewards)
	assert.Equal(t, int64(115), inc.Points())
}

func TestAggregate_DistinctKeysInFirstSeenOrder(t *testing.T) {
	txs := mustParse(t,
		"u2,2023-02-01T00:00:00Z,60",
		"u1,2023-01-01T00:00:00Z,60",
		"u2,2023-03-01T00:00:00Z,60",
		"u1,2023-01-02T00:00:00Z,70",
		"u2,2023-02-09T00:00:00Z,80",
	)

	incs := Aggregate(txs)
	require.Len(t, incs, 3)

	assert.Equal(t, "u2_22023", incs[0].Key)
	assert.Equal(t, "u1_12023", incs[1].Key)
	assert.Equal(t, "u2_32023", incs[2].Key)

	assert.Len(t, incs[0].Rewards, 2)
	assert.Equal(t, "2023-02-09T00:00:00Z", incs[0].Rewards[1].Timestamp)
	assert.Len(t, incs[1].Rewards, 2)
	assert.Len(t, incs[2].Rewards, 1)
}

func TestAggregate_PreservesEveryRecord(t *testing.T) {
	txs := mustParse(t,
		"a,2023-01-01T00:00:00Z,101",
		"b,2023-01-01T00:00:00Z,101",
		"a,2023-02-01T00:00:00Z,101",
		"a,2023-01-05T00:00:00Z,101",
	)

	total := 0
	for _, inc := range Aggregate(txs) {
		total += len(inc.Rewards)
	}
	assert.Equal(t, len(txs), total)
}

func TestSingle(t *testing.T) {
	txs := mustParse(t, "u1,2023-05-15T10:00:00+02:00,51")

	inc := Single(txs[0])
	assert.Equal(t, "u1_52023", inc.Key)
	assert.Equal(t, []v1.Reward{{Timestamp: "2023-05-15T10:00:00+02:00", RewardPointAmt: 1}}, inc.Rewards)
}

func TestIncrement_DocumentCopiesRewards(t *testing.T) {
	inc := Increment{
		Key: "u1_12023", Identity: "u1", Month: 1, Year: 2023,
		Rewards: []v1.Reward{{Timestamp: "t1", RewardPointAmt: 5}},
	}

	doc := inc.Document()
	require.NoError(t, doc.Validate())
	doc.Rewards[0].RewardPointAmt = 99

	assert.Equal(t, int64(5), inc.Rewards[0].RewardPointAmt)
}
