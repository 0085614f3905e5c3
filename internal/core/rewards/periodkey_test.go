package rewards

import (
	"testing"
	"time"

	v1 "github.com/aevon-lab/reward-points/internal/api/v1"
	"github.com/stretchr/testify/require"
)

func TestPeriodKey_Format(t *testing.T) {
	require.Equal(t, "u1_12023", PeriodKey("u1", 1, 2023))
	require.Equal(t, "u1_112023", PeriodKey("u1", 11, 2023))
	require.Equal(t, "user-42_32024", PeriodKey("user-42", 3, 2024))
}

func TestPeriodKey_Determinism(t *testing.T) {
	id := PeriodKey("u1", 7, 2023)
	for i := 0; i < 100; i++ {
		if got := PeriodKey("u1", 7, 2023); got != id {
			t.Fatalf("PeriodKey changed on iteration %d: %q != %q", i, got, id)
		}
	}
}

func TestPeriodKey_DistinctPeriods(t *testing.T) {
	seen := make(map[string]struct{})
	for year := 2020; year <= 2025; year++ {
		for month := 1; month <= 12; month++ {
			key := PeriodKey("u1", month, year)
			_, dup := seen[key]
			require.False(t, dup, "duplicate key %q for %d/%d", key, month, year)
			seen[key] = struct{}{}
		}
	}
}

func TestPeriodKey_DistinctForParsedPeriods(t *testing.T) {
	// 11/202 and 1/1202 would share "u1_11202"; the parser refuses the
	// three digit year so only the four digit period yields a key.
	_, err := ParseLine("u1,0202-11-01T00:00:00Z,200")
	require.Error(t, err)

	tx, err := ParseLine("u1,1202-01-01T00:00:00Z,200")
	require.NoError(t, err)
	require.Equal(t, "u1_11202", KeyOf(tx))

	seen := make(map[string]string)
	for _, year := range []int{1000, 1001, 1111, 1202, 2023, 9999} {
		for month := 1; month <= 12; month++ {
			key := PeriodKey("u1", month, year)
			period := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
			prev, dup := seen[key]
			require.False(t, dup, "key %q shared by %s and %s", key, prev, period)
			seen[key] = period
		}
	}
}

func TestPeriodKeyFromMonthYear_MatchesPeriodKey(t *testing.T) {
	require.Equal(t, PeriodKey("u1", 1, 2023), PeriodKeyFromMonthYear("u1", "12023"))
}

func TestKeyOf(t *testing.T) {
	occurred := time.Date(2023, time.February, 3, 8, 0, 0, 0, time.UTC)
	tx := v1.Transaction{Identity: "u9", OccurredAt: occurred}
	require.Equal(t, "u9_22023", KeyOf(tx))
}
