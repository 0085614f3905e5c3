package projection

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	v1 "github.com/aevon-lab/reward-points/internal/api/v1"
	rperr "github.com/aevon-lab/reward-points/internal/core/errors"
	"github.com/aevon-lab/reward-points/internal/core/rewards"
)

// TotalsReader is the read side of the document store.
type TotalsReader interface {
	SumRewards(ctx context.Context, id string) (int64, error)
}

// Service answers reward total queries over stored period documents.
type Service struct {
	store TotalsReader
}

// NewService creates a new projection service.
func NewService(store TotalsReader) *Service {
	if store == nil {
		panic("projection: store must not be nil")
	}
	return &Service{store: store}
}

// TotalForPeriod returns the reward total for identity in one period, given as
// the concatenated "<month><year>" suffix (e.g. "12023"). A period with no
// document totals 0.
func (s *Service) TotalForPeriod(ctx context.Context, identity, monthYear string) (int64, error) {
	if strings.TrimSpace(identity) == "" {
		return 0, rperr.Validation("user id is required")
	}
	if strings.TrimSpace(monthYear) == "" {
		return 0, rperr.Validation("monthYear is required")
	}
	return s.sum(ctx, rewards.PeriodKeyFromMonthYear(identity, monthYear))
}

// TotalsForRange returns one total per month in the inclusive range
// [startMonth, endMonth] of year. Months are 1-based; ranges spanning years
// are not supported.
func (s *Service) TotalsForRange(ctx context.Context, identity string, startMonth, endMonth, year int) (v1.RangeTotals, error) {
	if strings.TrimSpace(identity) == "" {
		return nil, rperr.Validation("user id is required")
	}
	if startMonth < 1 || endMonth > 12 || startMonth > endMonth {
		return nil, rperr.Validation("%d .. %d is an invalid query", startMonth, endMonth)
	}
	if year <= 0 {
		return nil, rperr.Validation("year %d is an invalid query", year)
	}

	suffix := strconv.Itoa(year)
	totals := make(v1.RangeTotals, 0, endMonth-startMonth+1)
	for month := startMonth; month <= endMonth; month++ {
		monthYear := strconv.Itoa(month) + suffix
		total, err := s.sum(ctx, rewards.PeriodKeyFromMonthYear(identity, monthYear))
		if err != nil {
			return nil, err
		}
		totals = append(totals, map[string]int64{monthYear: total})
	}
	return totals, nil
}

func (s *Service) sum(ctx context.Context, key string) (int64, error) {
	total, err := s.store.SumRewards(ctx, key)
	if err != nil {
		slog.Error("[Projection] Failed to sum rewards", "period_key", key, "error", err)
		return 0, rperr.Persistence(err, "Unable to sum rewards for %s", key)
	}
	return total, nil
}
