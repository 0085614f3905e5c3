package rewards

import (
	"strings"
	"time"

	v1 "github.com/aevon-lab/reward-points/internal/api/v1"
	rperr "github.com/aevon-lab/reward-points/internal/core/errors"
	"github.com/shopspring/decimal"
)

const fieldCount = 3

// Period keys concatenate month and year, so the year must always render as
// exactly four digits for keys of different periods to stay distinct.
const (
	minYear = 1000
	maxYear = 9999
)

// Accepted ISO-8601 offset date-time layouts. Seconds are optional; a
// fractional second of any precision is accepted by the seconds layout.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

// ParseTimestamp parses an ISO-8601 date-time that carries an explicit offset
// ("Z" or "+hh:mm"). Local date-times without an offset are rejected.
func ParseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ParseLine turns one "identity,timestamp,amount" record into a Transaction.
// Failures are parse errors whose message names the offending line.
func ParseLine(line string) (v1.Transaction, error) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		return v1.Transaction{}, rperr.Parse("Unable to parse line %s", line)
	}

	identity, timestamp, rawAmount := fields[0], fields[1], strings.TrimSpace(fields[2])

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return v1.Transaction{}, rperr.Parse("Unable to parse purchase amount from line %s", line)
	}

	occurredAt, err := ParseTimestamp(timestamp)
	if err != nil || occurredAt.Year() < minYear || occurredAt.Year() > maxYear {
		return v1.Transaction{}, rperr.Parse("Unable to parse ISO Timestamp from Line %s", line)
	}

	return v1.Transaction{
		Identity:     identity,
		Timestamp:    timestamp,
		OccurredAt:   occurredAt,
		RewardPoints: Calculate(amount),
	}, nil
}
