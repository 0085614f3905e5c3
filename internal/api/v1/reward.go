package v1

import (
	"fmt"
	"time"
)

// Transaction is one parsed input line. It is consumed straight away by the
// pipeline and never stored on its own.
type Transaction struct {
	// Identity is the subject the points accrue to (e.g. a user id).
	Identity string

	// Timestamp is the original ISO-8601 text; it is what gets stored.
	Timestamp string

	// OccurredAt is Timestamp parsed with its own offset preserved.
	// Only used to derive the period (month, year).
	OccurredAt time.Time

	// RewardPoints is the tiered reward for the purchase amount. Never negative.
	RewardPoints int64
}

// Month returns the calendar month of the transaction in its own offset.
func (t Transaction) Month() int {
	return int(t.OccurredAt.Month())
}

// Year returns the calendar year of the transaction in its own offset.
func (t Transaction) Year() int {
	return t.OccurredAt.Year()
}

// Reward is one entry of a period document's rewards sequence.
type Reward struct {
	Timestamp      string `json:"timestamp" bson:"timestamp"`
	RewardPointAmt int64  `json:"rewardPointAmt" bson:"rewardPointAmt"`
}

// PeriodDocument holds every reward for one identity in one calendar month.
// Identity, Month and Year never change once the document exists; Rewards is
// append-only.
type PeriodDocument struct {
	ID       string   `json:"_id" bson:"_id"`
	Identity string   `json:"identity" bson:"identity"`
	Month    int      `json:"month" bson:"month"`
	Year     int      `json:"year" bson:"year"`
	Rewards  []Reward `json:"rewards" bson:"rewards"`
}

// Validate ensures the document is well formed before it is written.
func (d *PeriodDocument) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("_id is required")
	}
	if d.Identity == "" {
		return fmt.Errorf("identity is required")
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("month %d out of range [1, 12]", d.Month)
	}
	for i, r := range d.Rewards {
		if r.RewardPointAmt < 0 {
			return fmt.Errorf("rewards[%d]: negative rewardPointAmt %d", i, r.RewardPointAmt)
		}
	}
	return nil
}

// Total returns the arithmetic sum of all reward entries.
func (d *PeriodDocument) Total() int64 {
	var total int64
	for _, r := range d.Rewards {
		total += r.RewardPointAmt
	}
	return total
}

// BatchAccepted is returned synchronously when an upload is queued.
type BatchAccepted struct {
	ProcessID string `json:"processId"`
}

// RangeTotals is the range query response: one single-entry map per month,
// keyed "<month><year>", in month order.
type RangeTotals []map[string]int64
