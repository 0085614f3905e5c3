package rewards

import (
	"strconv"

	v1 "github.com/aevon-lab/reward-points/internal/api/v1"
)

// PeriodKey builds the document id for one identity in one calendar month:
// "<identity>_<month><year>", month without zero padding (u1, 1, 2023 -> u1_12023).
func PeriodKey(identity string, month, year int) string {
	return PeriodKeyFromMonthYear(identity, strconv.Itoa(month)+strconv.Itoa(year))
}

// PeriodKeyFromMonthYear builds the key when the caller already holds the
// concatenated "<month><year>" suffix, as the read API receives it.
func PeriodKeyFromMonthYear(identity, monthYear string) string {
	return identity + "_" + monthYear
}

// KeyOf returns the period key a transaction belongs to.
func KeyOf(tx v1.Transaction) string {
	return PeriodKey(tx.Identity, tx.Month(), tx.Year())
}
