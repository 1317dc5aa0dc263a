// Package points implements the per-staff annual point budget: how many points
// a staff member's live applications consume per level, and whether another
// application of a given level still fits the budget.
package points

import (
	"time"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/settings"

	"github.com/shopspring/decimal"
)

// LevelCounts is the number of point-consuming applications per level for one
// staff member and fiscal year.
type LevelCounts struct {
	Level1 int64
	Level2 int64
	Level3 int64
}

// Summary is the computed ledger for one staff member and fiscal year.
type Summary struct {
	Level1    decimal.Decimal
	Level2    decimal.Decimal
	Level3    decimal.Decimal
	Total     decimal.Decimal
	Max       decimal.Decimal
	Remaining decimal.Decimal
}

// Consumed folds per-level counts into point totals using the configured costs.
// Costs may be fractional (e.g. 0.1 per level-3 request), hence decimal.
func Consumed(counts LevelCounts, snap settings.Snapshot) Summary {
	l1 := snap.Level1Points.Mul(decimal.NewFromInt(counts.Level1))
	l2 := snap.Level2Points.Mul(decimal.NewFromInt(counts.Level2))
	l3 := snap.Level3Points.Mul(decimal.NewFromInt(counts.Level3))
	total := l1.Add(l2).Add(l3)

	return Summary{
		Level1:    l1,
		Level2:    l2,
		Level3:    l3,
		Total:     total,
		Max:       snap.MaxAnnualLeavePoints,
		Remaining: snap.MaxAnnualLeavePoints.Sub(total),
	}
}

// CanApply reports whether one more application of the given level fits the
// budget. A false result is a soft rejection, never a fatal error.
func (s Summary) CanApply(level int, snap settings.Snapshot) bool {
	cost := snap.PointsForLevel(level)
	return s.Total.Add(cost).LessThanOrEqual(s.Max)
}

// FiscalYearRange returns the first and last vacation dates of a fiscal year.
// The fiscal year runs April 1 through March 31.
func FiscalYearRange(fiscalYear int) (time.Time, time.Time) {
	start := time.Date(fiscalYear, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(fiscalYear+1, time.March, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}
