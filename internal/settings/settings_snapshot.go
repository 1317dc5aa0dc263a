package settings

import (
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/lottery"

	"github.com/shopspring/decimal"
)

// Snapshot is an immutable copy of the settings row, taken once per operation
// and passed explicitly into the pure period/points functions so nothing in the
// core reads ambient global state.
type Snapshot struct {
	LotteryPeriodMonths   int
	LotteryPeriodStartDay int
	LotteryPeriodEndDay   int
	MaxAnnualLeavePoints  decimal.Decimal
	Level1Points          decimal.Decimal
	Level2Points          decimal.Decimal
	Level3Points          decimal.Decimal
	CurrentFiscalYear     int
}

func NewSnapshot(s Settings) Snapshot {
	return Snapshot{
		LotteryPeriodMonths:   s.LotteryPeriodMonths,
		LotteryPeriodStartDay: s.LotteryPeriodStartDay,
		LotteryPeriodEndDay:   s.LotteryPeriodEndDay,
		MaxAnnualLeavePoints:  s.MaxAnnualLeavePoints,
		Level1Points:          s.Level1Points,
		Level2Points:          s.Level2Points,
		Level3Points:          s.Level3Points,
		CurrentFiscalYear:     s.CurrentFiscalYear,
	}
}

// PointsForLevel returns the configured cost for a level, zero for unknown levels.
func (s Snapshot) PointsForLevel(level int) decimal.Decimal {
	switch level {
	case 1:
		return s.Level1Points
	case 2:
		return s.Level2Points
	case 3:
		return s.Level3Points
	default:
		return decimal.Zero
	}
}

func (s Snapshot) LotteryConfig() lottery.Config {
	return lottery.Config{
		Months:   s.LotteryPeriodMonths,
		StartDay: s.LotteryPeriodStartDay,
		EndDay:   s.LotteryPeriodEndDay,
	}
}
