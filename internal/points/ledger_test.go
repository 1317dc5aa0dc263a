package points_test

import (
	"testing"
	"time"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/points"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/settings"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testSnapshot() settings.Snapshot {
	return settings.Snapshot{
		LotteryPeriodMonths:   2,
		LotteryPeriodStartDay: 1,
		LotteryPeriodEndDay:   10,
		MaxAnnualLeavePoints:  decimal.NewFromInt(20),
		Level1Points:          decimal.NewFromInt(2),
		Level2Points:          decimal.NewFromInt(1),
		Level3Points:          decimal.RequireFromString("0.1"),
		CurrentFiscalYear:     2026,
	}
}

func TestConsumed(t *testing.T) {
	snap := testSnapshot()

	t.Run("success zero consumption", func(t *testing.T) {
		sum := points.Consumed(points.LevelCounts{}, snap)

		assert.True(t, sum.Total.IsZero())
		assert.True(t, sum.Remaining.Equal(decimal.NewFromInt(20)))
	})

	t.Run("success fractional level 3 costs", func(t *testing.T) {
		sum := points.Consumed(points.LevelCounts{Level1: 1, Level2: 2, Level3: 3}, snap)

		assert.True(t, sum.Level1.Equal(decimal.NewFromInt(2)))
		assert.True(t, sum.Level2.Equal(decimal.NewFromInt(2)))
		assert.True(t, sum.Level3.Equal(decimal.RequireFromString("0.3")))
		assert.True(t, sum.Total.Equal(decimal.RequireFromString("4.3")))
	})

	t.Run("success consumed plus remaining equals max", func(t *testing.T) {
		cases := []points.LevelCounts{
			{},
			{Level1: 3},
			{Level1: 2, Level2: 5, Level3: 7},
			{Level2: 20},
		}
		for _, counts := range cases {
			sum := points.Consumed(counts, snap)
			if sum.Remaining.IsNegative() {
				continue
			}
			assert.True(t, sum.Total.Add(sum.Remaining).Equal(sum.Max), "counts=%+v", counts)
		}
	})

	t.Run("success single level 1 application scenario", func(t *testing.T) {
		sum := points.Consumed(points.LevelCounts{Level1: 1}, snap)

		assert.True(t, sum.Total.Equal(decimal.NewFromInt(2)))
		assert.True(t, sum.Remaining.Equal(decimal.NewFromInt(18)))
	})
}

func TestSummaryCanApply(t *testing.T) {
	snap := testSnapshot()

	t.Run("success within budget", func(t *testing.T) {
		sum := points.Consumed(points.LevelCounts{Level1: 9}, snap) // 18 of 20
		assert.True(t, sum.CanApply(1, snap))                      // 18+2 == 20, inclusive
		assert.True(t, sum.CanApply(3, snap))
	})

	t.Run("negative budget exhausted", func(t *testing.T) {
		sum := points.Consumed(points.LevelCounts{Level1: 10}, snap) // 20 of 20
		assert.False(t, sum.CanApply(1, snap))
		assert.False(t, sum.CanApply(3, snap))
	})
}

func TestFiscalYearRange(t *testing.T) {
	from, to := points.FiscalYearRange(2026)

	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2027, time.March, 31, 0, 0, 0, 0, time.UTC), to)
}
