package points

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	// CountConsumingByLevel counts applications that consume points: every live
	// or post-window-cancelled status. An application awaiting a cancellation
	// decision still consumes; only a resolved cancellation made before the
	// window closed restores the budget. Withdrawn and admin-cancelled
	// applications are excluded.
	CountConsumingByLevel(ctx context.Context, staffID int64, from, to time.Time) (LevelCounts, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type levelCountRow struct {
	Level int
	Count int64
}

func (r *repository) CountConsumingByLevel(ctx context.Context, staffID int64, from, to time.Time) (LevelCounts, error) {
	var rows []levelCountRow
	err := r.db.WithContext(ctx).
		Table("applications").
		Select("level, COUNT(*) AS count").
		Where("staff_id = ?", staffID).
		Where("vacation_date BETWEEN ? AND ?", from, to).
		Where("status IN ?", []string{
			"before_lottery",
			"after_lottery",
			"pending_approval",
			"pending_cancellation",
			"confirmed",
			"cancelled_after_lottery",
		}).
		Group("level").
		Scan(&rows).Error
	if err != nil {
		return LevelCounts{}, err
	}

	var counts LevelCounts
	for _, row := range rows {
		switch row.Level {
		case 1:
			counts.Level1 = row.Count
		case 2:
			counts.Level2 = row.Count
		case 3:
			counts.Level3 = row.Count
		}
	}
	return counts, nil
}
