package application

import (
	"context"
	"database/sql"
	"time"

	applicationerrors "github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/application/errors"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/shared/txconn"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Application) error
	FindByID(ctx context.Context, id int64) (*Application, error)
	FindAllByStaff(ctx context.Context, staffID int64) ([]Application, error)
	HasLiveApplication(ctx context.Context, staffID int64, date time.Time) (bool, error)
	MaxPriorityForDate(ctx context.Context, date time.Time) (int, error)
	ListRankedByDate(ctx context.Context, date time.Time) ([]Application, error)
	// UpdateStatusGuarded transitions status only if the row still holds
	// fromStatus; a miss means the record changed underneath the caller.
	UpdateStatusGuarded(ctx context.Context, id int64, fromStatus, toStatus string) error
	// RejectPendingGuarded cancels a pending-approval application and clears
	// its priority in one conditional update.
	RejectPendingGuarded(ctx context.Context, id int64) error
	UpdatePriority(ctx context.Context, id int64, priority int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: txconn.MustBind(tx)}
}

func (r *repository) Create(ctx context.Context, a *Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAllByStaff(ctx context.Context, staffID int64) ([]Application, error) {
	var apps []Application
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("vacation_date DESC").
		Find(&apps).Error
	return apps, err
}

func (r *repository) HasLiveApplication(ctx context.Context, staffID int64, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Application{}).
		Where("staff_id = ?", staffID).
		Where("vacation_date = ?", date).
		Where("status IN ?", LiveStatuses).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) MaxPriorityForDate(ctx context.Context, date time.Time) (int, error) {
	var max sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&Application{}).
		Select("MAX(priority)").
		Where("vacation_date = ?", date).
		Where("status IN ?", LiveStatuses).
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if !max.Valid {
		return 0, nil
	}
	return int(max.Int64), nil
}

func (r *repository) ListRankedByDate(ctx context.Context, date time.Time) ([]Application, error) {
	var apps []Application
	err := r.db.WithContext(ctx).
		Where("vacation_date = ?", date).
		Where("status IN ?", LiveStatuses).
		Where("priority IS NOT NULL").
		Order("priority ASC").
		Find(&apps).Error
	return apps, err
}

func (r *repository) UpdateStatusGuarded(ctx context.Context, id int64, fromStatus, toStatus string) error {
	result := r.db.WithContext(ctx).
		Model(&Application{}).
		Where("id = ?", id).
		Where("status = ?", fromStatus).
		Update("status", toStatus)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return applicationerrors.ErrStaleState
	}
	return nil
}

func (r *repository) RejectPendingGuarded(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&Application{}).
		Where("id = ?", id).
		Where("status = ?", StatusPendingApproval).
		Updates(map[string]interface{}{
			"status":   StatusCancelled,
			"priority": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return applicationerrors.ErrStaleState
	}
	return nil
}

func (r *repository) UpdatePriority(ctx context.Context, id int64, priority int) error {
	return r.db.WithContext(ctx).
		Model(&Application{}).
		Where("id = ?", id).
		Update("priority", priority).Error
}
