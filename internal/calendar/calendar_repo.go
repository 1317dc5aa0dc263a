package calendar

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/shared/txconn"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// FindByDate returns nil without error when no record exists for the date.
	FindByDate(ctx context.Context, date time.Time) (*CalendarDay, error)
	// LockByDate takes a row lock on the day record so concurrent capacity
	// checks serialize. Must be called inside a transaction.
	LockByDate(ctx context.Context, date time.Time) (*CalendarDay, error)
	CountConfirmed(ctx context.Context, date time.Time) (int64, error)
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

func (r *repository) FindByDate(ctx context.Context, date time.Time) (*CalendarDay, error) {
	var day CalendarDay
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &day, nil
}

func (r *repository) LockByDate(ctx context.Context, date time.Time) (*CalendarDay, error) {
	var day CalendarDay
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("date = ?", date).
		First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &day, nil
}

func (r *repository) CountConfirmed(ctx context.Context, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("applications").
		Where("vacation_date = ?", date).
		Where("status = ?", "confirmed").
		Count(&count).Error
	return count, err
}
