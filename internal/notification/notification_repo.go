package notification

import (
	"context"
	"database/sql"
	"time"

	notificationerrors "github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/notification/errors"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/shared/txconn"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, n *Notification) error
	ListPendingByStaff(ctx context.Context, staffID int64) ([]Notification, error)
	// AcknowledgeGuarded marks a pending entry read, only when it belongs to
	// the caller. Re-acknowledging an already-read entry is a no-op success;
	// unknown or foreign ids report not found.
	AcknowledgeGuarded(ctx context.Context, id, staffID int64) error
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

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) ListPendingByStaff(ctx context.Context, staffID int64) ([]Notification, error) {
	var items []Notification
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Where("acknowledged = ?", false).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) AcknowledgeGuarded(ctx context.Context, id, staffID int64) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ?", id).
		Where("staff_id = ?", staffID).
		Where("acknowledged = ?", false).
		Updates(map[string]interface{}{
			"acknowledged":    true,
			"acknowledged_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish a redelivered acknowledge from an id that was never
		// this caller's to acknowledge.
		var count int64
		err := r.db.WithContext(ctx).
			Model(&Notification{}).
			Where("id = ?", id).
			Where("staff_id = ?", staffID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return notificationerrors.ErrNotificationNotFound
		}
	}
	return nil
}
