package notification_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/notification"
	notificationerrors "github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/notification/errors"

	"github.com/stretchr/testify/assert"
)

type fakeNotificationRepository struct {
	listPendingFn func(ctx context.Context, staffID int64) ([]notification.Notification, error)
	acknowledgeFn func(ctx context.Context, id, staffID int64) error
}

func (f *fakeNotificationRepository) WithTx(tx *sql.Tx) notification.Repository { return f }

func (f *fakeNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	return nil
}

func (f *fakeNotificationRepository) ListPendingByStaff(ctx context.Context, staffID int64) ([]notification.Notification, error) {
	if f.listPendingFn != nil {
		return f.listPendingFn(ctx, staffID)
	}
	return nil, nil
}

func (f *fakeNotificationRepository) AcknowledgeGuarded(ctx context.Context, id, staffID int64) error {
	if f.acknowledgeFn != nil {
		return f.acknowledgeFn(ctx, id, staffID)
	}
	return nil
}

func TestNotificationService_ListPending(t *testing.T) {
	ctx := context.Background()

	t.Run("success maps entries", func(t *testing.T) {
		repo := &fakeNotificationRepository{
			listPendingFn: func(ctx context.Context, staffID int64) ([]notification.Notification, error) {
				assert.Equal(t, int64(101), staffID)
				return []notification.Notification{
					{
						ID:          3,
						StaffID:     101,
						Type:        notification.TypeCancellationApproved,
						Message:     "Your cancellation request was approved.",
						RelatedType: notification.RelatedCancellationRequest,
						RelatedID:   4,
						CreatedAt:   time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}
		svc := notification.NewService(repo)

		resp, err := svc.ListPending(ctx, 101)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, int64(3), resp[0].ID)
		assert.Equal(t, notification.TypeCancellationApproved, resp[0].Type)
		assert.Equal(t, "2026-08-01T09:00:00Z", resp[0].CreatedAt)
	})

	t.Run("success empty inbox", func(t *testing.T) {
		svc := notification.NewService(&fakeNotificationRepository{})

		resp, err := svc.ListPending(ctx, 101)

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestNotificationService_Acknowledge(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		var gotID, gotStaff int64
		repo := &fakeNotificationRepository{
			acknowledgeFn: func(ctx context.Context, id, staffID int64) error {
				gotID, gotStaff = id, staffID
				return nil
			},
		}
		svc := notification.NewService(repo)

		err := svc.Acknowledge(ctx, 3, 101)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), gotID)
		assert.Equal(t, int64(101), gotStaff)
	})

	t.Run("negative someone else's notification", func(t *testing.T) {
		repo := &fakeNotificationRepository{
			acknowledgeFn: func(ctx context.Context, id, staffID int64) error {
				return notificationerrors.ErrNotificationNotFound
			},
		}
		svc := notification.NewService(repo)

		err := svc.Acknowledge(ctx, 3, 202)
		assert.ErrorIs(t, err, notificationerrors.ErrNotificationNotFound)
	})
}
