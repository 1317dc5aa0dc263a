package cancellation

import (
	"context"
	"database/sql"
	"errors"

	cancellationerrors "github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/cancellation/errors"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/shared/txconn"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *CancellationRequest) error
	FindByID(ctx context.Context, id int64) (*CancellationRequest, error)
	// HasPendingForApplication enforces the one-pending-request-per-application
	// invariant at the service level.
	HasPendingForApplication(ctx context.Context, applicationID int64) (bool, error)
	ListPending(ctx context.Context) ([]CancellationRequest, error)
	// ResolveGuarded closes a pending request; a miss means it was resolved
	// concurrently.
	ResolveGuarded(ctx context.Context, id int64, toStatus string, resolvedBy int64, rejectReason string) error
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

func (r *repository) Create(ctx context.Context, req *CancellationRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*CancellationRequest, error) {
	var req CancellationRequest
	err := r.db.WithContext(ctx).
		First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cancellationerrors.ErrCancellationNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *repository) HasPendingForApplication(ctx context.Context, applicationID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&CancellationRequest{}).
		Where("application_id = ?", applicationID).
		Where("status = ?", StatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ListPending(ctx context.Context) ([]CancellationRequest, error) {
	var reqs []CancellationRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusPending).
		Order("requested_at ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) ResolveGuarded(ctx context.Context, id int64, toStatus string, resolvedBy int64, rejectReason string) error {
	result := r.db.WithContext(ctx).
		Model(&CancellationRequest{}).
		Where("id = ?", id).
		Where("status = ?", StatusPending).
		Updates(map[string]interface{}{
			"status":        toStatus,
			"resolved_by":   resolvedBy,
			"resolved_at":   gorm.Expr("NOW()"),
			"reject_reason": rejectReason,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return cancellationerrors.ErrCancellationResolved
	}
	return nil
}
