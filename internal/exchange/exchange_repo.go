package exchange

import (
	"context"
	"database/sql"
	"errors"

	exchangeerrors "github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/exchange/errors"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/shared/txconn"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *ExchangeRequest) error
	FindByID(ctx context.Context, id int64) (*ExchangeRequest, error)
	ListForStaff(ctx context.Context, staffID int64) ([]ExchangeRequest, error)
	ListAwaitingAdmin(ctx context.Context) ([]ExchangeRequest, error)
	// HasOpenForPair checks the unordered pair: a request in either direction
	// between the two applications blocks a new one.
	HasOpenForPair(ctx context.Context, appA, appB int64) (bool, error)
	// RespondTargetGuarded records the target's answer only while it is still
	// pending.
	RespondTargetGuarded(ctx context.Context, id int64, response, rejectReason string) error
	// RespondAdminGuarded records the administrator's answer only while the
	// target has accepted and the admin slot is still pending. Approval also
	// stamps executed in the same update.
	RespondAdminGuarded(ctx context.Context, id int64, response string, adminID int64, rejectReason string, executed bool) error
	// SwapApplicationGuarded writes one side of the swap, conditioned on the
	// application still holding its pre-swap status and priority. A miss means
	// the row moved underneath the exchange and the transaction must abort.
	SwapApplicationGuarded(ctx context.Context, applicationID int64, expectedPriority, newPriority, newLevel int) error
	CreateLog(ctx context.Context, log *PriorityExchangeLog) error
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

func (r *repository) Create(ctx context.Context, e *ExchangeRequest) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*ExchangeRequest, error) {
	var e ExchangeRequest
	err := r.db.WithContext(ctx).
		First(&e, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exchangeerrors.ErrExchangeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) ListForStaff(ctx context.Context, staffID int64) ([]ExchangeRequest, error) {
	var reqs []ExchangeRequest
	err := r.db.WithContext(ctx).
		Where("requester_staff_id = ? OR target_staff_id = ?", staffID, staffID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) ListAwaitingAdmin(ctx context.Context) ([]ExchangeRequest, error) {
	var reqs []ExchangeRequest
	err := r.db.WithContext(ctx).
		Where("target_response = ?", TargetAccepted).
		Where("admin_response = ?", AdminPending).
		Order("created_at ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) HasOpenForPair(ctx context.Context, appA, appB int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ExchangeRequest{}).
		Where(
			"(requester_application_id = ? AND target_application_id = ?) OR (requester_application_id = ? AND target_application_id = ?)",
			appA, appB, appB, appA,
		).
		Where("target_response <> ?", TargetRejected).
		Where("admin_response = ?", AdminPending).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) RespondTargetGuarded(ctx context.Context, id int64, response, rejectReason string) error {
	result := r.db.WithContext(ctx).
		Model(&ExchangeRequest{}).
		Where("id = ?", id).
		Where("target_response = ?", TargetPending).
		Updates(map[string]interface{}{
			"target_response":      response,
			"target_responded_at":  gorm.Expr("NOW()"),
			"target_reject_reason": rejectReason,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return exchangeerrors.ErrTargetAlreadyResponded
	}
	return nil
}

func (r *repository) RespondAdminGuarded(ctx context.Context, id int64, response string, adminID int64, rejectReason string, executed bool) error {
	updates := map[string]interface{}{
		"admin_response":      response,
		"admin_staff_id":      adminID,
		"admin_responded_at":  gorm.Expr("NOW()"),
		"admin_reject_reason": rejectReason,
	}
	if executed {
		updates["executed"] = true
		updates["executed_at"] = gorm.Expr("NOW()")
	}

	result := r.db.WithContext(ctx).
		Model(&ExchangeRequest{}).
		Where("id = ?", id).
		Where("target_response = ?", TargetAccepted).
		Where("admin_response = ?", AdminPending).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return exchangeerrors.ErrNotAwaitingAdmin
	}
	return nil
}

func (r *repository) SwapApplicationGuarded(ctx context.Context, applicationID int64, expectedPriority, newPriority, newLevel int) error {
	result := r.db.WithContext(ctx).
		Table("applications").
		Where("id = ?", applicationID).
		Where("status = ?", "after_lottery").
		Where("priority = ?", expectedPriority).
		Updates(map[string]interface{}{
			"priority": newPriority,
			"level":    newLevel,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return exchangeerrors.ErrSwapConflict
	}
	return nil
}

func (r *repository) CreateLog(ctx context.Context, log *PriorityExchangeLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
