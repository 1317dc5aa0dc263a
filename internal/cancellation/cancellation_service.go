package cancellation

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/application"
	applicationerrors "github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/application/errors"
	cancellationerrors "github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/cancellation/errors"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/events"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/lottery"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/messaging/kafka"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/notification"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/settings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Request(ctx context.Context, staffID int64, applicationID int64, reason string) (CancellationOutcome, error)
	ListPending(ctx context.Context) ([]CancellationRequestResponse, error)
	Approve(ctx context.Context, adminID, requestID int64) (CancellationRequestResponse, error)
	Reject(ctx context.Context, adminID, requestID int64, rejectReason string) (CancellationRequestResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	appRepo     application.Repository
	notifRepo   notification.Repository
	outboxRepo  kafka.OutboxRepository
	settingsSvc settings.Service
	logger      *zap.Logger
	now         func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	appRepo application.Repository,
	notifRepo notification.Repository,
	outboxRepo kafka.OutboxRepository,
	settingsSvc settings.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("cancellation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cancellation.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		appRepo:     appRepo,
		notifRepo:   notifRepo,
		outboxRepo:  outboxRepo,
		settingsSvc: settingsSvc,
		logger:      l,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Request applies the owner-cancellation decision table:
//
//	before_lottery, window still open   -> cancelled_before_lottery, points restored
//	before_lottery, window closed       -> pending_cancellation + pending request
//	after_lottery                       -> cancelled_after_lottery, points kept
//
// Anything else is not cancellable by the owner.
func (s *service) Request(ctx context.Context, staffID int64, applicationID int64, reason string) (CancellationOutcome, error) {
	s.logger.Debug("cancellation requested",
		zap.Int64("staff_id", staffID),
		zap.Int64("application_id", applicationID),
	)

	snap, err := s.settingsSvc.Snapshot(ctx)
	if err != nil {
		return CancellationOutcome{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancellation begin tx failed", zap.Error(err))
		return CancellationOutcome{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qApp := s.appRepo.WithTx(tx)

	a, err := qApp.FindByID(ctx, applicationID)
	if err != nil {
		return CancellationOutcome{}, applicationerrors.ErrApplicationNotFound
	}
	if a.StaffID != staffID {
		return CancellationOutcome{}, applicationerrors.ErrNotOwner
	}
	if !a.IsCancellableByOwner() {
		return CancellationOutcome{}, cancellationerrors.ErrNotCancellable
	}

	var outcome CancellationOutcome
	switch {
	case a.Status == application.StatusBeforeLottery && lottery.IsWithin(a.VacationDate, snap.LotteryConfig(), s.now()):
		if err := qApp.UpdateStatusGuarded(ctx, a.ID, application.StatusBeforeLottery, application.StatusCancelledBeforeLottery); err != nil {
			return CancellationOutcome{}, err
		}
		outcome = CancellationOutcome{
			ApplicationID:     a.ID,
			ApplicationStatus: application.StatusCancelledBeforeLottery,
			PointsRestored:    true,
		}

	case a.Status == application.StatusBeforeLottery:
		pending, err := qtx.HasPendingForApplication(ctx, a.ID)
		if err != nil {
			return CancellationOutcome{}, err
		}
		if pending {
			return CancellationOutcome{}, cancellationerrors.ErrCancellationAlreadyPending
		}

		req := &CancellationRequest{
			ApplicationID: a.ID,
			StaffID:       staffID,
			Status:        StatusPending,
			Reason:        reason,
			RequestedAt:   s.now(),
		}
		if err := qtx.Create(ctx, req); err != nil {
			return CancellationOutcome{}, err
		}
		if err := qApp.UpdateStatusGuarded(ctx, a.ID, application.StatusBeforeLottery, application.StatusPendingCancellation); err != nil {
			return CancellationOutcome{}, err
		}
		outcome = CancellationOutcome{
			ApplicationID:     a.ID,
			ApplicationStatus: application.StatusPendingCancellation,
			RequiresApproval:  true,
			RequestID:         &req.ID,
		}

	default: // after_lottery
		if err := qApp.UpdateStatusGuarded(ctx, a.ID, application.StatusAfterLottery, application.StatusCancelledAfterLottery); err != nil {
			return CancellationOutcome{}, err
		}
		outcome = CancellationOutcome{
			ApplicationID:     a.ID,
			ApplicationStatus: application.StatusCancelledAfterLottery,
		}
	}

	if !outcome.RequiresApproval {
		if err := s.enqueueResolvedEvent(ctx, tx, 0, a.ID, true, staffID); err != nil {
			s.logger.Error("cancellation outbox enqueue failed", zap.Error(err))
			return CancellationOutcome{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancellation commit failed", zap.Error(err))
		return CancellationOutcome{}, err
	}

	s.logger.Info("cancellation request processed",
		zap.Int64("application_id", a.ID),
		zap.String("application_status", outcome.ApplicationStatus),
		zap.Bool("requires_approval", outcome.RequiresApproval),
		zap.Bool("points_restored", outcome.PointsRestored),
	)
	return outcome, nil
}

func (s *service) ListPending(ctx context.Context) ([]CancellationRequestResponse, error) {
	reqs, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(reqs), nil
}

// Approve completes a pending cancellation: the application moves to
// cancelled_before_lottery and its points flow back to the owner.
func (s *service) Approve(ctx context.Context, adminID, requestID int64) (CancellationRequestResponse, error) {
	return s.resolve(ctx, adminID, requestID, true, "")
}

// Reject returns the application to its pre-request status; the owner may try
// again or keep the day.
func (s *service) Reject(ctx context.Context, adminID, requestID int64, rejectReason string) (CancellationRequestResponse, error) {
	return s.resolve(ctx, adminID, requestID, false, rejectReason)
}

func (s *service) resolve(ctx context.Context, adminID, requestID int64, approve bool, rejectReason string) (CancellationRequestResponse, error) {
	s.logger.Debug("cancellation resolution requested",
		zap.Int64("request_id", requestID),
		zap.Int64("admin_id", adminID),
		zap.Bool("approve", approve),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancellation resolution begin tx failed", zap.Error(err))
		return CancellationRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qApp := s.appRepo.WithTx(tx)
	qNotif := s.notifRepo.WithTx(tx)

	req, err := qtx.FindByID(ctx, requestID)
	if err != nil {
		return CancellationRequestResponse{}, err
	}
	if req.Status != StatusPending {
		return CancellationRequestResponse{}, cancellationerrors.ErrCancellationResolved
	}

	toStatus := StatusRejected
	appToStatus := application.StatusBeforeLottery
	notifType := notification.TypeCancellationRejected
	message := "Your cancellation request was rejected."
	if approve {
		toStatus = StatusApproved
		appToStatus = application.StatusCancelledBeforeLottery
		notifType = notification.TypeCancellationApproved
		message = "Your cancellation request was approved."
	}

	if err := qtx.ResolveGuarded(ctx, requestID, toStatus, adminID, rejectReason); err != nil {
		return CancellationRequestResponse{}, err
	}
	if err := qApp.UpdateStatusGuarded(ctx, req.ApplicationID, application.StatusPendingCancellation, appToStatus); err != nil {
		return CancellationRequestResponse{}, err
	}

	if err := qNotif.Create(ctx, &notification.Notification{
		StaffID:     req.StaffID,
		Type:        notifType,
		Message:     message,
		RelatedType: notification.RelatedCancellationRequest,
		RelatedID:   req.ID,
	}); err != nil {
		return CancellationRequestResponse{}, err
	}

	if err := s.enqueueResolvedEvent(ctx, tx, req.ID, req.ApplicationID, approve, adminID); err != nil {
		s.logger.Error("cancellation resolution outbox enqueue failed", zap.Error(err))
		return CancellationRequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancellation resolution commit failed", zap.Error(err))
		return CancellationRequestResponse{}, err
	}

	now := s.now()
	req.Status = toStatus
	req.ResolvedBy = &adminID
	req.ResolvedAt = &now
	req.RejectReason = rejectReason

	s.logger.Info("cancellation request resolved",
		zap.Int64("request_id", requestID),
		zap.Int64("application_id", req.ApplicationID),
		zap.String("status", toStatus),
	)
	return mapToResponse(*req), nil
}

func (s *service) enqueueResolvedEvent(ctx context.Context, tx *sql.Tx, requestID, applicationID int64, approved bool, resolvedBy int64) error {
	payload, err := json.Marshal(events.CancellationResolvedEvent{
		EventType:     "cancellation.resolved",
		RequestID:     requestID,
		ApplicationID: applicationID,
		Approved:      approved,
		ResolvedBy:    resolvedBy,
		OccurredAt:    s.now(),
	})
	if err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "cancellation_request",
		AggregateID:   fmt.Sprintf("%d", applicationID),
		EventType:     "cancellation.resolved",
		Topic:         events.CancellationLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(r CancellationRequest) CancellationRequestResponse {
	resp := CancellationRequestResponse{
		ID:            r.ID,
		ApplicationID: r.ApplicationID,
		StaffID:       r.StaffID,
		Status:        r.Status,
		Reason:        r.Reason,
		RequestedAt:   r.RequestedAt.Format(time.RFC3339),
		ResolvedBy:    r.ResolvedBy,
		RejectReason:  r.RejectReason,
	}
	if r.ResolvedAt != nil {
		resp.ResolvedAt = r.ResolvedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(reqs []CancellationRequest) []CancellationRequestResponse {
	resp := make([]CancellationRequestResponse, len(reqs))
	for i, r := range reqs {
		resp[i] = mapToResponse(r)
	}
	return resp
}
