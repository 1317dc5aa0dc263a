package exchange

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/application"
	applicationerrors "github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/application/errors"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/events"
	exchangeerrors "github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/exchange/errors"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/messaging/kafka"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, staffID int64, req CreateExchangeRequest) (ExchangeRequestResponse, error)
	ListForStaff(ctx context.Context, staffID int64) ([]ExchangeRequestResponse, error)
	ListAwaitingAdmin(ctx context.Context) ([]ExchangeRequestResponse, error)
	TargetRespond(ctx context.Context, staffID, requestID int64, req TargetRespondRequest) (ExchangeRequestResponse, error)
	AdminRespond(ctx context.Context, adminID, requestID int64, req AdminRespondRequest) (ExchangeRequestResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	appRepo    application.Repository
	notifRepo  notification.Repository
	outboxRepo kafka.OutboxRepository
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	appRepo application.Repository,
	notifRepo notification.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("exchange.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("exchange.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		appRepo:    appRepo,
		notifRepo:  notifRepo,
		outboxRepo: outboxRepo,
		logger:     l,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// isExchangeable is the swap-safety rule applied both at request creation and
// again at execution: only after-lottery applications that still hold a
// priority can change places.
func isExchangeable(a *application.Application) bool {
	return a.Status == application.StatusAfterLottery && a.Priority != nil
}

func (s *service) Create(ctx context.Context, staffID int64, req CreateExchangeRequest) (ExchangeRequestResponse, error) {
	s.logger.Debug("create exchange requested",
		zap.Int64("staff_id", staffID),
		zap.Int64("requester_application_id", req.RequesterApplicationID),
		zap.Int64("target_application_id", req.TargetApplicationID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create exchange begin tx failed", zap.Error(err))
		return ExchangeRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qApp := s.appRepo.WithTx(tx)
	qNotif := s.notifRepo.WithTx(tx)

	requesterApp, err := qApp.FindByID(ctx, req.RequesterApplicationID)
	if err != nil {
		return ExchangeRequestResponse{}, applicationerrors.ErrApplicationNotFound
	}
	if requesterApp.StaffID != staffID {
		return ExchangeRequestResponse{}, applicationerrors.ErrNotOwner
	}

	targetApp, err := qApp.FindByID(ctx, req.TargetApplicationID)
	if err != nil {
		return ExchangeRequestResponse{}, applicationerrors.ErrApplicationNotFound
	}

	if targetApp.StaffID == staffID {
		return ExchangeRequestResponse{}, exchangeerrors.ErrSameStaff
	}
	if !requesterApp.VacationDate.Equal(targetApp.VacationDate) {
		return ExchangeRequestResponse{}, exchangeerrors.ErrDateMismatch
	}
	if !isExchangeable(requesterApp) || !isExchangeable(targetApp) {
		return ExchangeRequestResponse{}, exchangeerrors.ErrNotExchangeable
	}

	open, err := qtx.HasOpenForPair(ctx, requesterApp.ID, targetApp.ID)
	if err != nil {
		return ExchangeRequestResponse{}, err
	}
	if open {
		return ExchangeRequestResponse{}, exchangeerrors.ErrPairAlreadyOpen
	}

	e := &ExchangeRequest{
		RequesterApplicationID: requesterApp.ID,
		RequesterStaffID:       staffID,
		TargetApplicationID:    targetApp.ID,
		TargetStaffID:          targetApp.StaffID,
		RequestReason:          req.RequestReason,
		TargetResponse:         TargetPending,
		AdminResponse:          AdminPending,
	}
	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create exchange persist failed", zap.Error(err))
		return ExchangeRequestResponse{}, err
	}

	if err := qNotif.Create(ctx, &notification.Notification{
		StaffID:     targetApp.StaffID,
		Type:        notification.TypeExchangeRequested,
		Message:     fmt.Sprintf("A priority exchange was requested for your application on %s.", targetApp.VacationDate.Format("2006-01-02")),
		RelatedType: notification.RelatedExchangeRequest,
		RelatedID:   e.ID,
	}); err != nil {
		return ExchangeRequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create exchange commit failed", zap.Error(err))
		return ExchangeRequestResponse{}, err
	}

	s.logger.Info("create exchange success",
		zap.Int64("exchange_request_id", e.ID),
		zap.Int64("requester_staff_id", staffID),
		zap.Int64("target_staff_id", targetApp.StaffID),
	)
	return mapToResponse(*e), nil
}

func (s *service) ListForStaff(ctx context.Context, staffID int64) ([]ExchangeRequestResponse, error) {
	reqs, err := s.repo.ListForStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(reqs), nil
}

func (s *service) ListAwaitingAdmin(ctx context.Context) ([]ExchangeRequestResponse, error) {
	reqs, err := s.repo.ListAwaitingAdmin(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(reqs), nil
}

// TargetRespond records the target's consent or refusal. Acceptance moves
// nothing yet; it only opens the request for administrator review.
func (s *service) TargetRespond(ctx context.Context, staffID, requestID int64, req TargetRespondRequest) (ExchangeRequestResponse, error) {
	s.logger.Debug("target response requested",
		zap.Int64("exchange_request_id", requestID),
		zap.Int64("staff_id", staffID),
		zap.Bool("accept", req.Accept),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("target response begin tx failed", zap.Error(err))
		return ExchangeRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qNotif := s.notifRepo.WithTx(tx)

	e, err := qtx.FindByID(ctx, requestID)
	if err != nil {
		return ExchangeRequestResponse{}, err
	}
	if e.TargetStaffID != staffID {
		return ExchangeRequestResponse{}, exchangeerrors.ErrNotTarget
	}
	if e.TargetResponse != TargetPending {
		return ExchangeRequestResponse{}, exchangeerrors.ErrTargetAlreadyResponded
	}

	response := TargetRejected
	if req.Accept {
		response = TargetAccepted
	}
	if err := qtx.RespondTargetGuarded(ctx, requestID, response, req.RejectReason); err != nil {
		return ExchangeRequestResponse{}, err
	}

	if err := qNotif.Create(ctx, &notification.Notification{
		StaffID:     e.RequesterStaffID,
		Type:        notification.TypeExchangeTargetReplied,
		Message:     fmt.Sprintf("The other party %s your priority exchange request.", pastTense(req.Accept)),
		RelatedType: notification.RelatedExchangeRequest,
		RelatedID:   e.ID,
	}); err != nil {
		return ExchangeRequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("target response commit failed", zap.Error(err))
		return ExchangeRequestResponse{}, err
	}

	now := s.now()
	e.TargetResponse = response
	e.TargetRespondedAt = &now
	e.TargetRejectReason = req.RejectReason

	s.logger.Info("target response recorded",
		zap.Int64("exchange_request_id", requestID),
		zap.String("response", response),
	)
	return mapToResponse(*e), nil
}

// AdminRespond resolves an accepted request. Approval swaps the two
// applications' priority and level, writes the audit row, and stamps the
// request executed, all in one transaction: either every piece lands or none
// does.
func (s *service) AdminRespond(ctx context.Context, adminID, requestID int64, req AdminRespondRequest) (ExchangeRequestResponse, error) {
	s.logger.Debug("admin response requested",
		zap.Int64("exchange_request_id", requestID),
		zap.Int64("admin_id", adminID),
		zap.Bool("approve", req.Approve),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("admin response begin tx failed", zap.Error(err))
		return ExchangeRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qApp := s.appRepo.WithTx(tx)
	qNotif := s.notifRepo.WithTx(tx)

	e, err := qtx.FindByID(ctx, requestID)
	if err != nil {
		return ExchangeRequestResponse{}, err
	}
	if e.TargetResponse != TargetAccepted || e.AdminResponse != AdminPending {
		return ExchangeRequestResponse{}, exchangeerrors.ErrNotAwaitingAdmin
	}

	response := AdminRejected
	if req.Approve {
		response = AdminApproved
		if err := s.executeSwap(ctx, tx, qtx, qApp, e, adminID); err != nil {
			return ExchangeRequestResponse{}, err
		}
	}

	if err := qtx.RespondAdminGuarded(ctx, requestID, response, adminID, req.RejectReason, req.Approve); err != nil {
		return ExchangeRequestResponse{}, err
	}

	notifType := notification.TypeExchangeRejected
	message := "Your priority exchange request was rejected by an administrator."
	if req.Approve {
		notifType = notification.TypeExchangeApproved
		message = "Your priority exchange was approved and executed."
	}
	for _, recipient := range []int64{e.RequesterStaffID, e.TargetStaffID} {
		if err := qNotif.Create(ctx, &notification.Notification{
			StaffID:     recipient,
			Type:        notifType,
			Message:     message,
			RelatedType: notification.RelatedExchangeRequest,
			RelatedID:   e.ID,
		}); err != nil {
			return ExchangeRequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("admin response commit failed", zap.Error(err))
		return ExchangeRequestResponse{}, err
	}

	now := s.now()
	e.AdminResponse = response
	e.AdminStaffID = &adminID
	e.AdminRespondedAt = &now
	e.AdminRejectReason = req.RejectReason
	if req.Approve {
		e.Executed = true
		e.ExecutedAt = &now
	}

	s.logger.Info("admin response recorded",
		zap.Int64("exchange_request_id", requestID),
		zap.String("response", response),
		zap.Bool("executed", e.Executed),
	)
	return mapToResponse(*e), nil
}

// executeSwap re-validates both sides at execution time, then applies the two
// guarded updates and the audit row. Any miss aborts the whole transaction.
func (s *service) executeSwap(
	ctx context.Context,
	tx *sql.Tx,
	qtx Repository,
	qApp application.Repository,
	e *ExchangeRequest,
	adminID int64,
) error {
	requesterApp, err := qApp.FindByID(ctx, e.RequesterApplicationID)
	if err != nil {
		return applicationerrors.ErrApplicationNotFound
	}
	targetApp, err := qApp.FindByID(ctx, e.TargetApplicationID)
	if err != nil {
		return applicationerrors.ErrApplicationNotFound
	}
	if !isExchangeable(requesterApp) || !isExchangeable(targetApp) {
		return exchangeerrors.ErrNotExchangeable
	}

	reqPriority, reqLevel := *requesterApp.Priority, requesterApp.Level
	tgtPriority, tgtLevel := *targetApp.Priority, targetApp.Level

	if err := qtx.SwapApplicationGuarded(ctx, requesterApp.ID, reqPriority, tgtPriority, tgtLevel); err != nil {
		return err
	}
	if err := qtx.SwapApplicationGuarded(ctx, targetApp.ID, tgtPriority, reqPriority, reqLevel); err != nil {
		return err
	}

	executedAt := s.now()
	if err := qtx.CreateLog(ctx, &PriorityExchangeLog{
		ExchangeRequestID:       e.ID,
		RequesterApplicationID:  requesterApp.ID,
		TargetApplicationID:     targetApp.ID,
		RequesterPriorityBefore: reqPriority,
		RequesterPriorityAfter:  tgtPriority,
		RequesterLevelBefore:    reqLevel,
		RequesterLevelAfter:     tgtLevel,
		TargetPriorityBefore:    tgtPriority,
		TargetPriorityAfter:     reqPriority,
		TargetLevelBefore:       tgtLevel,
		TargetLevelAfter:        reqLevel,
		ApprovedBy:              adminID,
		ExecutedAt:              executedAt,
	}); err != nil {
		return err
	}

	payload, err := json.Marshal(events.ExchangeExecutedEvent{
		EventType:              "exchange.executed",
		ExchangeRequestID:      e.ID,
		RequesterApplicationID: requesterApp.ID,
		TargetApplicationID:    targetApp.ID,
		ApprovedBy:             adminID,
		OccurredAt:             executedAt,
	})
	if err != nil {
		return err
	}
	return s.outboxRepo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "exchange_request",
		AggregateID:   fmt.Sprintf("%d", e.ID),
		EventType:     "exchange.executed",
		Topic:         events.ExchangeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func pastTense(accepted bool) string {
	if accepted {
		return "accepted"
	}
	return "rejected"
}

func mapToResponse(e ExchangeRequest) ExchangeRequestResponse {
	resp := ExchangeRequestResponse{
		ID:                     e.ID,
		RequesterApplicationID: e.RequesterApplicationID,
		RequesterStaffID:       e.RequesterStaffID,
		TargetApplicationID:    e.TargetApplicationID,
		TargetStaffID:          e.TargetStaffID,
		RequestReason:          e.RequestReason,
		TargetResponse:         e.TargetResponse,
		TargetRejectReason:     e.TargetRejectReason,
		AdminResponse:          e.AdminResponse,
		AdminStaffID:           e.AdminStaffID,
		AdminRejectReason:      e.AdminRejectReason,
		Executed:               e.Executed,
		CreatedAt:              e.CreatedAt.Format(time.RFC3339),
	}
	if e.TargetRespondedAt != nil {
		resp.TargetRespondedAt = e.TargetRespondedAt.Format(time.RFC3339)
	}
	if e.AdminRespondedAt != nil {
		resp.AdminRespondedAt = e.AdminRespondedAt.Format(time.RFC3339)
	}
	if e.ExecutedAt != nil {
		resp.ExecutedAt = e.ExecutedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(reqs []ExchangeRequest) []ExchangeRequestResponse {
	resp := make([]ExchangeRequestResponse, len(reqs))
	for i, e := range reqs {
		resp[i] = mapToResponse(e)
	}
	return resp
}
