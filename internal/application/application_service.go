package application

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	applicationerrors "github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/application/errors"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/calendar"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/events"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/lottery"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/messaging/kafka"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/notification"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/points"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/settings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, staffID int64, req CreateApplicationRequest) (ApplicationResponse, error)
	GetAll(ctx context.Context, staffID int64) ([]ApplicationResponse, error)
	GetByID(ctx context.Context, staffID, id int64) (ApplicationResponse, error)
	Approve(ctx context.Context, adminID, id int64) (ApplicationResponse, error)
	Reject(ctx context.Context, adminID, id int64) (ApplicationResponse, error)
	PeriodStatus(ctx context.Context, dateStr string) (PeriodStatusResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	calendarRepo calendar.Repository
	notifRepo    notification.Repository
	outboxRepo   kafka.OutboxRepository
	settingsSvc  settings.Service
	pointsSvc    points.Service
	assigner     PriorityAssigner
	logger       *zap.Logger
	now          func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	calendarRepo calendar.Repository,
	notifRepo notification.Repository,
	outboxRepo kafka.OutboxRepository,
	settingsSvc settings.Service,
	pointsSvc points.Service,
	assigner PriorityAssigner,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("application.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		calendarRepo: calendarRepo,
		notifRepo:    notifRepo,
		outboxRepo:   outboxRepo,
		settingsSvc:  settingsSvc,
		pointsSvc:    pointsSvc,
		assigner:     assigner,
		logger:       l,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Create(ctx context.Context, staffID int64, req CreateApplicationRequest) (ApplicationResponse, error) {
	s.logger.Debug("create application requested",
		zap.Int64("staff_id", staffID),
		zap.String("vacation_date", req.VacationDate),
		zap.Int("level", req.Level),
	)

	vacationDate, err := parseDate(req.VacationDate)
	if err != nil {
		return ApplicationResponse{}, err
	}

	snap, err := s.settingsSvc.Snapshot(ctx)
	if err != nil {
		return ApplicationResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create application begin tx failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qCalendar := s.calendarRepo.WithTx(tx)

	duplicate, err := qtx.HasLiveApplication(ctx, staffID, vacationDate)
	if err != nil {
		s.logger.Error("create application duplicate check failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	if duplicate {
		return ApplicationResponse{}, applicationerrors.ErrDuplicateApplication
	}

	now := s.now()
	phase := lottery.Classify(vacationDate, snap.LotteryConfig(), now)
	isWithin := phase == lottery.PhaseWithin

	status, err := s.initialStatus(ctx, qCalendar, req.Level, vacationDate, phase)
	if err != nil {
		return ApplicationResponse{}, err
	}

	summary, err := s.pointsSvc.SummaryFor(ctx, staffID, snap)
	if err != nil {
		return ApplicationResponse{}, err
	}
	if !summary.CanApply(req.Level, snap) {
		s.logger.Warn("create application insufficient points",
			zap.Int64("staff_id", staffID),
			zap.Int("level", req.Level),
		)
		return ApplicationResponse{}, applicationerrors.ErrInsufficientPoints
	}

	priority, err := s.assigner.AssignInitialPriority(ctx, qtx, vacationDate)
	if err != nil {
		s.logger.Error("create application priority assignment failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	a := &Application{
		StaffID:               staffID,
		VacationDate:          vacationDate,
		Period:                req.Period,
		Level:                 req.Level,
		Status:                status,
		Priority:              &priority,
		IsWithinLotteryPeriod: isWithin,
		AppliedAt:             now,
		Remarks:               req.Remarks,
	}

	if err := qtx.Create(ctx, a); err != nil {
		mapped := mapRepositoryError(err)
		s.logger.Error("create application persist failed", zap.Error(err))
		return ApplicationResponse{}, mapped
	}

	if err := s.enqueueCreatedEvent(ctx, tx, a); err != nil {
		s.logger.Error("create application outbox enqueue failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create application commit failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	s.logger.Info("create application success",
		zap.Int64("application_id", a.ID),
		zap.Int64("staff_id", staffID),
		zap.String("status", a.Status),
		zap.Int("priority", priority),
	)

	return mapToResponse(*a), nil
}

// initialStatus implements the level rules: levels 1 and 2 may only be
// submitted inside the window; level 3 may not be submitted before the window
// opens, and when the date's calendar record is already confirmed with a
// configured capacity, a free slot routes the application to the
// administrator's pending queue while a full one rejects it outright.
func (s *service) initialStatus(
	ctx context.Context,
	qCalendar calendar.Repository,
	level int,
	vacationDate time.Time,
	phase lottery.Phase,
) (string, error) {
	if level == 1 || level == 2 {
		if phase != lottery.PhaseWithin {
			return "", applicationerrors.ErrOutsideLotteryPeriod
		}
		return StatusBeforeLottery, nil
	}

	if phase == lottery.PhaseBefore {
		return "", applicationerrors.ErrBeforeLotteryPeriod
	}

	day, err := qCalendar.FindByDate(ctx, vacationDate)
	if err != nil {
		return "", err
	}
	if day != nil && day.ConfirmationCompleted && day.MaxPeople != nil {
		confirmed, err := qCalendar.CountConfirmed(ctx, vacationDate)
		if err != nil {
			return "", err
		}
		if confirmed >= int64(*day.MaxPeople) {
			return "", applicationerrors.ErrCapacityFull
		}
		return StatusPendingApproval, nil
	}

	if phase == lottery.PhaseWithin {
		return StatusBeforeLottery, nil
	}
	return StatusAfterLottery, nil
}

func (s *service) GetAll(ctx context.Context, staffID int64) ([]ApplicationResponse, error) {
	apps, err := s.repo.FindAllByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(apps), nil
}

func (s *service) GetByID(ctx context.Context, staffID, id int64) (ApplicationResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, applicationerrors.ErrApplicationNotFound
		}
		return ApplicationResponse{}, err
	}
	if a.StaffID != staffID {
		return ApplicationResponse{}, applicationerrors.ErrNotOwner
	}
	return mapToResponse(*a), nil
}

// Approve resolves a pending-approval application. The capacity is re-checked
// against a fresh, locked count immediately before commit so two concurrent
// approvals cannot both pass the limit.
func (s *service) Approve(ctx context.Context, adminID, id int64) (ApplicationResponse, error) {
	s.logger.Debug("approve application requested",
		zap.Int64("application_id", id),
		zap.Int64("admin_id", adminID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("approve application begin tx failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qCalendar := s.calendarRepo.WithTx(tx)
	qNotif := s.notifRepo.WithTx(tx)

	a, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ApplicationResponse{}, mapRepositoryError(err)
	}
	if a.Status != StatusPendingApproval {
		return ApplicationResponse{}, applicationerrors.ErrInvalidStatusTransition
	}

	day, err := qCalendar.LockByDate(ctx, a.VacationDate)
	if err != nil {
		return ApplicationResponse{}, err
	}
	if day != nil && day.MaxPeople != nil {
		confirmed, err := qCalendar.CountConfirmed(ctx, a.VacationDate)
		if err != nil {
			return ApplicationResponse{}, err
		}
		if confirmed >= int64(*day.MaxPeople) {
			s.logger.Warn("approve application capacity filled since creation",
				zap.Int64("application_id", id),
			)
			return ApplicationResponse{}, applicationerrors.ErrCapacityFull
		}
	}

	if err := qtx.UpdateStatusGuarded(ctx, id, StatusPendingApproval, StatusConfirmed); err != nil {
		return ApplicationResponse{}, err
	}

	if err := qNotif.Create(ctx, &notification.Notification{
		StaffID:     a.StaffID,
		Type:        notification.TypeApplicationApproved,
		Message:     fmt.Sprintf("Your application for %s was approved.", a.VacationDate.Format("2006-01-02")),
		RelatedType: notification.RelatedApplication,
		RelatedID:   a.ID,
	}); err != nil {
		return ApplicationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("approve application commit failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	a.Status = StatusConfirmed
	s.logger.Info("approve application success",
		zap.Int64("application_id", id),
		zap.Int64("admin_id", adminID),
	)
	return mapToResponse(*a), nil
}

// Reject cancels a pending-approval application. Rejection always restores
// the owner's points (the resulting status is excluded from consumption) and
// renumbers the remaining competitors for the date.
func (s *service) Reject(ctx context.Context, adminID, id int64) (ApplicationResponse, error) {
	s.logger.Debug("reject application requested",
		zap.Int64("application_id", id),
		zap.Int64("admin_id", adminID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("reject application begin tx failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qNotif := s.notifRepo.WithTx(tx)

	a, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ApplicationResponse{}, mapRepositoryError(err)
	}
	if a.Status != StatusPendingApproval {
		return ApplicationResponse{}, applicationerrors.ErrInvalidStatusTransition
	}

	if err := qtx.RejectPendingGuarded(ctx, id); err != nil {
		return ApplicationResponse{}, err
	}

	if err := s.recalculatePriorities(ctx, qtx, a.VacationDate); err != nil {
		return ApplicationResponse{}, err
	}

	if err := qNotif.Create(ctx, &notification.Notification{
		StaffID:     a.StaffID,
		Type:        notification.TypeApplicationRejected,
		Message:     fmt.Sprintf("Your application for %s was rejected.", a.VacationDate.Format("2006-01-02")),
		RelatedType: notification.RelatedApplication,
		RelatedID:   a.ID,
	}); err != nil {
		return ApplicationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("reject application commit failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	a.Status = StatusCancelled
	a.Priority = nil
	s.logger.Info("reject application success",
		zap.Int64("application_id", id),
		zap.Int64("admin_id", adminID),
	)
	return mapToResponse(*a), nil
}

// recalculatePriorities renumbers the live, ranked applications for a date
// into a dense 1..n sequence, preserving their current order.
func (s *service) recalculatePriorities(ctx context.Context, qtx Repository, date time.Time) error {
	ranked, err := qtx.ListRankedByDate(ctx, date)
	if err != nil {
		return err
	}
	for i, a := range ranked {
		want := i + 1
		if a.Priority != nil && *a.Priority == want {
			continue
		}
		if err := qtx.UpdatePriority(ctx, a.ID, want); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) PeriodStatus(ctx context.Context, dateStr string) (PeriodStatusResponse, error) {
	vacationDate, err := parseDate(dateStr)
	if err != nil {
		return PeriodStatusResponse{}, err
	}

	snap, err := s.settingsSvc.Snapshot(ctx)
	if err != nil {
		return PeriodStatusResponse{}, err
	}

	cfg := snap.LotteryConfig()
	now := s.now()
	start, end := lottery.Window(vacationDate, cfg)
	phase := lottery.Classify(vacationDate, cfg, now)

	return PeriodStatusResponse{
		VacationDate: vacationDate.Format("2006-01-02"),
		Phase:        string(phase),
		WindowStart:  start.Format("2006-01-02"),
		WindowEnd:    end.Format("2006-01-02"),
		IsWithin:     phase == lottery.PhaseWithin,
	}, nil
}

func (s *service) enqueueCreatedEvent(ctx context.Context, tx *sql.Tx, a *Application) error {
	payload, err := json.Marshal(events.ApplicationCreatedEvent{
		EventType:     "application.created",
		ApplicationID: a.ID,
		StaffID:       a.StaffID,
		VacationDate:  a.VacationDate.Format("2006-01-02"),
		Level:         a.Level,
		Status:        a.Status,
		OccurredAt:    s.now(),
	})
	if err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "application",
		AggregateID:   fmt.Sprintf("%d", a.ID),
		EventType:     "application.created",
		Topic:         events.ApplicationLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, applicationerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(a Application) ApplicationResponse {
	return ApplicationResponse{
		ID:                    a.ID,
		StaffID:               a.StaffID,
		VacationDate:          a.VacationDate.Format("2006-01-02"),
		Period:                a.Period,
		Level:                 a.Level,
		Status:                a.Status,
		Priority:              a.Priority,
		IsWithinLotteryPeriod: a.IsWithinLotteryPeriod,
		AppliedAt:             a.AppliedAt.Format(time.RFC3339),
		Remarks:               a.Remarks,
	}
}

func mapToListResponse(apps []Application) []ApplicationResponse {
	resp := make([]ApplicationResponse, len(apps))
	for i, a := range apps {
		resp[i] = mapToResponse(a)
	}
	return resp
}
