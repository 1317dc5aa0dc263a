package application_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/application"
	applicationerrors "github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/application/errors"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/calendar"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/messaging/kafka"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/notification"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/points"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/settings"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeApplicationRepository struct {
	withTxFn                func(tx *sql.Tx) application.Repository
	createFn                func(ctx context.Context, a *application.Application) error
	findByIDFn              func(ctx context.Context, id int64) (*application.Application, error)
	findAllByStaffFn        func(ctx context.Context, staffID int64) ([]application.Application, error)
	hasLiveApplicationFn    func(ctx context.Context, staffID int64, date time.Time) (bool, error)
	maxPriorityForDateFn    func(ctx context.Context, date time.Time) (int, error)
	listRankedByDateFn      func(ctx context.Context, date time.Time) ([]application.Application, error)
	updateStatusGuardedFn   func(ctx context.Context, id int64, fromStatus, toStatus string) error
	rejectPendingGuardedFn  func(ctx context.Context, id int64) error
	updatePriorityFn        func(ctx context.Context, id int64, priority int) error
}

func (f *fakeApplicationRepository) WithTx(tx *sql.Tx) application.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeApplicationRepository) Create(ctx context.Context, a *application.Application) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	a.ID = 1
	return nil
}

func (f *fakeApplicationRepository) FindByID(ctx context.Context, id int64) (*application.Application, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, errors.New("not stubbed")
}

func (f *fakeApplicationRepository) FindAllByStaff(ctx context.Context, staffID int64) ([]application.Application, error) {
	if f.findAllByStaffFn != nil {
		return f.findAllByStaffFn(ctx, staffID)
	}
	return nil, nil
}

func (f *fakeApplicationRepository) HasLiveApplication(ctx context.Context, staffID int64, date time.Time) (bool, error) {
	if f.hasLiveApplicationFn != nil {
		return f.hasLiveApplicationFn(ctx, staffID, date)
	}
	return false, nil
}

func (f *fakeApplicationRepository) MaxPriorityForDate(ctx context.Context, date time.Time) (int, error) {
	if f.maxPriorityForDateFn != nil {
		return f.maxPriorityForDateFn(ctx, date)
	}
	return 0, nil
}

func (f *fakeApplicationRepository) ListRankedByDate(ctx context.Context, date time.Time) ([]application.Application, error) {
	if f.listRankedByDateFn != nil {
		return f.listRankedByDateFn(ctx, date)
	}
	return nil, nil
}

func (f *fakeApplicationRepository) UpdateStatusGuarded(ctx context.Context, id int64, fromStatus, toStatus string) error {
	if f.updateStatusGuardedFn != nil {
		return f.updateStatusGuardedFn(ctx, id, fromStatus, toStatus)
	}
	return nil
}

func (f *fakeApplicationRepository) RejectPendingGuarded(ctx context.Context, id int64) error {
	if f.rejectPendingGuardedFn != nil {
		return f.rejectPendingGuardedFn(ctx, id)
	}
	return nil
}

func (f *fakeApplicationRepository) UpdatePriority(ctx context.Context, id int64, priority int) error {
	if f.updatePriorityFn != nil {
		return f.updatePriorityFn(ctx, id, priority)
	}
	return nil
}

type fakeCalendarRepository struct {
	findByDateFn     func(ctx context.Context, date time.Time) (*calendar.CalendarDay, error)
	lockByDateFn     func(ctx context.Context, date time.Time) (*calendar.CalendarDay, error)
	countConfirmedFn func(ctx context.Context, date time.Time) (int64, error)
}

func (f *fakeCalendarRepository) WithTx(tx *sql.Tx) calendar.Repository { return f }

func (f *fakeCalendarRepository) FindByDate(ctx context.Context, date time.Time) (*calendar.CalendarDay, error) {
	if f.findByDateFn != nil {
		return f.findByDateFn(ctx, date)
	}
	return nil, nil
}

func (f *fakeCalendarRepository) LockByDate(ctx context.Context, date time.Time) (*calendar.CalendarDay, error) {
	if f.lockByDateFn != nil {
		return f.lockByDateFn(ctx, date)
	}
	return nil, nil
}

func (f *fakeCalendarRepository) CountConfirmed(ctx context.Context, date time.Time) (int64, error) {
	if f.countConfirmedFn != nil {
		return f.countConfirmedFn(ctx, date)
	}
	return 0, nil
}

type fakeNotificationRepository struct {
	created []notification.Notification
}

func (f *fakeNotificationRepository) WithTx(tx *sql.Tx) notification.Repository { return f }

func (f *fakeNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	f.created = append(f.created, *n)
	return nil
}

func (f *fakeNotificationRepository) ListPendingByStaff(ctx context.Context, staffID int64) ([]notification.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationRepository) AcknowledgeGuarded(ctx context.Context, id, staffID int64) error {
	return nil
}

type fakeOutboxRepository struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type fakeSettingsService struct {
	snapshot settings.Snapshot
	err      error
}

func (f *fakeSettingsService) Snapshot(ctx context.Context) (settings.Snapshot, error) {
	return f.snapshot, f.err
}

type fakePointsService struct {
	summary points.Summary
	err     error
}

func (f *fakePointsService) SummaryFor(ctx context.Context, staffID int64, snap settings.Snapshot) (points.Summary, error) {
	return f.summary, f.err
}

// testSnapshot opens the window over the entire current month: the window sits
// two months ahead of the vacation date, so a date two months from now is
// always inside its window when the test runs.
func testSnapshot() settings.Snapshot {
	return settings.Snapshot{
		LotteryPeriodMonths:   2,
		LotteryPeriodStartDay: 1,
		LotteryPeriodEndDay:   31,
		MaxAnnualLeavePoints:  decimal.NewFromInt(20),
		Level1Points:          decimal.NewFromInt(2),
		Level2Points:          decimal.NewFromInt(1),
		Level3Points:          decimal.RequireFromString("0.1"),
		CurrentFiscalYear:     time.Now().UTC().Year(),
	}
}

func openSummary() points.Summary {
	return points.Summary{
		Total:     decimal.Zero,
		Max:       decimal.NewFromInt(20),
		Remaining: decimal.NewFromInt(20),
	}
}

// firstOfMonthAhead returns the first day of the month n months after the
// current one.
func firstOfMonthAhead(n int) time.Time {
	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())+n
	for month > 12 {
		month -= 12
		year++
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

type applicationServiceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  application.Service
	repo     *fakeApplicationRepository
	calendar *fakeCalendarRepository
	notif    *fakeNotificationRepository
	outbox   *fakeOutboxRepository
	points   *fakePointsService
	settings *fakeSettingsService
}

func setupApplicationServiceTest(t *testing.T) *applicationServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeApplicationRepository{}
	calendarRepo := &fakeCalendarRepository{}
	notifRepo := &fakeNotificationRepository{}
	outboxRepo := &fakeOutboxRepository{}
	settingsSvc := &fakeSettingsService{snapshot: testSnapshot()}
	pointsSvc := &fakePointsService{summary: openSummary()}

	svc := application.NewService(
		db, repo, calendarRepo, notifRepo, outboxRepo,
		settingsSvc, pointsSvc, application.DenseRankAssigner{},
	)

	return &applicationServiceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  svc,
		repo:     repo,
		calendar: calendarRepo,
		notif:    notifRepo,
		outbox:   outboxRepo,
		points:   pointsSvc,
		settings: settingsSvc,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestApplicationService_Create(t *testing.T) {
	ctx := context.Background()
	staffID := int64(101)
	withinDate := firstOfMonthAhead(2)
	withinDateStr := withinDate.Format("2006-01-02")

	t.Run("success level 1 within window", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.maxPriorityForDateFn = func(ctx context.Context, date time.Time) (int, error) {
			return 2, nil
		}

		var created application.Application
		deps.repo.createFn = func(ctx context.Context, a *application.Application) error {
			a.ID = 7
			created = *a
			return nil
		}

		resp, err := deps.service.Create(ctx, staffID, application.CreateApplicationRequest{
			VacationDate: withinDateStr,
			Period:       application.PeriodFullDay,
			Level:        1,
		})

		assert.NoError(t, err)
		assert.Equal(t, application.StatusBeforeLottery, resp.Status)
		assert.NotNil(t, resp.Priority)
		assert.Equal(t, 3, *resp.Priority)
		assert.True(t, resp.IsWithinLotteryPeriod)
		assert.Equal(t, application.StatusBeforeLottery, created.Status)
		assert.True(t, created.IsWithinLotteryPeriod)
		assert.Len(t, deps.outbox.created, 1)
		assert.Equal(t, "application.created", deps.outbox.created[0].EventType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid date format", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, staffID, application.CreateApplicationRequest{
			VacationDate: "2026/03/01",
			Period:       application.PeriodFullDay,
			Level:        1,
		})

		assert.ErrorIs(t, err, applicationerrors.ErrInvalidDateFormat)
	})

	t.Run("negative duplicate live application", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.hasLiveApplicationFn = func(ctx context.Context, sid int64, date time.Time) (bool, error) {
			assert.Equal(t, staffID, sid)
			return true, nil
		}

		_, err := deps.service.Create(ctx, staffID, application.CreateApplicationRequest{
			VacationDate: withinDateStr,
			Period:       application.PeriodFullDay,
			Level:        1,
		})

		assert.ErrorIs(t, err, applicationerrors.ErrDuplicateApplication)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative level 1 outside window", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		// Window for this date already closed two months ago.
		pastWindowDate := firstOfMonthAhead(0)

		_, err := deps.service.Create(ctx, staffID, application.CreateApplicationRequest{
			VacationDate: pastWindowDate.Format("2006-01-02"),
			Period:       application.PeriodFullDay,
			Level:        1,
		})

		assert.ErrorIs(t, err, applicationerrors.ErrOutsideLotteryPeriod)
	})

	t.Run("negative level 3 before window opens", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		// Window for this date opens two months from now.
		futureDate := firstOfMonthAhead(4)

		_, err := deps.service.Create(ctx, staffID, application.CreateApplicationRequest{
			VacationDate: futureDate.Format("2006-01-02"),
			Period:       application.PeriodFullDay,
			Level:        3,
		})

		assert.ErrorIs(t, err, applicationerrors.ErrBeforeLotteryPeriod)
	})

	t.Run("level 3 after lottery gets after_lottery status", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		pastWindowDate := firstOfMonthAhead(0)

		resp, err := deps.service.Create(ctx, staffID, application.CreateApplicationRequest{
			VacationDate: pastWindowDate.Format("2006-01-02"),
			Period:       application.PeriodFullDay,
			Level:        3,
		})

		assert.NoError(t, err)
		assert.Equal(t, application.StatusAfterLottery, resp.Status)
		assert.False(t, resp.IsWithinLotteryPeriod)
	})

	t.Run("level 3 on confirmed day with a free slot goes to pending approval", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		max := 5
		deps.calendar.findByDateFn = func(ctx context.Context, date time.Time) (*calendar.CalendarDay, error) {
			return &calendar.CalendarDay{Date: date, ConfirmationCompleted: true, MaxPeople: &max}, nil
		}
		deps.calendar.countConfirmedFn = func(ctx context.Context, date time.Time) (int64, error) {
			return 3, nil
		}

		resp, err := deps.service.Create(ctx, staffID, application.CreateApplicationRequest{
			VacationDate: withinDateStr,
			Period:       application.PeriodFullDay,
			Level:        3,
		})

		assert.NoError(t, err)
		assert.Equal(t, application.StatusPendingApproval, resp.Status)
	})

	t.Run("negative level 3 on confirmed day at capacity", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		max := 5
		deps.calendar.findByDateFn = func(ctx context.Context, date time.Time) (*calendar.CalendarDay, error) {
			return &calendar.CalendarDay{Date: date, ConfirmationCompleted: true, MaxPeople: &max}, nil
		}
		deps.calendar.countConfirmedFn = func(ctx context.Context, date time.Time) (int64, error) {
			return 5, nil
		}

		_, err := deps.service.Create(ctx, staffID, application.CreateApplicationRequest{
			VacationDate: withinDateStr,
			Period:       application.PeriodFullDay,
			Level:        3,
		})

		assert.ErrorIs(t, err, applicationerrors.ErrCapacityFull)
		assert.Empty(t, deps.outbox.created)
	})

	t.Run("negative insufficient points", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.points.summary = points.Summary{
			Total:     decimal.NewFromInt(19),
			Max:       decimal.NewFromInt(20),
			Remaining: decimal.NewFromInt(1),
		}

		_, err := deps.service.Create(ctx, staffID, application.CreateApplicationRequest{
			VacationDate: withinDateStr,
			Period:       application.PeriodFullDay,
			Level:        1,
		})

		assert.ErrorIs(t, err, applicationerrors.ErrInsufficientPoints)
	})
}

func TestApplicationService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id int64) (*application.Application, error) {
			return &application.Application{ID: id, StaffID: 101, Status: application.StatusConfirmed}, nil
		}

		resp, err := deps.service.GetByID(ctx, 101, 9)
		assert.NoError(t, err)
		assert.Equal(t, int64(9), resp.ID)
	})

	t.Run("negative not owner", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id int64) (*application.Application, error) {
			return &application.Application{ID: id, StaffID: 202}, nil
		}

		_, err := deps.service.GetByID(ctx, 101, 9)
		assert.ErrorIs(t, err, applicationerrors.ErrNotOwner)
	})
}

func TestApplicationService_Approve(t *testing.T) {
	ctx := context.Background()
	adminID := int64(1)
	date := firstOfMonthAhead(1)

	pendingApp := func(id int64) *application.Application {
		p := 2
		return &application.Application{
			ID:           id,
			StaffID:      101,
			VacationDate: date,
			Level:        3,
			Status:       application.StatusPendingApproval,
			Priority:     &p,
		}
	}

	t.Run("success", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id int64) (*application.Application, error) {
			return pendingApp(id), nil
		}
		max := 5
		deps.calendar.lockByDateFn = func(ctx context.Context, d time.Time) (*calendar.CalendarDay, error) {
			return &calendar.CalendarDay{Date: d, ConfirmationCompleted: true, MaxPeople: &max}, nil
		}
		deps.calendar.countConfirmedFn = func(ctx context.Context, d time.Time) (int64, error) {
			return 4, nil
		}

		var gotFrom, gotTo string
		deps.repo.updateStatusGuardedFn = func(ctx context.Context, id int64, fromStatus, toStatus string) error {
			gotFrom, gotTo = fromStatus, toStatus
			return nil
		}

		resp, err := deps.service.Approve(ctx, adminID, 9)

		assert.NoError(t, err)
		assert.Equal(t, application.StatusConfirmed, resp.Status)
		assert.Equal(t, application.StatusPendingApproval, gotFrom)
		assert.Equal(t, application.StatusConfirmed, gotTo)
		assert.Len(t, deps.notif.created, 1)
		assert.Equal(t, notification.TypeApplicationApproved, deps.notif.created[0].Type)
		assert.Equal(t, int64(101), deps.notif.created[0].StaffID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative capacity filled since creation", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id int64) (*application.Application, error) {
			return pendingApp(id), nil
		}
		max := 5
		deps.calendar.lockByDateFn = func(ctx context.Context, d time.Time) (*calendar.CalendarDay, error) {
			return &calendar.CalendarDay{Date: d, ConfirmationCompleted: true, MaxPeople: &max}, nil
		}
		deps.calendar.countConfirmedFn = func(ctx context.Context, d time.Time) (int64, error) {
			return 5, nil
		}

		_, err := deps.service.Approve(ctx, adminID, 9)

		assert.ErrorIs(t, err, applicationerrors.ErrCapacityFull)
		assert.Empty(t, deps.notif.created)
	})

	t.Run("negative not pending approval", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id int64) (*application.Application, error) {
			return &application.Application{ID: id, Status: application.StatusConfirmed}, nil
		}

		_, err := deps.service.Approve(ctx, adminID, 9)
		assert.ErrorIs(t, err, applicationerrors.ErrInvalidStatusTransition)
	})
}

func TestApplicationService_Reject(t *testing.T) {
	ctx := context.Background()
	adminID := int64(1)
	date := firstOfMonthAhead(1)

	t.Run("success renumbers remaining priorities", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		p := 1
		deps.repo.findByIDFn = func(ctx context.Context, id int64) (*application.Application, error) {
			return &application.Application{
				ID:           id,
				StaffID:      101,
				VacationDate: date,
				Status:       application.StatusPendingApproval,
				Priority:     &p,
			}, nil
		}

		var rejected int64
		deps.repo.rejectPendingGuardedFn = func(ctx context.Context, id int64) error {
			rejected = id
			return nil
		}

		// Survivors hold priorities 2 and 3 after the rejection.
		p2, p3 := 2, 3
		deps.repo.listRankedByDateFn = func(ctx context.Context, d time.Time) ([]application.Application, error) {
			return []application.Application{
				{ID: 20, Priority: &p2},
				{ID: 30, Priority: &p3},
			}, nil
		}

		renumbered := map[int64]int{}
		deps.repo.updatePriorityFn = func(ctx context.Context, id int64, priority int) error {
			renumbered[id] = priority
			return nil
		}

		resp, err := deps.service.Reject(ctx, adminID, 9)

		assert.NoError(t, err)
		assert.Equal(t, application.StatusCancelled, resp.Status)
		assert.Nil(t, resp.Priority)
		assert.Equal(t, int64(9), rejected)
		assert.Equal(t, map[int64]int{20: 1, 30: 2}, renumbered)
		assert.Len(t, deps.notif.created, 1)
		assert.Equal(t, notification.TypeApplicationRejected, deps.notif.created[0].Type)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative stale state aborts", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		p := 1
		deps.repo.findByIDFn = func(ctx context.Context, id int64) (*application.Application, error) {
			return &application.Application{
				ID:           id,
				StaffID:      101,
				VacationDate: date,
				Status:       application.StatusPendingApproval,
				Priority:     &p,
			}, nil
		}
		deps.repo.rejectPendingGuardedFn = func(ctx context.Context, id int64) error {
			return applicationerrors.ErrStaleState
		}

		_, err := deps.service.Reject(ctx, adminID, 9)
		assert.ErrorIs(t, err, applicationerrors.ErrStaleState)
		assert.Empty(t, deps.notif.created)
	})
}

func TestApplicationService_PeriodStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("within window", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		date := firstOfMonthAhead(2)
		resp, err := deps.service.PeriodStatus(ctx, date.Format("2006-01-02"))

		assert.NoError(t, err)
		assert.True(t, resp.IsWithin)
		assert.Equal(t, "within", resp.Phase)
	})

	t.Run("after window", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		date := firstOfMonthAhead(0)
		resp, err := deps.service.PeriodStatus(ctx, date.Format("2006-01-02"))

		assert.NoError(t, err)
		assert.False(t, resp.IsWithin)
		assert.Equal(t, "after", resp.Phase)
	})

	t.Run("negative invalid date", func(t *testing.T) {
		deps := setupApplicationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.PeriodStatus(ctx, "not-a-date")
		assert.ErrorIs(t, err, applicationerrors.ErrInvalidDateFormat)
	})
}
