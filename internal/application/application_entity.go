package application

import "time"

const (
	StatusBeforeLottery          = "before_lottery"
	StatusAfterLottery           = "after_lottery"
	StatusConfirmed              = "confirmed"
	StatusWithdrawn              = "withdrawn"
	StatusCancelled              = "cancelled"
	StatusPendingApproval        = "pending_approval"
	StatusPendingCancellation    = "pending_cancellation"
	StatusCancelledBeforeLottery = "cancelled_before_lottery"
	StatusCancelledAfterLottery  = "cancelled_after_lottery"
)

const (
	PeriodFullDay = "full_day"
	PeriodAM      = "am"
	PeriodPM      = "pm"
)

// LiveStatuses are the statuses that block a second application for the same
// staff member and date.
var LiveStatuses = []string{
	StatusBeforeLottery,
	StatusAfterLottery,
	StatusConfirmed,
	StatusPendingApproval,
	StatusPendingCancellation,
}

type Application struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	StaffID      int64     `gorm:"not null;index:idx_applications_staff_date"`
	VacationDate time.Time `gorm:"type:date;not null;index:idx_applications_staff_date;index:idx_applications_date"`
	Period       string    `gorm:"type:varchar(10);not null;default:'full_day'"`
	Level        int       `gorm:"type:int;not null"`

	Status   string `gorm:"type:varchar(30);not null;index:idx_applications_status"`
	Priority *int   `gorm:"type:int"`

	// IsWithinLotteryPeriod is captured once at submission and never
	// recomputed; the cancellation rules depend on the window as it was then.
	IsWithinLotteryPeriod bool      `gorm:"not null"`
	AppliedAt             time.Time `gorm:"not null"`
	Remarks               string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Application) TableName() string { return "applications" }

// IsCancellableByOwner reports whether the owner may start a cancellation.
// Confirmed, pending and already-cancelled applications are not cancellable.
func (a Application) IsCancellableByOwner() bool {
	return a.Status == StatusBeforeLottery || a.Status == StatusAfterLottery
}
