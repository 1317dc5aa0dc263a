package calendar

import "time"

// CalendarDay is the per-date capacity record maintained by the external
// calendar administration tool. This core only reads it: the
// "confirmation completed" flag and the people cap gate level-3 submissions
// and pending-approval resolution.
type CalendarDay struct {
	ID                    int64     `gorm:"primaryKey;autoIncrement"`
	Date                  time.Time `gorm:"type:date;not null;uniqueIndex:uq_calendar_days_date"`
	ConfirmationCompleted bool      `gorm:"not null;default:false"`
	MaxPeople             *int      `gorm:"type:int"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CalendarDay) TableName() string { return "calendar_days" }
