package cancellation

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// CancellationRequest tracks an administrator-gated cancellation. One row is
// created when the owner cancels a before-lottery application after its window
// closed; at most one pending row may exist per application.
type CancellationRequest struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	ApplicationID int64  `gorm:"not null;index:idx_cancellation_requests_application"`
	StaffID       int64  `gorm:"not null"`
	Status        string `gorm:"type:varchar(20);not null;default:'pending'"`
	Reason        string `gorm:"type:text"`

	RequestedAt  time.Time `gorm:"not null"`
	ResolvedBy   *int64
	ResolvedAt   *time.Time
	RejectReason string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CancellationRequest) TableName() string { return "cancellation_requests" }
