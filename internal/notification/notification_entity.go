package notification

import "time"

// Notification is one inbox entry for one staff member. Entries are written in
// the same transaction as the state change they describe and stay pending
// until the staff member explicitly acknowledges them (at-least-once, manually
// dismissed — not a push queue).
type Notification struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	StaffID int64  `gorm:"not null;index:idx_notifications_staff_ack"`
	Type    string `gorm:"type:varchar(50);not null"`
	Message string `gorm:"type:text;not null"`

	RelatedType string `gorm:"type:varchar(30);not null"` // application | cancellation_request | exchange_request
	RelatedID   int64  `gorm:"not null"`

	Acknowledged   bool `gorm:"not null;default:false;index:idx_notifications_staff_ack"`
	AcknowledgedAt *time.Time

	CreatedAt time.Time
}

func (Notification) TableName() string { return "notifications" }

const (
	RelatedApplication         = "application"
	RelatedCancellationRequest = "cancellation_request"
	RelatedExchangeRequest     = "exchange_request"
)

const (
	TypeApplicationApproved   = "application_approved"
	TypeApplicationRejected   = "application_rejected"
	TypeCancellationApproved  = "cancellation_approved"
	TypeCancellationRejected  = "cancellation_rejected"
	TypeExchangeRequested     = "exchange_requested"
	TypeExchangeTargetReplied = "exchange_target_replied"
	TypeExchangeApproved      = "exchange_approved"
	TypeExchangeRejected      = "exchange_rejected"
)
