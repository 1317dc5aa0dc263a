package exchange

import "time"

const (
	TargetPending  = "pending"
	TargetAccepted = "accepted"
	TargetRejected = "rejected"
)

const (
	AdminPending  = "pending"
	AdminApproved = "approved"
	AdminRejected = "rejected"
)

// ExchangeRequest tracks a three-party priority/level swap between two
// same-date applications. The target's acceptance unlocks administrator
// review; administrator approval performs the swap and sets Executed exactly
// once, in the same transaction.
type ExchangeRequest struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	RequesterApplicationID int64  `gorm:"not null;index:idx_exchange_requests_requester_app"`
	RequesterStaffID       int64  `gorm:"not null"`
	TargetApplicationID    int64  `gorm:"not null;index:idx_exchange_requests_target_app"`
	TargetStaffID          int64  `gorm:"not null"`
	RequestReason          string `gorm:"type:text"`

	TargetResponse     string `gorm:"type:varchar(20);not null;default:'pending'"`
	TargetRespondedAt  *time.Time
	TargetRejectReason string `gorm:"type:text"`

	AdminResponse     string `gorm:"type:varchar(20);not null;default:'pending'"`
	AdminStaffID      *int64
	AdminRespondedAt  *time.Time
	AdminRejectReason string `gorm:"type:text"`

	Executed   bool `gorm:"not null;default:false"`
	ExecutedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ExchangeRequest) TableName() string { return "exchange_requests" }

// IsOpen reports whether the request is still in a non-terminal state: the
// target has not rejected it and the administrator has not ruled on it.
func (e ExchangeRequest) IsOpen() bool {
	return e.TargetResponse != TargetRejected && e.AdminResponse == AdminPending
}

// PriorityExchangeLog is the append-only audit row written with each executed
// swap. Rows are never updated.
type PriorityExchangeLog struct {
	ID                int64 `gorm:"primaryKey;autoIncrement"`
	ExchangeRequestID int64 `gorm:"not null;index:idx_priority_exchange_logs_request"`

	RequesterApplicationID int64 `gorm:"not null"`
	TargetApplicationID    int64 `gorm:"not null"`

	RequesterPriorityBefore int `gorm:"not null"`
	RequesterPriorityAfter  int `gorm:"not null"`
	RequesterLevelBefore    int `gorm:"not null"`
	RequesterLevelAfter     int `gorm:"not null"`

	TargetPriorityBefore int `gorm:"not null"`
	TargetPriorityAfter  int `gorm:"not null"`
	TargetLevelBefore    int `gorm:"not null"`
	TargetLevelAfter     int `gorm:"not null"`

	ApprovedBy int64     `gorm:"not null"`
	ExecutedAt time.Time `gorm:"not null"`

	CreatedAt time.Time
}

func (PriorityExchangeLog) TableName() string { return "priority_exchange_logs" }
