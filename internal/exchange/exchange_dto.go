package exchange

type CreateExchangeRequest struct {
	RequesterApplicationID int64  `json:"requester_application_id" binding:"required"`
	TargetApplicationID    int64  `json:"target_application_id" binding:"required"`
	RequestReason          string `json:"request_reason"`
}

type TargetRespondRequest struct {
	Accept       bool   `json:"accept"`
	RejectReason string `json:"reject_reason"`
}

type AdminRespondRequest struct {
	Approve      bool   `json:"approve"`
	RejectReason string `json:"reject_reason"`
}

type ExchangeRequestResponse struct {
	ID                     int64  `json:"id"`
	RequesterApplicationID int64  `json:"requester_application_id"`
	RequesterStaffID       int64  `json:"requester_staff_id"`
	TargetApplicationID    int64  `json:"target_application_id"`
	TargetStaffID          int64  `json:"target_staff_id"`
	RequestReason          string `json:"request_reason,omitempty"`

	TargetResponse     string `json:"target_response"`
	TargetRespondedAt  string `json:"target_responded_at,omitempty"`
	TargetRejectReason string `json:"target_reject_reason,omitempty"`

	AdminResponse     string `json:"admin_response"`
	AdminStaffID      *int64 `json:"admin_staff_id,omitempty"`
	AdminRespondedAt  string `json:"admin_responded_at,omitempty"`
	AdminRejectReason string `json:"admin_reject_reason,omitempty"`

	Executed   bool   `json:"executed"`
	ExecutedAt string `json:"executed_at,omitempty"`
	CreatedAt  string `json:"created_at"`
}
