package cancellation

type RequestCancellationRequest struct {
	Reason string `json:"reason"`
}

type RejectCancellationRequest struct {
	RejectReason string `json:"reject_reason" binding:"required"`
}

// CancellationOutcome tells the caller what the cancellation did: whether it
// completed immediately or now awaits an administrator, and whether points
// were restored.
type CancellationOutcome struct {
	ApplicationID     int64  `json:"application_id"`
	ApplicationStatus string `json:"application_status"`
	RequiresApproval  bool   `json:"requires_approval"`
	PointsRestored    bool   `json:"points_restored"`
	RequestID         *int64 `json:"request_id,omitempty"`
}

type CancellationRequestResponse struct {
	ID            int64  `json:"id"`
	ApplicationID int64  `json:"application_id"`
	StaffID       int64  `json:"staff_id"`
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
	RequestedAt   string `json:"requested_at"`
	ResolvedBy    *int64 `json:"resolved_by,omitempty"`
	ResolvedAt    string `json:"resolved_at,omitempty"`
	RejectReason  string `json:"reject_reason,omitempty"`
}
