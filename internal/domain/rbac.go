package domain

// EnforceRequest is the authorization question asked by the RBAC middleware:
// may this staff member perform action on resource?
type EnforceRequest struct {
	StaffID  int64
	Resource string
	Action   string
}

// Resources known to the authorization layer.
const (
	ResourceApplication  = "application"
	ResourceCancellation = "cancellation"
	ResourceExchange     = "exchange"
	ResourceNotification = "notification"
	ResourceSettings     = "settings"
)

// Actions known to the authorization layer.
const (
	ActionRead    = "read"
	ActionCreate  = "create"
	ActionApprove = "approve"
	ActionRespond = "respond"
)
