package events

import "time"

const ExchangeLifecycleTopic = "dayoff.exchange.lifecycle.v1"

type ExchangeExecutedEvent struct {
	EventType              string    `json:"event_type"`
	ExchangeRequestID      int64     `json:"exchange_request_id"`
	RequesterApplicationID int64     `json:"requester_application_id"`
	TargetApplicationID    int64     `json:"target_application_id"`
	ApprovedBy             int64     `json:"approved_by"`
	OccurredAt             time.Time `json:"occurred_at"`
}
