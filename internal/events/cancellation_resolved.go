package events

import "time"

const CancellationLifecycleTopic = "dayoff.cancellation.lifecycle.v1"

type CancellationResolvedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     int64     `json:"request_id"`
	ApplicationID int64     `json:"application_id"`
	Approved      bool      `json:"approved"`
	ResolvedBy    int64     `json:"resolved_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
