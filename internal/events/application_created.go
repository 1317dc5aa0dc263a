package events

import "time"

const ApplicationLifecycleTopic = "dayoff.application.lifecycle.v1"

type ApplicationCreatedEvent struct {
	EventType     string    `json:"event_type"`
	ApplicationID int64     `json:"application_id"`
	StaffID       int64     `json:"staff_id"`
	VacationDate  string    `json:"vacation_date"`
	Level         int       `json:"level"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
