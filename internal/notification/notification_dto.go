package notification

import "time"

type NotificationResponse struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Message     string `json:"message"`
	RelatedType string `json:"related_type"`
	RelatedID   int64  `json:"related_id"`
	CreatedAt   string `json:"created_at"`
}

func mapToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		Type:        n.Type,
		Message:     n.Message,
		RelatedType: n.RelatedType,
		RelatedID:   n.RelatedID,
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(items []Notification) []NotificationResponse {
	resp := make([]NotificationResponse, len(items))
	for i, n := range items {
		resp[i] = mapToResponse(n)
	}
	return resp
}
