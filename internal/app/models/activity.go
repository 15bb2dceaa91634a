package models

import "time"

const (
	ActivityActionCreated = "created"
	ActivityActionUpdated = "updated"
	ActivityActionDeleted = "deleted"
)

type ActivityEvent struct {
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	ResourceID string    `json:"resource_id"`
	Role       Role      `json:"role"`
	UserID     string    `json:"user_id"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
