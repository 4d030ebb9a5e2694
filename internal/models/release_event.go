package models

// ReleaseEvent represents a moderation decision published for downstream delivery pipelines.
type ReleaseEvent struct {
	EventID         string `json:"event_id"`         // EventID is a unique identifier for the event.
	Timestamp       int64  `json:"timestamp"`        // Timestamp is the Unix timestamp (in seconds) when the decision was made.
	ReleaseID       int64  `json:"release_id"`       // ReleaseID identifies the moderated release.
	Status          string `json:"status"`           // Status is the new release status, "approved" or "rejected".
	RejectionReason string `json:"rejection_reason"` // RejectionReason is empty for approvals.
}
