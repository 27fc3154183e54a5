package service

import (
	"context"
	"time"
)

// PassUpdateEvent announces that a pass's content changed and devices were
// notified. Downstream consumers (analytics, audit) subscribe to these events.
type PassUpdateEvent struct {
	RequestID          string    `json:"request_id,omitempty"` // For distributed tracing
	SerialNumber       string    `json:"serial_number"`
	PassTypeIdentifier string    `json:"pass_type_identifier"`
	UpdatedAt          time.Time `json:"updated_at"`
	ChangedKeys        []string  `json:"changed_keys,omitempty"` // Data keys touched by the mutation
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPassUpdateEvent publishes a pass-update event for async consumers
	PublishPassUpdateEvent(ctx context.Context, event *PassUpdateEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
