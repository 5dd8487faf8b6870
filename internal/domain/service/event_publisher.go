package service

import (
	"context"

	"github.com/google/uuid"
)

// ProfileEventType names a profile lifecycle event
type ProfileEventType string

const (
	ProfileEventSaved   ProfileEventType = "profile.saved"
	ProfileEventDeleted ProfileEventType = "profile.deleted"
)

// ProfileEvent is published after a profile write and consumed by the image worker
type ProfileEvent struct {
	RequestID string           `json:"request_id,omitempty"` // For distributed tracing
	Type      ProfileEventType `json:"type"`
	ProfileID uuid.UUID        `json:"profile_id"`
	Username  string           `json:"username,omitempty"`
	ImageURLs []string         `json:"image_urls,omitempty"` // Images referenced by the profile at event time
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProfileEvent publishes a profile event for async processing
	PublishProfileEvent(ctx context.Context, event *ProfileEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
