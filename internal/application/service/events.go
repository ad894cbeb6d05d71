package service

import (
	"context"

	"github.com/google/uuid"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// MutationEvent describes one successful create/update/delete on a
// portfolio record.
type MutationEvent struct {
	Entity   string    `json:"entity"`
	Action   string    `json:"action"`
	RecordID uuid.UUID `json:"record_id"`
	OwnerID  uuid.UUID `json:"owner_id"`
}

// EventPublisher delivers mutation events best-effort; failures must not
// fail the originating request.
type EventPublisher interface {
	PublishMutation(ctx context.Context, event MutationEvent)
}
