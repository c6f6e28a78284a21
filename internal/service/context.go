package service

import (
	"context"

	"github.com/google/uuid"
)

type actorKey struct{}

// WithActor records the user performing the request, for the audit trail
func WithActor(ctx context.Context, userID uuid.UUID) context.Context {
	if userID == uuid.Nil {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFromContext returns the acting user, if one was recorded
func ActorFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(actorKey{}).(uuid.UUID)
	return id, ok
}

// EventPublisher receives lifecycle events after their transaction commits
type EventPublisher interface {
	Publish(event string, data interface{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, interface{}) {}

// MultiPublisher fans an event out to every publisher in order
type MultiPublisher []EventPublisher

func (m MultiPublisher) Publish(event string, data interface{}) {
	for _, p := range m {
		p.Publish(event, data)
	}
}

const (
	EventImportOrderCreated       = "import_order.created"
	EventImportOrderUpdated       = "import_order.updated"
	EventImportOrderStatusChanged = "import_order.status_changed"
	EventImportOrderDeleted       = "import_order.deleted"
)
