package repository

import (
	"context"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/event"
)

// Entity represents any domain entity that can be persisted
type Entity interface {
	GetID() string
	GetVersion() int
	SetVersion(version int)
}

// AggregateRoot represents an aggregate root in DDD/Event Sourcing
type AggregateRoot interface {
	Entity
	GetUncommittedEvents() []event.DomainEvent
	MarkEventsAsCommitted()
	LoadFromHistory(events []event.DomainEvent) error
}

// GenericRepository provides CRUD operations for any entity type
type GenericRepository[T Entity] interface {
	Save(ctx context.Context, entity T) error
	GetByID(ctx context.Context, id string) (T, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]T, error)
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
}
