package repository

import (
	"context"
)

// UnitOfWork represents a unit of work pattern that manages repositories and transactions
type UnitOfWork interface {
	// Transaction management
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Repository factory methods
	UserRepository() UserRepository
	BookingRepository() BookingRepository
	ServiceRepository() ServiceRepository
	PaymentRepository() PaymentRepository

	// Resource management
	Close() error

	// Transaction state
	IsInTransaction() bool
}

// UnitOfWorkFactory creates new unit of work instances
type UnitOfWorkFactory interface {
	CreateUnitOfWork() UnitOfWork
}

// TransactionalRepository extends repository with transaction support
type TransactionalRepository interface {
	SetTransaction(tx interface{})
	GetTransaction() interface{}
	IsTransactional() bool
}
