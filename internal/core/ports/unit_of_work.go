package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to
// the transaction. Client code must explicitly manage the transaction
// lifecycle; domain events are published only after Commit succeeds.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// ContractRepository returns a ContractRepository bound to the
	// current transaction.
	ContractRepository() ContractRepository

	// KitchenOrderRepository returns a KitchenOrderRepository bound to
	// the current transaction.
	KitchenOrderRepository() KitchenOrderRepository

	// StationRepository returns a StationRepository bound to the current
	// transaction.
	StationRepository() StationRepository
}
