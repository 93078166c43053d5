package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// The inventory reservation and the order insert of a creation request run
// inside one unit of work, so a failure after the stock decrement rolls the
// decrement back; a half-committed state is never observable.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// PackageRepository returns a PackageRepository bound to the current transaction.
	PackageRepository() PackageRepository

	// BusinessRepository returns a BusinessRepository bound to the current transaction.
	BusinessRepository() BusinessRepository

	// WorkerRepository returns a WorkerRepository bound to the current transaction.
	WorkerRepository() WorkerRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository
}
