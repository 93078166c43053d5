// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodrescue/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PackageRepoFactory provides access to the package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// BusinessRepoFactory provides access to the business repository within a transaction.
	BusinessRepoFactory interface {
		BusinessRepository() ports.BusinessRepository
	}

	// WorkerRepoFactory provides access to the worker repository within a transaction.
	WorkerRepoFactory interface {
		WorkerRepository() ports.WorkerRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CreateOrderUoW manages transactions for order creation. The stock
	// reservation and the order insert share this unit of work, so neither
	// can commit without the other. The user repository resolves the
	// buyer's role for the access policy check.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		PackageRepoFactory
		BusinessRepoFactory
		UserRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// OrderStatusUoW manages transactions for status transitions. Status
	// changes need the full relationship picture: the order, its package,
	// the offering business, and the actor's worker memberships.
	OrderStatusUoW interface {
		TxManager
		OrderRepoFactory
		PackageRepoFactory
		BusinessRepoFactory
		WorkerRepoFactory
		UserRepoFactory
	}

	// OrderStatusUoWFactory creates new status transition unit of work instances.
	OrderStatusUoWFactory interface {
		Create() OrderStatusUoW
	}

	// ExpiryUoW manages transactions for the batch expiry of stale pending
	// orders. Each run cancels orders and releases their stock atomically.
	ExpiryUoW interface {
		TxManager
		OrderRepoFactory
		PackageRepoFactory
	}

	// ExpiryUoWFactory creates new expiry unit of work instances.
	ExpiryUoWFactory interface {
		Create() ExpiryUoW
	}
)
