// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and post-commit event publication.
package commands

import (
	"context"

	"kitchenops/internal/core/ports"
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

	// ContractRepoFactory provides access to the contract repository within a transaction.
	ContractRepoFactory interface {
		ContractRepository() ports.ContractRepository
	}

	// KitchenOrderRepoFactory provides access to the kitchen order repository within a transaction.
	KitchenOrderRepoFactory interface {
		KitchenOrderRepository() ports.KitchenOrderRepository
	}

	// StationRepoFactory provides access to the station repository within a transaction.
	StationRepoFactory interface {
		StationRepository() ports.StationRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductionUoW manages transactions spanning orders and contracts.
	// Used by confirmation, which flips the order status and generates
	// the production contract atomically.
	ProductionUoW interface {
		TxManager
		OrderRepoFactory
		ContractRepoFactory
	}

	// ProductionUoWFactory creates new production unit of work instances.
	ProductionUoWFactory interface {
		Create() ProductionUoW
	}

	// KitchenUoW manages transactions spanning contracts and kitchen orders.
	KitchenUoW interface {
		TxManager
		ContractRepoFactory
		KitchenOrderRepoFactory
	}

	// KitchenUoWFactory creates new kitchen unit of work instances.
	KitchenUoWFactory interface {
		Create() KitchenUoW
	}

	// OrchestrationUoW manages transactions across the whole production
	// flow: orders, contracts, kitchen orders and stations. Used by
	// station assignment and kitchen status updates, which touch several
	// aggregates in one transaction.
	OrchestrationUoW interface {
		TxManager
		OrderRepoFactory
		ContractRepoFactory
		KitchenOrderRepoFactory
		StationRepoFactory
	}

	// OrchestrationUoWFactory creates new orchestration unit of work instances.
	OrchestrationUoWFactory interface {
		Create() OrchestrationUoW
	}

	// StationUoW manages transactions for station-only operations.
	StationUoW interface {
		TxManager
		StationRepoFactory
	}

	// StationUoWFactory creates new station unit of work instances.
	StationUoWFactory interface {
		Create() StationUoW
	}
)
