// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"bestcat/internal/core/ports"
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

	// StoreRepoFactory provides access to the store repository within a transaction.
	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	// AreaRepoFactory provides access to the area repository within a transaction.
	AreaRepoFactory interface {
		AreaRepository() ports.AreaRepository
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// AiLogRepoFactory provides access to the AI log repository within a transaction.
	AiLogRepoFactory interface {
		AiLogRepository() ports.AiLogRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderingUoW manages transactions for order placement operations, which
	// read stores and menus while writing the order aggregate.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   storeRepo := uow.StoreRepository()
	//   menuRepo := uow.MenuRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderingUoW interface {
		TxManager
		OrderRepoFactory
		StoreRepoFactory
		MenuRepoFactory
	}

	// OrderingUoWFactory creates new ordering unit of work instances.
	OrderingUoWFactory interface {
		Create() OrderingUoW
	}

	// StoreUoW manages transactions for store write operations. Area access
	// is included so store creation can verify the referenced area exists.
	StoreUoW interface {
		TxManager
		StoreRepoFactory
		AreaRepoFactory
	}

	// StoreUoWFactory creates new store unit of work instances.
	StoreUoWFactory interface {
		Create() StoreUoW
	}

	// AreaUoW manages transactions for area-only operations.
	AreaUoW interface {
		TxManager
		AreaRepoFactory
	}

	// AreaUoWFactory creates new area unit of work instances.
	AreaUoWFactory interface {
		Create() AreaUoW
	}

	// MenuUoW manages transactions for menu write operations. Store access
	// is included so menu creation can verify the owning store exists.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
		StoreRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// AiLogUoW manages transactions for AI log writes.
	AiLogUoW interface {
		TxManager
		AiLogRepoFactory
	}

	// AiLogUoWFactory creates new AI log unit of work instances.
	AiLogUoWFactory interface {
		Create() AiLogUoW
	}
)
