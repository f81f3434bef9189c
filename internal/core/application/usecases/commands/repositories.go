// Package commands contains the lifecycle operations that modify shipment
// state. Implements the Command pattern for the write side of the CQRS
// split. All commands follow a consistent shape: guarded construction with
// input validation, then a handler that runs one read-modify-write against
// the order store inside a unit of work.
package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. The lifecycle operations never commit partial updates: the
// order-row mutation and its history append share one transaction.
type (
	// TxManager handles store transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances, one per
	// handled command.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
