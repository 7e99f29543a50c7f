// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and post-commit notification dispatch where the operation calls
// for it.
package commands

import (
	"context"

	"booking/internal/core/ports"
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

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// DistanceRepoFactory provides access to the telemetry repository within a transaction.
	DistanceRepoFactory interface {
		DistanceRepository() ports.DistanceRepository
	}

	// JobUoW manages transactions for job-only operations.
	// Used by the lifecycle commands, which never touch telemetry.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// UoW manages transactions across job and telemetry records.
	// The distance feed uses it, opening independent transactions for the
	// telemetry write and the job override write.
	UoW interface {
		TxManager
		JobRepoFactory
		DistanceRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-record operations.
	UoWFactory interface {
		Create() UoW
	}
)
