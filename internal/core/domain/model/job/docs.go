// Package job provides domain entities and business logic for job booking
// in the translation system. It implements the Job aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Job: The aggregate root that manages booking details, the translator
//     assignment, and the administrative audit fields
//   - Status: A state machine that enforces valid lifecycle transitions
//   - Overrides: The partial field set written by telemetry feeds
//
// Key business rules:
//   - Jobs are booked in Pending status and at most one translator may win
//     acceptance of a pending job
//   - Lifecycle follows Pending -> Assigned -> InProgress -> Completed, with
//     Cancelled and NoShow as alternative terminal outcomes
//   - Terminal jobs may be reopened, which clears the assignment but
//     preserves administrative comments
//   - Failed transitions are atomic no-ops; no field changes on failure
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package job
