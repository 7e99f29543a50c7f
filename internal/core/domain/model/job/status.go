package job

import (
	"booking/internal/pkg/errs"
)

// Status represents the lifecycle state of a job.
// It implements a state machine with defined transitions to ensure jobs follow
// the booking workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> InProgress ──> Completed ──┐
//	   ▲  │         │            │                      │
//	   │  └─────────┴── Cancel ──┴──> Cancelled ────────┤
//	   │            │            │                      │
//	   │            └── NoShow ──┴──> NoShow ───────────┤
//	   │                                                │
//	   └────────────────── Reopen ──────────────────────┘
//
// Completed, Cancelled, and NoShow are terminal; Reopen is the only transition
// out of a terminal state and re-enters Pending.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status when a customer books a job.
	// Jobs in this status are visible to eligible translators.
	Pending

	// Assigned indicates exactly one translator has accepted the job.
	Assigned

	// InProgress indicates the translation session has started.
	InProgress

	// Completed indicates the session ended normally. Terminal.
	Completed

	// Cancelled indicates the job was cancelled by a customer, translator,
	// or admin before completion. Terminal.
	Cancelled

	// NoShow indicates the customer did not show up for an accepted job. Terminal.
	NoShow
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		Assigned:      "assigned",
		InProgress:    "in_progress",
		Completed:     "completed",
		Cancelled:     "cancelled",
		NoShow:        "no_show",
	}
}

// getValidStatusStrings returns only the statuses a persisted job may hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
		NoShow:     "no_show",
	}
}

// StatusFromString parses the wire name of a status.
// Returns an error for unknown names and for "unknown" itself.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status is invalid")
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status is invalid")
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is a terminal lifecycle state.
// Only terminal jobs may be reopened.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == NoShow
}

// RequiresTranslator reports whether a job in this status must carry a
// translator assignment. The assigned-translator reference is non-nil iff the
// status is Assigned or InProgress.
func (s Status) RequiresTranslator() bool {
	return s == Assigned || s == InProgress
}

// Accept transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned
//
// Any other source status fails with an InvalidTransitionError. Callers
// resolving an acceptance race translate the failure for Assigned/InProgress
// sources into the lost-race outcome; the status itself does not distinguish
// who lost to whom.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), "accept")
	}
	return Assigned, nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Assigned -> InProgress
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, errs.NewInvalidTransitionError(s.String(), "start")
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
//
// A job must be started before it can be ended.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidTransitionError(s.String(), "end")
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Assigned -> Cancelled
//   - InProgress -> Cancelled
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Assigned && s != InProgress {
		return 0, errs.NewInvalidTransitionError(s.String(), "cancel")
	}
	return Cancelled, nil
}

// MarkNoShow transitions the status to NoShow.
//
// Valid transitions:
//   - Assigned -> NoShow
//   - InProgress -> NoShow
func (s Status) MarkNoShow() (Status, error) {
	if s != Assigned && s != InProgress {
		return 0, errs.NewInvalidTransitionError(s.String(), "mark no-show")
	}
	return NoShow, nil
}

// Reopen transitions a terminal status back to Pending.
//
// Valid transitions:
//   - Completed -> Pending
//   - Cancelled -> Pending
//   - NoShow -> Pending
func (s Status) Reopen() (Status, error) {
	if !s.IsTerminal() {
		return 0, errs.NewInvalidTransitionError(s.String(), "reopen")
	}
	return Pending, nil
}
