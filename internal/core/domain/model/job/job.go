package job

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created
	// through NewJob or RestoreJob.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")

	// ErrTitleIsRequired is returned when creating a job without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")

	// ErrContactEmailIsRequired is returned when recording an empty contact email.
	ErrContactEmailIsRequired = errs.NewValueIsRequiredError("contact email")

	// ErrTranslatorMismatch is returned when a translator attempts to start a
	// job that is assigned to someone else.
	ErrTranslatorMismatch = errs.NewValueIsInvalidError("job is assigned to another translator")
)

// Job is the aggregate root for a bookable unit of interpretation or
// translation work. It owns the lifecycle status, the translator assignment,
// and the administrative audit fields.
//
// Invariants:
//   - The assigned-translator reference is non-nil whenever the status is
//     Assigned or InProgress, and nil whenever the status is Pending.
//     Terminal statuses may retain the last assignment for auditing until
//     the job is reopened.
//   - Audit flags (flagged, manually handled, by admin) are always a
//     normalized kernel.Flag, never raw feed text.
//   - Status only changes through the transition methods; a failed transition
//     leaves every field untouched.
//
// Jobs are never deleted, only transitioned to a terminal status.
type Job struct {
	// id is the unique identifier for the job
	id kernel.UUID

	// customerID references the customer who booked the job
	customerID kernel.UUID

	// translatorID is the accepted translator (nil if unassigned)
	translatorID *kernel.UUID

	// title and description are the customer-editable booking details
	title       string
	description string

	// contactEmail is the "immediate job" contact address, if recorded
	contactEmail string

	// status is the current lifecycle state
	status Status

	// adminComments, flagged, manuallyHandled, byAdmin and sessionTime are
	// administrative override fields written by the telemetry feed
	adminComments   string
	flagged         kernel.Flag
	manuallyHandled kernel.Flag
	byAdmin         kernel.Flag
	sessionTime     *time.Duration

	// cancelledBy records the role of the actor who cancelled the job
	cancelledBy *kernel.Role

	startedAt   *time.Time
	completedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	// isConstructed ensures the job was created via a constructor
	isConstructed bool
}

// NewJob creates a job in Pending status for the booking customer.
// Title must be non-empty; description may be empty.
func NewJob(id kernel.UUID, customerID kernel.UUID, title, description string, now time.Time) (*Job, error) {
	j := &Job{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setCustomerID(customerID),
		j.setTitle(title),
	); err != nil {
		return nil, err
	}
	j.description = description

	return j, nil
}

// RestoreJob reconstructs a job from persistence, re-checking the
// status/assignment invariant so corrupt rows never become live aggregates.
func RestoreJob(
	id kernel.UUID,
	customerID kernel.UUID,
	translatorID *kernel.UUID,
	title, description, contactEmail string,
	status Status,
	adminComments string,
	flagged, manuallyHandled, byAdmin kernel.Flag,
	sessionTime *time.Duration,
	cancelledBy *kernel.Role,
	startedAt, completedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Job, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		status.Validate(),
		flagged.Validate(),
		manuallyHandled.Validate(),
		byAdmin.Validate(),
	); err != nil {
		return nil, err
	}

	if err := validateAssignment(status, translatorID); err != nil {
		return nil, err
	}

	return &Job{
		id:              id,
		customerID:      customerID,
		translatorID:    translatorID,
		title:           title,
		description:     description,
		contactEmail:    contactEmail,
		status:          status,
		adminComments:   adminComments,
		flagged:         flagged,
		manuallyHandled: manuallyHandled,
		byAdmin:         byAdmin,
		sessionTime:     sessionTime,
		cancelledBy:     cancelledBy,
		startedAt:       startedAt,
		completedAt:     completedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}, nil
}

// validateAssignment enforces the status/translator invariant:
// a translator is required for Assigned/InProgress and forbidden for Pending.
func validateAssignment(status Status, translatorID *kernel.UUID) error {
	if status.RequiresTranslator() && translatorID == nil {
		return errs.NewValueIsRequiredError("translator for " + status.String() + " job")
	}
	if status == Pending && translatorID != nil {
		return errs.NewValueIsInvalidError("pending job must not have a translator")
	}
	if translatorID != nil {
		return translatorID.Validate()
	}
	return nil
}

// Validate ensures the Job instance was properly constructed.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// CustomerID returns the booking customer's identifier.
func (j *Job) CustomerID() kernel.UUID {
	return j.customerID
}

// Translator returns the assigned translator's id, or nil if unassigned.
func (j *Job) Translator() *kernel.UUID {
	return j.translatorID
}

// Title returns the customer-supplied job title.
func (j *Job) Title() string {
	return j.title
}

// Description returns the customer-supplied job description.
func (j *Job) Description() string {
	return j.description
}

// ContactEmail returns the recorded immediate-job contact email, if any.
func (j *Job) ContactEmail() string {
	return j.contactEmail
}

// Status returns the current lifecycle status.
func (j *Job) Status() Status {
	return j.status
}

// AdminComments returns the administrative comment text.
func (j *Job) AdminComments() string {
	return j.adminComments
}

// Flagged reports the flagged audit marker.
func (j *Job) Flagged() kernel.Flag {
	return j.flagged
}

// ManuallyHandled reports the manually-handled audit marker.
func (j *Job) ManuallyHandled() kernel.Flag {
	return j.manuallyHandled
}

// ByAdmin reports the by-admin audit marker.
func (j *Job) ByAdmin() kernel.Flag {
	return j.byAdmin
}

// SessionTime returns the recorded session duration, or nil.
func (j *Job) SessionTime() *time.Duration {
	return j.sessionTime
}

// CancelledBy returns the role that cancelled the job, or nil.
func (j *Job) CancelledBy() *kernel.Role {
	return j.cancelledBy
}

// StartedAt returns when the session started, or nil.
func (j *Job) StartedAt() *time.Time {
	return j.startedAt
}

// CompletedAt returns when the session ended, or nil.
func (j *Job) CompletedAt() *time.Time {
	return j.completedAt
}

// CreatedAt returns the booking time.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// UpdatedAt returns the last mutation time.
func (j *Job) UpdatedAt() time.Time {
	return j.updatedAt
}

// Accept assigns the job to the given translator.
//
// Valid only from Pending. The acceptance race between concurrent translators
// is resolved by the repository's conditional update; this method only
// enforces the state machine on the in-memory aggregate.
func (j *Job) Accept(translatorID kernel.UUID, now time.Time) error {
	if err := translatorID.Validate(); err != nil {
		return err
	}

	newStatus, err := j.status.Accept()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.translatorID = &translatorID
	j.updatedAt = now
	return nil
}

// Start marks the session as started by the assigned translator.
// Fails with ErrTranslatorMismatch if another translator attempts it.
func (j *Job) Start(translatorID kernel.UUID, now time.Time) error {
	if err := translatorID.Validate(); err != nil {
		return err
	}
	if j.translatorID == nil || !j.translatorID.IsEqual(translatorID) {
		return ErrTranslatorMismatch
	}

	newStatus, err := j.status.Start()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.startedAt = &now
	j.updatedAt = now
	return nil
}

// Complete ends the session, stamping the completion time and, when the
// session start is known, the measured session duration.
func (j *Job) Complete(now time.Time) error {
	newStatus, err := j.status.Complete()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.completedAt = &now
	if j.startedAt != nil {
		elapsed := now.Sub(*j.startedAt)
		j.sessionTime = &elapsed
	}
	j.updatedAt = now
	return nil
}

// Cancel transitions the job to Cancelled, recording the cancelling actor's
// role for auditing. Customers, translators, and admins cancel with identical
// semantics.
func (j *Job) Cancel(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	newStatus, err := j.status.Cancel()
	if err != nil {
		return err
	}

	role := actor.Role()
	j.status = newStatus
	j.cancelledBy = &role
	j.updatedAt = now
	return nil
}

// MarkNoShow transitions an accepted job to NoShow when the customer did not
// show up for the session.
func (j *Job) MarkNoShow(now time.Time) error {
	newStatus, err := j.status.MarkNoShow()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.updatedAt = now
	return nil
}

// Reopen returns a terminal job to Pending. The assignment and session
// timestamps are cleared so acceptance starts over; admin comments, audit
// flags, and recorded session time are preserved.
func (j *Job) Reopen(now time.Time) error {
	newStatus, err := j.status.Reopen()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.translatorID = nil
	j.cancelledBy = nil
	j.startedAt = nil
	j.completedAt = nil
	j.updatedAt = now
	return nil
}

// UpdateDetails replaces the customer-editable fields.
// Protected fields (status, assignment, audit markers) are not touched.
func (j *Job) UpdateDetails(title, description string, now time.Time) error {
	if err := j.setTitle(title); err != nil {
		return err
	}
	j.description = description
	j.updatedAt = now
	return nil
}

// SetContactEmail records the immediate-job contact email.
// The boundary layer is responsible for format validation.
func (j *Job) SetContactEmail(email string, now time.Time) error {
	if email == "" {
		return ErrContactEmailIsRequired
	}
	j.contactEmail = email
	j.updatedAt = now
	return nil
}

// Overrides carries the administrative override fields of a telemetry feed.
// Nil fields were not supplied and must leave the job untouched.
type Overrides struct {
	SessionTime     *time.Duration
	AdminComments   *string
	Flagged         *kernel.Flag
	ManuallyHandled *kernel.Flag
	ByAdmin         *kernel.Flag
}

// IsEmpty reports whether the feed supplied no override fields at all.
func (o Overrides) IsEmpty() bool {
	return o.SessionTime == nil &&
		o.AdminComments == nil &&
		o.Flagged == nil &&
		o.ManuallyHandled == nil &&
		o.ByAdmin == nil
}

// ApplyOverrides writes the supplied override fields, bypassing the state
// machine. Absent fields are left untouched.
func (j *Job) ApplyOverrides(o Overrides, now time.Time) error {
	if err := errors.Join(
		validateOptionalFlag(o.Flagged),
		validateOptionalFlag(o.ManuallyHandled),
		validateOptionalFlag(o.ByAdmin),
	); err != nil {
		return err
	}

	if o.SessionTime != nil {
		j.sessionTime = o.SessionTime
	}
	if o.AdminComments != nil {
		j.adminComments = *o.AdminComments
	}
	if o.Flagged != nil {
		j.flagged = *o.Flagged
	}
	if o.ManuallyHandled != nil {
		j.manuallyHandled = *o.ManuallyHandled
	}
	if o.ByAdmin != nil {
		j.byAdmin = *o.ByAdmin
	}
	j.updatedAt = now
	return nil
}

func validateOptionalFlag(f *kernel.Flag) error {
	if f == nil {
		return nil
	}
	return f.Validate()
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.customerID = id
	return nil
}

func (j *Job) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	j.title = title
	return nil
}
