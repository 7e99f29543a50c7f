package kernel

import (
	"fmt"

	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"Actor must be created via NewActor constructor")

// Role identifies what kind of user is acting on a job.
// Users themselves are owned by the authentication collaborator; the core only
// ever reads a user's id and role.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer books jobs and may cancel their own bookings.
	RoleCustomer

	// RoleTranslator accepts, starts, and ends jobs.
	RoleTranslator

	// RoleAdmin manages jobs on behalf of customers and translators.
	RoleAdmin

	// RoleSuperAdmin has the same core capabilities as RoleAdmin.
	// The distinction only matters to the boundary's capability checks.
	RoleSuperAdmin
)

// getValidRoleStrings returns the permitted roles with their string forms.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:   "customer",
		RoleTranslator: "translator",
		RoleAdmin:      "admin",
		RoleSuperAdmin: "superadmin",
	}
}

// RoleFromString parses a role name supplied by the boundary layer.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// String returns the human-readable role name, or "unknown" for invalid values.
func (r Role) String() string {
	if s, ok := getValidRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// IsPrivileged reports whether the role may act on jobs it is not a party to.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Validate checks that the Role is one of the permitted values.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// Actor identifies the already-authenticated user performing a core operation.
// Every mutating operation receives an explicit Actor; the core never reads
// ambient session state.
//
// Example:
//
//	translatorID := kernel.NewUUID()
//	actor, err := kernel.NewActor(translatorID, kernel.RoleTranslator)
//	if err != nil {
//	    // handle invalid actor
//	}
type Actor struct {
	id    UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor creates an Actor from a validated user id and role.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the acting user's unique identifier.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the acting user's role.
func (a Actor) Role() Role {
	return a.role
}
