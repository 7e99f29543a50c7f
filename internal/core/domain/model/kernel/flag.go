package kernel

import (
	"fmt"

	"booking/internal/pkg/errs"
)

// Flag is the two-value domain for job audit markers (flagged, manually
// handled, by admin). Telemetry feeds deliver these as free-text literals;
// FlagFromLiteral normalizes them exactly once at the boundary, and the rest
// of the system only ever sees No or Yes.
//
// The zero value is No, matching the default of every marker on a new job.
type Flag int

const (
	// No is the default flag value.
	No Flag = iota

	// Yes marks the flag as set.
	Yes
)

// flagLiteralTrue is the only feed literal that maps to Yes.
// Any other literal, including an absent field, maps to No.
const flagLiteralTrue = "true"

// FlagFromLiteral normalizes a raw feed literal into the two-value domain.
//
// Example:
//
//	kernel.FlagFromLiteral("true")  // Yes
//	kernel.FlagFromLiteral("false") // No
//	kernel.FlagFromLiteral("")      // No
//	kernel.FlagFromLiteral("TRUE")  // No, literals are case-sensitive
func FlagFromLiteral(literal string) Flag {
	if literal == flagLiteralTrue {
		return Yes
	}
	return No
}

// FlagFromString parses a persisted "yes"/"no" value back into a Flag.
// Returns an error for any other value.
func FlagFromString(s string) (Flag, error) {
	switch s {
	case "yes":
		return Yes, nil
	case "no":
		return No, nil
	default:
		return No, errs.NewValueIsInvalidErrorWithCause(
			"flag is invalid",
			fmt.Errorf("%q is not a valid flag value", s),
		)
	}
}

// String returns the persisted representation: "yes" or "no".
func (f Flag) String() string {
	if f == Yes {
		return "yes"
	}
	return "no"
}

// Validate checks that the Flag holds one of the two permitted values.
func (f Flag) Validate() error {
	if f != No && f != Yes {
		return errs.NewValueIsInvalidErrorWithCause(
			"flag is invalid",
			fmt.Errorf("%d is not a valid flag value", f),
		)
	}
	return nil
}

// IsSet reports whether the flag is Yes.
func (f Flag) IsSet() bool {
	return f == Yes
}
