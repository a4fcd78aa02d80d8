// Package lifecycle holds the pure business rules of the equipment
// lifecycle: the status state machine, compliance date computation and
// the equipment ID scheme. Nothing in this package touches storage.
package lifecycle

import (
	"rigtrack/pkg/apperrors"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusRedTagged Status = "RED_TAGGED"
	StatusDestroyed Status = "DESTROYED"
)

type Result string

const (
	ResultPass Result = "PASS"
	ResultFail Result = "FAIL"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusRedTagged, StatusDestroyed:
		return Status(s), nil
	}
	return "", apperrors.NewValidationError("unknown equipment status %q", s)
}

func ParseResult(s string) (Result, error) {
	switch Result(s) {
	case ResultPass, ResultFail:
		return Result(s), nil
	}
	return "", apperrors.NewValidationError("unknown inspection result %q", s)
}

// ValidateTransition enforces the monotonic status machine:
// ACTIVE -> RED_TAGGED, ACTIVE -> DESTROYED, RED_TAGGED -> DESTROYED.
// RED_TAGGED never returns to ACTIVE; DESTROYED is terminal.
func ValidateTransition(from, to Status) error {
	switch from {
	case StatusActive:
		if to == StatusRedTagged || to == StatusDestroyed {
			return nil
		}
	case StatusRedTagged:
		if to == StatusDestroyed {
			return nil
		}
	case StatusDestroyed:
		// no way out
	}
	return &apperrors.InvalidTransitionError{From: string(from), To: string(to)}
}

func (s Status) String() string { return string(s) }

func (r Result) String() string { return string(r) }

// Failed reports whether an inspection with this result red-tags the
// equipment automatically.
func (r Result) Failed() bool { return r == ResultFail }
