package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrBadRequest = errors.New("bad request")

	// ErrHasInspectionHistory guards the hard-delete path: audited
	// equipment is only ever retired by transitioning it to DESTROYED.
	ErrHasInspectionHistory = errors.New("equipment with inspection history cannot be deleted; set status to DESTROYED instead")

	// ErrStatusConflict means the equipment status moved between the
	// read that validated a transition and the conditional write.
	ErrStatusConflict = errors.New("equipment status changed concurrently, retry the request")
)

// InvalidTransitionError is returned for status changes the lifecycle
// state machine forbids (red-tagged or destroyed equipment never goes
// back to active, destroyed is terminal).
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

// InvalidStateError is returned when an operation is attempted on
// equipment in the wrong state, e.g. inspecting non-active equipment.
type InvalidStateError struct {
	Op     string
	Status string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: equipment is %s", e.Op, e.Status)
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// CapacityError is returned when the 3-digit equipment ID sequence for a
// type is exhausted.
type CapacityError struct {
	TypeCode string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("equipment ID sequence exhausted for type %s", e.TypeCode)
}

// HttpError carries a user-facing message and HTTP status code alongside
// the underlying error. Controllers build these, api.ErrorResponse
// renders them.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Details: details,
	}
}
