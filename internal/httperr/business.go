package httperr

import (
	"errors"
	"fmt"
)

// Business error codes shared by the engine and the HTTP layer.
const (
	CodeInvalidInput       = "invalid_input"
	CodeSlotTaken          = "slot_taken"
	CodeStoreUnavailable   = "store_unavailable"
	CodeProviderNotFound   = "provider_not_found"
	CodeAppointmentMissing = "appointment_not_found"
	CodeWaitlistMissing    = "waitlist_entry_not_found"
	CodeInvalidState       = "invalid_state"
	CodeTooLateToCancel    = "too_late_to_cancel"
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e BusinessError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	case e.Message != "":
		return e.Code + ": " + e.Message
	case e.Err != nil:
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// Invalid builds an invalid_input error with a human readable reason.
func Invalid(format string, args ...any) error {
	return BusinessError{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a business code to an underlying cause.
func Wrap(code string, err error) error {
	if err == nil {
		return nil
	}
	return BusinessError{Code: code, Err: err}
}

// Unavailable wraps a collaborator I/O failure. Business errors raised by
// the collaborator itself pass through untouched.
func Unavailable(err error) error {
	if err == nil {
		return nil
	}
	var be BusinessError
	if errors.As(err, &be) {
		return err
	}
	return BusinessError{Code: CodeStoreUnavailable, Err: err}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf returns the business code carried by err, or "" for plain errors.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
