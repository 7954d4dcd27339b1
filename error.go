package pagebrief

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are mapped by each workflow to a user-visible failure naming the
// failing stage and the offending URL or model.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"

	// Fetch errors.
	ENETWORK = "network"  // connection or protocol failure
	ETIMEOUT = "timeout"  // deadline exceeded
	EBLOCKED = "blocked"  // 403/429/503-class bot defenses
	ERENDER  = "render"   // browser automation failure

	// Link classification errors.
	EPARSE = "parse" // unparseable LLM reply

	// LLM errors.
	EAUTH         = "auth"
	ERATELIMIT    = "rate_limit"
	EINVALIDMODEL = "invalid_model"
	ETRANSPORT    = "transport"

	// Configuration errors.
	ECONFIG = "config" // missing or invalid credential
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the machine-readable code and a
// human-readable message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pagebrief error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
