// Package domainerrors provides the coded error taxonomy shared by the
// booking service and its transport layer.
//
// Codes express how a failure is recoverable:
//   - CodeValidation: a submitted value failed its type's constructor;
//     resubmit a corrected value.
//   - CodeOrdering: a booking step was attempted before its prerequisite
//     steps; complete the earlier steps first.
//   - CodeBooking: the confirmation side effect of finalizing a booking
//     failed after the draft was persisted; retry finalize.
//   - CodeNotFound: no draft exists for the session.
//   - CodeBadRequest: the request body could not be decoded at all.
//   - CodeInternal: the session store or another collaborator failed;
//     nothing the caller resubmits will help.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain error.
type Code string

const (
	CodeValidation Code = "validation"
	CodeOrdering   Code = "ordering"
	CodeBooking    Code = "booking"
	CodeNotFound   Code = "not_found"
	CodeBadRequest Code = "bad_request"
	CodeInternal   Code = "internal"
)

// Error is a coded domain error. Messages must name the offending field and
// prerequisite where relevant, and must never contain submitted values.
type Error struct {
	Code    Code
	Message string
	err     error
}

// New creates a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a coded error that records an underlying cause.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, err: err}
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.err
}

// HasCode reports whether err is (or wraps) a domain error with the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for errors
// that did not originate in the domain.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the public message from err. Non-domain errors collapse
// to a generic message so infrastructure detail never reaches callers.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}

// ToHTTPStatus maps an error code to an HTTP status for the transport layer.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeBadRequest:
		return http.StatusBadRequest
	case CodeOrdering:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	case CodeBooking:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
