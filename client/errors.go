package client

import (
	"errors"
	"fmt"
)

// ErrorCode represents the type of error that occurred.
type ErrorCode int

const (
	// ErrUnknown is an unknown error.
	ErrUnknown ErrorCode = iota
	// ErrMissingCredential is returned when no API key was supplied.
	ErrMissingCredential
	// ErrInvalidRequest is returned when a paste has an out-of-range
	// duration or an unrecognised language.
	ErrInvalidRequest
	// ErrTransport is returned when the HTTP exchange could not be completed.
	ErrTransport
	// ErrMalformedResponse is returned when the reply is neither a paste nor
	// an error document.
	ErrMalformedResponse
	// ErrRemote is returned when pastery rejected the paste. Message is the
	// service's own error message.
	ErrRemote
)

func (c ErrorCode) String() string {
	switch c {
	case ErrMissingCredential:
		return "missing credential"
	case ErrInvalidRequest:
		return "invalid request"
	case ErrTransport:
		return "transport failure"
	case ErrMalformedResponse:
		return "malformed response"
	case ErrRemote:
		return "remote failure"
	}
	return "unknown"
}

// Error represents an error from the pastery API or the client itself.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsRemote returns true if pastery answered with an error message.
func IsRemote(err error) bool {
	return hasCode(err, ErrRemote)
}

// IsMalformedResponse returns true if the reply could not be understood.
func IsMalformedResponse(err error) bool {
	return hasCode(err, ErrMalformedResponse)
}

// IsTransport returns true if the request never completed.
func IsTransport(err error) bool {
	return hasCode(err, ErrTransport)
}

// IsInvalidRequest returns true if the paste was rejected before sending.
func IsInvalidRequest(err error) bool {
	return hasCode(err, ErrInvalidRequest) || hasCode(err, ErrMissingCredential)
}
