package client

import (
	"encoding/json"
	"errors"
)

// Outcome is what pastery said about a paste: either the URL of the new
// paste, or an error message.
type Outcome struct {
	URL     string
	Message string
	success bool
}

// Success reports whether the paste was created.
func (o Outcome) Success() bool {
	return o.success
}

// Result returns the paste URL, or an ErrRemote *Error carrying the
// service's message.
func (o Outcome) Result() (string, error) {
	if o.success {
		return o.URL, nil
	}
	return "", &Error{Code: ErrRemote, Message: o.Message}
}

var errUnrecognised = errors.New(`expected an object with "url" or "error_msg"`)

// ParseResponse interprets a reply body. The success shape is tried before
// the error shape; the HTTP status is never consulted because pastery reports
// errors with 200 OK. Keys are matched exactly.
func ParseResponse(body []byte) (Outcome, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil {
		if url, ok := stringField(fields, "url"); ok {
			return Outcome{URL: url, success: true}, nil
		}
		if msg, ok := stringField(fields, "error_msg"); ok {
			return Outcome{Message: msg}, nil
		}
	}

	return Outcome{}, &Error{
		Code:    ErrMalformedResponse,
		Message: "Could not parse JSON response",
		Err:     errUnrecognised,
	}
}

// stringField returns fields[key] when it holds a JSON string.
func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	var v *string
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return "", false
	}
	return *v, true
}
