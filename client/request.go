package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tombowditch/patisserie/internal/duration"
	"github.com/tombowditch/patisserie/internal/language"
)

// Paste describes the paste to create. Title is left out of the request
// when nil and MaxViews when zero.
type Paste struct {
	APIKey string
	// Duration is the lifetime in minutes.
	Duration uint32
	// Language defaults to "autodetect" when empty.
	Language string
	Title    *string
	MaxViews uint32
	Content  []byte
}

// Request is a fully built paste creation request. Building one performs no
// I/O.
type Request struct {
	URL  *url.URL
	Body []byte
}

// NewRequest builds the request for p against endpoint. It fails if p has no
// API key, a duration over 100 years, or a language pastery does not know.
func NewRequest(endpoint string, p Paste) (*Request, error) {
	if p.APIKey == "" {
		return nil, &Error{Code: ErrMissingCredential, Message: "API key is required"}
	}
	if duration.Minutes(p.Duration) > duration.Maximum {
		return nil, &Error{
			Code:    ErrInvalidRequest,
			Message: fmt.Sprintf("duration of %d minutes exceeds the maximum of 100y", p.Duration),
		}
	}

	lang := p.Language
	if lang == "" {
		lang = language.Autodetect
	}
	if _, err := language.Validate(lang); err != nil {
		return nil, &Error{Code: ErrInvalidRequest, Message: "invalid language", Err: err}
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, &Error{Code: ErrInvalidRequest, Message: "invalid endpoint", Err: err}
	}

	q := u.Query()
	q.Set("api_key", p.APIKey)
	q.Set("duration", strconv.FormatUint(uint64(p.Duration), 10))
	q.Set("language", lang)
	if p.Title != nil {
		q.Set("title", *p.Title)
	}
	if p.MaxViews > 0 {
		q.Set("max_views", strconv.FormatUint(uint64(p.MaxViews), 10))
	}
	u.RawQuery = q.Encode()

	return &Request{URL: u, Body: p.Content}, nil
}

// HTTPRequest returns the POST request to send.
func (r *Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL.String(), bytes.NewReader(r.Body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	return req, nil
}

// Redacted returns the request URL with the API key hidden, for logging.
func (r *Request) Redacted() string {
	u := *r.URL
	q := u.Query()
	if q.Has("api_key") {
		q.Set("api_key", "REDACTED")
	}
	u.RawQuery = q.Encode()
	return u.String()
}
