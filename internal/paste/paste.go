package paste

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tombowditch/patisserie/internal/duration"
	"github.com/tombowditch/patisserie/internal/language"
)

// Options is everything needed to create one paste.
type Options struct {
	APIKey   string
	Duration duration.Minutes
	// Language is the explicitly requested language, or empty.
	Language string
	// Title is the explicit title, or nil. An explicit empty title is
	// sent as is.
	Title *string
	// MaxViews is zero when the paste has no view limit.
	MaxViews uint32
	// Path is the source file, or empty when the content came from stdin.
	Path    string
	Content []byte
}

// ValidationError holds validation failure details.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks that the options can be turned into a request.
// Returns nil if valid, or the first problem found.
func (o *Options) Validate() error {
	if o.APIKey == "" {
		return &ValidationError{Field: "api_key", Message: "API key is required"}
	}
	if o.Duration > duration.Maximum {
		return &ValidationError{
			Field:   "duration",
			Message: fmt.Sprintf("duration of %s minutes exceeds the maximum of 100y", o.Duration),
		}
	}
	if o.Language != "" {
		if _, err := language.Validate(o.Language); err != nil {
			return &ValidationError{Field: "language", Message: err.Error()}
		}
	}
	return nil
}

// ResolvedLanguage returns the explicit language, else one guessed from
// Path, else language.Autodetect.
func (o *Options) ResolvedLanguage() string {
	if o.Language != "" {
		return o.Language
	}
	if o.Path != "" {
		if name, ok := language.Guess(o.Path); ok {
			return name
		}
	}
	return language.Autodetect
}

// ResolvedTitle returns the explicit title, else the file name of Path.
// ok is false when neither is available and no title should be sent.
func (o *Options) ResolvedTitle() (title string, ok bool) {
	if o.Title != nil {
		return *o.Title, true
	}
	if o.Path == "" {
		return "", false
	}
	name := filepath.Base(o.Path)
	if name == "." || name == string(filepath.Separator) {
		return "", false
	}
	return name, true
}

// IsValidationError reports whether err came from Options.Validate.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
