package paste

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ReadError is returned when the paste content could not be read. Path is
// empty for standard input.
type ReadError struct {
	Path string
	Op   string
	Err  error
}

func (e *ReadError) Error() string {
	switch {
	case e.Path == "":
		return fmt.Sprintf("Could not read from stdin: %v", e.Err)
	case e.Op == "open":
		return fmt.Sprintf("Could not open file `%s' for reading: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("Could not read file `%s': %v", e.Path, e.Err)
	}
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

var errNotText = errors.New("content is not valid UTF-8 text")

// ReadContent reads the whole of path, or of stdin when path is empty. The
// content must be UTF-8 text.
func ReadContent(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		b, err := io.ReadAll(stdin)
		if err == nil && !utf8.Valid(b) {
			err = errNotText
		}
		if err != nil {
			return nil, &ReadError{Err: err}
		}
		return b, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err == nil && !utf8.Valid(b) {
		err = errNotText
	}
	if err != nil {
		return nil, &ReadError{Path: path, Op: "read", Err: err}
	}
	return b, nil
}
