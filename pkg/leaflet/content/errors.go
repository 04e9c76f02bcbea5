package content

import (
	"errors"
	"fmt"
)

// ErrEmptySlug is returned when a post body is requested without a slug.
var ErrEmptySlug = errors.New("empty slug")

// FetchError reports a resource that could not be retrieved: the request
// failed in transport, the body could not be read, or the server answered
// with a non-success status.
type FetchError struct {
	URL        string // Resolved URL of the resource
	StatusCode int    // HTTP status when the server answered, 0 otherwise
	Err        error  // Underlying transport error, nil for status failures
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content: fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("content: fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports a response body that is not a valid manifest.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("content: parse %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsFetchError checks if an error is a fetch error.
func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsParseError checks if an error is a parse error.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
