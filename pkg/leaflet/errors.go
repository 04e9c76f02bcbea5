package leaflet

import (
	"errors"
	"fmt"
)

var (
	// ErrQuit is returned by Reader.Run when the user quit the reader.
	// It is normal flow control, not a failure.
	ErrQuit = errors.New("reader closed by user")

	errNotInitialized = errors.New("leaflet.Init has not been called")
)

// InfrastructureError is a failure of the display layer itself: SDL could
// not start, no font was found, rendering failed. Content failures are
// reported by the content package instead.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "run")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("leaflet: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("leaflet: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsQuit checks if an error means the user quit.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}
