package wsclient

import (
	"errors"
	"fmt"
)

// ErrClosed is returned when an operation is attempted on a closed
// connection.
var ErrClosed = errors.New("wsclient: connection closed")

// ConnectionError represents a connection-level error.
type ConnectionError struct {
	Op  string
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("wsclient: %s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("wsclient: %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
