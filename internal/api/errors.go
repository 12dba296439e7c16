package api

import "fmt"

// TransportError means the request never completed: the backend is down,
// DNS failed, the connection dropped. The underlying error is preserved
// for the debug log.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError means a response arrived with a status outside the 2xx range.
// Every non-success status is treated the same way; there is no per-status
// branching in the client.
type StatusError struct {
	Op     string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
}
