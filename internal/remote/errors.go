package remote

import (
	"fmt"
)

// TransportError covers everything that goes wrong before a usable response
// is in hand: the network call itself, reading the body or decoding it.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err == nil:
		return e.Op
	case e.Op == "":
		return e.Err.Error()
	default:
		return e.Op + ": " + e.Err.Error()
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError is returned for any non-2xx status.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! Status: %d", e.Status)
}

// APIError carries the message of a response body with a non-empty "error".
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return e.Message }
