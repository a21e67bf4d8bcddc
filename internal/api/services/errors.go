package services

import (
	"errors"
	"fmt"
	"net"
	"net/http"
)

// StatusError is a non-success response from an upstream API.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s responded %d %s", e.Service, e.StatusCode, http.StatusText(e.StatusCode))
}

// IsTransient reports whether an upstream call may succeed when retried.
func IsTransient(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError ||
			statusErr.StatusCode == http.StatusTooManyRequests
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
