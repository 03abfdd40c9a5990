package service

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput = errors.New("missing input")
	ErrNotFound     = errors.New("location not found")
)

// UpstreamError reports a payload that lacks fields the report depends on.
type UpstreamError struct {
	Endpoint string
	Reason   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("unexpected %s payload: %s", e.Endpoint, e.Reason)
}

func newUpstreamError(endpoint, reason string) error {
	return &UpstreamError{Endpoint: endpoint, Reason: reason}
}
