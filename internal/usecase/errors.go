package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrNotFound                = errors.New("resource not found")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrDependencyUnavailable   = errors.New("dependency unavailable")
	ErrGameweekUndetermined    = errors.New("could not determine current gameweek")
	ErrPaginationLimitExceeded = errors.New("standings pagination limit exceeded")
	ErrStorage                 = errors.New("snapshot storage failure")
)

// UpstreamError is a non-2xx answer from the FPL API.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("fpl api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("fpl api returned status %d: %s", e.StatusCode, e.Message)
}

// HTTPStatus returns the upstream status when it is a usable error status,
// otherwise 502.
func (e *UpstreamError) HTTPStatus() int {
	if e.StatusCode >= 400 && e.StatusCode <= 599 {
		return e.StatusCode
	}
	return http.StatusBadGateway
}

// NetworkError is a connect, timeout or transport failure talking to the FPL API.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream, true
	}
	return nil, false
}
