package wpapi

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches any *NotFoundError via errors.Is.
	ErrNotFound = errors.New("wpapi: not found")
	// ErrRuntimeLoop matches any *RuntimeLoopError via errors.Is.
	ErrRuntimeLoop = errors.New("wpapi: pagination did not terminate")
)

// NotFoundError reports a slug that has no match upstream.
type NotFoundError struct {
	Resource string // "category", "tag" or "post"
	Slug     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Slug)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UpstreamError reports a non-2xx response from the content API.
type UpstreamError struct {
	Op         string
	URL        string
	StatusCode int
	// Code and Message are copied from the WordPress error body when present,
	// e.g. "rest_post_invalid_page_number".
	Code    string
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: upstream returned status %d (%s)", e.Op, e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%s: upstream returned status %d", e.Op, e.StatusCode)
}

// RuntimeLoopError is returned by a Walker that reached its iteration ceiling.
type RuntimeLoopError struct {
	MaxIterations int
	Collected     int
}

func (e *RuntimeLoopError) Error() string {
	return fmt.Sprintf("catalog walk exceeded %d pages after %d items", e.MaxIterations, e.Collected)
}

func (e *RuntimeLoopError) Is(target error) bool {
	return target == ErrRuntimeLoop
}

// StatusCode returns the upstream HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.StatusCode
	}
	return 0
}
