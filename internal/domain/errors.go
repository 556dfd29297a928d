package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTerm is returned when a search term is empty, whitespace
	// only, or cannot be encoded for a URL. It is raised before any network call.
	ErrInvalidTerm = errors.New("invalid search term")

	// ErrInvalidMedia is returned for a media kind outside the supported set.
	ErrInvalidMedia = errors.New("invalid media kind")

	// ErrTransport covers network errors, timeouts, an open circuit breaker
	// and any non-200 response from the catalog service.
	ErrTransport = errors.New("catalog transport failure")

	// ErrDecode is returned when the response payload is not the expected JSON shape.
	ErrDecode = errors.New("catalog decode failure")
)

// MediaError reports an unsupported media value.
type MediaError struct {
	Value string
}

func (e *MediaError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidMedia, e.Value)
}

func (e *MediaError) Unwrap() error {
	return ErrInvalidMedia
}

// StatusError is returned when the catalog service answers with a status other than 200.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog returned status %d", e.StatusCode)
}

// Unwrap lets errors.Is(err, ErrTransport) match status failures.
func (e *StatusError) Unwrap() error {
	return ErrTransport
}
