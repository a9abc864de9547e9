package tolerances

import (
	"errors"
	"net/http"
)

// Domain errors for tolerance reference data operations.
var (
	ErrUnknownCategory    = errors.New("unknown material type")
	ErrUnknownDesignation = errors.New("unknown designation")
	ErrNotLoaded          = errors.New("tolerance table not loaded")
)

// MapHTTPStatus maps tolerance domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnknownCategory) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnknownDesignation) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrNotLoaded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
