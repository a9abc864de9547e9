package evaluation

import (
	"errors"
	"net/http"

	"github.com/camco-mfg/gauge/internal/tolerances"
)

// Domain errors for evaluation operations.
var (
	ErrInvalidMeasurement      = errors.New("invalid measurement")
	ErrInvalidBatch            = errors.New("invalid measurement batch")
	ErrNoMatchingSpecification = errors.New("no matching specification")
)

// MapHTTPStatus maps evaluation domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidMeasurement) || errors.Is(err, ErrInvalidBatch) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNoMatchingSpecification) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, tolerances.ErrUnknownCategory) ||
		errors.Is(err, tolerances.ErrUnknownDesignation) ||
		errors.Is(err, tolerances.ErrNotLoaded) {
		return tolerances.MapHTTPStatus(err)
	}
	return http.StatusInternalServerError
}
