package evaluation

import (
	"fmt"
	"math"

	"github.com/camco-mfg/gauge/internal/tolerances"
	"github.com/camco-mfg/gauge/pkg/formatting"
)

// DefaultThreshold is the overshoot/undershoot threshold (mm) used for
// nominal resolution when no per-call override is supplied.
const DefaultThreshold = 0.9

// ValidateMeasurement rejects non-finite measurements and values outside
// the valid range [0, 1000).
func ValidateMeasurement(m float64) error {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return fmt.Errorf("%w: value is not finite", ErrInvalidMeasurement)
	}
	if m < 0 || m >= 1000 {
		return fmt.Errorf("%w: %v is outside the valid range [0, 1000)", ErrInvalidMeasurement, m)
	}
	return nil
}

// ResolveNominal derives the integer nominal size a measurement was
// manufactured toward. Shafts sit at or below nominal (upper deviation is
// zero), so the nominal is normally the ceiling of the measurement; bores
// sit at or above nominal, so it is normally the floor. When the
// measurement misses that rounding target by at least the threshold, the
// part was manufactured to the adjacent bracket and the opposite rounding
// applies. A non-positive threshold selects DefaultThreshold.
func ResolveNominal(m float64, c tolerances.Category, threshold float64) (int, error) {
	if err := ValidateMeasurement(m); err != nil {
		return 0, err
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	switch c {
	case tolerances.Shaft:
		ceiling := math.Ceil(m)
		// Round the overshoot to measurement resolution so binary float
		// noise cannot flip a threshold-edge comparison.
		if formatting.Round(ceiling-m) >= threshold {
			return int(math.Floor(m)), nil
		}
		return int(ceiling), nil
	case tolerances.HousingBore, tolerances.ShellBore:
		floor := math.Floor(m)
		if formatting.Round(m-floor) >= threshold {
			return int(math.Ceil(m)), nil
		}
		return int(floor), nil
	default:
		// Unreachable once the category is parsed at the boundary.
		return int(math.Round(m)), nil
	}
}
