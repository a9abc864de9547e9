package evaluation

import (
	"github.com/camco-mfg/gauge/internal/tolerances"
	"github.com/camco-mfg/gauge/pkg/formatting"
)

// ComputeBounds converts a matched row's deviation fields into absolute
// numeric bounds and display-formatted expressions for the nominal size.
// Deviations are added, not subtracted, so their sign semantics carry
// straight from the table (lower deviation is typically zero or negative).
func ComputeBounds(nominal int, row tolerances.Row) (Bounds, DisplayBounds) {
	numeric := Bounds{
		Upper: formatting.Round(float64(nominal) + row.UpperDeviation),
		Lower: formatting.Round(float64(nominal) + row.LowerDeviation),
	}

	display := DisplayBounds{
		Upper: formatting.Deviation(nominal, row.UpperDeviation),
		Lower: formatting.Deviation(nominal, row.LowerDeviation),
	}

	return numeric, display
}
