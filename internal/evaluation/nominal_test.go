package evaluation_test

import (
	"errors"
	"math"
	"testing"

	"github.com/camco-mfg/gauge/internal/evaluation"
	"github.com/camco-mfg/gauge/internal/tolerances"
)

func TestValidateMeasurement(t *testing.T) {
	valid := []float64{0, 0.001, 24.982, 999.999}
	for _, m := range valid {
		if err := evaluation.ValidateMeasurement(m); err != nil {
			t.Errorf("ValidateMeasurement(%v): unexpected error %v", m, err)
		}
	}

	invalid := []float64{-0.001, -1, 1000, 1500, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, m := range invalid {
		err := evaluation.ValidateMeasurement(m)
		if !errors.Is(err, evaluation.ErrInvalidMeasurement) {
			t.Errorf("ValidateMeasurement(%v): got %v, want ErrInvalidMeasurement", m, err)
		}
	}
}

func TestResolveNominalShaft(t *testing.T) {
	tests := []struct {
		name        string
		measurement float64
		want        int
	}{
		{"just under nominal rounds up", 24.982, 25},
		{"exact nominal stays", 25.0, 25},
		{"well under nominal still rounds up", 24.15, 25},
		{"at the overshoot threshold rounds down", 24.1, 24},
		{"far under nominal rounds down", 24.05, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluation.ResolveNominal(tt.measurement, tolerances.Shaft, 0)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ResolveNominal(%v, shaft): got %d, want %d", tt.measurement, got, tt.want)
			}
		})
	}
}

func TestResolveNominalBore(t *testing.T) {
	tests := []struct {
		name        string
		measurement float64
		want        int
	}{
		{"just over nominal rounds down", 240.05, 240},
		{"exact nominal stays", 240.0, 240},
		{"well over nominal still rounds down", 240.85, 240},
		{"at the undershoot threshold rounds up", 240.9, 241},
		{"far over nominal rounds up", 240.95, 241},
	}

	for _, category := range []tolerances.Category{tolerances.HousingBore, tolerances.ShellBore} {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := evaluation.ResolveNominal(tt.measurement, category, 0)
				if err != nil {
					t.Fatal(err)
				}
				if got != tt.want {
					t.Errorf("ResolveNominal(%v, %v): got %d, want %d", tt.measurement, category, got, tt.want)
				}
			})
		}
	}
}

func TestResolveNominalCustomThreshold(t *testing.T) {
	// With a 0.5 threshold the shaft rounding flips at the halfway point.
	got, err := evaluation.ResolveNominal(24.4, tolerances.Shaft, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got != 24 {
		t.Errorf("got %d, want 24", got)
	}

	got, err = evaluation.ResolveNominal(24.6, tolerances.Shaft, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got != 25 {
		t.Errorf("got %d, want 25", got)
	}
}

func TestResolveNominalInvalidMeasurement(t *testing.T) {
	_, err := evaluation.ResolveNominal(1000, tolerances.Shaft, 0)
	if !errors.Is(err, evaluation.ErrInvalidMeasurement) {
		t.Errorf("got %v, want ErrInvalidMeasurement", err)
	}
}
