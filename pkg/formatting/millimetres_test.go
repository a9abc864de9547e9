package formatting_test

import (
	"testing"

	"github.com/camco-mfg/gauge/pkg/formatting"
)

func TestMillimetres(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"whole number", 25, "25.000"},
		{"three places", 24.982, "24.982"},
		{"rounds past three places", 24.9825, "24.983"},
		{"zero", 0, "0.000"},
		{"negative deviation", -0.03, "-0.030"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.Millimetres(tt.input); got != tt.want {
				t.Errorf("Millimetres(%v) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"already three places", 24.982, 24.982},
		{"rounds half up", 0.0005, 0.001},
		{"rounds down", 0.0004, 0},
		{"float noise collapses", 25 - 0.03, 24.97},
		{"negative", -0.031, -0.031},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.Round(tt.input); got != tt.want {
				t.Errorf("Round(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDeviation(t *testing.T) {
	tests := []struct {
		name      string
		nominal   int
		deviation float64
		want      string
	}{
		{"negative deviation", 25, -0.030, "25.000 - 0.030"},
		{"positive deviation", 240, 0.072, "240.000 + 0.072"},
		{"zero deviation", 25, 0, "25.000 + 0.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.Deviation(tt.nominal, tt.deviation); got != tt.want {
				t.Errorf("Deviation(%d, %v) = %q, want %q", tt.nominal, tt.deviation, got, tt.want)
			}
		})
	}
}

func TestParseMeasurement(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"plain value", "24.982", 24.982, false},
		{"integer", "25", 25, false},
		{"whitespace", "  240.05  ", 240.05, false},
		{"empty", "", 0, true},
		{"whitespace only", "   ", 0, true},
		{"non-numeric", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.ParseMeasurement(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMeasurement(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMeasurement(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
