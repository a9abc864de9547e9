package tolerances_test

import (
	"errors"
	"testing"

	"github.com/camco-mfg/gauge/internal/tolerances"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  tolerances.Category
	}{
		{"exact housing", "housing", tolerances.HousingBore},
		{"exact shell", "shell", tolerances.ShellBore},
		{"exact shaft", "shaft", tolerances.Shaft},
		{"uppercase", "HOUSING", tolerances.HousingBore},
		{"mixed case", "Shell", tolerances.ShellBore},
		{"substring", "pump shaft assembly", tolerances.Shaft},
		{"descriptive", "bearing housing bore", tolerances.HousingBore},
		{"whitespace", "  shell  ", tolerances.ShellBore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tolerances.ParseCategory(tt.input)
			if err != nil {
				t.Fatalf("ParseCategory(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCategoryHousingWinsOverShaft(t *testing.T) {
	// Resolution order is housing, shaft, shell; a string containing
	// multiple keywords resolves to the first match.
	got, err := tolerances.ParseCategory("shaft housing")
	if err != nil {
		t.Fatal(err)
	}
	if got != tolerances.HousingBore {
		t.Errorf("got %v, want %v", got, tolerances.HousingBore)
	}
}

func TestParseCategoryUnknown(t *testing.T) {
	for _, input := range []string{"", "   ", "flange", "bearing"} {
		t.Run(input, func(t *testing.T) {
			_, err := tolerances.ParseCategory(input)
			if !errors.Is(err, tolerances.ErrUnknownCategory) {
				t.Errorf("ParseCategory(%q): got %v, want ErrUnknownCategory", input, err)
			}
		})
	}
}

func TestCamcoDesignation(t *testing.T) {
	tests := []struct {
		category tolerances.Category
		want     string
	}{
		{tolerances.HousingBore, "H8"},
		{tolerances.ShellBore, "H9"},
		{tolerances.Shaft, "h9"},
	}

	for _, tt := range tests {
		if got := tt.category.CamcoDesignation(); got != tt.want {
			t.Errorf("%v.CamcoDesignation(): got %s, want %s", tt.category, got, tt.want)
		}
	}
}

func TestCamcoGrade(t *testing.T) {
	if got := tolerances.Shaft.CamcoGrade(); got != tolerances.IT5 {
		t.Errorf("shaft grade: got %s, want IT5", got)
	}
	if got := tolerances.HousingBore.CamcoGrade(); got != tolerances.IT6 {
		t.Errorf("housing grade: got %s, want IT6", got)
	}
	if got := tolerances.ShellBore.CamcoGrade(); got != tolerances.IT6 {
		t.Errorf("shell grade: got %s, want IT6", got)
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category tolerances.Category
		want     string
	}{
		{tolerances.HousingBore, "housing bore"},
		{tolerances.ShellBore, "shell bore"},
		{tolerances.Shaft, "shaft"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("String(): got %s, want %s", got, tt.want)
		}
	}
}
