// Package tolerances implements the tolerance reference data domain for Gauge.
// It provides the part categories, the immutable tolerance table, designation
// lookup, and diameter-bracket matching used by the evaluation pipeline.
package tolerances

import (
	"fmt"
	"strings"
)

// Category identifies the part categories the reference table is partitioned by.
type Category int

const (
	HousingBore Category = iota
	ShellBore
	Shaft
)

// Grade identifies an IT-grade column in a tolerance row.
type Grade string

const (
	IT5 Grade = "IT5"
	IT6 Grade = "IT6"
)

// Categories returns all part categories in resolution order.
func Categories() []Category {
	return []Category{HousingBore, ShellBore, Shaft}
}

// Keywords returns the valid category keywords in resolution order.
func Keywords() []string {
	return []string{"housing", "shaft", "shell"}
}

// Keyword returns the reference-table partition key for the category.
func (c Category) Keyword() string {
	switch c {
	case HousingBore:
		return "housing"
	case ShellBore:
		return "shell"
	case Shaft:
		return "shaft"
	default:
		return "unknown"
	}
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HousingBore:
		return "housing bore"
	case ShellBore:
		return "shell bore"
	case Shaft:
		return "shaft"
	default:
		return "unknown"
	}
}

// CamcoDesignation returns the fixed designation the Camco standard applies
// to the category: H8 for housing bores, H9 for shell bores, h9 for shafts.
func (c Category) CamcoDesignation() string {
	switch c {
	case HousingBore:
		return "H8"
	case ShellBore:
		return "H9"
	case Shaft:
		return "h9"
	default:
		return ""
	}
}

// CamcoGrade returns the fixed IT grade used for inter-part spread checks:
// IT6 for bores, IT5 for shafts.
func (c Category) CamcoGrade() Grade {
	switch c {
	case Shaft:
		return IT5
	default:
		return IT6
	}
}

// Bore reports whether the category is a bore (housing or shell).
func (c Category) Bore() bool {
	return c == HousingBore || c == ShellBore
}

// ParseCategory resolves a free-form material type string to a Category.
// Matching is a case-insensitive substring check against the category
// keywords, first match wins in the order housing, shaft, shell. This is
// the single normalization boundary; everything downstream works on the
// Category value.
func ParseCategory(input string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return 0, fmt.Errorf("%w: empty material type (valid: %s)",
			ErrUnknownCategory, strings.Join(Keywords(), ", "))
	}

	switch {
	case strings.Contains(normalized, "housing"):
		return HousingBore, nil
	case strings.Contains(normalized, "shaft"):
		return Shaft, nil
	case strings.Contains(normalized, "shell"):
		return ShellBore, nil
	}

	return 0, fmt.Errorf("%w: %q (valid: %s)",
		ErrUnknownCategory, input, strings.Join(Keywords(), ", "))
}
