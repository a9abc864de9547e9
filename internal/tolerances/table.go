package tolerances

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Table is the immutable in-memory tolerance reference table, partitioned by
// category, then by designation, each holding rows ordered by minimum
// diameter. It is loaded once and never mutated; concurrent readers need no
// coordination.
type Table struct {
	partitions map[Category]map[string][]Row
}

// NewTable builds a Table from designation row-sets per category. Rows within
// each designation are sorted by minimum diameter so bracket matching scans
// in table order.
func NewTable(partitions map[Category]map[string][]Row) *Table {
	normalized := make(map[Category]map[string][]Row, len(partitions))
	for category, designations := range partitions {
		normalized[category] = make(map[string][]Row, len(designations))
		for designation, rows := range designations {
			sorted := slices.Clone(rows)
			slices.SortFunc(sorted, func(a, b Row) int {
				switch {
				case a.MinimumDiameter < b.MinimumDiameter:
					return -1
				case a.MinimumDiameter > b.MinimumDiameter:
					return 1
				default:
					return 0
				}
			})
			normalized[category][designation] = sorted
		}
	}
	return &Table{partitions: normalized}
}

// All returns every designation row-set for the category.
func (t *Table) All(c Category) map[string][]Row {
	return maps.Clone(t.partitions[c])
}

// Designations returns the category's designation labels in sorted order.
func (t *Table) Designations(c Category) []string {
	return slices.Sorted(maps.Keys(t.partitions[c]))
}

// Designation returns the row-set for a specific designation within the
// category, or ErrUnknownDesignation listing the available designations.
func (t *Table) Designation(c Category, designation string) ([]Row, error) {
	rows, ok := t.partitions[c][designation]
	if !ok {
		return nil, fmt.Errorf("%w: %q for %s (available: %s)",
			ErrUnknownDesignation, designation, c,
			strings.Join(t.Designations(c), ", "))
	}
	return rows, nil
}

// CamcoStandard returns the category's fixed Camco standard designation and
// its row-set.
func (t *Table) CamcoStandard(c Category) (string, []Row, error) {
	designation := c.CamcoDesignation()
	rows, err := t.Designation(c, designation)
	if err != nil {
		return "", nil, err
	}
	return designation, rows, nil
}

// Provider supplies the tolerance table to consumers. The database-backed
// Store and the embedded snapshot both satisfy it, so evaluators can be
// constructed against either source.
type Provider interface {
	Table() (*Table, error)
}

type static struct {
	table *Table
}

// NewStatic wraps an already-constructed table as a Provider.
func NewStatic(t *Table) Provider {
	return &static{table: t}
}

func (s *static) Table() (*Table, error) {
	if s.table == nil {
		return nil, ErrNotLoaded
	}
	return s.table, nil
}
