package tolerances

// Row is one diameter-range entry in the reference table. Diameters and
// deviations are millimetres; IT5 and IT6 are the maximum allowed dimensional
// spread for parts manufactured to that grade within this bracket.
type Row struct {
	MinimumDiameter float64 `json:"minimum_diameter" yaml:"minimum_diameter"`
	MaximumDiameter float64 `json:"maximum_diameter" yaml:"maximum_diameter"`
	UpperDeviation  float64 `json:"upper_deviation" yaml:"upper_deviation"`
	LowerDeviation  float64 `json:"lower_deviation" yaml:"lower_deviation"`
	IT5             float64 `json:"it5" yaml:"it5"`
	IT6             float64 `json:"it6" yaml:"it6"`
}

// Magnitude returns the IT-grade spread magnitude for the given grade.
func (r Row) Magnitude(g Grade) float64 {
	switch g {
	case IT5:
		return r.IT5
	case IT6:
		return r.IT6
	default:
		return 0
	}
}

// Contains reports whether the nominal size falls inside this row's bracket
// under the category's inclusivity rule. Shafts sit at the top of their
// bracket (min < n <= max); bores sit at the bottom (min <= n < max).
func (r Row) Contains(nominal int, c Category) bool {
	n := float64(nominal)
	if c == Shaft {
		return r.MinimumDiameter < n && n <= r.MaximumDiameter
	}
	return r.MinimumDiameter <= n && n < r.MaximumDiameter
}

// Match returns the first row in table order whose bracket contains the
// nominal. The second return value is false when no bracket contains it;
// callers must surface that as a missing-specification condition, never
// a silent default.
func Match(nominal int, rows []Row, c Category) (Row, bool) {
	for _, row := range rows {
		if row.Contains(nominal, c) {
			return row, true
		}
	}
	return Row{}, false
}
