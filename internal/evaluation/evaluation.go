// Package evaluation implements the measurement evaluation pipeline for Gauge.
// It derives nominal sizes from raw measurements, matches them against the
// Camco standard tolerance row-sets, computes deviation bounds, and judges
// single measurements and batches for spec and IT-grade compliance.
package evaluation

import (
	"github.com/camco-mfg/gauge/internal/tolerances"
)

// Outcome classifies a measurement against its deviation bounds.
type Outcome string

const (
	OutcomeAcceptable Outcome = "acceptable"
	OutcomeOverSized  Outcome = "over-sized"
	OutcomeUnderSized Outcome = "under-sized"
)

// Bounds holds the absolute numeric deviation bounds for a nominal size,
// rounded to three decimal places. Used for all compliance comparisons.
type Bounds struct {
	Upper float64 `json:"upper"`
	Lower float64 `json:"lower"`
}

// DisplayBounds holds the human-readable bound expressions, e.g.
// "25.000 - 0.030". Report-only; never parsed back for comparisons.
type DisplayBounds struct {
	Upper string `json:"upper"`
	Lower string `json:"lower"`
}

// EvaluateCommand carries a single measurement to evaluate. Threshold
// overrides the nominal-resolution overshoot threshold when positive;
// zero selects the configured default.
type EvaluateCommand struct {
	Measurement float64 `json:"measurement"`
	Threshold   float64 `json:"threshold,omitempty"`
}

// EvaluateBatchCommand carries a batch of measurements for one category.
type EvaluateBatchCommand struct {
	Measurements []float64 `json:"measurements"`
}

// Evaluation is the result of judging one measurement against the Camco
// standard designation for its category. Computed fresh per call.
type Evaluation struct {
	Type        string         `json:"type"`
	Measurement float64        `json:"measurement"`
	Nominal     int            `json:"nominal"`
	Designation string         `json:"designation"`
	Row         tolerances.Row `json:"row"`
	Bounds      Bounds         `json:"bounds"`
	Display     DisplayBounds  `json:"display_bounds"`
	MeetsSpec   bool           `json:"meets_spec"`
	Outcome     Outcome        `json:"outcome"`
	Reason      string         `json:"reason"`
}

// BatchItem is one measurement's slot in a batch result. When no bracket
// contains the item's nominal, Evaluation is nil and Error carries the
// per-item failure instead of aborting the batch.
type BatchItem struct {
	Measurement float64     `json:"measurement"`
	Evaluation  *Evaluation `json:"evaluation,omitempty"`
	Error       string      `json:"error,omitempty"`
}

// BatchEvaluation is the combined compliance verdict for a measurement batch.
type BatchEvaluation struct {
	Type                 string           `json:"type"`
	Measurements         []float64        `json:"measurements"`
	Items                []BatchItem      `json:"items"`
	Designation          string           `json:"designation"`
	Grade                tolerances.Grade `json:"grade"`
	ReferenceNominal     int              `json:"reference_nominal"`
	FarthestMeasurement  float64          `json:"farthest_measurement"`
	Spread               float64          `json:"spread"`
	ITMagnitude          float64          `json:"it_magnitude"`
	MeetsSpec            bool             `json:"meets_spec"`
	MeetsITTolerance     bool             `json:"meets_it_tolerance"`
	MeetsFinalCompliance bool             `json:"meets_final_compliance"`
	Narrative            string           `json:"narrative"`
}
