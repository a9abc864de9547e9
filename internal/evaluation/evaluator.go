package evaluation

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/camco-mfg/gauge/internal/tolerances"
	"github.com/camco-mfg/gauge/pkg/formatting"
)

type evaluator struct {
	provider  tolerances.Provider
	threshold float64
	logger    *slog.Logger
}

// New creates an evaluation system over the given table provider. The
// threshold is the default nominal-resolution threshold; non-positive
// values fall back to DefaultThreshold.
func New(provider tolerances.Provider, threshold float64, logger *slog.Logger) System {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &evaluator{
		provider:  provider,
		threshold: threshold,
		logger:    logger.With("system", "evaluation"),
	}
}

func (e *evaluator) Handler() *Handler {
	return NewHandler(e, e.logger)
}

func (e *evaluator) Evaluate(c tolerances.Category, cmd EvaluateCommand) (*Evaluation, error) {
	if err := ValidateMeasurement(cmd.Measurement); err != nil {
		return nil, err
	}

	table, err := e.provider.Table()
	if err != nil {
		return nil, err
	}

	designation, rows, err := table.CamcoStandard(c)
	if err != nil {
		return nil, err
	}

	threshold := cmd.Threshold
	if threshold <= 0 {
		threshold = e.threshold
	}

	nominal, err := ResolveNominal(cmd.Measurement, c, threshold)
	if err != nil {
		return nil, err
	}

	row, ok := tolerances.Match(nominal, rows, c)
	if !ok {
		return nil, fmt.Errorf("%w: no %s bracket contains nominal %d",
			ErrNoMatchingSpecification, designation, nominal)
	}

	return evaluateRow(c, designation, cmd.Measurement, nominal, row), nil
}

func (e *evaluator) EvaluateBatch(c tolerances.Category, cmd EvaluateBatchCommand) (*BatchEvaluation, error) {
	if err := validateBatch(cmd.Measurements); err != nil {
		return nil, err
	}

	table, err := e.provider.Table()
	if err != nil {
		return nil, err
	}

	designation, rows, err := table.CamcoStandard(c)
	if err != nil {
		return nil, err
	}

	items := make([]BatchItem, len(cmd.Measurements))
	counts := make(map[int]int, len(cmd.Measurements))
	nominals := make([]int, len(cmd.Measurements))

	for i, m := range cmd.Measurements {
		// Validation already passed, so resolution cannot fail.
		nominal, _ := ResolveNominal(m, c, e.threshold)
		nominals[i] = nominal
		counts[nominal]++

		row, ok := tolerances.Match(nominal, rows, c)
		if !ok {
			items[i] = BatchItem{
				Measurement: m,
				Error:       fmt.Sprintf("no specification found for nominal %d", nominal),
			}
			continue
		}

		items[i] = BatchItem{
			Measurement: m,
			Evaluation:  evaluateRow(c, designation, m, nominal, row),
		}
	}

	reference := referenceNominal(counts)

	refRow, ok := tolerances.Match(reference, rows, c)
	if !ok {
		return nil, fmt.Errorf("%w: no %s bracket contains reference nominal %d",
			ErrNoMatchingSpecification, designation, reference)
	}

	farthest := farthestMeasurement(cmd.Measurements, reference)
	spread := formatting.Round(
		slices.Max(cmd.Measurements) - slices.Min(cmd.Measurements),
	)

	grade := c.CamcoGrade()
	magnitude := refRow.Magnitude(grade)
	meetsIT := spread <= magnitude

	meetsSpec := true
	for _, item := range items {
		if item.Evaluation == nil || !item.Evaluation.MeetsSpec {
			meetsSpec = false
			break
		}
	}

	final := meetsSpec && meetsIT

	refBounds, _ := ComputeBounds(reference, refRow)
	narrative := composeNarrative(farthest, refBounds, spread, grade, magnitude, meetsIT, final)

	return &BatchEvaluation{
		Type:                 c.String(),
		Measurements:         cmd.Measurements,
		Items:                items,
		Designation:          designation,
		Grade:                grade,
		ReferenceNominal:     reference,
		FarthestMeasurement:  farthest,
		Spread:               spread,
		ITMagnitude:          magnitude,
		MeetsSpec:            meetsSpec,
		MeetsITTolerance:     meetsIT,
		MeetsFinalCompliance: final,
		Narrative:            narrative,
	}, nil
}

// evaluateRow judges a measurement against a matched row. Bound comparison
// is inclusive on both ends.
func evaluateRow(c tolerances.Category, designation string, m float64, nominal int, row tolerances.Row) *Evaluation {
	bounds, display := ComputeBounds(nominal, row)
	outcome := classify(m, bounds)

	reason := fmt.Sprintf(
		"measurement %s is %s against bounds %s to %s",
		formatting.Millimetres(m),
		outcome,
		formatting.Millimetres(bounds.Lower),
		formatting.Millimetres(bounds.Upper),
	)

	return &Evaluation{
		Type:        c.String(),
		Measurement: m,
		Nominal:     nominal,
		Designation: designation,
		Row:         row,
		Bounds:      bounds,
		Display:     display,
		MeetsSpec:   outcome == OutcomeAcceptable,
		Outcome:     outcome,
		Reason:      reason,
	}
}

func classify(m float64, bounds Bounds) Outcome {
	switch {
	case m > bounds.Upper:
		return OutcomeOverSized
	case m < bounds.Lower:
		return OutcomeUnderSized
	default:
		return OutcomeAcceptable
	}
}

func validateBatch(measurements []float64) error {
	if len(measurements) == 0 {
		return fmt.Errorf("%w: no measurements supplied", ErrInvalidBatch)
	}

	var invalid []int
	for i, m := range measurements {
		if err := ValidateMeasurement(m); err != nil {
			invalid = append(invalid, i)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%w: invalid measurements at indices %v", ErrInvalidBatch, invalid)
	}
	return nil
}

// referenceNominal returns the nominal occurring most often; ties break to
// the smallest nominal so the result is deterministic regardless of map
// iteration order.
func referenceNominal(counts map[int]int) int {
	reference := 0
	best := -1
	for nominal, count := range counts {
		if count > best || (count == best && nominal < reference) {
			reference = nominal
			best = count
		}
	}
	return reference
}

// farthestMeasurement returns the measurement with the greatest absolute
// distance from the reference nominal, first-encountered on ties.
func farthestMeasurement(measurements []float64, reference int) float64 {
	farthest := measurements[0]
	for _, m := range measurements[1:] {
		if math.Abs(m-float64(reference)) > math.Abs(farthest-float64(reference)) {
			farthest = m
		}
	}
	return farthest
}

func composeNarrative(
	farthest float64,
	refBounds Bounds,
	spread float64,
	grade tolerances.Grade,
	magnitude float64,
	meetsIT bool,
	final bool,
) string {
	spreadVerdict := "is within"
	if !meetsIT {
		spreadVerdict = "exceeds"
	}

	verdict := "compliant"
	if !final {
		verdict = "non-compliant"
	}

	return fmt.Sprintf(
		"farthest measurement %s is %s against reference bounds %s to %s; spread %s %s %s magnitude %s; batch is %s",
		formatting.Millimetres(farthest),
		classify(farthest, refBounds),
		formatting.Millimetres(refBounds.Lower),
		formatting.Millimetres(refBounds.Upper),
		formatting.Millimetres(spread),
		spreadVerdict,
		grade,
		formatting.Millimetres(magnitude),
		verdict,
	)
}
