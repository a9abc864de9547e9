package evaluation

import "github.com/camco-mfg/gauge/internal/tolerances"

// System defines the public contract for measurement evaluation operations.
type System interface {
	Handler() *Handler

	Evaluate(c tolerances.Category, cmd EvaluateCommand) (*Evaluation, error)
	EvaluateBatch(c tolerances.Category, cmd EvaluateBatchCommand) (*BatchEvaluation, error)
}
