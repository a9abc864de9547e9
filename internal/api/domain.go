package api

import (
	"github.com/camco-mfg/gauge/internal/evaluation"
	"github.com/camco-mfg/gauge/internal/tolerances"
)

// Domain holds all domain systems exposed through the API module.
type Domain struct {
	Tolerances  tolerances.System
	Evaluations evaluation.System
}

// NewDomain constructs all domain systems from the runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Tolerances: tolerances.New(runtime.Tolerances, runtime.Logger),
		Evaluations: evaluation.New(
			runtime.Tolerances,
			runtime.Config.Evaluation.NominalThreshold,
			runtime.Logger,
		),
	}
}
