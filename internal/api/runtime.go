package api

import (
	"log/slog"

	"github.com/camco-mfg/gauge/internal/config"
	"github.com/camco-mfg/gauge/internal/infrastructure"
	"github.com/camco-mfg/gauge/internal/tolerances"
)

// Runtime bundles the configuration and infrastructure systems that domain
// systems draw their dependencies from.
type Runtime struct {
	Config     *config.Config
	Logger     *slog.Logger
	Tolerances tolerances.Provider
}

// NewRuntime creates a Runtime over the initialized infrastructure.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Config:     cfg,
		Logger:     infra.Logger,
		Tolerances: infra.Tolerances,
	}
}
