// Package infrastructure provides core service initialization for application startup.
// It assembles the common dependencies (logging, database, reference data) that
// domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/camco-mfg/gauge/internal/config"
	"github.com/camco-mfg/gauge/internal/tolerances"
	"github.com/camco-mfg/gauge/pkg/database"
	"github.com/camco-mfg/gauge/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, database access, and the tolerance reference table.
type Infrastructure struct {
	Lifecycle  *lifecycle.Coordinator
	Logger     *slog.Logger
	Database   database.System
	Tolerances *tolerances.Store
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store := tolerances.NewStore(db.Connection(), logger)

	return &Infrastructure{
		Lifecycle:  lc,
		Logger:     logger,
		Database:   db,
		Tolerances: store,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
// The tolerance table loads once the database connection is available.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Tolerances.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("tolerance store start failed: %w", err)
	}
	return nil
}
