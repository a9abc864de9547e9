package tolerances

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/camco-mfg/gauge/pkg/lifecycle"
)

// Store loads the tolerance reference table from the database once at startup
// and serves it as an immutable snapshot for the process lifetime.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
	table  atomic.Pointer[Table]
}

// NewStore creates a Store over the given connection pool. The table is not
// loaded until Start's startup hook runs.
func NewStore(db *sql.DB, logger *slog.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger.With("system", "tolerances"),
	}
}

// Table returns the loaded reference table, or ErrNotLoaded before startup
// completes.
func (s *Store) Table() (*Table, error) {
	if t := s.table.Load(); t != nil {
		return t, nil
	}
	return nil, ErrNotLoaded
}

// Ready reports whether the reference table has been loaded.
func (s *Store) Ready() bool {
	return s.table.Load() != nil
}

// Start registers a startup hook that loads the table.
func (s *Store) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting tolerance table load")

	lc.OnStartup(func() {
		table, err := Load(lc.Context(), s.db)
		if err != nil {
			s.logger.Error("tolerance table load failed", "error", err)
			return
		}

		s.table.Store(table)
		s.logger.Info("tolerance table loaded")
	})

	return nil
}

// Load reads all category partitions from the database and assembles the
// reference table. Partitions load concurrently; the table is immutable once
// assembled.
func Load(ctx context.Context, db *sql.DB) (*Table, error) {
	var mu sync.Mutex
	partitions := make(map[Category]map[string][]Row, len(Categories()))

	g, ctx := errgroup.WithContext(ctx)
	for _, category := range Categories() {
		g.Go(func() error {
			designations, err := loadPartition(ctx, db, category)
			if err != nil {
				return fmt.Errorf("load %s partition: %w", category, err)
			}

			mu.Lock()
			partitions[category] = designations
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewTable(partitions), nil
}
