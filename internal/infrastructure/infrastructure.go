// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, file storage) that domain
// systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/zaffworks/ugcplug/internal/config"
	"github.com/zaffworks/ugcplug/pkg/database"
	"github.com/zaffworks/ugcplug/pkg/filestore"
	"github.com/zaffworks/ugcplug/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, database access, and file storage.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	FileStore filestore.System
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

	store, err := filestore.New(&cfg.FileStore, logger)
	if err != nil {
		return nil, fmt.Errorf("filestore init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		FileStore: store,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.FileStore.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("filestore start failed: %w", err)
	}
	return nil
}
