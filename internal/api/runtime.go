package api

import (
	"github.com/zaffworks/ugcplug/internal/config"
	"github.com/zaffworks/ugcplug/internal/infrastructure"
	"github.com/zaffworks/ugcplug/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			FileStore: infra.FileStore,
		},
		Pagination: cfg.API.Pagination,
	}
}
