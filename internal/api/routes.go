package api

import (
	"net/http"

	"github.com/zaffworks/ugcplug/internal/config"
	"github.com/zaffworks/ugcplug/internal/files"
	"github.com/zaffworks/ugcplug/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	filesHandler := files.NewHandler(runtime.FileStore, runtime.Logger)

	routes.Register(
		mux,
		domain.Submissions.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		filesHandler.Routes(),
	)
}
