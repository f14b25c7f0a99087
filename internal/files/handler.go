// Package files exposes stored uploads for dashboard retrieval.
package files

import (
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"

	"github.com/zaffworks/ugcplug/pkg/filestore"
	"github.com/zaffworks/ugcplug/pkg/handlers"
	"github.com/zaffworks/ugcplug/pkg/routes"
)

// Handler streams stored upload files by reference.
type Handler struct {
	store  filestore.System
	logger *slog.Logger
}

// NewHandler creates a Handler over the given file store.
func NewHandler(store filestore.System, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger.With("handler", "files"),
	}
}

// Routes returns the route group definition for file endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/Files",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{key...}", Handler: h.Download},
		},
	}
}

// Download streams the stored file at the given key as an attachment.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	body, err := h.store.Open(r.Context(), key)
	if err != nil {
		handlers.RespondError(w, h.logger, filestore.MapHTTPStatus(err), err)
		return
	}
	defer body.Close()

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", path.Base(key)),
	)
	w.WriteHeader(http.StatusOK)
	io.Copy(w, body)
}
