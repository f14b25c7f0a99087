package submissions

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/zaffworks/ugcplug/pkg/filestore"
	"github.com/zaffworks/ugcplug/pkg/handlers"
	"github.com/zaffworks/ugcplug/pkg/pagination"
	"github.com/zaffworks/ugcplug/pkg/routes"
)

// Handler provides HTTP endpoints for submission operations.
type Handler struct {
	sys           System
	store         filestore.System
	logger        *slog.Logger
	pagination    pagination.Config
	maxUploadSize int64
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

// NewHandler creates a Handler with the given system, file store, logger,
// pagination config, and upload size limit.
func NewHandler(
	sys System,
	store filestore.System,
	logger *slog.Logger,
	pagination pagination.Config,
	maxUploadSize int64,
) *Handler {
	return &Handler{
		sys:           sys,
		store:         store,
		logger:        logger.With("handler", "submissions"),
		pagination:    pagination,
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for submission endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/Submissions",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "POST", Pattern: "/search", Handler: h.Search},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
		},
	}
}

// List returns all submissions for the businessId query parameter, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("businessId")
	if businessID == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrMissingBusinessID)
		return
	}

	subs, err := h.sys.List(r.Context(), businessID)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, subs)
}

// Find returns a single submission by its integer path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	sub, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, sub)
}

// Search accepts a JSON body with pagination and filter criteria and returns
// matching submissions for the dashboard.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidPayload)
		return
	}

	req.PageRequest.Normalize(h.pagination)

	result, err := h.sys.Search(r.Context(), req.PageRequest, req.Filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create processes a public intake upload: a multipart form with the
// submission fields and exactly one file part. The file is persisted before
// the fields are validated; a rejected submission therefore leaves its stored
// file behind, which is the documented intake behavior.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, parseStatus(err), err)
		return
	}

	header := firstFile(r.MultipartForm)
	if header == nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNoFile)
		return
	}

	file, err := header.Open()
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNoFile)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ref, err := h.store.Save(r.Context(), header.Filename, contentType, file)
	if err != nil {
		handlers.RespondError(w, h.logger, createStatus(err), err)
		return
	}

	form := IntakeFormFromValues(url.Values(r.MultipartForm.Value))
	cmd, err := ValidateIntake(form, ref)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if _, err := h.sys.Create(r.Context(), cmd); err != nil {
		handlers.RespondError(w, h.logger, createStatus(err), err)
		return
	}

	handlers.RespondMessage(w, http.StatusOK, "Submission received.")
}

// Update replaces an existing submission with the full record in the JSON body.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidPayload)
		return
	}

	if err := h.sys.Update(r.Context(), id, sub); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a submission record by id. The stored file is retained.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// firstFile returns the first file part of the form regardless of field name,
// or nil when no file was attached.
func firstFile(form *multipart.Form) *multipart.FileHeader {
	if form == nil {
		return nil
	}
	for _, headers := range form.File {
		if len(headers) > 0 {
			return headers[0]
		}
	}
	return nil
}

// parseStatus separates oversized uploads from malformed multipart bodies:
// only size-limit failures report 413, everything else is a bad payload.
func parseStatus(err error) int {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) || errors.Is(err, multipart.ErrMessageTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// createStatus maps creation-path failures to status codes. Storage and
// persistence failures surface as 400 carrying the failure detail, matching
// the intake form contract.
func createStatus(err error) int {
	if status := MapHTTPStatus(err); status != http.StatusInternalServerError {
		return status
	}
	return http.StatusBadRequest
}
