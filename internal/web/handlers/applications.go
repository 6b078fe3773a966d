package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/webutsav/admin-console/internal/format"
)

// ApplicationsHandler handles job application requests
type ApplicationsHandler struct {
	apps ApplicationsController
}

// NewApplicationsHandler creates a new ApplicationsHandler.
func NewApplicationsHandler(apps ApplicationsController) *ApplicationsHandler {
	return &ApplicationsHandler{apps: apps}
}

// List re-fetches the applications and returns the ones matching the query
// filters, formatted for display.
func (h *ApplicationsHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := h.apps.Load(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	apps := h.apps.Filtered(criteriaFromQuery(r, "department", "status"))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"applications": format.Applications(apps),
		"total":        len(apps),
		"notification": notificationField(h.apps.Notifier()),
	})
}

// GetByID returns one application from the in-memory collection.
func (h *ApplicationsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	app, ok := h.apps.View(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, format.Application(app))
}

// UpdateStatus records the reviewer's status choice. The portal has no
// endpoint for application status, so the change is local to this process
// and lasts until the next re-fetch.
func (h *ApplicationsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.apps.AcknowledgeStatus(id, payload.Status) {
		http.Error(w, "invalid status or unknown application", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
}
