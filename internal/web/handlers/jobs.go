// Package handlers exposes the admin controllers over the HTTP API consumed
// by the admin SPA. Handlers translate requests into controller operations
// and controller results into JSON; all portal and list semantics live in the
// controllers.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/webutsav/admin-console/internal/format"
	"github.com/webutsav/admin-console/internal/models"
	"github.com/webutsav/admin-console/internal/web"
)

// JobsHandler handles job posting requests
type JobsHandler struct {
	jobs JobsController
	hub  *web.Hub
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(jobs JobsController, hub *web.Hub) *JobsHandler {
	return &JobsHandler{jobs: jobs, hub: hub}
}

// List re-fetches the postings and returns the ones matching the query
// filters, formatted for display.
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := h.jobs.Load(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	jobs := h.jobs.Filtered(criteriaFromQuery(r, "department", "status"))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"jobs":         format.Jobs(jobs),
		"total":        len(jobs),
		"notification": notificationField(h.jobs.Notifier()),
	})
}

// GetByID returns one posting from the in-memory collection.
func (h *JobsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	job, ok := h.jobs.View(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, format.Job(job))
}

// Create validates and posts a new job.
func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft models.JobDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.jobs.Create(r.Context(), web.Actor(r.Context()), draft)
	if err != nil {
		writeError(w, err)
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(web.JobEvent(web.EventJobCreated, created.ID, created.Profile))
	}

	writeJSON(w, http.StatusCreated, format.Job(created))
}

// Update runs the draft cycle for one posting: clone, apply the submitted
// fields, submit. A failed submit discards the request-scoped draft so the
// next request starts clean.
func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var draft models.JobDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.jobs.BeginEdit(id); err != nil {
		writeError(w, err)
		return
	}
	if err := h.jobs.UpdateDraft(id, func(d *models.JobDraft) { *d = draft }); err != nil {
		writeError(w, err)
		return
	}
	if err := h.jobs.SubmitEdit(r.Context(), web.Actor(r.Context()), id); err != nil {
		h.jobs.DiscardEdit(id)
		writeError(w, err)
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(web.JobEvent(web.EventJobUpdated, id, draft.Profile))
	}

	job, ok := h.jobs.View(id)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSON(w, http.StatusOK, format.Job(job))
}

// Delete removes a posting. The confirm=true query parameter is the
// explicit confirmation gate; without it nothing is deleted.
func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	confirmed := r.URL.Query().Get("confirm") == "true"

	if err := h.jobs.Delete(r.Context(), web.Actor(r.Context()), id, confirmed); err != nil {
		writeError(w, err)
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(web.JobEvent(web.EventJobDeleted, id, ""))
	}

	w.WriteHeader(http.StatusNoContent)
}
