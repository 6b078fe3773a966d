package handlers

import (
	"net/http"
	"strconv"

	"github.com/webutsav/admin-console/internal/audit"
)

// AuditReader lists recent audit entries.
type AuditReader interface {
	Recent(limit int) ([]audit.Entry, error)
}

// AuditHandler serves the admin action trail.
type AuditHandler struct {
	store AuditReader
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(store AuditReader) *AuditHandler {
	return &AuditHandler{store: store}
}

// Recent returns the most recent audit entries, newest first.
func (h *AuditHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.store.Recent(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
		"total":   len(entries),
	})
}
