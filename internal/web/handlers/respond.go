package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/webutsav/admin-console/internal/admin"
	"github.com/webutsav/admin-console/internal/listview"
	"github.com/webutsav/admin-console/internal/models"
	"github.com/webutsav/admin-console/internal/portal"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		_ = err // Client disconnected
	}
}

// writeError maps domain errors onto HTTP statuses. Validation problems are
// the caller's fault; portal failures surface as bad gateway with the
// user-facing message.
func writeError(w http.ResponseWriter, err error) {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  vErr.Error(),
			"fields": vErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, admin.ErrConfirmationRequired):
		writeJSON(w, http.StatusPreconditionRequired, map[string]string{"error": err.Error()})
	case errors.Is(err, admin.ErrNotInList) || portal.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		var apiErr *portal.APIError
		if errors.As(err, &apiErr) {
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": apiErr.UserMessage()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": portal.UserMessage(err)})
	}
}

// criteriaFromQuery builds filter criteria from the common query params.
// Category keys are passed explicitly so each page maps only its own filters.
func criteriaFromQuery(r *http.Request, categoryKeys ...string) listview.Criteria {
	criteria := listview.Criteria{Search: r.URL.Query().Get("q")}
	for _, key := range categoryKeys {
		if v := r.URL.Query().Get(key); v != "" {
			if criteria.Categories == nil {
				criteria.Categories = make(map[string]string)
			}
			criteria.Categories[key] = v
		}
	}
	return criteria
}

// notificationField renders the current banner for inclusion in responses.
func notificationField(notes *listview.Notifier) interface{} {
	note, ok := notes.Current()
	if !ok {
		return nil
	}
	return note
}
