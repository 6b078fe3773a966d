package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/webutsav/admin-console/internal/format"
	"github.com/webutsav/admin-console/internal/models"
	"github.com/webutsav/admin-console/internal/web"
)

// InquiriesHandler handles contact inquiry requests
type InquiriesHandler struct {
	inquiries InquiriesController
	submit    InquirySubmitter
	hub       *web.Hub
}

// NewInquiriesHandler creates a new InquiriesHandler. submit may be nil when
// the contact-form passthrough is not exposed.
func NewInquiriesHandler(inquiries InquiriesController, submit InquirySubmitter, hub *web.Hub) *InquiriesHandler {
	return &InquiriesHandler{inquiries: inquiries, submit: submit, hub: hub}
}

// List re-fetches the inquiries and returns the ones matching the query
// filters. unread=true restricts the fetch itself to unread inquiries;
// country and status filter the loaded collection.
func (h *InquiriesHandler) List(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread") == "true"

	if err := h.inquiries.SetUnreadOnly(r.Context(), unreadOnly); err != nil {
		writeError(w, err)
		return
	}

	inquiries := h.inquiries.Filtered(criteriaFromQuery(r, "country", "status"))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"inquiries":    format.Inquiries(inquiries),
		"total":        len(inquiries),
		"unreadCount":  h.inquiries.UnreadCount(),
		"notification": notificationField(h.inquiries.Notifier()),
	})
}

// GetByID returns one inquiry detail. Opening an unread inquiry marks it
// read on the portal and the badge broadcast tells every tab.
func (h *InquiriesHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	before := h.inquiries.UnreadCount()
	inquiry, err := h.inquiries.View(r.Context(), web.Actor(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if h.hub != nil && h.inquiries.UnreadCount() != before {
		h.hub.Broadcast(web.InquiryEvent(web.EventInquiryRead, id, h.inquiries.UnreadCount()))
	}

	writeJSON(w, http.StatusOK, format.Inquiry(inquiry))
}

// Delete removes an inquiry behind the confirm=true gate.
func (h *InquiriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	confirmed := r.URL.Query().Get("confirm") == "true"

	if err := h.inquiries.Delete(r.Context(), web.Actor(r.Context()), id, confirmed); err != nil {
		writeError(w, err)
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(web.InquiryEvent(web.EventInquiryDeleted, id, h.inquiries.UnreadCount()))
	}

	w.WriteHeader(http.StatusNoContent)
}

// Countries returns the distinct countries for the filter select.
func (h *InquiriesHandler) Countries(w http.ResponseWriter, r *http.Request) {
	countries := h.inquiries.Countries()
	if countries == nil {
		countries = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"countries": countries})
}

// UnreadCount refreshes and returns the sidebar badge value.
func (h *InquiriesHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.inquiries.RefreshUnreadCount(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// Submit forwards a contact-form submission to the portal after validation.
func (h *InquiriesHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if h.submit == nil {
		http.Error(w, "not supported", http.StatusNotImplemented)
		return
	}

	var sub models.InquirySubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.submit.SubmitInquiry(r.Context(), sub)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, format.Inquiry(created))
}
