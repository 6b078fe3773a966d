package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/webutsav/admin-console/internal/session"
)

// AuthHandler handles login and logout for the single admin user.
type AuthHandler struct {
	sessions SessionManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions SessionManager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

// Login validates the credentials and returns a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := h.sessions.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":     sess.Token,
		"email":     sess.Email,
		"expiresAt": sess.ExpiresAt.Format(time.RFC3339),
	})
}

// Logout tears down the caller's session. Always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(bearerToken(r))
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the session behind the presented token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Validate(bearerToken(r))
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"email":     sess.Email,
		"expiresAt": sess.ExpiresAt.Format(time.RFC3339),
	})
}
