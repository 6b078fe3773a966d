package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webutsav/admin-console/internal/session"
)

func newAuthHandler() (*AuthHandler, *session.Manager) {
	sessions := session.NewManager("admin@example.com", "secret", time.Hour)
	return NewAuthHandler(sessions), sessions
}

func login(t *testing.T, h *AuthHandler, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestAuth_Login(t *testing.T) {
	h, _ := newAuthHandler()

	rec := login(t, h, "admin@example.com", "secret")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
		Email string `json:"email"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@example.com", resp.Email)
}

func TestAuth_LoginWrongCredentials(t *testing.T) {
	h, _ := newAuthHandler()

	rec := login(t, h, "admin@example.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = login(t, h, "intruder@example.com", "secret")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MeAndLogout(t *testing.T) {
	h, _ := newAuthHandler()

	rec := login(t, h, "admin@example.com", "secret")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec = httptest.NewRecorder()
	h.Me(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec = httptest.NewRecorder()
	h.Logout(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// token is dead after logout
	req = httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec = httptest.NewRecorder()
	h.Me(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
