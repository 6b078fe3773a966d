package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webutsav/admin-console/internal/admin"
	"github.com/webutsav/admin-console/internal/listview"
	"github.com/webutsav/admin-console/internal/logger"
	"github.com/webutsav/admin-console/internal/models"
	"github.com/webutsav/admin-console/internal/portal"
	"github.com/webutsav/admin-console/internal/web"
)

// stubJobsAPI is an in-memory portal backend for handler tests.
type stubJobsAPI struct {
	jobs       []models.JobPosting
	failDelete bool
}

func (s *stubJobsAPI) ListJobs(ctx context.Context) ([]models.JobPosting, error) {
	return append([]models.JobPosting(nil), s.jobs...), nil
}

func (s *stubJobsAPI) CreateJob(ctx context.Context, draft models.JobDraft) (models.JobPosting, error) {
	job := models.JobPosting{
		ID:         "99",
		Profile:    draft.Profile,
		Role:       draft.Role,
		Department: draft.Department,
		IsActive:   true,
	}
	s.jobs = append(s.jobs, job)
	return job, nil
}

func (s *stubJobsAPI) UpdateJob(ctx context.Context, id string, draft models.JobDraft) (models.JobPosting, error) {
	for i, j := range s.jobs {
		if j.ID == id {
			s.jobs[i].Profile = draft.Profile
			s.jobs[i].Role = draft.Role
			s.jobs[i].Department = draft.Department
			return s.jobs[i], nil
		}
	}
	return models.JobPosting{}, errors.New("unknown job")
}

func (s *stubJobsAPI) DeleteJob(ctx context.Context, id string) error {
	if s.failDelete {
		return &portal.APIError{StatusCode: 500, Message: "delete failed"}
	}
	for i, j := range s.jobs {
		if j.ID == id {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			return nil
		}
	}
	return nil
}

func newJobsRouter(api *stubJobsAPI, hub *web.Hub) (*chi.Mux, *admin.JobsController) {
	controller := admin.NewJobsController(api, nil, listview.NewNotifier(listview.DefaultNoticeTTL), logger.Get())
	handler := NewJobsHandler(controller, hub)

	r := chi.NewRouter()
	r.Get("/api/v1/jobs", handler.List)
	r.Post("/api/v1/jobs", handler.Create)
	r.Get("/api/v1/jobs/{id}", handler.GetByID)
	r.Put("/api/v1/jobs/{id}", handler.Update)
	r.Delete("/api/v1/jobs/{id}", handler.Delete)
	return r, controller
}

func seedJobs() *stubJobsAPI {
	return &stubJobsAPI{jobs: []models.JobPosting{
		{ID: "1", Profile: "Backend Engineer", Role: "Engineer", Department: "Research & Development", IsActive: true},
		{ID: "2", Profile: "UI Designer", Role: "Designer", Department: "Digital Marketing", IsActive: false},
		{ID: "5", Profile: "Data Analyst", Role: "Analyst", Department: "Sales", IsActive: true},
	}}
}

// loadList primes the controller's in-memory collection, like the page does
// before any view or mutation.
func loadList(t *testing.T, r *chi.Mux, path string) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestJobsAPI_ListWithFilters(t *testing.T) {
	r, _ := newJobsRouter(seedJobs(), nil)

	req := httptest.NewRequest("GET", "/api/v1/jobs?status=Active&q=engineer", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Jobs  []map[string]interface{} `json:"jobs"`
		Total int                      `json:"total"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Backend Engineer", resp.Jobs[0]["profile"])
}

func TestJobsAPI_Create(t *testing.T) {
	r, controller := newJobsRouter(seedJobs(), nil)

	body, _ := json.Marshal(models.JobDraft{
		Profile: "SRE", Role: "Engineer", Department: "Research & Development",
	})
	req := httptest.NewRequest("POST", "/api/v1/jobs", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	// the controller re-fetched; the new id is in the collection
	_, found := controller.View("99")
	assert.True(t, found)
}

func TestJobsAPI_CreateValidation(t *testing.T) {
	r, _ := newJobsRouter(seedJobs(), nil)

	body, _ := json.Marshal(models.JobDraft{Role: "Engineer"})
	req := httptest.NewRequest("POST", "/api/v1/jobs", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Fields []models.FieldError `json:"fields"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Fields)
}

func TestJobsAPI_Update(t *testing.T) {
	api := seedJobs()
	r, _ := newJobsRouter(api, nil)
	loadList(t, r, "/api/v1/jobs")

	body, _ := json.Marshal(models.JobDraft{
		Profile: "Staff Engineer", Role: "Engineer", Department: "Research & Development",
	})
	req := httptest.NewRequest("PUT", "/api/v1/jobs/1", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Staff Engineer", api.jobs[0].Profile)
}

func TestJobsAPI_UpdateUnknownID(t *testing.T) {
	r, _ := newJobsRouter(seedJobs(), nil)
	loadList(t, r, "/api/v1/jobs")

	body, _ := json.Marshal(models.JobDraft{
		Profile: "X", Role: "Y", Department: "Sales",
	})
	req := httptest.NewRequest("PUT", "/api/v1/jobs/404", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobsAPI_DeleteRequiresConfirmation(t *testing.T) {
	api := seedJobs()
	r, _ := newJobsRouter(api, nil)

	req := httptest.NewRequest("DELETE", "/api/v1/jobs/5", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
	assert.Len(t, api.jobs, 3)
}

func TestJobsAPI_DeleteFailureKeepsJob(t *testing.T) {
	api := seedJobs()
	api.failDelete = true
	r, controller := newJobsRouter(api, nil)
	loadList(t, r, "/api/v1/jobs")

	req := httptest.NewRequest("DELETE", "/api/v1/jobs/5?confirm=true", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	_, found := controller.View("5")
	assert.True(t, found, "failed delete must leave the posting in the list")
}

func TestJobsAPI_Delete(t *testing.T) {
	api := seedJobs()
	r, controller := newJobsRouter(api, nil)
	loadList(t, r, "/api/v1/jobs")

	req := httptest.NewRequest("DELETE", "/api/v1/jobs/5?confirm=true", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, found := controller.View("5")
	assert.False(t, found)
}

func TestJobsAPI_CreateBroadcasts(t *testing.T) {
	hub := web.NewHub()
	go hub.Run()

	r, _ := newJobsRouter(seedJobs(), hub)
	r.Get("/ws", func(w http.ResponseWriter, req *http.Request) {
		web.ServeWs(hub, w, req)
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	wsConn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	defer wsConn.Close()

	// Allow time for registration
	time.Sleep(50 * time.Millisecond)

	body, _ := json.Marshal(models.JobDraft{
		Profile: "SRE", Role: "Engineer", Department: "Research & Development",
	})
	resp, err := http.Post(srv.URL+"/api/v1/jobs", "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	require.NoError(t, wsConn.SetReadDeadline(time.Now().Add(time.Second)))
	_, msg, err := wsConn.ReadMessage()
	require.NoError(t, err)

	assert.Contains(t, string(msg), "job.created")
	assert.Contains(t, string(msg), "SRE")
}
