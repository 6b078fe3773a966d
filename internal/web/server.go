package web

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/webutsav/admin-console/internal/session"
)

// Config holds server configuration
type Config struct {
	Port           int
	AllowedOrigins []string
}

// SessionValidator checks bearer tokens on protected routes.
type SessionValidator interface {
	Validate(token string) (*session.Session, error)
}

// Server represents the HTTP server
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	config     *Config
	listener   net.Listener
	hub        *Hub
	sessions   SessionValidator
}

// NewServer creates a new HTTP server. sessions may be nil, in which case
// every route is open (used by handler tests).
func NewServer(cfg *Config, sessions SessionValidator, hub *Hub) *Server {
	srv := &Server{
		router:   chi.NewRouter(),
		config:   cfg,
		hub:      hub,
		sessions: sessions,
	}

	srv.setupMiddleware()
	srv.setupRoutes()

	return srv
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))
	s.router.Use(middleware.Compress(5))

	origins := s.config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	s.router.Use(s.requireSession)
}

// publicPaths are reachable without a session token.
var publicPaths = map[string]bool{
	"/api/v1/auth/login": true,
}

// requireSession gates /api/v1/* behind a bearer token, stashing the session
// email in the context as the audit actor. Everything outside /api/v1 (health,
// websocket upgrade) stays open.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.sessions == nil ||
			!strings.HasPrefix(r.URL.Path, "/api/v1/") ||
			publicPaths[r.URL.Path] ||
			r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		sess, err := s.sessions.Validate(token)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			if _, err := w.Write([]byte(`{"error":"not authenticated"}`)); err != nil {
				_ = err // Client disconnected
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), sess.Email)))
	})
}

type actorKey struct{}

// WithActor stores the authenticated admin's email in the context.
func WithActor(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, actorKey{}, email)
}

// Actor returns the authenticated admin's email, or "" on open routes.
func Actor(ctx context.Context) string {
	email, _ := ctx.Value(actorKey{}).(string)
	return email
}

func (s *Server) setupRoutes() {
	// WebSocket
	if s.hub != nil {
		s.router.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
			ServeWs(s.hub, w, r)
		})
	}

	// Health endpoint
	s.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			_ = err // Client disconnected
		}
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s.httpServer.Serve(listener)
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// BaseURL returns the server's base URL
func (s *Server) BaseURL() string {
	if s.listener != nil {
		return fmt.Sprintf("http://%s", s.listener.Addr().String())
	}
	return fmt.Sprintf("http://localhost:%d", s.config.Port)
}

// RegisterAuthHandler registers auth API handlers
func (s *Server) RegisterAuthHandler(handler interface{}) {
	type authHandler interface {
		Login(w http.ResponseWriter, r *http.Request)
		Logout(w http.ResponseWriter, r *http.Request)
		Me(w http.ResponseWriter, r *http.Request)
	}

	if h, ok := handler.(authHandler); ok {
		s.router.Route("/api/v1/auth", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
			r.Get("/me", h.Me)
		})
	}
}

// RegisterJobsHandler registers jobs API handlers
func (s *Server) RegisterJobsHandler(handler interface{}) {
	type jobsHandler interface {
		List(w http.ResponseWriter, r *http.Request)
		GetByID(w http.ResponseWriter, r *http.Request)
		Create(w http.ResponseWriter, r *http.Request)
		Update(w http.ResponseWriter, r *http.Request)
		Delete(w http.ResponseWriter, r *http.Request)
	}

	if h, ok := handler.(jobsHandler); ok {
		s.router.Route("/api/v1/jobs", func(r chi.Router) {
			r.Get("/", h.List)
			r.Post("/", h.Create)
			r.Get("/{id}", h.GetByID)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	}
}

// RegisterApplicationsHandler registers applications API handlers
func (s *Server) RegisterApplicationsHandler(handler interface{}) {
	type applicationsHandler interface {
		List(w http.ResponseWriter, r *http.Request)
		GetByID(w http.ResponseWriter, r *http.Request)
		UpdateStatus(w http.ResponseWriter, r *http.Request)
	}

	if h, ok := handler.(applicationsHandler); ok {
		s.router.Route("/api/v1/applications", func(r chi.Router) {
			r.Get("/", h.List)
			r.Get("/{id}", h.GetByID)
			r.Patch("/{id}/status", h.UpdateStatus)
		})
	}
}

// RegisterInquiriesHandler registers inquiries API handlers
func (s *Server) RegisterInquiriesHandler(handler interface{}) {
	type inquiriesHandler interface {
		List(w http.ResponseWriter, r *http.Request)
		GetByID(w http.ResponseWriter, r *http.Request)
		Delete(w http.ResponseWriter, r *http.Request)
		Countries(w http.ResponseWriter, r *http.Request)
		UnreadCount(w http.ResponseWriter, r *http.Request)
		Submit(w http.ResponseWriter, r *http.Request)
	}

	if h, ok := handler.(inquiriesHandler); ok {
		s.router.Route("/api/v1/inquiries", func(r chi.Router) {
			r.Get("/", h.List)
			r.Post("/", h.Submit)
			r.Get("/countries", h.Countries)
			r.Get("/unread-count", h.UnreadCount)
			r.Get("/{id}", h.GetByID)
			r.Delete("/{id}", h.Delete)
		})
	}
}

// RegisterDashboardHandler registers the dashboard summary handler
func (s *Server) RegisterDashboardHandler(handler interface{}) {
	type dashboardHandler interface {
		Summary(w http.ResponseWriter, r *http.Request)
	}

	if h, ok := handler.(dashboardHandler); ok {
		s.router.Get("/api/v1/dashboard", h.Summary)
	}
}

// RegisterAuditHandler registers the audit trail handler
func (s *Server) RegisterAuditHandler(handler interface{}) {
	type auditHandler interface {
		Recent(w http.ResponseWriter, r *http.Request)
	}

	if h, ok := handler.(auditHandler); ok {
		s.router.Get("/api/v1/audit", h.Recent)
	}
}

// Router returns the underlying Chi router for external route mounting.
func (s *Server) Router() *chi.Mux {
	return s.router
}
