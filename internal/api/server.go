package api

import (
	"log/slog"
	"net/http"

	"github.com/SuryaBeeraka/mental-health-dashboard/internal/config"
	"github.com/SuryaBeeraka/mental-health-dashboard/internal/dataset"
	"github.com/SuryaBeeraka/mental-health-dashboard/internal/extractor"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP server for the dashboard: a JSON API plus the
// server-rendered pages.
type Server struct {
	router    chi.Router
	store     *dataset.Store
	extractor *extractor.Client
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server. The dataset store is
// read-only and shared by every request.
func NewServer(store *dataset.Store, ex *extractor.Client, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store:     store,
		extractor: ex,
		log:       log,
		cfg:       cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	// JSON API.
	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", s.handleListCategories)
		r.Get("/categories/{category}", s.handleCategory)
		r.Get("/categories/{category}/topics/{subtopic}", s.handleTopic)
		r.Post("/extract", s.handleExtract)
		r.Get("/stats/extractor", s.handleExtractorStats)
	})

	// Dashboard pages.
	r.Get("/", s.handleIndexPage)
	r.Get("/c/{category}", s.handleCategoryPage)
	r.Get("/c/{category}/{subtopic}", s.handleTopicPage)
	r.Get("/upload", s.handleUploadPage)
	r.Post("/upload", s.handleUploadSubmit)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
