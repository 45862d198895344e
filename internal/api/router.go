package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"seances/internal/auth"
	"seances/internal/config"
	"seances/internal/weekly"
	tokenauth "seances/pkg/auth"
)

type Server struct {
	cfg       config.Config
	log       zerolog.Logger
	compactor *weekly.Compactor
	auth      *auth.Service
}

func NewServer(cfg config.Config, log zerolog.Logger) *Server {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.MaxShowtimes <= 0 {
		cfg.MaxShowtimes = config.Default().MaxShowtimes
	}
	s := &Server{
		cfg:       cfg,
		log:       log,
		compactor: cfg.Compactor(),
	}
	if cfg.AppSecret != "" {
		s.auth = auth.NewService(cfg.AppSecret, cfg.TokenTTL)
	}
	return s
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if s.auth != nil && s.cfg.APITokenHash != "" {
		r.With(tokenauth.TokenMiddleware(s.cfg.APITokenHash)).Post("/auth/token", s.handleIssueToken())
	}

	r.Group(func(r chi.Router) {
		if s.cfg.AuthRequired {
			r.Use(s.requireClient)
		}
		r.Post("/programme", s.handleProgramme())
		r.Route("/cinemas", func(r chi.Router) {
			r.Post("/programme", s.handleCinemaProgramme())
			r.Post("/showings", s.handleShowings())
		})
	})
	return r
}

// requireClient accepts a static API token when one is sent and configured,
// a JWT bearer token otherwise.
func (s *Server) requireClient(next http.Handler) http.Handler {
	withToken := tokenauth.TokenMiddleware(s.cfg.APITokenHash)(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.auth == nil || (s.cfg.APITokenHash != "" && r.Header.Get(tokenauth.TokenHeader) != "") {
			withToken.ServeHTTP(w, r)
			return
		}
		s.auth.RequireAuth(next).ServeHTTP(w, r)
	})
}
