// Package server exposes the prediction and analytics core over HTTP. It is
// a thin adapter: handlers translate requests into core calls and sentinel
// errors into status codes; no transport types cross into the core.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Ajinkyaa2004/Copascore/internal/app"
	"github.com/Ajinkyaa2004/Copascore/internal/metrics"
)

// Server is the HTTP surface over the application context
type Server struct {
	app      *app.App
	logger   *logrus.Logger
	validate *validator.Validate
	router   chi.Router
}

// New creates the server and mounts all routes
func New(application *app.App, logger *logrus.Logger) *Server {
	s := &Server{
		app:      application,
		logger:   logger,
		validate: validator.New(),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	allowedOrigins := application.Config.Server.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Get("/teams", s.handleTeams)
	r.Post("/predict", s.handlePredict)
	r.Post("/stats", s.handleStats)
	r.Get("/simulate", s.handleSimulate)
	r.Post("/chat", s.handleChat)

	r.Get("/players/{team}", s.handleTeamPlayers)
	r.Post("/player-card", s.handlePlayerCard)

	r.Get("/team-form/{team}", s.handleTeamForm)
	r.Get("/team-stats/{team}", s.handleTeamAverageStats)
	r.Get("/team-info/{team}", s.handleTeamInfo)
	r.Get("/team-compare", s.handleTeamCompare)

	r.Get("/fifa/search", s.handleRatingsSearch)
	r.Get("/fifa/player/{name}", s.handleRatingsCard)
	r.Get("/fifa/top-players", s.handleTopPlayers)
	r.Get("/fifa/stats", s.handleRatingsStats)

	s.router = r
	return s
}

// Handler returns the mounted router
func (s *Server) Handler() http.Handler {
	return s.router
}

// requestLogger records latency per route in the metrics registry and logs
// slow requests
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		metrics.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(elapsed.Seconds())

		s.logger.WithFields(logrus.Fields{
			"route":   route,
			"method":  r.Method,
			"elapsed": elapsed.String(),
		}).Debug("Request handled")
	})
}
