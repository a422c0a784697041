package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/robot-notify/robot"
	"github.com/marcelsud/robot-notify/robots"
	"github.com/rs/zerolog"
)

// Handlers sets up the robot API routes; metricsHandler may be nil
func Handlers(ctx context.Context, logger zerolog.Logger, robotService robot.UseCase, loader *robots.Loader, metricsHandler http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Method(http.MethodGet, "/robots", getRobots(loader))
		r.Method(http.MethodPost, "/robots/{robot_id}/messages", postRobotMessage(robotService, loader))
		r.Method(http.MethodPost, "/messages", postMessage(robotService))
	})

	return r
}
