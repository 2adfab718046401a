package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/whowinninglilly/contest/internal/core/ports"
)

func NewHandler(contest ports.ContestService, stats ports.StatsService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(CORS)
	r.MethodNotAllowed(methodNotAllowed)

	submissionHandler := NewSubmissionHandler(contest)
	statsHandler := NewStatsHandler(stats)

	r.Route("/api", func(r chi.Router) {
		r.Post("/submit", submissionHandler.Submit)
		r.Get("/stats", statsHandler.GetStats)
	})

	return r
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{
		Success: false,
		Message: "Method not allowed",
	})
}
