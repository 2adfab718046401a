package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/whowinninglilly/contest/internal/core/ports"
)

type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{
		service: service,
	}
}

func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.service.Read(r.Context())

	body, err := json.Marshal(stats)
	if err != nil {
		slog.Error("failed to encode stats", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch stats",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
