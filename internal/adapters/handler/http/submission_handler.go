package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/whowinninglilly/contest/internal/core/domain"
	"github.com/whowinninglilly/contest/internal/core/ports"
)

type SubmissionHandler struct {
	service ports.ContestService
}

func NewSubmissionHandler(service ports.ContestService) *SubmissionHandler {
	return &SubmissionHandler{
		service: service,
	}
}

type submitRequest struct {
	Email string `json:"email"`
}

type submissionResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	IsWinner bool   `json:"isWinner"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Success: false,
			Message: "Please provide a valid email address",
		})
		return
	}

	result, err := h.service.Submit(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Success: false,
				Message: "Please provide a valid email address",
			})
			return
		}
		if errors.Is(err, domain.ErrAlreadyEntered) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Success: false,
				Message: "You have already participated in this contest.",
			})
			return
		}

		var storeErr *domain.StoreError
		if errors.As(err, &storeErr) {
			slog.Error("submission store failure", "error", storeErr.Unwrap())
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Success: false,
				Message: storeErr.Message,
			})
			return
		}

		slog.Error("submission failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Success: false,
			Message: "An unexpected error occurred",
		})
		return
	}

	writeJSON(w, http.StatusOK, submissionResponse{
		Success:  true,
		Message:  "Your entry has been submitted! Check your email for your mystery video.",
		IsWinner: result.IsWinner,
	})
}
