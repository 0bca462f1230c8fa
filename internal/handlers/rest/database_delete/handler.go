package database_delete

import (
	"encoding/json"
	"errors"
	"net/http"

	"foxboard/internal/gateway/analytics"
	"foxboard/internal/handlers/rest/dto"
	"foxboard/internal/service/ingest"
	"foxboard/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var clearDTO dto.ClearRequest
	err := json.NewDecoder(r.Body).Decode(&clearDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.ClearDatabase(r.Context(), clearDTO.Confirmation)
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrConfirmationMismatch):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, analytics.ErrTimeout):
			w.WriteHeader(http.StatusGatewayTimeout)
		case errors.Is(err, analytics.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ClearResponse{
		Message: result.Message,
		Removed: result.Removed,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
