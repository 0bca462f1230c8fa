package session_get

import (
	"encoding/json"
	"net/http"

	"foxboard/internal/handlers/rest/dto"
	"foxboard/internal/service/access"
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
	snapshot := h.service.Snapshot()

	response := dto.SessionResponse{
		State:    snapshot.State.String(),
		Redirect: access.RedirectPath(snapshot.User),
	}
	if snapshot.User != nil {
		response.User = &dto.User{
			ID:          snapshot.User.ID,
			Email:       snapshot.User.Email,
			Name:        snapshot.User.Name,
			Role:        snapshot.User.Role.String(),
			CompanyName: snapshot.User.CompanyName,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
