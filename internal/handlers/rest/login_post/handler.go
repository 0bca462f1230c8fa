package login_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"foxboard/internal/entities"
	"foxboard/internal/gateway/identity"
	"foxboard/internal/handlers/rest/dto"
	"foxboard/internal/service/session"
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
	var loginDTO dto.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := h.service.Login(r.Context(), entities.Credentials{
		Email:    loginDTO.Email,
		Password: loginDTO.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrFieldsRequired):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, identity.ErrUnauthorized):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.User{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        user.Role.String(),
		CompanyName: user.CompanyName,
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
