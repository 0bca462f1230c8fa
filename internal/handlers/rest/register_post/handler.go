package register_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"foxboard/internal/entities"
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
	var registerDTO dto.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&registerDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	role := entities.Role(registerDTO.Role)
	if registerDTO.Role == "" {
		role = entities.RoleClient
	}

	user, err := h.service.Register(r.Context(), session.RegisterInput{
		Email:           registerDTO.Email,
		Password:        registerDTO.Password,
		ConfirmPassword: registerDTO.ConfirmPassword,
		Name:            registerDTO.Name,
		Role:            role,
		CompanyName:     registerDTO.CompanyName,
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrFieldsRequired),
			errors.Is(err, session.ErrPasswordTooShort),
			errors.Is(err, session.ErrPasswordMismatch),
			errors.Is(err, session.ErrCompanyNameRequired),
			errors.Is(err, session.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
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
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
