package admin_user_post

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
	var createDTO dto.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	input := session.RegisterInput{
		Email:           createDTO.Email,
		Password:        createDTO.Password,
		ConfirmPassword: createDTO.ConfirmPassword,
		Name:            createDTO.Name,
		CompanyName:     createDTO.CompanyName,
	}

	var user *entities.AuthUser
	switch entities.Role(createDTO.Role) {
	case entities.RoleAdmin:
		user, err = h.service.CreateAdmin(r.Context(), input)
	case entities.RoleCompany:
		user, err = h.service.CreateCompanyAccount(r.Context(), input)
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, session.ErrFieldsRequired),
			errors.Is(err, session.ErrPasswordTooShort),
			errors.Is(err, session.ErrPasswordMismatch),
			errors.Is(err, session.ErrCompanyNameRequired):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CreateUserResponse{
		User: dto.User{
			ID:          user.ID,
			Email:       user.Email,
			Name:        user.Name,
			Role:        user.Role.String(),
			CompanyName: user.CompanyName,
		},
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
