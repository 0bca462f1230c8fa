package users_get

import (
	"encoding/json"
	"net/http"

	"foxboard/internal/handlers/rest/dto"
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
	userEntities, err := h.service.ListAllUsers(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	userDTOs := make([]dto.User, len(userEntities))
	for i, user := range userEntities {
		userDTOs[i].ID = user.ID
		userDTOs[i].Email = user.Email
		userDTOs[i].Name = user.Name
		userDTOs[i].Role = user.Role.String()
		userDTOs[i].CompanyName = user.CompanyName
	}

	response := dto.UsersResponse{
		Total: len(userDTOs),
		Users: userDTOs,
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
