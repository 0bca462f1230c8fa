package upload_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"foxboard/internal/gateway/analytics"
	"foxboard/internal/handlers/rest/dto"
	"foxboard/internal/service/ingest"
	"foxboard/pkg/logger"
)

// maxUploadBytes ограничивает размер multipart-формы в памяти.
const maxUploadBytes = 32 << 20

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
	err := r.ParseMultipartForm(maxUploadBytes)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.service.UploadSpreadsheet(r.Context(), header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrUnsupportedFile):
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

	response := dto.UploadResponse{
		Message:           result.Message,
		File:              result.File,
		TotalRecords:      result.TotalRecords,
		Inserted:          result.Inserted,
		DuplicatesSkipped: result.DuplicatesSkipped,
		SavedToDatabase:   result.SavedToDatabase,
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
