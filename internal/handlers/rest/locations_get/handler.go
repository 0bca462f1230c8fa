package locations_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"foxboard/internal/gateway/analytics"
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
	report, err := h.service.Locations(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, analytics.ErrTimeout):
			w.WriteHeader(http.StatusGatewayTimeout)
		case errors.Is(err, analytics.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	locations := make([]dto.DeliveryLocation, len(report.Locations))
	for i, location := range report.Locations {
		locations[i] = dto.DeliveryLocation{
			Address:         location.Address,
			TotalDeliveries: location.TotalDeliveries,
		}
	}

	response := dto.LocationsResponse{
		TotalLocations:  report.TotalLocations,
		TotalDeliveries: report.TotalDeliveries,
		Source:          report.Source,
		Locations:       locations,
	}
	if report.MostCommon != nil {
		response.MostCommon = &dto.DeliveryLocation{
			Address:         report.MostCommon.Address,
			TotalDeliveries: report.MostCommon.TotalDeliveries,
		}
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
