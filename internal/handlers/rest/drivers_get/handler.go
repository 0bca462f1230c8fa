package drivers_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"foxboard/internal/entities"
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
	report, err := h.service.Drivers(r.Context())
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

	drivers := make([]dto.DriverActivity, len(report.Drivers))
	for i, driver := range report.Drivers {
		drivers[i] = driverDTO(driver)
	}

	response := dto.DriversResponse{
		TotalDrivers:     report.TotalDrivers,
		TotalDeliveries:  report.TotalDeliveries,
		AveragePerDriver: report.AveragePerDriver,
		Source:           report.Source,
		Drivers:          drivers,
	}
	if report.MostActive != nil {
		mostActive := driverDTO(*report.MostActive)
		response.MostActive = &mostActive
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

func driverDTO(driver entities.DriverActivity) dto.DriverActivity {
	return dto.DriverActivity{
		Name:        driver.Name,
		Collections: driver.Collections,
		Deliveries:  driver.Deliveries,
		Total:       driver.Total,
	}
}
