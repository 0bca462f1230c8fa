package driver_stats_get

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
	stats, err := h.service.DriverStats(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	breakdown, err := h.service.StatusBreakdown(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	drivers := make([]dto.DriverStats, len(stats))
	for i, driver := range stats {
		drivers[i] = dto.DriverStats{
			DriverName:      driver.DriverName,
			TotalDeliveries: driver.TotalDeliveries,
			TotalRevenue:    driver.TotalRevenue,
			SuccessRate:     driver.SuccessRate,
			AverageMinutes:  driver.AverageMinutes,
		}
	}

	distribution := make([]dto.StatusShare, len(breakdown))
	for i, share := range breakdown {
		distribution[i] = dto.StatusShare{
			Status:  share.Status,
			Count:   share.Count,
			Percent: share.Percent,
		}
	}

	response := dto.DriverStatsResponse{
		Drivers:      drivers,
		Distribution: distribution,
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

func (h *Handler) writeError(w http.ResponseWriter, err error) {
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
}
