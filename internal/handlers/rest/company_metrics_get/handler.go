package company_metrics_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"foxboard/internal/entities"
	"foxboard/internal/gateway/analytics"
	"foxboard/internal/handlers/rest/dto"
	"foxboard/internal/service/dashboard"
	"foxboard/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	sessions Sessions
}

func New(log handlerLogger, service Service, sessions Sessions) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		sessions: sessions,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	company := r.URL.Query().Get("company")

	// Пользователь с ролью company видит только собственную компанию,
	// независимо от того, что он запросил.
	if user := h.sessions.CurrentUser(); user != nil && user.Role == entities.RoleCompany {
		company = user.CompanyName
	}

	metrics, err := h.service.CompanyMetrics(r.Context(), company)
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrCompanyRequired):
			w.WriteHeader(http.StatusBadRequest)
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

	response := dto.CompanyMetricsResponse{
		Company:            metrics.Company,
		TotalDeliveries:    metrics.TotalDeliveries,
		CollectionTime:     rangeDTO(metrics.CollectionMinutes),
		AvgTime:            rangeDTO(metrics.DeliveryMinutes),
		CustomerExperience: rangeDTO(metrics.ExperienceMinutes),
		DelayedOrders: dto.DelayedOrders{
			Total:       metrics.DelayedOrders.Total,
			Percent:     metrics.DelayedOrders.Percent,
			Criteria:    metrics.DelayedOrders.Criteria,
			WithMetrics: metrics.DelayedOrders.WithMetrics,
		},
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

func rangeDTO(r entities.MetricRange) dto.MetricRange {
	return dto.MetricRange{
		Mean:    r.Mean,
		Min:     r.Min,
		Max:     r.Max,
		Samples: r.Samples,
	}
}
