package dashboard_metrics_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"

	"foxboard/internal/entities"
	"foxboard/internal/gateway/analytics"
	"foxboard/internal/handlers/rest/dto"
	"foxboard/internal/service/access"
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
	metrics, err := h.service.Metrics(r.Context())
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

	var role entities.Role
	if user := h.sessions.CurrentUser(); user != nil {
		role = user.Role
	}
	response := metricsDTO(metrics, role)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// metricsDTO собирает ответ, пропуская только метрики из белого списка роли.
func metricsDTO(metrics *entities.DashboardMetrics, role entities.Role) dto.MetricsResponse {
	response := dto.MetricsResponse{
		AnalyzedRecords: metrics.AnalyzedRecords,
		DatabaseRecords: metrics.DatabaseRecords,
	}
	if !metrics.Timestamp.IsZero() {
		response.Timestamp = pointer.To(metrics.Timestamp)
	}

	if access.AllowsMetric(role, "total_deliveries") {
		response.TotalDeliveries = metrics.TotalDeliveries
	}
	if access.AllowsMetric(role, "customer_experience") {
		response.CustomerExperience = &dto.MetricSample{
			Value:   metrics.ExperienceMinutes.Value,
			Samples: metrics.ExperienceMinutes.Samples,
		}
	}
	if access.AllowsMetric(role, "collection_time") {
		response.CollectionTime = &dto.MetricSample{
			Value:   metrics.CollectionMinutes.Value,
			Samples: metrics.CollectionMinutes.Samples,
		}
	}
	if access.AllowsMetric(role, "avg_time") {
		response.AvgTime = &dto.MetricSample{
			Value:   metrics.DeliveryMinutes.Value,
			Samples: metrics.DeliveryMinutes.Samples,
		}
	}
	if access.AllowsMetric(role, "delivery_completion_status") {
		response.Completion = &dto.CompletionStatus{
			Percent:   metrics.Completion.Percent,
			Completed: metrics.Completion.Completed,
			Total:     metrics.Completion.Total,
		}
	}

	if access.AllowsMetric(role, "total_commission") {
		response.TotalCommission = pointer.To(metrics.TotalCommission)
	}
	if access.AllowsMetric(role, "active_drivers") {
		response.ActiveDrivers = pointer.To(metrics.ActiveDrivers)
	}
	if access.AllowsMetric(role, "active_companies") {
		response.ActiveCompanies = pointer.To(metrics.ActiveCompanies)
	}
	if access.AllowsMetric(role, "total_distance") {
		response.TotalDistance = pointer.To(metrics.TotalDistance)
	}
	if access.AllowsMetric(role, "top_drivers") {
		topDrivers := make([]dto.TopDriver, len(metrics.TopDrivers))
		for i, driver := range metrics.TopDrivers {
			topDrivers[i] = dto.TopDriver{
				Rank:       driver.Rank,
				Name:       driver.Name,
				Deliveries: driver.Deliveries,
			}
		}
		response.TopDrivers = topDrivers
	}

	return response
}
