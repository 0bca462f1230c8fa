package temporal_get

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
	report, err := h.service.Temporal(r.Context())
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

	ordersByMoment := make([]dto.PeakMoment, len(report.OrdersByMoment))
	for i, moment := range report.OrdersByMoment {
		ordersByMoment[i] = dto.PeakMoment{At: moment.At, Orders: moment.Orders}
	}

	topIntervals := make([]dto.TimeInterval, len(report.TopIntervals))
	for i, interval := range report.TopIntervals {
		topIntervals[i] = dto.TimeInterval{
			Center:      interval.Center,
			Start:       interval.Start,
			End:         interval.End,
			Orders:      interval.Orders,
			Description: interval.Description,
			Weekday:     interval.Weekday,
			DayPeriod:   interval.DayPeriod,
		}
	}

	response := dto.TemporalResponse{
		Source:         report.Source,
		AnalyzedOrders: report.AnalyzedOrders,
		DistinctTimes:  report.DistinctTimes,
		IntervalCount:  report.IntervalCount,
		OrdersByMoment: ordersByMoment,
		TopIntervals:   topIntervals,
	}
	if report.BusiestMoment != nil {
		response.BusiestMoment = &dto.PeakMoment{
			At:     report.BusiestMoment.At,
			Orders: report.BusiestMoment.Orders,
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
