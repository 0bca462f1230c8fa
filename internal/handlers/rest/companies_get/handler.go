package companies_get

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
	report, err := h.service.Companies(r.Context())
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

	companies := make([]dto.CompanyStats, len(report.Companies))
	for i, company := range report.Companies {
		companies[i] = companyDTO(company)
	}

	response := dto.CompaniesResponse{
		TotalCompanies: report.TotalCompanies,
		TotalOrders:    report.TotalOrders,
		Source:         report.Source,
		Companies:      companies,
	}
	if report.MostActive != nil {
		mostActive := companyDTO(*report.MostActive)
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

func companyDTO(company entities.CompanyStats) dto.CompanyStats {
	return dto.CompanyStats{
		Name:              company.Name,
		TotalOrders:       company.TotalOrders,
		PickupLocations:   company.PickupLocations,
		TotalLocations:    company.TotalLocations,
		MostCommonAddress: company.MostCommonAddress,
		TotalDeliveries:   company.TotalDeliveries,
	}
}
