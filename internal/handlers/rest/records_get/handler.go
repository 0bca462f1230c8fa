package records_get

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
	var recordSet *entities.RecordSet
	var err error
	if r.URL.Query().Get("source") == "hybrid" {
		recordSet, err = h.service.HybridRecords(r.Context())
	} else {
		recordSet, err = h.service.Records(r.Context())
	}
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

	recordDTOs := make([]dto.DeliveryRecord, len(recordSet.Records))
	for i, record := range recordSet.Records {
		recordDTOs[i] = recordDTO(record)
	}

	response := dto.RecordsResponse{
		Total:   recordSet.Total,
		Source:  recordSet.Source,
		Records: recordDTOs,
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

func recordDTO(record entities.DeliveryRecord) dto.DeliveryRecord {
	return dto.DeliveryRecord{
		ID:                record.ID,
		JobID:             record.JobID,
		InvoiceID:         record.InvoiceID,
		InvoiceNumber:     record.InvoiceNumber,
		Priority:          record.Priority,
		CustomerName:      record.CustomerName,
		CompanyName:       record.CompanyName,
		CollectingDriver:  record.CollectingDriver,
		DeliveringDriver:  record.DeliveringDriver,
		PickupAddress:     record.PickupAddress,
		DeliveryAddress:   record.DeliveryAddress,
		ServiceType:       record.ServiceType,
		Cost:              record.Cost,
		TipAmount:         record.TipAmount,
		Commission:        record.Commission,
		CommissionVAT:     record.CommissionVAT,
		Status:            record.Status,
		SubmittedAt:       record.SubmittedAt,
		AcceptedAt:        record.AcceptedAt,
		CollectedAt:       record.CollectedAt,
		DeliveredAt:       record.DeliveredAt,
		CanceledAt:        record.CanceledAt,
		DriverNotes:       record.DriverNotes,
		ReturnJob:         record.ReturnJob,
		PaymentMethod:     record.PaymentMethod,
		FuelSurcharge:     record.FuelSurcharge,
		UploadedAt:        record.UploadedAt,
		UploadedBy:        record.UploadedBy,
		CollectionMinutes: record.CollectionMinutes,
		DeliveryMinutes:   record.DeliveryMinutes,
		ExperienceMinutes: record.ExperienceMinutes,
	}
}
