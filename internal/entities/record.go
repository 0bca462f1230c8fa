package entities

import (
	"time"
)

// DeliveryRecord - одна строка логистического заказа из бэкенда аналитики.
// Записи создаются загрузкой таблиц на бэкенде и read-only для нас,
// кроме массовой очистки базы.
type DeliveryRecord struct {
	ID               string
	JobID            string
	InvoiceID        string
	InvoiceNumber    string
	Priority         string
	CustomerName     string
	CompanyName      string
	CollectingDriver string
	DeliveringDriver string
	PickupAddress    string
	DeliveryAddress  string
	ServiceType      string
	Cost             float64
	TipAmount        *float64
	Commission       *float64
	CommissionVAT    *float64
	Status           string
	SubmittedAt      *time.Time
	AcceptedAt       *time.Time
	CollectedAt      *time.Time
	DeliveredAt      *time.Time
	CanceledAt       *time.Time
	DriverNotes      string
	ReturnJob        bool
	PaymentMethod    string
	FuelSurcharge    *float64
	UploadedAt       *time.Time
	UploadedBy       string

	// Производные длительности считает бэкенд, для нас это непрозрачные числа.
	CollectionMinutes *float64
	DeliveryMinutes   *float64
	ExperienceMinutes *float64
}

// RecordSet - логическая коллекция записей, собранная из постраничных ответов.
type RecordSet struct {
	Total   int
	Source  string
	Records []DeliveryRecord
}
