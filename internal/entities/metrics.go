package entities

import "time"

// DashboardMetrics - канонический снимок агрегированных метрик.
// Бэкенд отдает два формата (легаси и текущий), адаптер шлюза приводит
// оба к этому виду, внутренний код другой формы не видит.
type DashboardMetrics struct {
	Timestamp time.Time

	TotalDeliveries   int
	ExperienceMinutes MetricSample
	CollectionMinutes MetricSample
	DeliveryMinutes   MetricSample
	TotalCommission   float64
	ActiveDrivers     int
	ActiveCompanies   int
	TotalDistance     float64
	Completion        CompletionStatus
	TopDrivers        []TopDriver
	AnalyzedRecords   int
	DatabaseRecords   int
}

// MetricSample - среднее значение плюс число наблюдений, по которым оно посчитано.
type MetricSample struct {
	Value   float64
	Samples int
}

type CompletionStatus struct {
	Percent   float64
	Completed int
	Total     int
}

type TopDriver struct {
	Rank       int
	Name       string
	Deliveries int
}

// StatusInfo - связность бэкенда и счетчики записей.
type StatusInfo struct {
	Connected       bool
	DatabaseRecords int
	MemoryRecords   int
	DatabaseURL     string
	LastUpload      string
	Err             string
}
