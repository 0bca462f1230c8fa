// Package dto содержит типы JSON-контрактов собственного REST API сервиса.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	CompanyName     string `json:"company_name,omitempty"`
}

type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name,omitempty"`
}

type SessionResponse struct {
	State    string `json:"state"`
	User     *User  `json:"user"`
	Redirect string `json:"redirect"`
}

type UsersResponse struct {
	Total int    `json:"total"`
	Users []User `json:"users"`
}

type CreateUserResponse struct {
	User User `json:"user"`
}

type DeliveryRecord struct {
	ID                string     `json:"id"`
	JobID             string     `json:"job_id,omitempty"`
	InvoiceID         string     `json:"invoice_id,omitempty"`
	InvoiceNumber     string     `json:"invoice_number,omitempty"`
	Priority          string     `json:"priority,omitempty"`
	CustomerName      string     `json:"customer_name,omitempty"`
	CompanyName       string     `json:"company_name,omitempty"`
	CollectingDriver  string     `json:"collecting_driver,omitempty"`
	DeliveringDriver  string     `json:"delivering_driver,omitempty"`
	PickupAddress     string     `json:"pickup_address,omitempty"`
	DeliveryAddress   string     `json:"delivery_address,omitempty"`
	ServiceType       string     `json:"service_type,omitempty"`
	Cost              float64    `json:"cost"`
	TipAmount         *float64   `json:"tip_amount,omitempty"`
	Commission        *float64   `json:"commission,omitempty"`
	CommissionVAT     *float64   `json:"commission_vat,omitempty"`
	Status            string     `json:"status"`
	SubmittedAt       *time.Time `json:"submitted_at,omitempty"`
	AcceptedAt        *time.Time `json:"accepted_at,omitempty"`
	CollectedAt       *time.Time `json:"collected_at,omitempty"`
	DeliveredAt       *time.Time `json:"delivered_at,omitempty"`
	CanceledAt        *time.Time `json:"canceled_at,omitempty"`
	DriverNotes       string     `json:"driver_notes,omitempty"`
	ReturnJob         bool       `json:"return_job,omitempty"`
	PaymentMethod     string     `json:"payment_method,omitempty"`
	FuelSurcharge     *float64   `json:"fuel_surcharge,omitempty"`
	UploadedAt        *time.Time `json:"uploaded_at,omitempty"`
	UploadedBy        string     `json:"uploaded_by,omitempty"`
	CollectionMinutes *float64   `json:"collection_minutes,omitempty"`
	DeliveryMinutes   *float64   `json:"delivery_minutes,omitempty"`
	ExperienceMinutes *float64   `json:"experience_minutes,omitempty"`
}

type RecordsResponse struct {
	Total   int              `json:"total"`
	Source  string           `json:"source"`
	Records []DeliveryRecord `json:"records"`
}

type MetricSample struct {
	Value   float64 `json:"value"`
	Samples int     `json:"samples"`
}

type CompletionStatus struct {
	Percent   float64 `json:"percent"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
}

type TopDriver struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	Deliveries int    `json:"deliveries"`
}

type MetricsResponse struct {
	Timestamp          *time.Time        `json:"timestamp,omitempty"`
	TotalDeliveries    int               `json:"total_deliveries"`
	CustomerExperience *MetricSample     `json:"customer_experience,omitempty"`
	CollectionTime     *MetricSample     `json:"collection_time,omitempty"`
	AvgTime            *MetricSample     `json:"avg_time,omitempty"`
	TotalCommission    *float64          `json:"total_commission,omitempty"`
	ActiveDrivers      *int              `json:"active_drivers,omitempty"`
	ActiveCompanies    *int              `json:"active_companies,omitempty"`
	TotalDistance      *float64          `json:"total_distance,omitempty"`
	Completion         *CompletionStatus `json:"delivery_completion_status,omitempty"`
	TopDrivers         []TopDriver       `json:"top_drivers,omitempty"`
	AnalyzedRecords    int               `json:"analyzed_records"`
	DatabaseRecords    int               `json:"database_records"`
}

type StatusResponse struct {
	Connected       bool   `json:"connected"`
	DatabaseRecords int    `json:"database_records"`
	MemoryRecords   int    `json:"memory_records"`
	DatabaseURL     string `json:"database_url,omitempty"`
	LastUpload      string `json:"last_upload,omitempty"`
	Error           string `json:"error,omitempty"`
}

type CompanyStats struct {
	Name              string   `json:"name"`
	TotalOrders       int      `json:"total_orders"`
	PickupLocations   []string `json:"pickup_locations,omitempty"`
	TotalLocations    int      `json:"total_locations"`
	MostCommonAddress string   `json:"most_common_address,omitempty"`
	TotalDeliveries   int      `json:"total_deliveries"`
}

type CompaniesResponse struct {
	TotalCompanies int            `json:"total_companies"`
	TotalOrders    int            `json:"total_orders"`
	MostActive     *CompanyStats  `json:"most_active,omitempty"`
	Source         string         `json:"source,omitempty"`
	Companies      []CompanyStats `json:"companies"`
}

type DriverActivity struct {
	Name        string `json:"name"`
	Collections int    `json:"collections"`
	Deliveries  int    `json:"deliveries"`
	Total       int    `json:"total"`
}

type DriversResponse struct {
	TotalDrivers     int              `json:"total_drivers"`
	TotalDeliveries  int              `json:"total_deliveries"`
	AveragePerDriver float64          `json:"average_per_driver"`
	MostActive       *DriverActivity  `json:"most_active,omitempty"`
	Source           string           `json:"source,omitempty"`
	Drivers          []DriverActivity `json:"drivers"`
}

type DeliveryLocation struct {
	Address         string `json:"address"`
	TotalDeliveries int    `json:"total_deliveries"`
}

type LocationsResponse struct {
	TotalLocations  int                `json:"total_locations"`
	TotalDeliveries int                `json:"total_deliveries"`
	MostCommon      *DeliveryLocation  `json:"most_common,omitempty"`
	Source          string             `json:"source,omitempty"`
	Locations       []DeliveryLocation `json:"locations"`
}

type TimeInterval struct {
	Center      string `json:"center"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Orders      int    `json:"orders"`
	Description string `json:"description,omitempty"`
	Weekday     string `json:"weekday,omitempty"`
	DayPeriod   string `json:"day_period,omitempty"`
}

type PeakMoment struct {
	At     string `json:"at"`
	Orders int    `json:"orders"`
}

type TemporalResponse struct {
	Source         string         `json:"source,omitempty"`
	AnalyzedOrders int            `json:"analyzed_orders"`
	DistinctTimes  int            `json:"distinct_times"`
	IntervalCount  int            `json:"interval_count"`
	BusiestMoment  *PeakMoment    `json:"busiest_moment,omitempty"`
	OrdersByMoment []PeakMoment   `json:"orders_by_moment,omitempty"`
	TopIntervals   []TimeInterval `json:"top_intervals,omitempty"`
}

type MetricRange struct {
	Mean    *float64 `json:"mean"`
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
	Samples int      `json:"samples"`
}

type DelayedOrders struct {
	Total       int     `json:"total"`
	Percent     float64 `json:"percent"`
	Criteria    string  `json:"criteria,omitempty"`
	WithMetrics int     `json:"with_metrics"`
}

type CompanyMetricsResponse struct {
	Company            string        `json:"company"`
	TotalDeliveries    int           `json:"total_deliveries"`
	CollectionTime     MetricRange   `json:"collection_time"`
	AvgTime            MetricRange   `json:"avg_time"`
	CustomerExperience MetricRange   `json:"customer_experience"`
	DelayedOrders      DelayedOrders `json:"delayed_orders"`
}

type DriverStats struct {
	DriverName      string  `json:"driver_name"`
	TotalDeliveries int     `json:"total_deliveries"`
	TotalRevenue    float64 `json:"total_revenue"`
	SuccessRate     float64 `json:"success_rate"`
	AverageMinutes  float64 `json:"average_minutes"`
}

type StatusShare struct {
	Status  string  `json:"status"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type DriverStatsResponse struct {
	Drivers      []DriverStats `json:"drivers"`
	Distribution []StatusShare `json:"distribution"`
}

type UploadResponse struct {
	Message           string `json:"message"`
	File              string `json:"file"`
	TotalRecords      int    `json:"total_records"`
	Inserted          int    `json:"inserted"`
	DuplicatesSkipped int    `json:"duplicates_skipped"`
	SavedToDatabase   bool   `json:"saved_to_database"`
}

type ClearRequest struct {
	Confirmation string `json:"confirmation"`
}

type ClearResponse struct {
	Message string `json:"message"`
	Removed int    `json:"removed"`
}
