package entities

// Агрегации, которые бэкенд считает на своей стороне.

type CompanyStats struct {
	Name              string
	TotalOrders       int
	PickupLocations   []string
	TotalLocations    int
	MostCommonAddress string
	TotalDeliveries   int
}

type CompanyReport struct {
	TotalCompanies int
	TotalOrders    int
	MostActive     *CompanyStats
	Source         string
	Companies      []CompanyStats
}

type DriverActivity struct {
	Name        string
	Collections int
	Deliveries  int
	Total       int
}

type DriverReport struct {
	TotalDrivers     int
	TotalDeliveries  int
	AveragePerDriver float64
	MostActive       *DriverActivity
	Source           string
	Drivers          []DriverActivity
}

type DeliveryLocation struct {
	Address         string
	TotalDeliveries int
}

type LocationReport struct {
	TotalLocations  int
	TotalDeliveries int
	MostCommon      *DeliveryLocation
	Source          string
	Locations       []DeliveryLocation
}

// TimeInterval - 30-минутное окно спроса.
type TimeInterval struct {
	Center      string
	Start       string
	End         string
	Orders      int
	Description string
	Weekday     string
	DayPeriod   string
}

type PeakMoment struct {
	At     string
	Orders int
}

type TemporalReport struct {
	Source         string
	AnalyzedOrders int
	DistinctTimes  int
	IntervalCount  int
	BusiestMoment  *PeakMoment
	OrdersByMoment []PeakMoment
	TopIntervals   []TimeInterval
}

// CompanyMetrics - детальные метрики одной компании (/empresa-metricas).
type CompanyMetrics struct {
	Company           string
	TotalDeliveries   int
	CollectionMinutes MetricRange
	DeliveryMinutes   MetricRange
	ExperienceMinutes MetricRange
	DelayedOrders     DelayedOrders
}

type MetricRange struct {
	Mean    *float64
	Min     *float64
	Max     *float64
	Samples int
}

type DelayedOrders struct {
	Total       int
	Percent     float64
	Criteria    string
	WithMetrics int
}

// DriverStats - статистика по водителю, считается локально из сырых записей.
type DriverStats struct {
	DriverName      string
	TotalDeliveries int
	TotalRevenue    float64
	SuccessRate     float64
	AverageMinutes  float64
}

// StatusDistribution - распределение записей по статусам (без submitted).
type StatusDistribution struct {
	Status  string
	Count   int
	Percent float64
}
