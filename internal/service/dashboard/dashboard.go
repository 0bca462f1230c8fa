package dashboard

import (
	"context"
	"fmt"

	"foxboard/internal/entities"
	"foxboard/internal/gateway/analytics"
	"foxboard/internal/service/query"
)

// Dashboard - читающая сторона: ресурсы дашборда поверх кеша и шлюза
// аналитики. Тяжелые ресурсы гейтятся статусом базы: по пустой базе
// в сеть не ходим.
type Dashboard struct {
	gateway Gateway
	cache   Cache
}

func New(gateway Gateway, cache Cache) *Dashboard {
	return &Dashboard{
		gateway: gateway,
		cache:   cache,
	}
}

func (d *Dashboard) Status(ctx context.Context) (*entities.StatusInfo, error) {
	data, err := d.cache.Resolve(ctx, query.KeyStatus, query.StatusStaleAfter, func(ctx context.Context) (interface{}, error) {
		return d.gateway.Status(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	return data.(*entities.StatusInfo), nil
}

// databaseEmpty сообщает, стоит ли вообще запрашивать тяжелые ресурсы.
func (d *Dashboard) databaseEmpty(ctx context.Context) (bool, error) {
	status, err := d.Status(ctx)
	if err != nil {
		return false, err
	}
	return status.DatabaseRecords == 0, nil
}

// Records возвращает полную коллекцию записей из базы.
func (d *Dashboard) Records(ctx context.Context) (*entities.RecordSet, error) {
	return d.records(ctx, query.KeyRecords, analytics.SourceDatabase)
}

// HybridRecords - то же, но с гибридного источника бэкенда.
func (d *Dashboard) HybridRecords(ctx context.Context) (*entities.RecordSet, error) {
	return d.records(ctx, query.KeyRecordsHybrid, analytics.SourceHybrid)
}

func (d *Dashboard) records(ctx context.Context, key query.Key, source analytics.RecordSource) (*entities.RecordSet, error) {
	empty, err := d.databaseEmpty(ctx)
	if err != nil {
		return nil, err
	}
	if empty {
		return &entities.RecordSet{}, nil
	}

	data, err := d.cache.Resolve(ctx, key, query.DefaultStaleAfter, func(ctx context.Context) (interface{}, error) {
		return d.gateway.FetchAllRecords(ctx, source)
	})
	if err != nil {
		return nil, fmt.Errorf("records: %w", err)
	}
	return data.(*entities.RecordSet), nil
}

// Metrics возвращает агрегированные метрики; по пустой базе - нулевой
// снимок без похода в сеть.
func (d *Dashboard) Metrics(ctx context.Context) (*entities.DashboardMetrics, error) {
	empty, err := d.databaseEmpty(ctx)
	if err != nil {
		return nil, err
	}
	if empty {
		return &entities.DashboardMetrics{}, nil
	}

	data, err := d.cache.Resolve(ctx, query.KeyMetrics, query.DefaultStaleAfter, func(ctx context.Context) (interface{}, error) {
		return d.gateway.Metrics(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	return data.(*entities.DashboardMetrics), nil
}

func (d *Dashboard) Companies(ctx context.Context) (*entities.CompanyReport, error) {
	data, err := d.cache.Resolve(ctx, query.KeyCompanies, query.DefaultStaleAfter, func(ctx context.Context) (interface{}, error) {
		return d.gateway.Companies(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("companies: %w", err)
	}
	return data.(*entities.CompanyReport), nil
}

func (d *Dashboard) Drivers(ctx context.Context) (*entities.DriverReport, error) {
	data, err := d.cache.Resolve(ctx, query.KeyDrivers, query.DefaultStaleAfter, func(ctx context.Context) (interface{}, error) {
		return d.gateway.Drivers(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("drivers: %w", err)
	}
	return data.(*entities.DriverReport), nil
}

func (d *Dashboard) Locations(ctx context.Context) (*entities.LocationReport, error) {
	data, err := d.cache.Resolve(ctx, query.KeyLocations, query.DefaultStaleAfter, func(ctx context.Context) (interface{}, error) {
		return d.gateway.Locations(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("locations: %w", err)
	}
	return data.(*entities.LocationReport), nil
}

func (d *Dashboard) Temporal(ctx context.Context) (*entities.TemporalReport, error) {
	data, err := d.cache.Resolve(ctx, query.KeyTemporal, query.DefaultStaleAfter, func(ctx context.Context) (interface{}, error) {
		return d.gateway.Temporal(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("temporal: %w", err)
	}
	return data.(*entities.TemporalReport), nil
}

func (d *Dashboard) CompanyMetrics(ctx context.Context, company string) (*entities.CompanyMetrics, error) {
	if company == "" {
		return nil, ErrCompanyRequired
	}

	key := query.KeyCompanyMetrics + ":" + query.Key(company)
	data, err := d.cache.Resolve(ctx, key, query.DefaultStaleAfter, func(ctx context.Context) (interface{}, error) {
		return d.gateway.CompanyMetrics(ctx, company)
	})
	if err != nil {
		return nil, fmt.Errorf("company metrics: %w", err)
	}
	return data.(*entities.CompanyMetrics), nil
}

// DriverStats считает локальную статистику по водителям из сырых записей.
func (d *Dashboard) DriverStats(ctx context.Context) ([]entities.DriverStats, error) {
	set, err := d.Records(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeDriverStats(set.Records), nil
}

// StatusBreakdown считает локальное распределение записей по статусам.
func (d *Dashboard) StatusBreakdown(ctx context.Context) ([]entities.StatusDistribution, error) {
	set, err := d.Records(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeStatusDistribution(set.Records), nil
}
