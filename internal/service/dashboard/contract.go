//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_test
package dashboard

import (
	"context"
	"time"

	"foxboard/internal/entities"
	"foxboard/internal/gateway/analytics"
	"foxboard/internal/service/query"
)

type Gateway interface {
	Status(ctx context.Context) (*entities.StatusInfo, error)
	FetchAllRecords(ctx context.Context, source analytics.RecordSource) (*entities.RecordSet, error)
	Metrics(ctx context.Context) (*entities.DashboardMetrics, error)
	Companies(ctx context.Context) (*entities.CompanyReport, error)
	Drivers(ctx context.Context) (*entities.DriverReport, error)
	Locations(ctx context.Context) (*entities.LocationReport, error)
	Temporal(ctx context.Context) (*entities.TemporalReport, error)
	CompanyMetrics(ctx context.Context, company string) (*entities.CompanyMetrics, error)
}

type Cache interface {
	Resolve(ctx context.Context, key query.Key, staleAfter time.Duration, fetch query.FetchFunc) (interface{}, error)
}
