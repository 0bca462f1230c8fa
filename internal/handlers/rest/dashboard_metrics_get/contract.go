//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_metrics_get_test
package dashboard_metrics_get

import (
	"context"

	"foxboard/internal/entities"
	"foxboard/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Metrics(ctx context.Context) (*entities.DashboardMetrics, error)
}

type Sessions interface {
	CurrentUser() *entities.AuthUser
}
