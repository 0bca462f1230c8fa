//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=company_metrics_get_test
package company_metrics_get

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
	CompanyMetrics(ctx context.Context, company string) (*entities.CompanyMetrics, error)
}

type Sessions interface {
	CurrentUser() *entities.AuthUser
}
