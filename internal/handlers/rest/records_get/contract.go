//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=records_get_test
package records_get

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
	Records(ctx context.Context) (*entities.RecordSet, error)
	HybridRecords(ctx context.Context) (*entities.RecordSet, error)
}
