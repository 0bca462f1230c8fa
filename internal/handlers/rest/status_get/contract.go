//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_get_test
package status_get

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
	Status(ctx context.Context) (*entities.StatusInfo, error)
}
