//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=database_delete_test
package database_delete

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
	ClearDatabase(ctx context.Context, confirmation string) (*entities.ClearResult, error)
}
