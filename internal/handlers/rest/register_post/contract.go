//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=register_post_test
package register_post

import (
	"context"

	"foxboard/internal/entities"
	"foxboard/internal/service/session"
	"foxboard/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Register(ctx context.Context, in session.RegisterInput) (*entities.AuthUser, error)
}
