package authz

import (
	"foxboard/internal/entities"
	"foxboard/pkg/logger"
)

// SessionSource - источник текущей сессии сервиса.
type SessionSource interface {
	Initialized() bool
	CurrentUser() *entities.AuthUser
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
