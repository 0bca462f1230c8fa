//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=upload_post_test
package upload_post

import (
	"context"
	"io"

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
	UploadSpreadsheet(ctx context.Context, filename string, file io.Reader) (*entities.UploadResult, error)
}
