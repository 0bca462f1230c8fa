//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ingest_test
package ingest

import (
	"context"
	"io"

	"foxboard/internal/entities"
	"foxboard/internal/service/query"
)

type Gateway interface {
	Upload(ctx context.Context, filename string, file io.Reader) (*entities.UploadResult, error)
	ClearDatabase(ctx context.Context) (*entities.ClearResult, error)
}

// Invalidator - кеш со стороны записи: мутации сбрасывают и
// переписывают записи, читающая сторона их не трогает.
type Invalidator interface {
	Invalidate(keys ...query.Key)
	InvalidatePrefix(prefix query.Key)
	Put(key query.Key, data interface{})
}
