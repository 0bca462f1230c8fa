package request_id

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey struct{}

const headerName = "X-Request-ID"

// Middleware проставляет запросу идентификатор: берет клиентский из
// заголовка или генерирует новый. Идентификатор уходит в контекст и в
// заголовок ответа.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerName)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(headerName, id)
			ctx := context.WithValue(r.Context(), contextKey{}, id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext возвращает идентификатор запроса, пустую строку если его нет.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
