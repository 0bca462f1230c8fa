package authz

import (
	"encoding/json"
	"net/http"

	"foxboard/internal/entities"
	"foxboard/internal/service/access"
	"foxboard/pkg/logger"
)

type errorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// Middleware пускает к ресурсу только роль required; пустая required
// означает "любой авторизованный". Проверка выполняется строго после
// завершения инициализации сессии, во время нее отдается 503.
func Middleware(log handlerLogger, sessions SessionSource, required entities.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.Initialized() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "session is initializing", http.StatusServiceUnavailable)
				return
			}

			user := sessions.CurrentUser()
			if access.CanAccess(user, required) {
				next.ServeHTTP(w, r)
				return
			}

			status := http.StatusForbidden
			if user == nil {
				status = http.StatusUnauthorized
			}

			log.With(
				logger.NewField("path", r.URL.Path),
				logger.NewField("required_role", required.String()),
			).Warn("access denied")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			if err := json.NewEncoder(w).Encode(errorResponse{
				Error:    "access denied",
				Redirect: access.RedirectPath(user),
			}); err != nil {
				log.Warn("failed to write access denied response",
					logger.NewField("error", err.Error()),
				)
			}
		})
	}
}
