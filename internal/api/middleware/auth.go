package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmtrv/RB-ReservationService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth middleware аутентификации по заголовку X-User-ID
// Проверку подлинности выполняет внешний gateway; здесь заголовок только
// извлекается и кладется в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("X-User-ID")
		if header == "" {
			handlers.RespondUnauthorized(w, "missing X-User-ID header")
			return
		}

		userID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid X-User-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
