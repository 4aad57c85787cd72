package middleware

import (
	"net/http"

	"conduit/internal/logger"
	"conduit/internal/utils/helpers"

	"golang.org/x/time/rate"
)

// RateLimit: общий на процесс лимитер: запрос ждёт токен,
// а если контекст запроса закончился раньше, получает 429.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := limiter.Wait(r.Context()); err != nil {
				logger.WithCtx(r.Context()).Warn("RateLimit: запрос отклонён")
				helpers.Error(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
