package middleware

import (
	"net/http"
	"strconv"
	"time"

	"conduit/internal/metrics"

	"github.com/gorilla/mux"
)

// Metrics должен подключаться через router.Use: тогда маршрут уже сопоставлен
// и в метки попадает шаблон пути, а не сам путь.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lrw, r)

		metrics.ObserveRequest(r.Method, routeTemplate(r), strconv.Itoa(lrw.statusCode), time.Since(start))
	})
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unmatched"
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}
	return tpl
}
