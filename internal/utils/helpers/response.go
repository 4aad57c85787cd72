package helpers

import (
	"encoding/json"
	"net/http"

	"conduit/internal/apperr"
	"conduit/internal/logger"

	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationResponse struct {
	Errors map[string][]string `json:"errors"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		return
	}
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	JSON(w, status, ErrorResponse{Error: errMsg})
}

// WriteError отдаёт ошибку в стабильном JSON-формате.
// Причина внутренних ошибок пишется только в лог.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	e := apperr.From(err)
	if e.Kind == apperr.KindInternal {
		logger.WithCtx(r.Context()).Error("Внутренняя ошибка",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(e.Err),
		)
	}
	if len(e.Fields) > 0 {
		JSON(w, e.Status(), ValidationResponse{Errors: e.Fields})
		return
	}
	Error(w, e.Status(), e.Message)
}
