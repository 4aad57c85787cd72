package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"conduit/internal/apperr"
	"conduit/internal/models"
	"conduit/internal/reqctx"
)

const maxBodyBytes = 1 << 20

// decodeJSON читает тело запроса; битый JSON даёт ошибку поля body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Field("body", "is invalid")
	}
	return nil
}

// actor: identity из контекста; на маршрутах с обязательной авторизацией она всегда есть.
func actor(r *http.Request) (models.Identity, error) {
	id, ok := reqctx.GetIdentity(r.Context())
	if !ok {
		return models.Identity{}, apperr.Unauthorized("missing or malformed authorization header")
	}
	return id, nil
}

// queryInt читает неотрицательное целое из query; пустое значение даёт 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperr.Field(name, "is invalid")
	}
	return n, nil
}

func page(r *http.Request) (limit, offset int, err error) {
	if limit, err = queryInt(r, "limit"); err != nil {
		return 0, 0, err
	}
	if offset, err = queryInt(r, "offset"); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}
