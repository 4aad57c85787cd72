package middleware

import (
	"net/http"
	"strings"

	"conduit/internal/apperr"
	"conduit/internal/logger"
	"conduit/internal/models"
	"conduit/internal/reqctx"
	"conduit/internal/utils/helpers"

	"go.uber.org/zap"
)

const authScheme = "Token"

// TokenVerifier проверяет подпись, алгоритм и срок действия токена.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// Gate: авторизация по заголовку "Authorization: Token <jwt>".
// Required отвечает 401, Optional при любой ошибке пропускает запрос анонимным.
type Gate struct {
	tokens TokenVerifier
}

func NewGate(tokens TokenVerifier) *Gate {
	return &Gate{tokens: tokens}
}

func (g *Gate) RequireAuth(header string) (models.Identity, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != authScheme {
		return models.Identity{}, apperr.Unauthorized("missing or malformed authorization header")
	}
	userID, err := g.tokens.Verify(parts[1])
	if err != nil {
		return models.Identity{}, apperr.Unauthorized("invalid or expired token")
	}
	return models.Identity{UserID: userID, Token: parts[1]}, nil
}

func (g *Gate) OptionalAuth(header string) (models.Identity, bool) {
	if header == "" {
		return models.Identity{}, false
	}
	id, err := g.RequireAuth(header)
	return id, err == nil
}

func (g *Gate) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := g.RequireAuth(r.Header.Get("Authorization"))
		if err != nil {
			logger.WithCtx(r.Context()).Warn("Auth: запрос отклонён", zap.String("path", r.URL.Path), zap.Error(err))
			helpers.WriteError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(reqctx.WithIdentity(r.Context(), id)))
	})
}

func (g *Gate) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := g.OptionalAuth(r.Header.Get("Authorization")); ok {
			r = r.WithContext(reqctx.WithIdentity(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
