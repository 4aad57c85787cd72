package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"conduit/internal/apperr"
	"conduit/internal/metrics"
	"conduit/internal/reqctx"
	"conduit/internal/utils"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGate(t *testing.T) (*Gate, string) {
	t.Helper()
	tokens := utils.NewHMACTokenService("test-secret", time.Hour)
	token, err := tokens.Issue(7)
	require.NoError(t, err)
	return NewGate(tokens), token
}

func TestRequireAuth(t *testing.T) {
	g, token := newGate(t)

	id, err := g.RequireAuth("Token " + token)
	require.NoError(t, err)
	assert.EqualValues(t, 7, id.UserID)
	assert.Equal(t, token, id.Token)

	for _, header := range []string{"", "Bearer " + token, token, "Token", "Token a b", "Token garbage"} {
		_, err := g.RequireAuth(header)
		assert.True(t, apperr.Is(err, apperr.KindUnauthorized), "header %q", header)
	}
}

func TestOptionalAuth_Degrades(t *testing.T) {
	g, token := newGate(t)

	id, ok := g.OptionalAuth("Token " + token)
	assert.True(t, ok)
	assert.EqualValues(t, 7, id.UserID)

	_, ok = g.OptionalAuth("")
	assert.False(t, ok)

	_, ok = g.OptionalAuth("Token garbage")
	assert.False(t, ok)
}

func TestGateMiddlewares(t *testing.T) {
	g, token := newGate(t)

	var seen *int64
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = nil
		if v := reqctx.Viewer(r.Context()); v != nil {
			seen = &v.UserID
		}
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	g.Required(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"missing or malformed authorization header"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Token "+token)
	rec = httptest.NewRecorder()
	g.Required(h).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.EqualValues(t, 7, *seen)

	req = httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	req.Header.Set("Authorization", "Token expired-or-bad")
	rec = httptest.NewRecorder()
	g.Optional(h).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, seen)
}

func TestRequestID(t *testing.T) {
	var got string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = reqctx.GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, got)
	assert.Equal(t, got, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", got)
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestRateLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := RateLimit(0.001, 1)(ok)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// burst исчерпан, следующий токен не успеет появиться до дедлайна
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"too many requests"}`, rec.Body.String())
}

func TestRateLimit_Disabled(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := RateLimit(0, 0)(ok)

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Metrics)
	r.HandleFunc("/api/profiles/{username}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods(http.MethodGet)

	counter := metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/api/profiles/{username}", "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profiles/jake", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
