package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Unauthorized("x"), http.StatusUnauthorized},
		{Forbidden("x"), http.StatusForbidden},
		{NotFound("x"), http.StatusNotFound},
		{Unprocessable("x"), http.StatusUnprocessableEntity},
		{Field("email", "is invalid"), http.StatusUnprocessableEntity},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.err.Status(), c.err.Message)
	}
}

func TestFrom(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", NotFound("article not found"))
	assert.Equal(t, KindNotFound, From(wrapped).Kind)
	assert.True(t, Is(wrapped, KindNotFound))

	plain := errors.New("connection reset")
	got := From(plain)
	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, "internal server error", got.Message)
	assert.ErrorIs(t, got, plain)
}
