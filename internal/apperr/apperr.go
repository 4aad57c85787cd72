// Package apperr описывает ошибки, видимые клиенту API, и их HTTP-статусы.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindUnprocessable
)

type Error struct {
	Kind    Kind
	Message string
	// Fields: ошибки валидации по полям: {"email": ["is invalid"]}.
	Fields map[string][]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Status() int {
	switch e.Kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Unprocessable(msg string) *Error {
	return &Error{Kind: KindUnprocessable, Message: msg}
}

// Invalid: ошибка валидации с сообщениями по полям.
func Invalid(fields map[string][]string) *Error {
	return &Error{Kind: KindUnprocessable, Message: "validation failed", Fields: fields}
}

// Field: ошибка одного поля.
func Field(name, msg string) *Error {
	return Invalid(map[string][]string{name: {msg}})
}

// Internal скрывает причину от клиента; она остаётся в Err для логов.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// From приводит любую ошибку к *Error; неизвестные становятся Internal.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}

func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
