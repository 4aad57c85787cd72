package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"conduit/internal/apperr"

	"github.com/go-playground/validator/v10"
)

// Validator: обёртка над go-playground/validator: имена полей из json-тегов,
// сообщения в формате {"field": ["can't be blank"]}.
type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("nocontrol", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsControl) < 0
	})

	return &Validator{validator: validate}
}

// Validate возвращает apperr.Invalid с сообщениями по полям.
func (v *Validator) Validate(i interface{}) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Internal(err)
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
	}
	return apperr.Invalid(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "can't be blank"
	case "min":
		if fe.Param() == "1" {
			return "can't be blank"
		}
		return fmt.Sprintf("is too short (minimum is %s characters)", fe.Param())
	case "max":
		return fmt.Sprintf("is too long (maximum is %s characters)", fe.Param())
	default:
		return "is invalid"
	}
}
