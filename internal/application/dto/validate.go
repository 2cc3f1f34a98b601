package dto

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
)

var validate = newValidator()

// newValidator usa el nombre JSON del campo en los errores, que es lo que ve el cliente.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// access_type: uno de los roles de entity.AccessTypes.
	_ = v.RegisterValidation("access_type", func(fl validator.FieldLevel) bool {
		return slices.Contains(entity.AccessTypes, fl.Field().String())
	})
	return v
}

// Validate aplica las reglas `validate` del DTO. Devuelve *domain.UserInputError con un
// mensaje por campo inválido.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validar entrada: %w", err)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &domain.UserInputError{Message: "Invalid input.", Errors: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " must not be empty"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "access_type":
		return fe.Field() + " must be one of: " + strings.Join(entity.AccessTypes, " ")
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

var dateLayouts = []string{time.DateOnly, time.RFC3339Nano, time.RFC3339}

// ParseDate acepta YYYY-MM-DD (medianoche UTC) o RFC3339.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida %q", s)
}
