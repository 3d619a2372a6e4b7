package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/agency-web/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reportar los nombres del formulario (titleEn) en vez de los del struct (TitleEn).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate aplica las reglas `validate:"..."` del struct.
// Devuelve *domain.ValidationError (envuelve domain.ErrInvalidInput) con campo -> regla.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, fe := range validationErrors {
			fields[fe.Field()] = fe.Tag()
		}
		return &domain.ValidationError{Fields: fields}
	}
	return fmt.Errorf("validación: %w", err)
}
