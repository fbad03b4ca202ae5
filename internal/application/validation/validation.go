// Package validation valida entradas antes de enviarlas al backend y devuelve
// un resultado etiquetado éxito/fallo en lugar de errores para fallos esperados.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/shopspring/decimal"
)

// Issue problema de validación de un campo.
type Issue struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Error agrupa las issues; errors.Is(err, domain.ErrInvalidInput) es true.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, is.Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error { return domain.ErrInvalidInput }

// Result variante etiquetada: OK() con Value(), o fallo con Issues().
type Result[T any] struct {
	value  T
	issues []Issue
}

// OK indica si la validación pasó.
func (r Result[T]) OK() bool { return len(r.issues) == 0 }

// Value devuelve el valor validado (zero value si falló).
func (r Result[T]) Value() T {
	if !r.OK() {
		var zero T
		return zero
	}
	return r.value
}

// Issues devuelve las issues (vacío si OK).
func (r Result[T]) Issues() []Issue { return r.issues }

// Err devuelve nil si OK o un *Error.
func (r Result[T]) Err() error {
	if r.OK() {
		return nil
	}
	return &Error{Issues: r.issues}
}

// Validate valida v con las etiquetas `validate` de sus campos.
func Validate[T any](v T) Result[T] {
	err := validate.Struct(v)
	if err == nil {
		return Result[T]{value: v}
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result[T]{issues: []Issue{{Field: "", Tag: "invalid", Message: err.Error()}}}
	}
	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{
			Field:   fieldPath(fe),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return Result[T]{issues: issues}
}

// Slice valida cada elemento; las issues se prefijan con el índice.
func Slice[T any](items []T) Result[[]T] {
	var issues []Issue
	for i, it := range items {
		r := Validate(it)
		for _, is := range r.issues {
			is.Field = fmt.Sprintf("[%d].%s", i, is.Field)
			issues = append(issues, is)
		}
	}
	if len(issues) > 0 {
		return Result[[]T]{issues: issues}
	}
	return Result[[]T]{value: items}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	// decimal.Decimal se valida como su representación string.
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		if d, ok := f.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("isodate", isISODate)
	_ = v.RegisterValidation("dgt", decimalCompare(func(c int) bool { return c > 0 }))
	_ = v.RegisterValidation("dgte", decimalCompare(func(c int) bool { return c >= 0 }))
	return v
}

func isISODate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != len("2006-01-02") {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func decimalCompare(ok func(int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		p, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return ok(d.Cmp(p))
	}
}

// fieldPath quita el nombre del struct raíz del namespace ("LotInput.lot_number" -> "lot_number").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", field)
	case "isodate":
		return fmt.Sprintf("%s debe ser una fecha YYYY-MM-DD", field)
	case "dgt", "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", field, fe.Param())
	case "dgte", "gte":
		return fmt.Sprintf("%s debe ser mayor o igual que %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s supera el máximo %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s requiere al menos %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param())
	}
	return fmt.Sprintf("%s no es válido (%s)", field, fe.Tag())
}
