package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los errores usan el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// gte/gt sobre montos decimales.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// bindJSON decodifica y valida el cuerpo en out.
// Si el cuerpo no es válido escribe la respuesta 400 y devuelve ok=false.
func bindJSON(c *fiber.Ctx, out any) (ok bool, err error) {
	if err := c.BodyParser(out); err != nil {
		return false, invalidData(c, decodeMessage(err))
	}
	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return false, err
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		return false, invalidData(c, msgs...)
	}
	return true, nil
}

func fieldMessage(fe validator.FieldError) string {
	var reason string
	switch fe.Tag() {
	case "required":
		reason = "Required"
	case "email":
		reason = "Invalid email"
	case "gte":
		reason = "Number must be greater than or equal to " + fe.Param()
	case "gt":
		reason = "Number must be greater than " + fe.Param()
	default:
		reason = "Invalid " + fe.Tag()
	}
	return fe.Field() + " is " + reason
}

func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s is Expected %s, received %s", typeErr.Field, typeErr.Type, typeErr.Value)
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return "body is " + fiberErr.Message
	}
	return "body is " + err.Error()
}
