package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct valida un DTO con sus tags `validate` y devuelve un error legible
// con todos los campos que fallaron, listo para responder 400.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("el campo %s es obligatorio", field)
	case "min":
		return fmt.Sprintf("el campo %s debe tener al menos %s caracteres", field, fe.Param())
	case "max":
		return fmt.Sprintf("el campo %s supera el máximo de %s caracteres", field, fe.Param())
	case "gt":
		return fmt.Sprintf("el campo %s debe ser mayor que %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("el campo %s no es un email válido", field)
	case "oneof":
		return fmt.Sprintf("el campo %s debe ser uno de: %s", field, fe.Param())
	default:
		return fmt.Sprintf("el campo %s no es válido (%s)", field, fe.Tag())
	}
}
