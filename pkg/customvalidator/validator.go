package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registra as regras de validação específicas do
// domínio no validador compartilhado.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("route_status", isRouteStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("cep_br", isCepBR); err != nil {
		return err
	}
	if err := v.RegisterValidation("data_br", isDataValida); err != nil {
		return err
	}
	return nil
}

func isRouteStatus(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "pendente" || s == "executado"
}

// CEP no formato 00000-000 ou 00000000.
func isCepBR(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^\d{5}-?\d{3}$`)
	return re.MatchString(fl.Field().String())
}

// Datas aceitas como AAAA-MM-DD (inputs type=date do front).
func isDataValida(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	return re.MatchString(fl.Field().String())
}
