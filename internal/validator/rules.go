package validator

import (
	"log"
	"regexp"

	"geekku_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^0\d{1,2}-?\d{3,4}-?\d{4}$`)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'company_type': estate или interior
	mustRegister("company_type", validateCompanyType)

	// 'phone': корейский номер, дефисы необязательны
	mustRegister("phone", validatePhone)
}

// --- Функции валидации ---

func validateCompanyType(fl validator.FieldLevel) bool {
	return models.CompanyType(fl.Field().String()).Valid()
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустое значение - забота 'required'
	}
	return phonePattern.MatchString(value)
}
