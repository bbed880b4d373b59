// Package validate собирает валидатор входных данных с доменными правилами:
// кубинский формат телефона и парольная политика.
package validate

import (
	"regexp"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/business-catalog/internal/lib/password"
)

// Телефон: ровно 11 символов, код страны +53 и восемь цифр.
var cubaPhoneRegexp = regexp.MustCompile(`^\+53\d{8}$`)

// New возвращает валидатор с зарегистрированными правилами
// cubaphone и strongpwd.
func New() *validator.Validate {
	v := validator.New()
	// Ошибки регистрации возможны только при пустом имени правила.
	_ = v.RegisterValidation("cubaphone", func(fl validator.FieldLevel) bool {
		return cubaPhoneRegexp.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpwd", func(fl validator.FieldLevel) bool {
		return password.IsStrong(fl.Field().String())
	})
	return v
}
