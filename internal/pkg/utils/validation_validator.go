package utils

import (
	"regexp"

	"provilink-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("email_address", validateEmailAddress)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RoleUser || value == constvars.RoleProvider || value == constvars.RoleAdmin
}

func validateEmailAddress(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexEmail)
	return re.MatchString(fl.Field().String())
}
