package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("weekday", validateWeekday)
	validate.RegisterValidation("hhmm", validateClock)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, err := ParseWeekday(fl.Field().String())
	return err == nil
}

func validateClock(fl validator.FieldLevel) bool {
	_, _, err := ParseClock(fl.Field().String())
	return err == nil
}
