package utils

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// InitValidator registers the custom rules into gin's binding engine.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("dateformat", ValidateDateFormatRule)
	}
}

// ValidateDateFormatRule accepts calendar dates in 2006-01-02 form.
func ValidateDateFormatRule(fl validator.FieldLevel) bool {
	return ValidateDateFormat(fl.Field().String())
}

func ValidateDateFormat(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
