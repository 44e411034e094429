package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherdash.app/pkg/validation"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// registerValidators adds the custom binding rules to gin's validator engine
func registerValidators() error {
	validatorsOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		validatorsErr = engine.RegisterValidation("countrycode", func(fl validator.FieldLevel) bool {
			return validation.IsCountryCode(fl.Field().String())
		})
	})
	return validatorsErr
}

// validationMessage renders the first failed binding rule of a request
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "Invalid request format"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "countrycode":
		return "country code must be exactly 2 letters"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return "Invalid request format"
	}
}
