package serverutils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return ValidationError(err.Error())
		}
		return err
	}
	return nil
}
