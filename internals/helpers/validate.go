package helper

import (
	"github.com/go-playground/validator/v10"

	"mudarris_backend/internals/constants"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// weekday: the value must be one of the fixed Arabic day labels.
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		return constants.IsWeekDay(fl.Field().String())
	})
	return v
}

// ValidateStruct runs validator.v10 on a DTO and flattens the result into the
// field→messages map used by JsonValidationError.
func ValidateStruct(s any) map[string][]string {
	if err := validate.Struct(s); err != nil {
		out := map[string][]string{}
		if ve, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ve {
				out[fe.Field()] = append(out[fe.Field()], fe.Tag())
			}
			return out
		}
		out["_"] = []string{err.Error()}
		return out
	}
	return nil
}
