package serverutils

import (
	"errors"
	"fmt"

	"notekeep-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and converts failures into
// a 400 with per-field detail.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewBadRequest(err.Error())
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
		})
	}
	return apperror.NewValidation("Validation failed", fields)
}
