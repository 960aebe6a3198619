package settings

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	apperrors "github.com/frahmantamala/manager-dashboard/internal"
)

// fieldCodes gives each validated field its detail code.
var fieldCodes = map[string]apperrors.ErrorCode{
	"amount":    apperrors.ErrCodeInvalidAmount,
	"threshold": apperrors.ErrCodeInvalidThreshold,
}

type structValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func newStructValidator() (*structValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &structValidator{validate: validate, translator: trans}, nil
}

// Struct validates v and reports failures as one VALIDATION_FAILED error.
func (sv *structValidator) Struct(v any) error {
	err := sv.validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperrors.NewInternalError("failed to validate request", err)
	}

	details := make([]apperrors.ValidationError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		code, ok := fieldCodes[fe.Field()]
		if !ok {
			code = apperrors.ErrCodeValidationFailed
		}
		details = append(details, apperrors.ValidationError{
			Field:   fe.Field(),
			Message: fe.Translate(sv.translator),
			Code:    string(code),
		})
	}

	return apperrors.NewValidationError("Validation failed", apperrors.ErrCodeValidationFailed).
		WithDetails(apperrors.ValidationErrors{Errors: details})
}
