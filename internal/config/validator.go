package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	cberrors "github.com/alexisbeaulieu97/counterbuddy/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator. Field errors are reported
// under their YAML key names.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})

	return validateInst
}

// ValidateSettings checks step and limit constraints.
func ValidateSettings(settings *Settings) error {
	if settings == nil {
		return cberrors.NewValidationError("", "settings are nil", nil)
	}

	if err := validatorInstance().Struct(settings); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return cberrors.NewValidationError("", err.Error(), err)
	}

	fe := ves[0]
	return cberrors.NewValidationError(fe.Field(), describe(fe), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("must not be below %s", yamlKey(fe.Param()))
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

// yamlKey maps a Go field name used as a validator parameter to its YAML key.
func yamlKey(goName string) string {
	field, ok := reflect.TypeOf(Settings{}).FieldByName(goName)
	if !ok {
		return goName
	}
	return strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
}
