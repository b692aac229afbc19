package config

import (
	stdErrors "errors"

	"github.com/go-playground/validator/v10"

	"github.com/q3ui/uibridge/domain/errors"
)

// validate is a package-level singleton for better performance.
// Creating a new validator on each call is expensive; reusing is recommended.
var validate = validator.New()

// Validate checks cfg against its struct tags. The first failing field is
// returned as a *errors.ConfigError.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if stdErrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &errors.ConfigError{Field: fe.Namespace(), Err: fe}
	}
	return &errors.ConfigError{Err: err}
}
