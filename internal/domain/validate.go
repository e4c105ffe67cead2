package domain

import (
	"fmt"

	"github.com/go-playground/validator"
)

// go-playground/validator suggests a single long-lived instance; it caches
// struct metadata internally.
var validate = validator.New()

// Validate runs the struct-tag schema constraints on v and wraps any failure
// in ErrValidation so callers can classify it with errors.Is.
func Validate(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
