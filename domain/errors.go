package domain

import "errors"

// ErrValidation совпадает с любой *ValidationError через errors.Is.
var ErrValidation = errors.New("validation error")

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
