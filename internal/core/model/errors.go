package model

import (
	"errors"
	"fmt"
)

// ErrValidation marks input rejected before reaching the backend.
var ErrValidation = errors.New("invalid input")

func invalid(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}
