// SPDX-License-Identifier: MPL-2.0

package passgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is the sentinel error wrapped by InvalidConfigurationError.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrGeneration is the sentinel error wrapped by GenerationError.
	ErrGeneration = errors.New("generation failed")
)

type (
	// InvalidConfigurationError is returned by Resolve when the requested
	// options cannot produce a usable GenerationSpec.
	InvalidConfigurationError struct {
		// Field names the option that made the configuration unusable.
		Field string
		// Reason is a human-readable explanation.
		Reason string
	}

	// GenerationError is returned by the Generator when it is handed a spec
	// it cannot honor. Specs produced by Resolve never trigger it, except for
	// diceware specs paired with an empty word list.
	GenerationError struct {
		Mode   Mode
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidConfiguration for errors.Is() compatibility.
func (e *InvalidConfigurationError) Unwrap() error { return ErrInvalidConfiguration }

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("cannot generate %s output: %s", e.Mode, e.Reason)
}

// Unwrap returns ErrGeneration for errors.Is() compatibility.
func (e *GenerationError) Unwrap() error { return ErrGeneration }

func invalidConfig(field, reason string) error {
	return &InvalidConfigurationError{Field: field, Reason: reason}
}
