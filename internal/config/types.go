// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"pwgen-cli/pkg/passgen"
)

const (
	// ColorSchemeAuto detects the terminal background automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark palette.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light palette.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidWordListPath is returned when a WordListPath is whitespace-only.
	ErrInvalidWordListPath = errors.New("invalid word list path")
	// ErrInvalidGeneratorConfig is the sentinel error wrapped by InvalidGeneratorConfigError.
	ErrInvalidGeneratorConfig = errors.New("invalid generator config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme selects the palette used for rendered Markdown (manual, issues).
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// WordListPath is a filesystem path to a diceware word list.
	// The zero value ("") selects the embedded list.
	WordListPath string

	// InvalidWordListPathError is returned when a WordListPath is non-empty but
	// whitespace-only.
	InvalidWordListPathError struct {
		Value WordListPath
	}

	// InvalidGeneratorConfigError collects field-level errors of a GeneratorConfig.
	InvalidGeneratorConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError collects field-level errors of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Generator holds defaults for password generation.
		Generator GeneratorConfig `json:"generator" mapstructure:"generator" toml:"generator"`
		// UI configures terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui"`
	}

	// GeneratorConfig holds defaults applied before command-line flags.
	GeneratorConfig struct {
		// Length is the default password length.
		Length int `json:"length" mapstructure:"length" toml:"length"`
		// Count is the default number of passwords.
		Count int `json:"count" mapstructure:"count" toml:"count"`
		// DiceWords is the default number of diceware words.
		DiceWords int `json:"dice_words" mapstructure:"dice_words" toml:"dice_words"`
		// WordSeparator joins diceware words.
		WordSeparator string `json:"word_separator" mapstructure:"word_separator" toml:"word_separator"`
		// WordList points to a custom word list; empty uses the embedded one.
		WordList WordListPath `json:"wordlist" mapstructure:"wordlist" toml:"wordlist"`
		// Secure turns the secure preset on by default.
		Secure bool `json:"secure" mapstructure:"secure" toml:"secure"`
		// Symbols includes symbols by default.
		Symbols bool `json:"symbols" mapstructure:"symbols" toml:"symbols"`
		// NoAmbiguous excludes ambiguous characters by default.
		NoAmbiguous bool `json:"no_ambiguous" mapstructure:"no_ambiguous" toml:"no_ambiguous"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		// ColorScheme sets the Markdown rendering palette.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme" toml:"color_scheme"`
		// Color enables colored output.
		Color bool `json:"color" mapstructure:"color" toml:"color"`
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
	}
)

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// GlamourStyle returns the glamour style name for the scheme.
func (cs ColorScheme) GlamourStyle() string {
	switch cs {
	case ColorSchemeDark, ColorSchemeLight:
		return string(cs)
	default:
		return string(ColorSchemeAuto)
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (must be one of: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the WordListPath.
func (p WordListPath) String() string { return string(p) }

// IsValid returns whether the WordListPath is usable. The zero value is valid.
func (p WordListPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidWordListPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidWordListPathError) Error() string {
	return fmt.Sprintf("invalid word list path: non-empty value must not be whitespace-only (got %q)", e.Value)
}

// Unwrap returns ErrInvalidWordListPath for errors.Is() compatibility.
func (e *InvalidWordListPathError) Unwrap() error { return ErrInvalidWordListPath }

// IsValid returns whether the GeneratorConfig has valid fields. Numeric fields
// must be at least 1; the word list path must not be whitespace-only.
func (c GeneratorConfig) IsValid() (bool, []error) {
	var errs []error
	if c.Length < 1 {
		errs = append(errs, fmt.Errorf("generator.length: must be at least 1 (got %d)", c.Length))
	}
	if c.Count < 1 {
		errs = append(errs, fmt.Errorf("generator.count: must be at least 1 (got %d)", c.Count))
	}
	if c.DiceWords < 1 {
		errs = append(errs, fmt.Errorf("generator.dice_words: must be at least 1 (got %d)", c.DiceWords))
	}
	if valid, fieldErrs := c.WordList.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidGeneratorConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidGeneratorConfigError) Error() string {
	return fmt.Sprintf("invalid generator config: %s", joinErrors(e.FieldErrors))
}

// Unwrap returns ErrInvalidGeneratorConfig for errors.Is() compatibility.
func (e *InvalidGeneratorConfigError) Unwrap() error { return ErrInvalidGeneratorConfig }

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Generator.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s", joinErrors(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// RequestedOptions returns generator defaults as passgen options. Command-line
// flags are layered on top by the caller.
func (c GeneratorConfig) RequestedOptions() passgen.RequestedOptions {
	return passgen.RequestedOptions{
		Length:          c.Length,
		Count:           c.Count,
		DiceWordCount:   c.DiceWords,
		WordSeparator:   c.WordSeparator,
		WantSecure:      c.Secure,
		WantSymbols:     c.Symbols,
		WantNoAmbiguous: c.NoAmbiguous,
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Length:        passgen.DefaultLength,
			Count:         passgen.DefaultCount,
			DiceWords:     passgen.DefaultDiceWordCount,
			WordSeparator: passgen.DefaultWordSeparator,
			WordList:      "",
			Secure:        false,
			Symbols:       false,
			NoAmbiguous:   false,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Color:       true,
			Verbose:     false,
		},
	}
}

func joinErrors(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}
