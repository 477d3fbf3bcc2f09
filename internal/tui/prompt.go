// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"

	"github.com/charmbracelet/huh"
)

// Option is a labeled choice for Choose.
type Option struct {
	Label string
	Value string
}

// ChooseOptions configures a single-select prompt.
type ChooseOptions struct {
	Title       string
	Description string
	Options     []Option
	// Default preselects the option with this value.
	Default string
	Config  Config
}

// InputOptions configures a free-text prompt.
type InputOptions struct {
	Title       string
	Description string
	Placeholder string
	// Default is returned when the user submits an empty answer.
	Default string
	Config  Config
}

// ConfirmOptions configures a yes/no prompt.
type ConfirmOptions struct {
	Title       string
	Affirmative string
	Negative    string
	Default     bool
	Config      Config
}

// Choose asks the user to pick one option and returns its value.
func Choose(ctx context.Context, opts ChooseOptions) (string, error) {
	result := opts.Default

	huhOpts := make([]huh.Option[string], len(opts.Options))
	for i, o := range opts.Options {
		huhOpts[i] = huh.NewOption(o.Label, o.Value)
	}

	sel := huh.NewSelect[string]().
		Title(opts.Title).
		Description(opts.Description).
		Options(huhOpts...).
		Value(&result)

	if err := newForm(opts.Config, sel).RunWithContext(ctx); err != nil {
		return "", mapFormError(err)
	}
	return result, nil
}

// Input asks for a line of text. Validation is left to the caller so that
// invalid answers can be reported without re-prompting.
func Input(ctx context.Context, opts InputOptions) (string, error) {
	var result string

	in := huh.NewInput().
		Title(opts.Title).
		Description(opts.Description).
		Placeholder(opts.Placeholder).
		Value(&result)

	if err := newForm(opts.Config, in).RunWithContext(ctx); err != nil {
		return "", mapFormError(err)
	}
	if result == "" {
		return opts.Default, nil
	}
	return result, nil
}

// Confirm asks a yes/no question.
func Confirm(ctx context.Context, opts ConfirmOptions) (bool, error) {
	result := opts.Default

	affirmative, negative := opts.Affirmative, opts.Negative
	if affirmative == "" {
		affirmative = "Yes"
	}
	if negative == "" {
		negative = "No"
	}

	c := huh.NewConfirm().
		Title(opts.Title).
		Affirmative(affirmative).
		Negative(negative).
		Value(&result)

	if err := newForm(opts.Config, c).RunWithContext(ctx); err != nil {
		return false, mapFormError(err)
	}
	return result, nil
}
