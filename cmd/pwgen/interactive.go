// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"strconv"
	"strings"

	"pwgen-cli/internal/tui"
	"pwgen-cli/pkg/passgen"

	"github.com/charmbracelet/log"
)

const (
	modePassword = "p"
	modeDiceware = "d"
)

// Prompter asks the interactive questions. The production implementation
// uses huh forms; tests replay scripted answers.
type Prompter interface {
	Choose(ctx context.Context, opts tui.ChooseOptions) (string, error)
	Input(ctx context.Context, opts tui.InputOptions) (string, error)
	Confirm(ctx context.Context, opts tui.ConfirmOptions) (bool, error)
}

// collectOverrides runs the interactive question flow and returns the answers
// as overrides, in the order they were given. raw supplies the values shown
// as current defaults.
func collectOverrides(ctx context.Context, p Prompter, raw passgen.RequestedOptions, logger *log.Logger) ([]passgen.Override, error) {
	var overrides []passgen.Override

	mode, err := p.Choose(ctx, tui.ChooseOptions{
		Title: "Generate a password or a diceware passphrase?",
		Options: []tui.Option{
			{Label: "Password", Value: modePassword},
			{Label: "Diceware passphrase", Value: modeDiceware},
		},
		Default: modePassword,
	})
	if err != nil {
		return nil, err
	}
	diceware := mode == modeDiceware

	if diceware {
		overrides = append(overrides, passgen.SetMode{Mode: passgen.ModeDiceware})

		answer, err := p.Input(ctx, tui.InputOptions{
			Title:       "Number of words in the passphrase",
			Placeholder: strconv.Itoa(passgen.DefaultDiceWordCount),
		})
		if err != nil {
			return nil, err
		}
		if answer != "" {
			n, ok := parseInt(answer)
			if !ok {
				logger.Warn("invalid value, using the default word count", "input", answer, "words", passgen.DefaultDiceWordCount)
				n = passgen.DefaultDiceWordCount
			}
			overrides = append(overrides, passgen.SetDiceWords{Count: n})
		}
	} else {
		overrides = append(overrides, passgen.SetMode{Mode: passgen.ModeRawConstrained})

		answer, err := p.Input(ctx, tui.InputOptions{
			Title:       "Password length",
			Placeholder: strconv.Itoa(raw.Length),
		})
		if err != nil {
			return nil, err
		}
		if answer != "" {
			if n, ok := parseInt(answer); ok {
				overrides = append(overrides, passgen.SetLength{Length: n})
			} else {
				logger.Warn("invalid value, keeping the current length", "input", answer, "length", raw.Length)
			}
		}
	}

	answer, err := p.Input(ctx, tui.InputOptions{
		Title:       "How many to generate",
		Placeholder: strconv.Itoa(raw.Count),
	})
	if err != nil {
		return nil, err
	}
	if answer != "" {
		if n, ok := parseInt(answer); ok {
			overrides = append(overrides, passgen.SetCount{Count: n})
		} else {
			logger.Warn("invalid value, keeping the current count", "input", answer, "count", raw.Count)
		}
	}

	secure, err := p.Confirm(ctx, tui.ConfirmOptions{Title: "Secure mode?", Default: false})
	if err != nil {
		return nil, err
	}
	if secure {
		return append(overrides, passgen.ApplySecure{}), nil
	}
	if diceware {
		return overrides, nil
	}

	questions := []struct {
		title string
		def   bool
		apply func(bool) passgen.Override
	}{
		{"Include uppercase letters?", true, func(v bool) passgen.Override {
			return passgen.SetClass{Class: passgen.ClassUpper, Enabled: v}
		}},
		{"Include digits?", true, func(v bool) passgen.Override {
			return passgen.SetClass{Class: passgen.ClassNumerals, Enabled: v}
		}},
		{"Include symbols?", false, func(v bool) passgen.Override {
			return passgen.SetClass{Class: passgen.ClassSymbols, Enabled: v}
		}},
		{"Exclude ambiguous characters (" + passgen.AmbiguousCharacters + ")?", false, func(v bool) passgen.Override {
			return passgen.SetExcludeAmbiguous{Exclude: v}
		}},
		{"Pronounceable mode?", false, func(v bool) passgen.Override {
			if v {
				return passgen.SetMode{Mode: passgen.ModePronounceable}
			}
			return nil
		}},
	}

	for _, q := range questions {
		v, err := p.Confirm(ctx, tui.ConfirmOptions{Title: q.title, Default: q.def})
		if err != nil {
			return nil, err
		}
		if o := q.apply(v); o != nil {
			overrides = append(overrides, o)
		}
	}

	return overrides, nil
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}
