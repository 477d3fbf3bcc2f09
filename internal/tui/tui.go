// SPDX-License-Identifier: MPL-2.0

// Package tui wraps charmbracelet/huh prompts and glamour rendering behind a
// small API used by the pwgen command line.
package tui

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Theme represents the visual theme for TUI components.
type Theme string

const (
	// ThemeDefault uses the default huh theme.
	ThemeDefault Theme = "default"
	// ThemeCharm uses the Charm theme.
	ThemeCharm Theme = "charm"
	// ThemeDracula uses the Dracula theme.
	ThemeDracula Theme = "dracula"
	// ThemeCatppuccin uses the Catppuccin theme.
	ThemeCatppuccin Theme = "catppuccin"
	// ThemeBase16 uses the Base16 theme.
	ThemeBase16 Theme = "base16"
)

// ErrAborted is returned when the user closes a prompt (Ctrl+C or Esc).
var ErrAborted = errors.New("prompt aborted")

// Config holds common configuration for TUI components.
type Config struct {
	// Theme specifies the visual theme to use.
	Theme Theme
	// Accessible replaces the full-screen prompt with plain line-based input.
	Accessible bool
	// Width specifies the width of the component (0 for auto).
	Width int
	// Input is where answers are read from (nil means stdin).
	Input io.Reader
	// Output is where prompts are drawn (nil picks stdout or stderr).
	Output io.Writer
}

// DefaultConfig returns the configuration used by the CLI. Accessible mode is
// enabled when stdin is not a terminal or the ACCESSIBLE variable is set, and
// prompts then go to stderr so generated passwords on stdout stay clean.
func DefaultConfig() Config {
	accessible := !isInputTerminal() || os.Getenv("ACCESSIBLE") != ""

	var output io.Writer = os.Stdout
	if accessible {
		output = os.Stderr
	}

	return Config{
		Theme:      ThemeCharm,
		Accessible: accessible,
		Output:     output,
	}
}

func isInputTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// getHuhTheme converts a Theme to a huh.Theme.
func getHuhTheme(t Theme) *huh.Theme {
	switch t {
	case ThemeCharm:
		return huh.ThemeCharm()
	case ThemeDracula:
		return huh.ThemeDracula()
	case ThemeCatppuccin:
		return huh.ThemeCatppuccin()
	case ThemeBase16:
		return huh.ThemeBase16()
	default:
		return huh.ThemeBase()
	}
}

// newForm wraps fields in a single-group form configured from cfg.
func newForm(cfg Config, fields ...huh.Field) *huh.Form {
	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(getHuhTheme(cfg.Theme)).
		WithAccessible(cfg.Accessible).
		WithShowHelp(!cfg.Accessible)

	if cfg.Width > 0 {
		form = form.WithWidth(cfg.Width)
	}
	if cfg.Input != nil {
		form = form.WithInput(cfg.Input)
	}
	if cfg.Output != nil {
		form = form.WithOutput(cfg.Output)
	}
	return form
}

// mapFormError converts huh's abort sentinel into ErrAborted.
func mapFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
