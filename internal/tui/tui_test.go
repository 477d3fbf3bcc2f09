// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
)

func TestDefaultConfig_AccessibleFromEnv(t *testing.T) {
	t.Setenv("ACCESSIBLE", "1")

	cfg := DefaultConfig()
	if !cfg.Accessible {
		t.Error("expected accessible mode when ACCESSIBLE is set")
	}
	if cfg.Output != os.Stderr {
		t.Error("accessible prompts should be written to stderr")
	}
	if cfg.Theme != ThemeCharm {
		t.Errorf("Theme = %q, want %q", cfg.Theme, ThemeCharm)
	}
}

func TestGetHuhTheme(t *testing.T) {
	t.Parallel()

	for _, theme := range []Theme{ThemeDefault, ThemeCharm, ThemeDracula, ThemeCatppuccin, ThemeBase16, Theme("unknown")} {
		if getHuhTheme(theme) == nil {
			t.Errorf("getHuhTheme(%q) returned nil", theme)
		}
	}
}

func TestMapFormError(t *testing.T) {
	t.Parallel()

	if !errors.Is(mapFormError(huh.ErrUserAborted), ErrAborted) {
		t.Error("user abort should map to ErrAborted")
	}
	if !errors.Is(mapFormError(fmt.Errorf("run: %w", huh.ErrUserAborted)), ErrAborted) {
		t.Error("wrapped user abort should map to ErrAborted")
	}

	other := errors.New("terminal gone")
	if got := mapFormError(other); got != other {
		t.Errorf("mapFormError(other) = %v, want passthrough", got)
	}
	if mapFormError(nil) != nil {
		t.Error("mapFormError(nil) should be nil")
	}
}

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	out, err := RenderMarkdown("# Title\n\nSome **bold** text.", MarkdownOptions{Style: "notty", Width: 40})
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if !strings.Contains(out, "Title") || !strings.Contains(out, "bold") {
		t.Errorf("rendered output lost content:\n%s", out)
	}
}

func TestRenderMarkdown_UnknownStyle(t *testing.T) {
	t.Parallel()

	if _, err := RenderMarkdown("text", MarkdownOptions{Style: "/no/such/style.json"}); err == nil {
		t.Error("expected error for missing style file")
	}
}
