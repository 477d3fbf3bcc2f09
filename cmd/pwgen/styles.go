// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by every styled line pwgen prints.
const (
	// ColorPrimary is purple, used for titles.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray, used for secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green, used for generated passwords.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue, used for flags and config keys.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

// Base styles used in help text, where output always goes to the terminal.
var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// CmdStyle is for command names and flags.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// palette holds styles bound to one output stream. Styles render plain text
// when color is disabled or the stream is not a terminal.
type palette struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	success  lipgloss.Style
	err      lipgloss.Style
	warning  lipgloss.Style
	key      lipgloss.Style
}

func newPalette(w io.Writer, color bool) palette {
	if !color {
		plain := lipgloss.NewStyle()
		return palette{title: plain, subtitle: plain, success: plain, err: plain, warning: plain, key: plain}
	}

	r := lipgloss.NewRenderer(w)
	return palette{
		title:    r.NewStyle().Bold(true).Foreground(ColorPrimary),
		subtitle: r.NewStyle().Foreground(ColorMuted),
		success:  r.NewStyle().Foreground(ColorSuccess),
		err:      r.NewStyle().Bold(true).Foreground(ColorError),
		warning:  r.NewStyle().Foreground(ColorWarning),
		key:      r.NewStyle().Foreground(ColorHighlight),
	}
}
