// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownOptions configures RenderMarkdown.
type MarkdownOptions struct {
	// Style is a glamour style name: "auto", "dark", "light", "notty" or
	// "ascii". Empty means "auto".
	Style string
	// Width is the word wrap width (0 for glamour's default).
	Width int
}

// RenderMarkdown renders Markdown for the terminal.
func RenderMarkdown(content string, opts MarkdownOptions) (string, error) {
	var rendererOpts []glamour.TermRendererOption

	switch opts.Style {
	case "", "auto":
		rendererOpts = append(rendererOpts, glamour.WithAutoStyle())
	default:
		rendererOpts = append(rendererOpts, glamour.WithStandardStyle(opts.Style))
	}

	if opts.Width > 0 {
		rendererOpts = append(rendererOpts, glamour.WithWordWrap(opts.Width))
	}

	renderer, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return "", err
	}

	return renderer.Render(content)
}
