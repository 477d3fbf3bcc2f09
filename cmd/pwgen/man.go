// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"pwgen-cli/internal/tui"
)

const manualWidth = 80

const manualMarkdown = `# PWGEN(1)

## NAME

pwgen - generate random passwords and diceware passphrases

## SYNOPSIS

` + "`pwgen [OPTIONS] [length] [count]`" + `

## DESCRIPTION

pwgen prints ` + "`count`" + ` passwords of ` + "`length`" + ` characters (12 and 1 by
default). Passwords are drawn from lowercase letters, uppercase letters and
digits. Every enabled class except lowercase is guaranteed to appear in each
password. It also offers pronounceable passwords, diceware passphrases and an
interactive mode.

Options are applied in a fixed order: the built-in classes, then the
disabling flags, then the enabling flags (which win over disabling ones), then
` + "`--secure`" + `, then interactive answers.

## OPTIONS

| Flag | Effect |
|---|---|
| ` + "`-c, --capitalize`" + ` | include at least one uppercase letter |
| ` + "`-A, --no-capitalize`" + ` | do not use uppercase letters |
| ` + "`-n, --numerals`" + ` | include at least one digit |
| ` + "`-N, --no-numerals`" + ` | do not use digits |
| ` + "`-y, --symbols`" + ` | include at least one symbol |
| ` + "`-Y, --no-symbols`" + ` | do not use symbols |
| ` + "`-L, --no-lowercase`" + ` | do not use lowercase letters |
| ` + "`-B, --no-ambiguous`" + ` | exclude I, l, 1, O and 0 |
| ` + "`-s, --secure`" + ` | every class, no ambiguous characters, plain password mode |
| ` + "`-p, --pronounceable`" + ` | alternate consonants and vowels |
| ` + "`-d, --diceware`" + ` | generate a passphrase from a word list |
| ` + "`--dice-words N`" + ` | words per passphrase (default 6) |
| ` + "`--separator S`" + ` | text between passphrase words (default ` + "`-`" + `) |
| ` + "`--wordlist PATH`" + ` | word list file, one word per line or EFF format |
| ` + "`-i, --interactive`" + ` | ask for every option |
| ` + "`--seed S`" + ` | reproducible output for tests and demos, never for real secrets |
| ` + "`--no-color`" + ` | disable colors (also ` + "`NO_COLOR`" + `) |
| ` + "`--config PATH`" + ` | read configuration from PATH |
| ` + "`-v, --verbose`" + ` | debug logging, including an entropy estimate |
| ` + "`--man`" + ` | show this page |

## CONFIGURATION

Defaults are read from ` + "`config.cue`" + ` in the pwgen configuration directory
(` + "`pwgen config path`" + ` shows it) and from ` + "`PWGEN_*`" + ` environment variables such as
` + "`PWGEN_GENERATOR_LENGTH=20`" + `. Command-line flags always win.

## EXAMPLES

- ` + "`pwgen 16 5`" + ` prints five passwords of 16 characters.
- ` + "`pwgen -s 20`" + ` prints one secure password of 20 characters.
- ` + "`pwgen -d --dice-words 7`" + ` prints a seven-word passphrase.
- ` + "`pwgen -i`" + ` starts the interactive mode.

## EXIT STATUS

0 on success, 1 when the options cannot produce a password or generation
fails, 2 on malformed arguments.
`

// renderManual writes the manual page rendered with glamour.
func renderManual(w io.Writer, style string) error {
	out, err := tui.RenderMarkdown(manualMarkdown, tui.MarkdownOptions{Style: style, Width: manualWidth})
	if err != nil {
		return fmt.Errorf("failed to render manual: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}
