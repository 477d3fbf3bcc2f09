// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the pwgen command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"pwgen-cli/internal/issue"
	"pwgen-cli/pkg/passgen"
	"pwgen-cli/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds every flag of the root command.
type rootFlags struct {
	capitalize    bool
	noCapitalize  bool
	numerals      bool
	noNumerals    bool
	symbols       bool
	noSymbols     bool
	noLowercase   bool
	noAmbiguous   bool
	secure        bool
	pronounceable bool
	diceware      bool
	diceWords     int
	separator     string
	wordlist      string
	interactive   bool
	seed          string
	noColor       bool
	man           bool

	configFile string
	verbose    bool
}

// NewRootCommand creates the pwgen command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "pwgen [flags] [length] [count]",
		Short: "Generate random passwords and diceware passphrases",
		Long: TitleStyle.Render("pwgen") + SubtitleStyle.Render(" - random passwords and diceware passphrases") + `

Passwords are drawn from lowercase letters, uppercase letters and digits by
default. Flags add or remove character classes; --secure turns every class on
and drops look-alike characters. Each password is guaranteed to contain the
classes that were asked for.

` + SubtitleStyle.Render("Examples:") + `
  pwgen 16 5                 Five passwords of 16 characters
  pwgen -s 20                One secure password of 20 characters
  pwgen -d --dice-words 7    A seven-word diceware passphrase
  pwgen -i                   Answer questions instead of passing flags
  pwgen --man                Show the full manual`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(2)(cmd, args); err != nil {
				return &ExitError{Code: types.ExitUsage, Err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runGenerate(cmd.Context(), cmd, flags, args)
		},
		// fang reports errors; usage is only shown on request.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: types.ExitUsage, Err: err}
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/pwgen/config.cue)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	f := rootCmd.Flags()
	f.BoolVarP(&flags.capitalize, "capitalize", "c", false, "include at least one uppercase letter")
	f.BoolVarP(&flags.noCapitalize, "no-capitalize", "A", false, "do not use uppercase letters")
	f.BoolVarP(&flags.numerals, "numerals", "n", false, "include at least one digit")
	f.BoolVarP(&flags.noNumerals, "no-numerals", "N", false, "do not use digits")
	f.BoolVarP(&flags.symbols, "symbols", "y", false, "include at least one symbol")
	f.BoolVarP(&flags.noSymbols, "no-symbols", "Y", false, "do not use symbols")
	f.BoolVarP(&flags.noLowercase, "no-lowercase", "L", false, "do not use lowercase letters")
	f.BoolVarP(&flags.noAmbiguous, "no-ambiguous", "B", false, "exclude look-alike characters ("+passgen.AmbiguousCharacters+")")
	f.BoolVarP(&flags.secure, "secure", "s", false, "use every class and exclude look-alike characters")
	f.BoolVarP(&flags.pronounceable, "pronounceable", "p", false, "alternate consonants and vowels")
	f.BoolVarP(&flags.diceware, "diceware", "d", false, "generate a diceware passphrase")
	f.IntVar(&flags.diceWords, "dice-words", passgen.DefaultDiceWordCount, "number of words in a diceware passphrase")
	f.StringVar(&flags.separator, "separator", passgen.DefaultWordSeparator, "separator between diceware words")
	f.StringVar(&flags.wordlist, "wordlist", "", "diceware word list file (plain or EFF format)")
	f.BoolVarP(&flags.interactive, "interactive", "i", false, "ask for every option interactively")
	f.StringVar(&flags.seed, "seed", "", "derive output from a seed (reproducible, not for real secrets)")
	f.BoolVar(&flags.man, "man", false, "show the manual page")

	rootCmd.AddCommand(newConfigCommand(app, flags))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Run executes the command line and returns the process exit code.
func Run() int {
	app := NewApp(Dependencies{})

	err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithoutManpage(),
		fang.WithErrorHandler(app.handleError),
	)
	return int(exitCodeOf(err))
}

// handleError prints err the way fang does and then lists the recovery hints
// of an ActionableError found in its chain. Verbose runs also get the chain of
// wrapped causes.
func (app *App) handleError(w io.Writer, styles fang.Styles, err error) {
	fang.DefaultErrorHandler(w, styles, err)
	writeErrorHints(w, err, app.verbose)
}

func writeErrorHints(w io.Writer, err error, verbose bool) {
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		return
	}
	if hints := ae.Hints(verbose); hints != "" {
		fmt.Fprint(w, hints)
	}
}

// Execute runs the command line and exits the process. It is called by main.main().
func Execute() {
	os.Exit(Run())
}
