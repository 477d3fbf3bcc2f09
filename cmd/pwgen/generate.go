// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"pwgen-cli/internal/config"
	"pwgen-cli/internal/issue"
	"pwgen-cli/internal/tui"
	"pwgen-cli/pkg/passgen"
	"pwgen-cli/pkg/types"
	"pwgen-cli/pkg/wordlist"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// session is the per-invocation state shared by the generate and config
// handlers once configuration is loaded.
type session struct {
	cfg        *config.Config
	configPath string
	logger     *log.Logger
	color      bool
}

// glamourStyle returns the glamour style for issue pages and the manual.
func (s *session) glamourStyle() string {
	if !s.color {
		return "notty"
	}
	return s.cfg.UI.ColorScheme.GlamourStyle()
}

// openSession loads configuration and builds the logger. Load failures are
// reported through the ConfigLoadFailed issue.
func (app *App) openSession(ctx context.Context, flags *rootFlags) (*session, error) {
	app.verbose = flags.verbose
	cfg, path, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configFile})
	if err != nil {
		logger := newLogger(app.stderr, flags.verbose)
		return nil, app.fail(logger, "notty", newServiceError(err, issue.ConfigLoadFailedId))
	}

	app.verbose = flags.verbose || cfg.UI.Verbose
	s := &session{
		cfg:        cfg,
		configPath: path,
		logger:     newLogger(app.stderr, app.verbose),
		color:      !flags.noColor && cfg.UI.Color && os.Getenv("NO_COLOR") == "",
	}

	if path != "" {
		s.logger.Debug("configuration loaded", "path", path)
	} else {
		s.logger.Debug("no configuration file found, using defaults")
	}

	return s, nil
}

// fail renders the issue page of a ServiceError and converts err into an
// ExitError so the process exits with ExitFailure.
func (app *App) fail(logger *log.Logger, style string, err error) error {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		renderServiceError(app.stderr, logger, svcErr, style)
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: types.ExitFailure, Err: err}
}

func (app *App) runGenerate(ctx context.Context, cmd *cobra.Command, flags *rootFlags, args []string) error {
	s, err := app.openSession(ctx, flags)
	if err != nil {
		return err
	}

	if flags.man {
		return renderManual(app.stdout, s.glamourStyle())
	}

	raw, err := requestedOptions(cmd, s.cfg, flags, args)
	if err != nil {
		return err
	}

	var overrides []passgen.Override
	if flags.interactive {
		p := newPalette(app.stderr, s.color)
		fmt.Fprintln(app.stderr, p.title.Render("=== pwgen interactive mode ==="))

		overrides, err = collectOverrides(ctx, app.Prompter, raw, s.logger)
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				err = newServiceError(err, issue.InteractiveAbortedId)
			}
			return app.fail(s.logger, s.glamourStyle(), err)
		}
		fmt.Fprintln(app.stderr)
	}

	spec, err := passgen.Resolve(raw, overrides...)
	if err != nil {
		return app.fail(s.logger, s.glamourStyle(), newServiceError(err, issue.InvalidConfigurationId))
	}
	s.logger.Debug("options resolved", "mode", spec.Mode(), "length", spec.Length(), "count", spec.Count(), "alphabet", len(spec.Alphabet()))

	var words wordlist.List
	if spec.Mode() == passgen.ModeDiceware {
		words, err = app.loadWordList(s, flags, spec.WordSeparator())
		if err != nil {
			return app.fail(s.logger, s.glamourStyle(), err)
		}
	}

	rng, err := app.Sources(flags.seed)
	if err != nil {
		return app.fail(s.logger, s.glamourStyle(), newServiceError(err, issue.GenerationFailedId))
	}
	if flags.seed != "" {
		s.logger.Warn("seeded output is reproducible; do not use it for real secrets")
	}

	passwords, err := passgen.NewGenerator(words).GenerateMany(spec, spec.Count(), rng)
	if err != nil {
		return app.fail(s.logger, s.glamourStyle(), newServiceError(err, issue.GenerationFailedId))
	}
	s.logger.Debug("generated", "count", len(passwords), "entropy_bits", fmt.Sprintf("%.1f", passgen.Entropy(spec, words.Len())))

	printPasswords(app.stdout, s.color, passwords)
	return nil
}

// requestedOptions layers positional arguments and flags over configuration
// defaults. Flags that were not given leave the configured value untouched.
func requestedOptions(cmd *cobra.Command, cfg *config.Config, flags *rootFlags, args []string) (passgen.RequestedOptions, error) {
	raw := cfg.Generator.RequestedOptions()

	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return raw, usageError("invalid length %q: must be an integer", args[0])
		}
		raw.Length = n
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return raw, usageError("invalid count %q: must be an integer", args[1])
		}
		raw.Count = n
	}

	changed := cmd.Flags().Changed

	raw.WantUpper = flags.capitalize
	raw.WantNumerals = flags.numerals
	raw.NoUpper = flags.noCapitalize
	raw.NoNumerals = flags.noNumerals
	raw.NoLower = flags.noLowercase
	raw.WantPronounceable = flags.pronounceable
	raw.WantDiceware = flags.diceware
	raw.WantSecure = raw.WantSecure || flags.secure
	raw.WantNoAmbiguous = raw.WantNoAmbiguous || flags.noAmbiguous

	// A configured symbols default is an enable request, so an explicit
	// --no-symbols has to withdraw it to take effect.
	raw.WantSymbols = (raw.WantSymbols && !flags.noSymbols) || flags.symbols
	raw.NoSymbols = flags.noSymbols

	if changed("dice-words") {
		raw.DiceWordCount = flags.diceWords
	}
	if changed("separator") {
		raw.WordSeparator = flags.separator
	}

	return raw, nil
}

// loadWordList returns the list named by --wordlist or generator.wordlist, or
// the embedded list.
func (app *App) loadWordList(s *session, flags *rootFlags, separator string) (wordlist.List, error) {
	path := flags.wordlist
	if path == "" {
		path = s.cfg.Generator.WordList.String()
	}
	if path == "" {
		words := wordlist.Default()
		s.logger.Debug("using built-in word list", "words", words.Len())
		return words, nil
	}

	words, err := wordlist.Load(path)
	if err != nil {
		ctx := issue.NewErrorContext().WithOperation("load word list")
		id := issue.WordListInvalidId
		if errors.Is(err, os.ErrNotExist) {
			id = issue.WordListNotFoundId
			ctx = ctx.WithSuggestion("Omit --wordlist to use the built-in list")
		}
		return wordlist.List{}, newServiceError(ctx.Wrap(err).BuildError(), id)
	}

	s.logger.Debug("word list loaded", "path", path, "words", words.Len())
	if clash := words.WordsContaining(separator); len(clash) > 0 {
		s.logger.Debug("some words contain the separator; passphrases may not split back into words",
			"separator", separator, "words", len(clash), "first", clash[0])
	}
	return words, nil
}

// printPasswords writes one password per line.
func printPasswords(w io.Writer, color bool, passwords []string) {
	p := newPalette(w, color)
	for _, pw := range passwords {
		fmt.Fprintln(w, p.success.Render(pw))
	}
}
