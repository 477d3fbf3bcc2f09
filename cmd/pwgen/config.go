// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"pwgen-cli/internal/config"
	"pwgen-cli/internal/issue"

	"github.com/spf13/cobra"
)

const (
	dumpFormatCUE  = "cue"
	dumpFormatTOML = "toml"
)

// newConfigCommand creates the `pwgen config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App, flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage pwgen configuration",
		Long: `Manage pwgen configuration.

Configuration is stored in:
  - Linux: ~/.config/pwgen/config.cue
  - macOS: ~/Library/Application Support/pwgen/config.cue
  - Windows: %APPDATA%\pwgen\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfig(cmd.Context(), flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfigPath()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.initConfig(flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value and save it back to the configuration file.

The file named by --config is updated when given; otherwise the file pwgen
would load (creating the default one if none exists). PWGEN_* environment
overrides are never written to the file.

Keys: length, count, dice_words, word_separator, wordlist, secure, symbols,
no_ambiguous, color_scheme, color, verbose.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return usageError("%s", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.setConfigValue(cmd.Context(), flags, args[0], args[1])
		},
	})

	var format string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.dumpConfig(cmd.Context(), flags, format)
		},
	}
	dumpCmd.Flags().StringVar(&format, "format", dumpFormatCUE, "output format (cue, toml)")
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

func (app *App) showConfig(ctx context.Context, flags *rootFlags) error {
	s, err := app.openSession(ctx, flags)
	if err != nil {
		return err
	}
	cfg := s.cfg

	p := newPalette(app.stdout, s.color)
	out := app.stdout
	value := func(v any) string { return p.success.Render(fmt.Sprint(v)) }

	fmt.Fprintln(out, p.title.Render("Current Configuration"))
	fmt.Fprintln(out)

	if s.configPath != "" {
		fmt.Fprintf(out, "%s: %s\n", p.key.Render("Config file"), s.configPath)
	} else {
		fmt.Fprintf(out, "%s: %s\n", p.key.Render("Config file"), p.subtitle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s:\n", p.key.Render("generator"))
	fmt.Fprintf(out, "  length: %s\n", value(cfg.Generator.Length))
	fmt.Fprintf(out, "  count: %s\n", value(cfg.Generator.Count))
	fmt.Fprintf(out, "  dice_words: %s\n", value(cfg.Generator.DiceWords))
	fmt.Fprintf(out, "  word_separator: %s\n", value(strconv.Quote(cfg.Generator.WordSeparator)))
	if cfg.Generator.WordList == "" {
		fmt.Fprintf(out, "  wordlist: %s\n", p.subtitle.Render("(built-in)"))
	} else {
		fmt.Fprintf(out, "  wordlist: %s\n", value(cfg.Generator.WordList))
	}
	fmt.Fprintf(out, "  secure: %s\n", value(cfg.Generator.Secure))
	fmt.Fprintf(out, "  symbols: %s\n", value(cfg.Generator.Symbols))
	fmt.Fprintf(out, "  no_ambiguous: %s\n", value(cfg.Generator.NoAmbiguous))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", p.key.Render("ui"))
	fmt.Fprintf(out, "  color_scheme: %s\n", value(cfg.UI.ColorScheme))
	fmt.Fprintf(out, "  color: %s\n", value(cfg.UI.Color))
	fmt.Fprintf(out, "  verbose: %s\n", value(cfg.UI.Verbose))

	return nil
}

func (app *App) showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(app.stdout, "Config file: %s\n", cfgPath)
	return nil
}

func (app *App) initConfig(flags *rootFlags) error {
	cfgPath, created, err := config.CreateDefaultConfig()
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	p := newPalette(app.stdout, !flags.noColor)
	if created {
		fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", p.success.Render("✓"), cfgPath)
	} else {
		fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", p.subtitle.Render("•"), cfgPath)
	}
	return nil
}

func (app *App) setConfigValue(ctx context.Context, flags *rootFlags, key, value string) error {
	app.verbose = flags.verbose
	logger := newLogger(app.stderr, flags.verbose)

	cfg, path, err := app.Config.Load(ctx, config.LoadOptions{
		ConfigFilePath:    flags.configFile,
		IgnoreEnvironment: true,
	})
	if err != nil {
		return app.fail(logger, "notty", newServiceError(err, issue.ConfigLoadFailedId))
	}
	if path == "" {
		if path, err = config.ConfigFilePath(); err != nil {
			return err
		}
	}

	if err := applyConfigValue(cfg, key, value); err != nil {
		return err
	}
	if ok, errs := cfg.IsValid(); !ok {
		return usageError("invalid value for %s: %w", key, errs[0])
	}

	if err := config.SaveTo(path, cfg); err != nil {
		return err
	}

	logger.Debug("configuration saved", "path", path, "key", key, "value", value)
	p := newPalette(app.stdout, !flags.noColor && cfg.UI.Color && os.Getenv("NO_COLOR") == "")
	fmt.Fprintf(app.stdout, "%s %s = %s\n", p.success.Render("✓"), p.key.Render(key), value)
	return nil
}

// applyConfigValue sets one configuration key from its textual form.
func applyConfigValue(cfg *config.Config, key, value string) error {
	parseInt := func() (int, error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, usageError("%s must be an integer, got %q", key, value)
		}
		return n, nil
	}
	parseBool := func() (bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, usageError("%s must be true or false, got %q", key, value)
		}
		return b, nil
	}

	var err error
	switch key {
	case "length":
		cfg.Generator.Length, err = parseInt()
	case "count":
		cfg.Generator.Count, err = parseInt()
	case "dice_words":
		cfg.Generator.DiceWords, err = parseInt()
	case "word_separator":
		cfg.Generator.WordSeparator = value
	case "wordlist":
		cfg.Generator.WordList = config.WordListPath(value)
	case "secure":
		cfg.Generator.Secure, err = parseBool()
	case "symbols":
		cfg.Generator.Symbols, err = parseBool()
	case "no_ambiguous":
		cfg.Generator.NoAmbiguous, err = parseBool()
	case "color_scheme":
		cfg.UI.ColorScheme = config.ColorScheme(value)
	case "color":
		cfg.UI.Color, err = parseBool()
	case "verbose":
		cfg.UI.Verbose, err = parseBool()
	default:
		return usageError("unknown configuration key %q", key)
	}
	return err
}

func (app *App) dumpConfig(ctx context.Context, flags *rootFlags, format string) error {
	if format != dumpFormatCUE && format != dumpFormatTOML {
		return usageError("unknown format %q (valid: %s, %s)", format, dumpFormatCUE, dumpFormatTOML)
	}

	s, err := app.openSession(ctx, flags)
	if err != nil {
		return err
	}

	if format == dumpFormatTOML {
		out, err := config.GenerateTOML(s.cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(app.stdout, out)
		return nil
	}

	fmt.Fprint(app.stdout, config.GenerateCUE(s.cfg))
	return nil
}
