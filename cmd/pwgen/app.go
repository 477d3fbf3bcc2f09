// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"pwgen-cli/internal/config"
	"pwgen-cli/internal/tui"
	"pwgen-cli/pkg/passgen"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer: every Cobra handler receives an App and reaches
	// configuration, prompts and randomness through it.
	App struct {
		Config   ConfigProvider
		Prompter Prompter
		Sources  SourceFunc
		stdout   io.Writer
		stderr   io.Writer

		// verbose is set once the flags and configuration of the current run
		// are known. The error handler uses it to decide how much to print.
		verbose bool
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config   ConfigProvider
		Prompter Prompter
		Sources  SourceFunc
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}

	// SourceFunc returns the random source for one run. An empty seed asks for
	// the cryptographic source.
	SourceFunc func(seed string) (passgen.RandomSource, error)
)

// NewApp builds an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:   deps.Config,
		Prompter: deps.Prompter,
		Sources:  deps.Sources,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}

	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Prompter == nil {
		app.Prompter = huhPrompter{}
	}
	if app.Sources == nil {
		app.Sources = defaultSource
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}

	return app
}

func defaultSource(seed string) (passgen.RandomSource, error) {
	if seed == "" {
		return passgen.NewCryptoSource(), nil
	}
	return passgen.NewSeededSource(seed)
}

// newLogger returns the CLI logger. Verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "pwgen",
		Level:  level,
	})
}

// huhPrompter asks questions with charmbracelet/huh forms.
type huhPrompter struct{}

func (huhPrompter) Choose(ctx context.Context, opts tui.ChooseOptions) (string, error) {
	opts.Config = tui.DefaultConfig()
	return tui.Choose(ctx, opts)
}

func (huhPrompter) Input(ctx context.Context, opts tui.InputOptions) (string, error) {
	opts.Config = tui.DefaultConfig()
	return tui.Input(ctx, opts)
}

func (huhPrompter) Confirm(ctx context.Context, opts tui.ConfirmOptions) (bool, error) {
	opts.Config = tui.DefaultConfig()
	return tui.Confirm(ctx, opts)
}
