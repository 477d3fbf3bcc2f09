// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pwgen-cli/internal/config"
	"pwgen-cli/internal/testutil"
	"pwgen-cli/pkg/types"
)

func TestConfigShow_Defaults(t *testing.T) {
	t.Parallel()

	res := run(t, "config", "show")
	assertExitCode(t, res.err, types.ExitSuccess)

	for _, want := range []string{"Current Configuration", "(using defaults)", "length: 12", "wordlist: (built-in)", "color_scheme: auto"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("config show output is missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestConfigShow_FilePath(t *testing.T) {
	t.Parallel()

	res := runWith(t, Dependencies{Config: staticConfig{cfg: testConfig(), path: "/tmp/pwgen/config.cue"}}, "config", "show")
	assertExitCode(t, res.err, types.ExitSuccess)

	if !strings.Contains(res.stdout, "Config file: /tmp/pwgen/config.cue") {
		t.Errorf("config show output is missing the file path:\n%s", res.stdout)
	}
}

func TestConfigDump(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		want     []string
		wantCode types.ExitCode
	}{
		{
			name:     "cue by default",
			args:     []string{"config", "dump"},
			want:     []string{"generator: {", "length: 12", `word_separator: "-"`, "ui: {"},
			wantCode: types.ExitSuccess,
		},
		{
			name:     "toml",
			args:     []string{"config", "dump", "--format", "toml"},
			want:     []string{"[generator]", "length = 12", "[ui]"},
			wantCode: types.ExitSuccess,
		},
		{
			name:     "unknown format",
			args:     []string{"config", "dump", "--format", "yaml"},
			wantCode: types.ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := run(t, tt.args...)
			assertExitCode(t, res.err, tt.wantCode)
			for _, want := range tt.want {
				if !strings.Contains(res.stdout, want) {
					t.Errorf("dump output is missing %q:\n%s", want, res.stdout)
				}
			}
		})
	}
}

func TestApplyConfigValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key     string
		value   string
		check   func(*config.Config) bool
		wantErr bool
	}{
		{"length", "20", func(c *config.Config) bool { return c.Generator.Length == 20 }, false},
		{"count", "3", func(c *config.Config) bool { return c.Generator.Count == 3 }, false},
		{"dice_words", "8", func(c *config.Config) bool { return c.Generator.DiceWords == 8 }, false},
		{"word_separator", "_", func(c *config.Config) bool { return c.Generator.WordSeparator == "_" }, false},
		{"wordlist", "/tmp/words.txt", func(c *config.Config) bool { return c.Generator.WordList == "/tmp/words.txt" }, false},
		{"secure", "true", func(c *config.Config) bool { return c.Generator.Secure }, false},
		{"symbols", "1", func(c *config.Config) bool { return c.Generator.Symbols }, false},
		{"no_ambiguous", "true", func(c *config.Config) bool { return c.Generator.NoAmbiguous }, false},
		{"color_scheme", "dark", func(c *config.Config) bool { return c.UI.ColorScheme == config.ColorSchemeDark }, false},
		{"color", "false", func(c *config.Config) bool { return !c.UI.Color }, false},
		{"verbose", "true", func(c *config.Config) bool { return c.UI.Verbose }, false},
		{"length", "long", nil, true},
		{"secure", "maybe", nil, true},
		{"unknown", "x", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			err := applyConfigValue(cfg, tt.key, tt.value)
			if tt.wantErr {
				assertExitCode(t, err, types.ExitUsage)
				return
			}
			if err != nil {
				t.Fatalf("applyConfigValue() error = %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("applyConfigValue(%q, %q) did not update the config: %+v", tt.key, tt.value, cfg)
			}
		})
	}
}

// The tests below touch the real config directory and must not run in parallel.

func TestConfigPath(t *testing.T) {
	testutil.IsolateConfig(t)

	res := runWith(t, Dependencies{Config: config.NewProvider()}, "config", "path")
	assertExitCode(t, res.err, types.ExitSuccess)

	want, err := config.ConfigFilePath()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.stdout, "Config file: "+want) {
		t.Errorf("config path output = %q, want it to mention %s", res.stdout, want)
	}
}

func TestConfigInit(t *testing.T) {
	testutil.IsolateConfig(t)

	first := runWith(t, Dependencies{Config: config.NewProvider()}, "--no-color", "config", "init")
	assertExitCode(t, first.err, types.ExitSuccess)
	if !strings.Contains(first.stdout, "Created default configuration") {
		t.Errorf("first init output = %q", first.stdout)
	}

	path, err := config.ConfigFilePath()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file was not written: %v", err)
	}

	second := runWith(t, Dependencies{Config: config.NewProvider()}, "--no-color", "config", "init")
	assertExitCode(t, second.err, types.ExitSuccess)
	if !strings.Contains(second.stdout, "already exists") {
		t.Errorf("second init output = %q", second.stdout)
	}
}

func TestConfigSet(t *testing.T) {
	testutil.IsolateConfig(t)
	t.Cleanup(testutil.MustChdir(t, t.TempDir()))

	deps := Dependencies{Config: config.NewProvider()}

	res := runWith(t, deps, "--no-color", "config", "set", "length", "22")
	assertExitCode(t, res.err, types.ExitSuccess)

	cfg, path, err := config.NewProvider().Load(context.Background(), config.LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Generator.Length != 22 {
		t.Errorf("Length = %d, want 22", cfg.Generator.Length)
	}
	if filepath.Base(path) != "config.cue" {
		t.Errorf("path = %q, want the saved config.cue", path)
	}

	gen := runWith(t, deps, "--no-color")
	assertExitCode(t, gen.err, types.ExitSuccess)
	if pw := strings.TrimSpace(gen.stdout); len(pw) != 22 {
		t.Errorf("len(%q) = %d, want the configured 22", pw, len(pw))
	}

	bad := runWith(t, deps, "--no-color", "config", "set", "color_scheme", "neon")
	assertExitCode(t, bad.err, types.ExitUsage)

	zero := runWith(t, deps, "--no-color", "config", "set", "count", "0")
	assertExitCode(t, zero.err, types.ExitUsage)
}

func TestConfigSet_ExplicitFile(t *testing.T) {
	base := testutil.IsolateConfig(t)
	dir := t.TempDir()
	t.Cleanup(testutil.MustChdir(t, dir))

	team := testutil.MustWriteFile(t, dir, "team.cue", "generator: length: 30\n")
	deps := Dependencies{Config: config.NewProvider()}

	res := runWith(t, deps, "--no-color", "--config", team, "config", "set", "count", "3")
	assertExitCode(t, res.err, types.ExitSuccess)

	cfg, _, err := config.NewProvider().Load(context.Background(), config.LoadOptions{ConfigFilePath: team})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Generator.Count != 3 {
		t.Errorf("count = %d, want 3 written to %s", cfg.Generator.Count, team)
	}
	if cfg.Generator.Length != 30 {
		t.Errorf("length = %d, want the existing 30 kept", cfg.Generator.Length)
	}

	defaultPath, err := config.ConfigFilePath()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(defaultPath, base) {
		t.Fatalf("default path %s is not isolated under %s", defaultPath, base)
	}
	if _, err := os.Stat(defaultPath); !os.IsNotExist(err) {
		t.Errorf("default config file was written (stat err = %v), want only %s updated", err, team)
	}
}

func TestConfigSet_IgnoresEnvironment(t *testing.T) {
	testutil.IsolateConfig(t)
	t.Cleanup(testutil.MustChdir(t, t.TempDir()))
	t.Cleanup(testutil.MustSetenv(t, "PWGEN_GENERATOR_LENGTH", "40"))

	res := runWith(t, Dependencies{Config: config.NewProvider()}, "--no-color", "config", "set", "count", "3")
	assertExitCode(t, res.err, types.ExitSuccess)

	path, err := config.ConfigFilePath()
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file was not written: %v", err)
	}
	if strings.Contains(string(data), "length: 40") {
		t.Errorf("environment override was persisted:\n%s", data)
	}

	cfg, _, err := config.NewProvider().Load(context.Background(), config.LoadOptions{ConfigFilePath: path, IgnoreEnvironment: true})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Generator.Length != config.DefaultConfig().Generator.Length || cfg.Generator.Count != 3 {
		t.Errorf("saved generator = %+v, want default length and count 3", cfg.Generator)
	}
}

func TestConfigSet_MissingExplicitFile(t *testing.T) {
	testutil.IsolateConfig(t)
	dir := t.TempDir()

	res := runWith(t, Dependencies{Config: config.NewProvider()}, "--no-color", "--config", filepath.Join(dir, "absent.cue"), "config", "set", "count", "3")
	assertExitCode(t, res.err, types.ExitFailure)

	if _, err := os.Stat(filepath.Join(dir, "absent.cue")); !os.IsNotExist(err) {
		t.Errorf("missing --config file was created (stat err = %v)", err)
	}
}
