// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"pwgen-cli/internal/issue"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Generator.Length != 12 {
		t.Errorf("expected default length 12, got %d", cfg.Generator.Length)
	}
	if cfg.Generator.Count != 1 {
		t.Errorf("expected default count 1, got %d", cfg.Generator.Count)
	}
	if cfg.Generator.DiceWords != 6 {
		t.Errorf("expected default dice words 6, got %d", cfg.Generator.DiceWords)
	}
	if cfg.Generator.WordSeparator != "-" {
		t.Errorf("expected default separator '-', got %q", cfg.Generator.WordSeparator)
	}
	if cfg.Generator.Secure || cfg.Generator.Symbols || cfg.Generator.NoAmbiguous {
		t.Error("expected generator toggles to be off by default")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected default color scheme auto, got %s", cfg.UI.ColorScheme)
	}
	if !cfg.UI.Color {
		t.Error("expected color to be enabled by default")
	}
	if valid, errs := cfg.IsValid(); !valid {
		t.Errorf("default config should be valid, got %v", errs)
	}
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG lookup is Linux-specific")
	}

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if want := filepath.Join(xdg, AppName); dir != want {
		t.Errorf("ConfigDir() = %q, want %q", dir, want)
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, path, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if path != "" {
		t.Errorf("expected no resolved path, got %q", path)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_CUEFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	want := writeConfig(t, dir, `
generator: {
	length: 24
	count: 3
	word_separator: "."
	secure: true
}
ui: color_scheme: "dark"
`)

	cfg, path, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if path != want {
		t.Errorf("resolved path = %q, want %q", path, want)
	}
	if cfg.Generator.Length != 24 || cfg.Generator.Count != 3 {
		t.Errorf("unexpected length/count: %d/%d", cfg.Generator.Length, cfg.Generator.Count)
	}
	if cfg.Generator.WordSeparator != "." {
		t.Errorf("separator = %q, want '.'", cfg.Generator.WordSeparator)
	}
	if !cfg.Generator.Secure {
		t.Error("expected secure to be true")
	}
	if cfg.Generator.DiceWords != 6 {
		t.Errorf("unset dice_words should keep default, got %d", cfg.Generator.DiceWords)
	}
	if cfg.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("color scheme = %s, want dark", cfg.UI.ColorScheme)
	}
	if !cfg.UI.Color {
		t.Error("unset ui.color should keep default true")
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"zero length", "generator: length: 0\n", "generator.length"},
		{"unknown key", "generator: lenght: 10\n", "lenght"},
		{"bad scheme", "ui: color_scheme: \"neon\"\n", "ui.color_scheme"},
		{"wrong type", "generator: secure: \"yes\"\n", "generator.secure"},
		{"syntax error", "generator: {\n", "config.cue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
			if err == nil {
				t.Fatal("expected error")
			}

			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("expected ActionableError, got %T", err)
			}
			if ae.Operation != "load configuration" {
				t.Errorf("operation = %q", ae.Operation)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "custom.cue")
	if err := os.WriteFile(path, []byte("generator: dice_words: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if resolved != path {
		t.Errorf("resolved = %q, want %q", resolved, path)
	}
	if cfg.Generator.DiceWords != 8 {
		t.Errorf("dice words = %d, want 8", cfg.Generator.DiceWords)
	}

	_, _, err = NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: filepath.Join(dir, "missing.cue")})
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "generator: length: 20\n")

	t.Setenv("PWGEN_GENERATOR_LENGTH", "32")
	t.Setenv("PWGEN_UI_COLOR", "false")

	cfg, _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Generator.Length != 32 {
		t.Errorf("length = %d, want env override 32", cfg.Generator.Length)
	}
	if cfg.UI.Color {
		t.Error("expected PWGEN_UI_COLOR=false to disable color")
	}
}

func TestLoad_InvalidEnvironmentValue(t *testing.T) {
	t.Setenv("PWGEN_GENERATOR_COUNT", "0")

	_, _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	var ice *InvalidConfigError
	if !errors.As(err, &ice) || len(ice.FieldErrors) != 1 {
		t.Fatalf("expected one field error, got %v", err)
	}
	if !errors.Is(ice.FieldErrors[0], ErrInvalidGeneratorConfig) {
		t.Errorf("expected generator config error, got %v", ice.FieldErrors[0])
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewProvider().Load(ctx, LoadOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Generator.Length = 18
	cfg.Generator.WordList = "/usr/share/dict/eff.txt"
	cfg.UI.ColorScheme = ColorSchemeLight

	dir := t.TempDir()
	writeConfig(t, dir, GenerateCUE(cfg))

	loaded, _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("generated CUE failed to load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestGenerateCUE_QuotesAwkwardStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		separator string
		wordlist  WordListPath
	}{
		{"control character", "\x01", "/tmp/words.txt"},
		{"tab and quote", "\t\"", `C:\lists\eff.txt`},
		{"non-ascii", "·", "/tmp/wörter.txt"},
		{"interpolation marker", `\(x)`, "/tmp/words.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			cfg.Generator.WordSeparator = tt.separator
			cfg.Generator.WordList = tt.wordlist

			dir := t.TempDir()
			writeConfig(t, dir, GenerateCUE(cfg))

			loaded, _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
			if err != nil {
				t.Fatalf("generated CUE failed to load: %v\n%s", err, GenerateCUE(cfg))
			}
			if loaded.Generator.WordSeparator != tt.separator {
				t.Errorf("separator = %q, want %q", loaded.Generator.WordSeparator, tt.separator)
			}
			if loaded.Generator.WordList != tt.wordlist {
				t.Errorf("wordlist = %q, want %q", loaded.Generator.WordList, tt.wordlist)
			}
		})
	}
}

func TestLoad_IgnoreEnvironment(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "generator: count: 4\n")

	t.Setenv("PWGEN_GENERATOR_LENGTH", "40")

	cfg, _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir, IgnoreEnvironment: true})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Generator.Length != DefaultConfig().Generator.Length {
		t.Errorf("length = %d, want the default with the environment ignored", cfg.Generator.Length)
	}
	if cfg.Generator.Count != 4 {
		t.Errorf("count = %d, want 4 from the file", cfg.Generator.Count)
	}
}

func TestSaveTo(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "team.cue")
	cfg := DefaultConfig()
	cfg.Generator.Count = 7

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, resolved, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if resolved != path {
		t.Errorf("resolved = %q, want %q", resolved, path)
	}
	if loaded.Generator.Count != 7 {
		t.Errorf("count = %d, want 7", loaded.Generator.Count)
	}
}

func TestGenerateTOML(t *testing.T) {
	t.Parallel()

	out, err := GenerateTOML(DefaultConfig())
	if err != nil {
		t.Fatalf("GenerateTOML() error = %v", err)
	}

	for _, want := range []string{"[generator]", "length = 12", "dice_words = 6", "word_separator = ", "[ui]", "color = true"} {
		if !strings.Contains(out, want) {
			t.Errorf("TOML output missing %q:\n%s", want, out)
		}
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	configDirOverride = dir
	t.Cleanup(func() { configDirOverride = "" })

	path, created, err := CreateDefaultConfig()
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if !created {
		t.Error("expected file to be created")
	}
	if want := filepath.Join(dir, "config.cue"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	if err := os.WriteFile(path, []byte("generator: length: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, created, err = CreateDefaultConfig()
	if err != nil {
		t.Fatalf("second CreateDefaultConfig() error = %v", err)
	}
	if created {
		t.Error("existing file must not be overwritten")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "generator: length: 30\n" {
		t.Errorf("file content changed: %q", data)
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := checkFileSize(make([]byte, 10), 10, "a.cue"); err != nil {
		t.Errorf("unexpected error at limit: %v", err)
	}
	if err := checkFileSize(make([]byte, 11), 10, "a.cue"); err == nil {
		t.Error("expected error above limit")
	}
}
