// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustSetenv_Restores(t *testing.T) {
	const key = "PWGEN_TESTUTIL_PROBE"

	cleanup := MustSetenv(t, key, "one")
	if got := os.Getenv(key); got != "one" {
		t.Fatalf("Getenv = %q, want one", got)
	}
	cleanup()
	if _, ok := os.LookupEnv(key); ok {
		t.Error("variable should be unset after cleanup")
	}
}

func TestMustWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := MustWriteFile(t, dir, filepath.Join("nested", "words.txt"), "alpha\n")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "alpha\n" {
		t.Errorf("content = %q", data)
	}
}

func TestIsolateConfig(t *testing.T) {
	t.Setenv("PWGEN_GENERATOR_LENGTH", "99")
	t.Setenv("NO_COLOR", "1")

	base := IsolateConfig(t)
	if base == "" {
		t.Fatal("expected a base directory")
	}
	if _, ok := os.LookupEnv("PWGEN_GENERATOR_LENGTH"); ok {
		t.Error("PWGEN_ variables should be cleared")
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		t.Error("NO_COLOR should be cleared")
	}
}
