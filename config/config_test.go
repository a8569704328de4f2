package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/elfmt/format"
	"github.com/dhamidi/elfmt/java"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadOverridesPatterns(t *testing.T) {
	path := writeFile(t, t.TempDir(), "elfmt.yaml", `
verbosity: 2
patterns:
  field: "{n}: {t}"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
	if cfg.Patterns.Method != format.DefaultMethodPattern {
		t.Errorf("Method pattern = %q, want default", cfg.Patterns.Method)
	}

	patterns, err := cfg.Compile()
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	got, err := patterns.Format(&java.Field{Name: "x", Type: java.Type{Name: "int"}})
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if got != "x: int" {
		t.Errorf("Format() = %q, want %q", got, "x: int")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", "verbosity: 1\n")
	t.Setenv(EnvVar, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Verbosity != 1 || cfg.Path != path {
		t.Errorf("got verbosity %d from %q", cfg.Verbosity, cfg.Path)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv(EnvVar, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}
	if cfg.Patterns.Class != format.DefaultClassPattern {
		t.Errorf("Class pattern = %q, want default", cfg.Patterns.Class)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yaml", "patterns: [\n")
		if _, err := Load(path); err == nil {
			t.Error("expected error")
		}
	})
}

func TestCompileNamesKey(t *testing.T) {
	cfg := Default()
	cfg.Patterns.Constructor = "{n"
	_, err := cfg.Compile()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "patterns.constructor:") {
		t.Errorf("error %q does not name the key", err)
	}
	var ce *format.CompileError
	if !errors.As(err, &ce) {
		t.Errorf("error %v does not wrap *format.CompileError", err)
	}
}
