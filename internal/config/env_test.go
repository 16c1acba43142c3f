package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("ORBRUNNER_TEST_VALUE", "abc")
	if got := GetEnv("ORBRUNNER_TEST_VALUE", "x"); got != "abc" {
		t.Errorf("GetEnv = %q, want abc", got)
	}
	if got := GetEnv("ORBRUNNER_TEST_MISSING", "x"); got != "x" {
		t.Errorf("GetEnv fallback = %q, want x", got)
	}

	t.Setenv("ORBRUNNER_TEST_EMPTY", "")
	if got := GetEnv("ORBRUNNER_TEST_EMPTY", "x"); got != "" {
		t.Errorf("set but empty variable should win over fallback, got %q", got)
	}
}

func TestGetEnvTyped(t *testing.T) {
	t.Setenv("ORBRUNNER_TEST_INT", "42")
	t.Setenv("ORBRUNNER_TEST_BAD_INT", "forty")
	t.Setenv("ORBRUNNER_TEST_FLOAT", "0.5")
	t.Setenv("ORBRUNNER_TEST_DURATION", "1m30s")

	if got := GetEnvInt("ORBRUNNER_TEST_INT", 1); got != 42 {
		t.Errorf("GetEnvInt = %d, want 42", got)
	}
	if got := GetEnvInt("ORBRUNNER_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("GetEnvInt with bad value = %d, want 7", got)
	}
	if got := GetEnvFloat("ORBRUNNER_TEST_FLOAT", 1); got != 0.5 {
		t.Errorf("GetEnvFloat = %v, want 0.5", got)
	}
	if got := GetEnvDuration("ORBRUNNER_TEST_DURATION", time.Second); got != 90*time.Second {
		t.Errorf("GetEnvDuration = %v, want 1m30s", got)
	}
	if got := GetEnvDuration("ORBRUNNER_TEST_MISSING", time.Second); got != time.Second {
		t.Errorf("GetEnvDuration fallback = %v", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("ORBRUNNER_TEST_DOTENV=loaded\nORBRUNNER_TEST_KEEP=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ORBRUNNER_TEST_KEEP", "env")
	t.Setenv("ORBRUNNER_TEST_DOTENV", "")
	os.Unsetenv("ORBRUNNER_TEST_DOTENV")

	loaded, err := LoadDotEnv(filepath.Join(dir, "missing.env"), path)
	if err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if loaded != path {
		t.Errorf("loaded = %q, want %q", loaded, path)
	}
	if got := os.Getenv("ORBRUNNER_TEST_DOTENV"); got != "loaded" {
		t.Errorf("ORBRUNNER_TEST_DOTENV = %q, want loaded", got)
	}
	if got := os.Getenv("ORBRUNNER_TEST_KEEP"); got != "env" {
		t.Errorf("existing variable overridden: %q", got)
	}
}

func TestLoadDotEnvMissing(t *testing.T) {
	loaded, err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env"))
	if err != nil || loaded != "" {
		t.Errorf("LoadDotEnv(missing) = %q, %v; want empty, nil", loaded, err)
	}
}
