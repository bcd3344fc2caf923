package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLookupToken(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		t.Setenv(TokenEnvVar, "abc123")

		token, err := LookupToken()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if token != "abc123" {
			t.Errorf("expected abc123, got %s", token)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Setenv(TokenEnvVar, "")

		if _, err := LookupToken(); !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("unset", func(t *testing.T) {
		t.Setenv(TokenEnvVar, "")
		os.Unsetenv(TokenEnvVar)

		if _, err := LookupToken(); !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		if err := LoadEnvFile(filepath.Join(t.TempDir(), ".env")); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("loads token", func(t *testing.T) {
		t.Setenv(TokenEnvVar, "")
		os.Unsetenv(TokenEnvVar)

		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte(TokenEnvVar+"=from-file\n"), 0600); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}

		if err := LoadEnvFile(path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		token, err := LookupToken()
		if err != nil {
			t.Fatalf("expected token, got %v", err)
		}
		if token != "from-file" {
			t.Errorf("expected from-file, got %s", token)
		}
	})

	t.Run("environment wins over file", func(t *testing.T) {
		t.Setenv(TokenEnvVar, "from-env")

		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte(TokenEnvVar+"=from-file\n"), 0600); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}

		if err := LoadEnvFile(path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if got := os.Getenv(TokenEnvVar); got != "from-env" {
			t.Errorf("expected from-env, got %s", got)
		}
	})
}
