package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Spotify.BaseURL != "https://api.spotify.com/v1/" {
			t.Errorf("expected base URL https://api.spotify.com/v1/, got %s", config.Spotify.BaseURL)
		}

		if config.Output.Pretty {
			t.Error("expected compact output by default")
		}

		if config.Client.RateLimit != 0 {
			t.Errorf("expected rate limit 0, got %v", config.Client.RateLimit)
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[spotify]
base_url = "http://localhost:9090/v1/"

[output]
pretty = true

[client]
rate_limit = 2.5
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Spotify.BaseURL != "http://localhost:9090/v1/" {
			t.Errorf("expected custom base URL, got %s", config.Spotify.BaseURL)
		}
		if !config.Output.Pretty {
			t.Error("expected pretty output")
		}
		if config.Client.RateLimit != 2.5 {
			t.Errorf("expected rate limit 2.5, got %v", config.Client.RateLimit)
		}
	})

	t.Run("LoadConfig keeps defaults for missing keys", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[output]\npretty = true\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Spotify.BaseURL != DefaultConfig().Spotify.BaseURL {
			t.Errorf("expected default base URL, got %s", config.Spotify.BaseURL)
		}
	})

	t.Run("LoadConfig with invalid TOML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[spotify\nbase_url = "), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("LoadConfig with missing file", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		c := DefaultConfig()
		c.Spotify.Token = "token"
		c.Output.Directory = t.TempDir()
		return c
	}

	tt := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing directory", mutate: func(c *Config) { c.Output.Directory = "" }, wantErr: ErrMissingArgument},
		{name: "missing token", mutate: func(c *Config) { c.Spotify.Token = "" }, wantErr: ErrMissingCredentials},
		{name: "blank token", mutate: func(c *Config) { c.Spotify.Token = "   " }, wantErr: ErrMissingCredentials},
		{name: "negative rate limit", mutate: func(c *Config) { c.Client.RateLimit = -1 }, wantErr: ErrInvalidConfig},
		{name: "relative base URL", mutate: func(c *Config) { c.Spotify.BaseURL = "v1/" }, wantErr: ErrInvalidConfig},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)

			err := c.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
