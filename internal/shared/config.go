package shared

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration.
//
// Values come from the embedded defaults, an optional TOML file, CLI flags and the environment, in that order.
type Config struct {
	Spotify SpotifyConfig `toml:"spotify"`
	Output  OutputConfig  `toml:"output"`
	Client  ClientConfig  `toml:"client"`
}

// SpotifyConfig contains the API endpoint and credential.
type SpotifyConfig struct {
	BaseURL string `toml:"base_url"`
	Token   string `toml:"-"` // only ever sourced from the environment
}

// OutputConfig contains settings for the written export files.
type OutputConfig struct {
	Directory string `toml:"-"`
	Pretty    bool   `toml:"pretty"`
}

// ClientConfig contains HTTP client settings.
type ClientConfig struct {
	RateLimit float64 `toml:"rate_limit"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// Validate checks that the configuration is complete enough to start a backup.
func (c *Config) Validate() error {
	if c.Output.Directory == "" {
		return fmt.Errorf("%w: output directory", ErrMissingArgument)
	}
	if strings.TrimSpace(c.Spotify.Token) == "" {
		return fmt.Errorf("%w: you have to set %s environment variable", ErrMissingCredentials, TokenEnvVar)
	}
	if c.Client.RateLimit < 0 {
		return fmt.Errorf("%w: rate_limit must not be negative", ErrInvalidConfig)
	}

	u, err := url.Parse(c.Spotify.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base_url %q is not an absolute URL", ErrInvalidConfig, c.Spotify.BaseURL)
	}

	return nil
}
