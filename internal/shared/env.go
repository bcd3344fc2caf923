package shared

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// TokenEnvVar names the environment variable holding the bearer token.
const TokenEnvVar = "SPOTIFY_TOKEN"

// LoadEnvFile loads KEY=value pairs from a dotenv file into the process environment.
//
// Variables that are already set are left alone. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: failed to load %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

// LookupToken returns the bearer token from the environment.
func LookupToken() (string, error) {
	token, ok := os.LookupEnv(TokenEnvVar)
	if !ok || token == "" {
		return "", fmt.Errorf("%w: you have to set %s environment variable", ErrMissingCredentials, TokenEnvVar)
	}
	return token, nil
}
