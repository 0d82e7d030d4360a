package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// APIURL is the pastery paste creation endpoint.
	APIURL = "https://www.pastery.net/api/paste/"

	// APIKeyEnvVar names the environment variable holding the API key.
	APIKeyEnvVar = "PASTERY_API_KEY"

	Version   = "0.3.0"
	UserAgent = "patisserie/" + Version
)

// ErrMissingAPIKey is returned when no API key could be found.
var ErrMissingAPIKey = errors.New("no API key given; pass --api-key, set " + APIKeyEnvVar + ", or add it to " + envFileHint)

const envFileHint = "$XDG_CONFIG_HOME/patisserie/env"

// DefaultEnvFile returns the dotenv file consulted for the API key when it is
// not given on the command line or in the environment.
func DefaultEnvFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "patisserie", "env")
}

// Lookup reads a variable from the process environment.
type Lookup func(key string) (string, bool)

// APIKey resolves the API key. The flag value wins, then the environment
// (through lookup), then envFile. A missing envFile is not an error.
func APIKey(flag string, lookup Lookup, envFile string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if lookup != nil {
		if v, ok := lookup(APIKeyEnvVar); ok && v != "" {
			return v, nil
		}
	}
	if envFile == "" {
		return "", ErrMissingAPIKey
	}

	vars, err := godotenv.Read(envFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrMissingAPIKey
		}
		return "", fmt.Errorf("reading %s: %w", envFile, err)
	}
	if v := vars[APIKeyEnvVar]; v != "" {
		return v, nil
	}
	return "", ErrMissingAPIKey
}
