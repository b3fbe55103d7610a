// Package config loads the punchclock configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/punchclock/internal/errors"
)

// Config represents the application configuration
type Config struct {
	// LogPath is where clock punches are stored.
	LogPath string `yaml:"log_path"`
}

// defaultLogFileName is the fixed per-user log location under $HOME.
const defaultLogFileName = ".punch_clock"

// DefaultLogPath returns the per-user punch log path.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// No home directory: fall back to the working directory.
		return defaultLogFileName
	}
	return filepath.Join(home, defaultLogFileName)
}

// Load loads configuration from the specified file. An empty path means no
// config file was requested and defaults apply; a named file must exist.
func Load(configPath string) (*Config, error) {
	// Pick up a .env file when present; its absence is not an error.
	_ = godotenv.Load()

	config := &Config{}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(configPath)
		}
		if err != nil {
			return nil, errors.ConfigInvalid(configPath, err)
		}

		// Expand environment variables in the YAML content
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), config); err != nil {
			return nil, errors.ConfigInvalid(configPath, err)
		}
	}

	// Apply defaults
	if config.LogPath == "" {
		config.LogPath = DefaultLogPath()
	}

	return config, nil
}
