package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Backend kinds selectable in the sync configuration.
const (
	BackendNone      = "none"
	BackendBasicHTTP = "basic-http"
	BackendRepoAPI   = "repo-api"
	BackendCustom    = "custom"
)

// BackendKinds lists every valid backend value, for flag validation.
var BackendKinds = []string{BackendNone, BackendBasicHTTP, BackendRepoAPI, BackendCustom}

type Config struct {
	Session SessionConfig `toml:"session"`
	Sync    SyncConfig    `toml:"sync"`
}

// SessionConfig remembers which user last logged in. Only the username
// is persisted; encryption keys never leave process memory.
type SessionConfig struct {
	CurrentUser string `toml:"current_user"`
}

// SyncConfig selects and parameterizes the remote backend. Credentials
// live here because the CLI has no host secret store; the file is
// written with 0600-style directory permissions.
type SyncConfig struct {
	Backend        string `toml:"backend"`
	BaseURL        string `toml:"base_url"`
	Username       string `toml:"username"`
	Password       string `toml:"password"`
	Token          string `toml:"token"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// DefaultTimeout bounds every remote call so a hung network connection
// cannot block a sync operation forever.
const DefaultTimeout = 30 * time.Second

func (c SyncConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func configPath() string {
	return filepath.Join(UserVaultSettings.ConfigsPath, "config.toml")
}

// LoadConfig loads the user configuration, returning defaults when the
// file does not exist yet.
func LoadConfig() (*Config, error) {
	config := &Config{
		Sync: SyncConfig{Backend: BackendNone},
	}

	path := configPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if config.Sync.Backend == "" {
		config.Sync.Backend = BackendNone
	}

	return config, nil
}

// SaveConfig writes the user configuration to the config file.
func SaveConfig(config *Config) error {
	if err := SaveTOML(configPath(), config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// IsValidBackend reports whether kind names a known backend.
func IsValidBackend(kind string) bool {
	for _, k := range BackendKinds {
		if k == kind {
			return true
		}
	}
	return false
}
