package configs

import (
	"log"
	"os"
	"path/filepath"
)

type Settings struct {
	// DataPath holds the encrypted note documents and the audit log.
	DataPath string

	// ConfigsPath holds config.toml.
	ConfigsPath string
}

// UserVaultSettings locates the user's notevault directories. Tests
// swap the pointer for a temp-dir copy.
var UserVaultSettings *Settings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	UserVaultSettings = &Settings{
		DataPath:    filepath.Join(dataDir, "notevault"),
		ConfigsPath: filepath.Join(configDir, "notevault"),
	}
}
