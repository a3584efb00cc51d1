package config

import (
	"os"
	"path/filepath"
)

func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "dossier")
	}
	return filepath.Join(home, ".config", "dossier")
}

// ConfigFilePath prefers a dossier.toml next to the executable, then the one
// in ConfigDir.
func ConfigFilePath() string {
	exe, err := os.Executable()
	if err == nil {
		adjacent := filepath.Join(filepath.Dir(exe), "dossier.toml")
		if _, err := os.Stat(adjacent); err == nil {
			return adjacent
		}
	}
	return filepath.Join(ConfigDir(), "dossier.toml")
}

func LogFilePath() string {
	return filepath.Join(ConfigDir(), "dossier.log")
}
