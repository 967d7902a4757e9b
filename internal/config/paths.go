package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/relkit/config.yml
// - macOS: ~/Library/Application Support/relkit/config.yml
// - Windows: %APPDATA%\relkit\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "relkit", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file,
// always .relkit/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(ProjectConfigDir(), "config.yml")
}

// ProjectConfigJSONPath returns the JSON variant of the project config path.
func ProjectConfigJSONPath() string {
	return filepath.Join(ProjectConfigDir(), "config.json")
}

// ProjectConfigDir returns the path to the project-level config directory.
func ProjectConfigDir() string {
	return ".relkit"
}
