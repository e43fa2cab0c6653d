package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/testgen/config.yml
// - macOS: ~/Library/Application Support/testgen/config.yml
// - Windows: %APPDATA%\testgen\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "testgen", "config.yml"), nil
}

// UserConfigDir returns the path to the user-level config directory.
func UserConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "testgen"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .testgen/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".testgen", "config.yml")
}

// ProjectConfigDir returns the path to the project-level config directory.
func ProjectConfigDir() string {
	return ".testgen"
}
