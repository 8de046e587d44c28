package config

import (
	"os"
	"path/filepath"
	"strings"
)

const appDirName = ".phonepad"

const (
	envHome     = "PHONEPAD_HOME"
	envConfig   = "PHONEPAD_CONFIG"
	envCharset  = "PHONEPAD_CHARSET"
	envLogLevel = "PHONEPAD_LOG_LEVEL"
)

// DataDir returns the base data directory for phonepad.
// PHONEPAD_HOME overrides the default of ~/.phonepad.
func DataDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(envHome)); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// CoreConfigPath returns the path to the TOML configuration file.
func CoreConfigPath() (string, error) {
	if path := strings.TrimSpace(os.Getenv(envConfig)); path != "" {
		return path, nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "config.toml"), nil
}

// CharsetsDir returns the directory scanned for user keypad layouts.
func CharsetsDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "charsets"), nil
}
