package platform

import (
	"fmt"
	"os"
)

// ConfigDir returns the per-user configuration directory. When the OS
// reports none it falls back to the conventional location under home.
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil || homeDir == "" {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}
	return fallbackConfigDir(homeDir), nil
}
