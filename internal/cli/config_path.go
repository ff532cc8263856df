package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"quizgen/internal/config"
)

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig loads the config at configPath, or the one found from CWD,
// falling back to defaults when no file exists.
func loadConfig(configPath string) (config.Config, string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.Resolve("")
	}
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return config.Config{}, "", err
	}
	return config.Resolve(resolved)
}
