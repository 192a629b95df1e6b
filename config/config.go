package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Token is the GitHub personal access token. The GITHUB_TOKEN
	// environment variable and the --token flag take precedence.
	Token string `yaml:"token,omitempty"`

	DefaultFormat string   `yaml:"default_format,omitempty"`
	Theme         string   `yaml:"theme,omitempty"`
	TopPRsPerRepo int      `yaml:"top_prs_per_repo,omitempty"`
	ExcludeRepos  []string `yaml:"exclude_repos,omitempty"`
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".aura"
	}
	return filepath.Join(configDir, "aura")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return ".aura.yaml"
}

// ConfigFileExists returns true if the config file exists on disk
func ConfigFileExists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Load loads the configuration from disk.
// It first loads the global config from the XDG config directory, then
// merges any local .aura.yaml config on top (local values take precedence).
func Load() (*Config, error) {
	// Start with defaults
	cfg := &Config{
		DefaultFormat: "table",
		Theme:         "classic",
	}

	// Load global config if it exists
	globalPath := ConfigPath()
	if _, err := os.Stat(globalPath); err == nil {
		data, err := os.ReadFile(globalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read global config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse global config file: %w", err)
		}
	}

	// Load local config if it exists and merge on top
	localPath := LocalConfigPath()
	if _, err := os.Stat(localPath); err == nil {
		data, err := os.ReadFile(localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read local config file: %w", err)
		}

		var localCfg Config
		if err := yaml.Unmarshal(data, &localCfg); err != nil {
			return nil, fmt.Errorf("failed to parse local config file: %w", err)
		}

		cfg = mergeConfig(cfg, &localCfg)
	}

	// Set defaults if still empty
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = "table"
	}
	if cfg.Theme == "" {
		cfg.Theme = "classic"
	}

	return cfg, nil
}

// mergeConfig merges local config on top of global config.
// Local values take precedence; unset local values preserve global values.
func mergeConfig(global, local *Config) *Config {
	result := &Config{}

	// Merge simple fields (local wins if set)
	if local.Token != "" {
		result.Token = local.Token
	} else {
		result.Token = global.Token
	}

	if local.DefaultFormat != "" {
		result.DefaultFormat = local.DefaultFormat
	} else {
		result.DefaultFormat = global.DefaultFormat
	}

	if local.Theme != "" {
		result.Theme = local.Theme
	} else {
		result.Theme = global.Theme
	}

	if local.TopPRsPerRepo != 0 {
		result.TopPRsPerRepo = local.TopPRsPerRepo
	} else {
		result.TopPRsPerRepo = global.TopPRsPerRepo
	}

	// Merge arrays (local replaces if non-empty)
	if len(local.ExcludeRepos) > 0 {
		result.ExcludeRepos = local.ExcludeRepos
	} else {
		result.ExcludeRepos = global.ExcludeRepos
	}

	return result
}

// ResolveToken returns the token to authenticate with, in order of
// precedence: the explicit flag value, the GITHUB_TOKEN environment
// variable, then the config file. An empty result means anonymous access.
func (c *Config) ResolveToken(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("GITHUB_TOKEN"); env != "" {
		return env
	}
	return c.Token
}

// Save writes the configuration to the global config path, creating the
// directory if needed.
func (c *Config) Save() error {
	dir := DefaultConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(), data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
