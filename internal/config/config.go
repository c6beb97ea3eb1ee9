// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"cardscan/internal/lexicon"
)

// Config represents the application configuration.
type Config struct {
	// Default settings
	Defaults struct {
		Format  string `yaml:"format"`
		Locale  string `yaml:"locale"`
		Verbose bool   `yaml:"verbose"`
		Debug   bool   `yaml:"debug"`
		NoColor bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Lexicons extends the built-in keyword lists of the locale profile.
	// Useful for company- or industry-specific vocabularies without
	// rebuilding the binary.
	Lexicons struct {
		Company            []string `yaml:"company"`
		Position           []string `yaml:"position"`
		Address            []string `yaml:"address"`
		Department         []string `yaml:"department"`
		CompanyDescription []string `yaml:"company_description"`
		Surnames           []string `yaml:"surnames"`
	} `yaml:"lexicons"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	config.Defaults.Format = "text"
	config.Defaults.Locale = "ko"

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if config.Defaults.Format == "" {
		config.Defaults.Format = "text"
	}
	if config.Defaults.Locale == "" {
		config.Defaults.Locale = "ko"
	}

	return config, nil
}

// LoadConfigOrDefault loads configuration from configFile (or searches
// standard locations when configFile is empty). If loading fails, it
// returns a default configuration — callers should not crash on a
// missing/bad config file.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// FindConfigFile looks for a configuration file in standard locations.
func FindConfigFile() string {
	for _, candidate := range []string{
		"cardscan.yaml",
		"cardscan.yml",
		".cardscan.yaml",
		".cardscan.yml",
	} {
		if fileExists(candidate) {
			return candidate
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	for _, candidate := range []string{
		filepath.Join(xdgConfig, "cardscan", "config.yaml"),
		filepath.Join(xdgConfig, "cardscan", "config.yml"),
		filepath.Join(home, ".cardscan.yaml"),
		filepath.Join(home, ".cardscan.yml"),
	} {
		if fileExists(candidate) {
			return candidate
		}
	}

	return ""
}

// Profile builds the locale profile for the configured locale with the
// lexicon extensions applied. Unknown locales fall back to Korean, the
// only profile currently shipped.
func (c *Config) Profile() *lexicon.Profile {
	ext := &lexicon.Extensions{
		Company:            c.Lexicons.Company,
		Position:           c.Lexicons.Position,
		Address:            c.Lexicons.Address,
		Department:         c.Lexicons.Department,
		CompanyDescription: c.Lexicons.CompanyDescription,
		Surnames:           c.Lexicons.Surnames,
	}
	return lexicon.Korean(ext)
}

// fileExists checks if a file exists and is not a directory.
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return info != nil && !info.IsDir()
}
