// Package config stores the CLI's local credentials.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultServer is used when no server has been configured.
const DefaultServer = "http://localhost:3000"

// Config stores CLI configuration
type Config struct {
	Server      string `json:"server"`
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	UserID      string `json:"user_id"`
}

// GetConfigPath returns the configuration file path (~/.uapictl/config.json)
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".uapictl", "config.json"), nil
}

// Load loads configuration from file. A missing file yields defaults.
func Load() (*Config, error) {
	configFile, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return &Config{Server: DefaultServer}, nil
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Server == "" {
		cfg.Server = DefaultServer
	}
	return &cfg, nil
}

// Save saves configuration to file
func (c *Config) Save() error {
	configFile, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 令牌文件只给当前用户读写
	if err := os.WriteFile(configFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Clear removes the stored token while keeping the server address.
func (c *Config) Clear() error {
	c.AccessToken = ""
	c.Username = ""
	c.UserID = ""
	return c.Save()
}
