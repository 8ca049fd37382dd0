// Package config holds database wiring, migrations and the Arca sync
// configuration loaded from arca.yaml.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ArcaConfig holds connection settings and the schedule for the
// periodic document synchronization against the Arca ERP.
type ArcaConfig struct {
	BaseURL  string       `yaml:"base_url"`
	Username string       `yaml:"username"`
	Password string       `yaml:"password"`
	Sync     SyncSettings `yaml:"sync"`
}

// SyncSettings controls what the sync job pulls and how often.
type SyncSettings struct {
	Schedule     string `yaml:"schedule"`      // cron expression, e.g. "*/15 6-20 * * 1-6"
	LookbackDays int    `yaml:"lookback_days"` // how far back to request documents
	Masters      bool   `yaml:"masters"`       // also refresh clients/sites/drivers
}

// LoadArca reads a YAML config file from path and returns a validated ArcaConfig.
func LoadArca(path string) (*ArcaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("arca config: read %s: %w", path, err)
	}
	return ParseArca(data)
}

// ParseArca unmarshals YAML bytes into a validated ArcaConfig.
func ParseArca(data []byte) (*ArcaConfig, error) {
	var cfg ArcaConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("arca config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields and applies defaults.
func (c *ArcaConfig) Validate() error {
	var problems []string
	if c.BaseURL == "" {
		problems = append(problems, "base_url is required")
	}
	if c.Username == "" {
		problems = append(problems, "username is required")
	}
	if c.Password == "" {
		problems = append(problems, "password is required")
	}
	if c.Sync.Schedule == "" {
		c.Sync.Schedule = "0 6 * * *"
	}
	if c.Sync.LookbackDays <= 0 {
		c.Sync.LookbackDays = 7
	}
	if len(problems) > 0 {
		return fmt.Errorf("arca config: %s", strings.Join(problems, "; "))
	}
	return nil
}
