package seeder

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo-data generation settings.
type Config struct {
	// OwnerEmails is a comma-separated list of existing accounts to seed.
	OwnerEmails    string  `yaml:"owner_emails"     env:"SEEDER_OWNER_EMAILS"     env-required:"true"`
	Months         int     `yaml:"months"           env:"SEEDER_MONTHS"           env-default:"6"`
	LeadsPerMonth  int     `yaml:"leads_per_month"  env:"SEEDER_LEADS_PER_MONTH"  env-default:"20"`
	ConversionRate float64 `yaml:"conversion_rate"  env:"SEEDER_CONVERSION_RATE"  env-default:"0.25"`
	Campaigns      int     `yaml:"campaigns"        env:"SEEDER_CAMPAIGNS"        env-default:"3"`
	RandomSeed     uint64  `yaml:"random_seed"      env:"SEEDER_RANDOM_SEED"      env-default:"1"`
	DryRun         bool    `yaml:"dry_run"          env:"SEEDER_DRY_RUN"`
}

// Owners returns the trimmed, non-empty owner e-mails.
func (c Config) Owners() []string {
	var out []string
	for _, e := range strings.Split(c.OwnerEmails, ",") {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			out = append(out, e)
		}
	}
	return out
}

// Validate checks ranges.
func (c Config) Validate() error {
	if len(c.Owners()) == 0 {
		return fmt.Errorf("seeder config: at least one owner e-mail is required")
	}
	if c.Months < 1 || c.Months > 36 {
		return fmt.Errorf("seeder config: months must be between 1 and 36, got %d", c.Months)
	}
	if c.LeadsPerMonth < 0 {
		return fmt.Errorf("seeder config: leads_per_month must be non-negative")
	}
	if c.ConversionRate < 0 || c.ConversionRate > 1 {
		return fmt.Errorf("seeder config: conversion_rate must be within [0, 1], got %g", c.ConversionRate)
	}
	if c.Campaigns < 0 {
		return fmt.Errorf("seeder config: campaigns must be non-negative")
	}
	return nil
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
