package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Policy holds the moderation thresholds operators can override with POLICY_FILE.
type Policy struct {
	StaleInProgressDays int               `yaml:"stale_in_progress_days"`
	HighBudgetAmount    float64           `yaml:"high_budget_amount"`
	FeaturedMinUSD      float64           `yaml:"featured_min_usd"`
	HBARUSDRate         float64           `yaml:"hbar_usd_rate"`
	CategoryAliases     map[string]string `yaml:"category_aliases"`
}

func DefaultPolicy() Policy {
	return Policy{
		StaleInProgressDays: 14,
		HighBudgetAmount:    10000,
		FeaturedMinUSD:      FeaturedMinUSD,
		HBARUSDRate:         HBARUSDRate,
	}
}

// LoadPolicy reads the YAML policy file at path on top of the defaults.
// An empty path returns the defaults.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()
	if path == "" {
		return p, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read policy file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("parse policy file: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

func (p Policy) Validate() error {
	if p.StaleInProgressDays <= 0 {
		return fmt.Errorf("stale_in_progress_days must be positive, got %d", p.StaleInProgressDays)
	}
	if p.HighBudgetAmount <= 0 {
		return fmt.Errorf("high_budget_amount must be positive, got %v", p.HighBudgetAmount)
	}
	if p.FeaturedMinUSD < 0 {
		return fmt.Errorf("featured_min_usd cannot be negative")
	}
	if p.HBARUSDRate <= 0 {
		return fmt.Errorf("hbar_usd_rate must be positive")
	}
	return nil
}
