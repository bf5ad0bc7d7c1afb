package config

import (
	"errors"
	"fmt"
	"os"

	"breakout-trader/internal/model"
	"breakout-trader/internal/strategy"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Strategy  StrategyConfig  `yaml:"strategy"`
	Portfolio PortfolioConfig `yaml:"portfolio"`
}

// StrategyConfig holds the five indicator window lengths. Zero fields are
// filled from the defaults, so configs only need to name what they change.
type StrategyConfig struct {
	Name             string `yaml:"name"`
	BreakoutLookback int    `yaml:"breakout_lookback"`
	VolLookback      int    `yaml:"vol_lookback"`
	ShortWindow      int    `yaml:"short_window"`
	LongWindow       int    `yaml:"long_window"`
	MomentumDays     int    `yaml:"momentum_days"`
}

// PortfolioConfig is the starting portfolio state.
type PortfolioConfig struct {
	CashBalance float64 `yaml:"cash_balance"`
	SharesHeld  float64 `yaml:"shares_held"`
}

// Load reads, defaults, and validates a config file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads a config without defaulting or validating it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns a fully-defaulted config: standard windows, empty portfolio.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills zero window fields from the standard parameter set.
func (c *Config) ApplyDefaults() {
	c.Strategy = MergeStrategy(defaultStrategyConfig(), c.Strategy)
}

func defaultStrategyConfig() StrategyConfig {
	p := strategy.DefaultParams()
	return StrategyConfig{
		Name:             "breakout",
		BreakoutLookback: p.BreakoutLookback,
		VolLookback:      p.VolLookback,
		ShortWindow:      p.ShortWindow,
		LongWindow:       p.LongWindow,
		MomentumDays:     p.MomentumDays,
	}
}

// Validate checks the config by constructing the domain objects it describes.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Strategy.Name != "breakout" {
		return fmt.Errorf("unknown strategy %q", c.Strategy.Name)
	}
	if err := c.Strategy.ToParams().Validate(); err != nil {
		return fmt.Errorf("strategy config invalid: %w", err)
	}
	if err := c.Portfolio.ToModel().Validate(); err != nil {
		return fmt.Errorf("portfolio config invalid: %w", err)
	}
	return nil
}

// ToParams converts the strategy section to evaluator parameters.
func (s StrategyConfig) ToParams() strategy.Params {
	return strategy.Params{
		BreakoutLookback: s.BreakoutLookback,
		VolLookback:      s.VolLookback,
		ShortWindow:      s.ShortWindow,
		LongWindow:       s.LongWindow,
		MomentumDays:     s.MomentumDays,
	}
}

// ToModel converts the portfolio section to the domain type.
func (p PortfolioConfig) ToModel() model.Portfolio {
	return model.Portfolio{CashBalance: p.CashBalance, SharesHeld: p.SharesHeld}
}

// MergeStrategy overlays non-zero fields from override onto base.
// This is how request-level overrides are applied on top of defaults.
func MergeStrategy(base, override StrategyConfig) StrategyConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.BreakoutLookback != 0 {
		out.BreakoutLookback = override.BreakoutLookback
	}
	if override.VolLookback != 0 {
		out.VolLookback = override.VolLookback
	}
	if override.ShortWindow != 0 {
		out.ShortWindow = override.ShortWindow
	}
	if override.LongWindow != 0 {
		out.LongWindow = override.LongWindow
	}
	if override.MomentumDays != 0 {
		out.MomentumDays = override.MomentumDays
	}
	return out
}
