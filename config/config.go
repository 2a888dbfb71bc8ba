// Package config resolves the tool's configuration from a TOML file and
// EXPENSE_TRACKER_* environment variables. Flags beat environment beats
// file beats defaults; every key has a default, so running without any
// configuration just works.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	expense "github.com/AhmedHeshamC/expenseTracker"
)

// Config is the resolved application configuration.
type Config struct {
	ExpensesFile    string   `mapstructure:"expenses_file"`
	BudgetsFile     string   `mapstructure:"budgets_file"`
	Currency        string   `mapstructure:"currency"`
	Categories      []string `mapstructure:"categories"`
	DefaultCategory string   `mapstructure:"default_category"`
}

// Load reads the configuration. An empty path falls back to the
// EXPENSE_TRACKER_CONFIG environment variable, then to
// <user config dir>/expense-tracker/config.toml. A missing file at the
// fallback location is fine (defaults and environment still apply); a
// missing file the caller named explicitly is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.SetDefault("expenses_file", "expenses.json")
	v.SetDefault("budgets_file", "budgets.json")
	v.SetDefault("currency", "USD")
	v.SetDefault("categories", expense.DefaultCategories)
	v.SetDefault("default_category", expense.DefaultCategory)

	v.SetEnvPrefix("EXPENSE_TRACKER")
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("EXPENSE_TRACKER_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "expense-tracker", "config.toml")
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate reports configuration values the tool cannot run with.
func (c *Config) Validate() error {
	if c.ExpensesFile == "" {
		return errors.New("expenses_file must not be empty")
	}
	if c.BudgetsFile == "" {
		return errors.New("budgets_file must not be empty")
	}
	if c.DefaultCategory == "" {
		return errors.New("default_category must not be empty")
	}
	return nil
}
