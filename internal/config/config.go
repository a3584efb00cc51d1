package config

import (
	"fmt"
	"os"
	"time"

	"github.com/druarnfield/dossier/internal/form"
	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	Form     FormConfig                 `toml:"form"`
	Limits   LimitsConfig               `toml:"limits"`
	UI       UIConfig                   `toml:"ui"`
	Required map[string]map[string]bool `toml:"required"`
}

type FormConfig struct {
	Title string `toml:"title"`
}

type LimitsConfig struct {
	SoftTextLimit int `toml:"soft_text_limit"`
	YearMin       int `toml:"year_min"`
	YearMax       int `toml:"year_max"`
}

type UIConfig struct {
	RemovalDelayMS int  `toml:"removal_delay_ms"`
	ShowHelp       bool `toml:"show_help"`
}

func Defaults() *Config {
	return &Config{
		Form: FormConfig{Title: "Personal Data Form"},
		Limits: LimitsConfig{
			SoftTextLimit: form.DefaultSoftLimit,
			YearMin:       form.DefaultYearMin,
			YearMax:       form.DefaultYearMax,
		},
		UI: UIConfig{RemovalDelayMS: 300, ShowHelp: true},
	}
}

func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Limits.YearMin > cfg.Limits.YearMax {
		return nil, fmt.Errorf("parsing config: limits.year_min %d is after limits.year_max %d",
			cfg.Limits.YearMin, cfg.Limits.YearMax)
	}

	return cfg, nil
}

// CatalogOptions converts the limits and required overrides for
// form.DefaultCatalog.
func (c *Config) CatalogOptions() form.CatalogOptions {
	opts := form.CatalogOptions{
		SoftLimit: c.Limits.SoftTextLimit,
		YearMin:   c.Limits.YearMin,
		YearMax:   c.Limits.YearMax,
	}
	if len(c.Required) > 0 {
		opts.Required = make(map[string]bool)
		for section, fields := range c.Required {
			for name, req := range fields {
				opts.Required[section+"."+name] = req
			}
		}
	}
	return opts
}

// RemovalDelay is how long a removed entry stays on screen before it is
// dropped from the list.
func (c *Config) RemovalDelay() time.Duration {
	if c.UI.RemovalDelayMS < 0 {
		return 0
	}
	return time.Duration(c.UI.RemovalDelayMS) * time.Millisecond
}
