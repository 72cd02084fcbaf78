package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds everything the app reads at startup.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Pricing PricingConfig `yaml:"pricing"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr          string `yaml:"addr"`
	DBPath        string `yaml:"db_path"`
	SessionSecret string `yaml:"session_secret"`
}

type PricingConfig struct {
	DefaultMarginRatio float64 `yaml:"default_margin_ratio"`
	DefaultSetupCost   float64 `yaml:"default_setup_cost"`
	QuantityBreaks     []int   `yaml:"quantity_breaks"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:          ":8080",
			DBPath:        "./spring_quote.db",
			SessionSecret: "change-me",
		},
		Pricing: PricingConfig{
			DefaultMarginRatio: 0.4,
			DefaultSetupCost:   500,
			QuantityBreaks:     []int{1, 10, 50, 100, 250, 500, 1000, 5000},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the yaml config at path, falling back to defaults when the file
// is missing, then applies SPRINGQ_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&cfg)

	if cfg.Pricing.DefaultMarginRatio <= 0 || cfg.Pricing.DefaultMarginRatio > 1 {
		return Config{}, fmt.Errorf("default_margin_ratio %v out of (0,1]", cfg.Pricing.DefaultMarginRatio)
	}
	if len(cfg.Pricing.QuantityBreaks) == 0 {
		cfg.Pricing.QuantityBreaks = Default().Pricing.QuantityBreaks
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SPRINGQ_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SPRINGQ_DB_PATH"); v != "" {
		cfg.Server.DBPath = v
	}
	if v := os.Getenv("SPRINGQ_SESSION_SECRET"); v != "" {
		cfg.Server.SessionSecret = v
	}
	if v := os.Getenv("SPRINGQ_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SPRINGQ_SETUP_COST"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Pricing.DefaultSetupCost = f
		}
	}
	if v := os.Getenv("SPRINGQ_QUANTITY_BREAKS"); v != "" {
		if breaks := parseBreaks(v); len(breaks) > 0 {
			cfg.Pricing.QuantityBreaks = breaks
		}
	}
}

func parseBreaks(s string) []int {
	var breaks []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			continue
		}
		breaks = append(breaks, n)
	}
	return breaks
}
