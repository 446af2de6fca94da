// Package config loads the app configuration from app.yaml plus the
// environment and owns the shared logrus logger.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type AppConfig struct {
	ListenAddr      string  `yaml:"listen_addr"`
	LogLevel        string  `yaml:"log_level"`
	DefaultRegion   string  `yaml:"default_region"`
	CalibrationFile string  `yaml:"calibration_file"`
	HorizonYears    int     `yaml:"horizon_years"`
	DiscountRate    float64 `yaml:"discount_rate"`
	GeminiModel     string  `yaml:"gemini_model"`
}

// Defaults returns the config used when no app.yaml is present.
func Defaults() AppConfig {
	return AppConfig{
		ListenAddr:    ":8080",
		LogLevel:      "info",
		DefaultRegion: "us",
		HorizonYears:  10,
		DiscountRate:  0.08,
		GeminiModel:   "gemini-2.0-flash",
	}
}

// Load reads path over the defaults. A missing file is not an error;
// a present but unparseable one is.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.HorizonYears <= 0 {
		cfg.HorizonYears = Defaults().HorizonYears
	}
	if cfg.DiscountRate <= 0 {
		cfg.DiscountRate = Defaults().DiscountRate
	}
	return cfg, nil
}
