package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Detector struct {
	Image     string `mapstructure:"image"`
	ModelPath string `mapstructure:"model_path"`
}

type Config struct {
	ListenAddr   string   `mapstructure:"listen_addr"`
	DatabasePath string   `mapstructure:"database_path"`
	MediaRoot    string   `mapstructure:"media_root"`
	RedisAddr    string   `mapstructure:"redis_addr"`
	CSVDelimiter string   `mapstructure:"csv_delimiter"`
	Detector     Detector `mapstructure:"detector"`
}

// Load reads drillhub.yaml if present and applies DRILLHUB_* environment
// overrides. A missing config file means defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("database_path", "drillhub.db")
	v.SetDefault("media_root", "media")
	v.SetDefault("redis_addr", "127.0.0.1:6379")
	v.SetDefault("csv_delimiter", ";")
	v.SetDefault("detector.image", "drillhub/detector:latest")
	v.SetDefault("detector.model_path", "models/default.pt")

	v.SetEnvPrefix("DRILLHUB")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("drillhub")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if len(cfg.CSVDelimiter) != 1 {
		return nil, fmt.Errorf("csv_delimiter must be a single character, got %q", cfg.CSVDelimiter)
	}
	return &cfg, nil
}
