package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

/* Config holds process settings for the binaries
 * Values come from a .env file (toml) in the working directory, overridden by the environment
 */

type Config struct {
	Port               string `mapstructure:"PORT"`
	RobotsFile         string `mapstructure:"ROBOTS_FILE"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	LogJSON            bool   `mapstructure:"LOG_JSON"`
	ServiceName        string `mapstructure:"SERVICE_NAME"`
}

// HTTPTimeout returns the timeout applied to each robot webhook call
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

func GetConfig() (*Config, error) {
	return Load(".")
}

// Load reads .env from dir; a missing file leaves defaults and environment values in place
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	v.SetDefault("PORT", "8080")
	v.SetDefault("ROBOTS_FILE", "robots.yaml")
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 10)
	v.SetDefault("LOG_JSON", true)
	v.SetDefault("SERVICE_NAME", "robot-notify")
	v.AutomaticEnv()

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	err = v.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	if config.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT_SECONDS must be positive (got %d)", config.HTTPTimeoutSeconds)
	}
	return &config, nil
}
