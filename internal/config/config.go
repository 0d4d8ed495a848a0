// Package config loads the service configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every recognized environment option.
type Config struct {
	Port          int    `mapstructure:"port"`
	Environment   string `mapstructure:"app_environment"`
	TemplatesPath string `mapstructure:"templates_path"`
	UploadsPath   string `mapstructure:"uploads_path"`
	MaxFileSize   int64  `mapstructure:"max_file_size"`
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
}

// Load reads configuration from a .env file (if present) and the process
// environment, applying defaults for anything unset.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetDefault("port", 3002)
	v.SetDefault("app_environment", "development")
	v.SetDefault("templates_path", "views")
	v.SetDefault("uploads_path", "uploads")
	v.SetDefault("max_file_size", 5*1024*1024)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.AutomaticEnv()

	// AutomaticEnv alone doesn't surface env vars through Unmarshal, so
	// bind each key explicitly.
	for _, key := range []string{"port", "app_environment", "templates_path", "uploads_path", "max_file_size", "log_level", "log_format"} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadEnvFile tries a few locations so the server can be started from the
// project root or a subdirectory.
func loadEnvFile() {
	candidates := []string{".env", filepath.Join("..", ".env"), filepath.Join("..", "..", ".env")}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			if godotenv.Load(path) == nil {
				return
			}
		}
	}
}
