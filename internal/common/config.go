package common

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Convert ConvertConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxUploadMB  int64
}

// ConvertConfig holds conversion behavior configuration
type ConvertConfig struct {
	// Timeout bounds a single conversion; zero disables the limit.
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_ADDR", ":8080")
	viper.SetDefault("SERVER_READ_TIMEOUT", 30*time.Second)
	viper.SetDefault("SERVER_WRITE_TIMEOUT", 60*time.Second)
	viper.SetDefault("MAX_UPLOAD_MB", 32)
	viper.SetDefault("CONVERT_TIMEOUT", 0*time.Second)

	return &Config{
		Server: ServerConfig{
			Addr:         viper.GetString("SERVER_ADDR"),
			ReadTimeout:  viper.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout: viper.GetDuration("SERVER_WRITE_TIMEOUT"),
			MaxUploadMB:  viper.GetInt64("MAX_UPLOAD_MB"),
		},
		Convert: ConvertConfig{
			Timeout: viper.GetDuration("CONVERT_TIMEOUT"),
		},
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "SERVER_ADDR is required", ErrInvalidInput)
	}
	if c.Server.MaxUploadMB <= 0 {
		return NewAppError("CONFIG_ERROR", "MAX_UPLOAD_MB must be positive", ErrInvalidInput)
	}
	return nil
}
