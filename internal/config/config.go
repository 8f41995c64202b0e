package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// DefaultBaseURL is the default staffing backend origin + versioned prefix.
	DefaultBaseURL = "http://localhost:8080/api/v1"

	// DefaultTimeoutSeconds is the default per-request HTTP timeout.
	DefaultTimeoutSeconds = 30
)

// Config holds all configuration for the staffing client.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Neo4j   Neo4jConfig   `mapstructure:"neo4j"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds staffing backend connection settings.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Neo4jConfig holds graph database connection settings for the graph
// explorer.
type Neo4jConfig struct {
	URI      string `mapstructure:"uri"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// String returns a safe representation of Neo4jConfig with the password masked.
func (n Neo4jConfig) String() string {
	return fmt.Sprintf("Neo4jConfig{URI:%s, Username:%s, Password:%s}", n.URI, n.Username, maskSecret(n.Password))
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	return "****"
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.timeout_seconds", DefaultTimeoutSeconds)

	v.SetDefault("neo4j.uri", "bolt://localhost:7687")
	v.SetDefault("neo4j.username", "neo4j")
	v.SetDefault("neo4j.password", "password")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(homeDir(), ".staffing"))
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("STAFFING")
	v.AutomaticEnv()

	_ = v.BindEnv("api.base_url", "STAFFING_API_BASE_URL")
	_ = v.BindEnv("api.timeout_seconds", "STAFFING_API_TIMEOUT_SECONDS")
	_ = v.BindEnv("neo4j.uri", "STAFFING_NEO4J_URI")
	_ = v.BindEnv("neo4j.username", "STAFFING_NEO4J_USERNAME")
	_ = v.BindEnv("neo4j.password", "STAFFING_NEO4J_PASSWORD")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK — use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are set and consistent.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if _, err := url.ParseRequestURI(c.API.BaseURL); err != nil {
		return fmt.Errorf("api.base_url is not a valid URL: %w", err)
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be greater than 0")
	}
	if c.Neo4j.URI == "" {
		return fmt.Errorf("neo4j.uri must not be empty")
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
