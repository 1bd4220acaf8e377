package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Amazon  AmazonConfig
	SerpAPI SerpAPIConfig
	LLM     LLMConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AmazonConfig holds RapidAPI real-time-amazon-data configuration
type AmazonConfig struct {
	APIKey           string `mapstructure:"api_key"`
	BaseURL          string `mapstructure:"base_url"`
	Host             string `mapstructure:"host"` // X-RapidAPI-Host header value
	Country          string `mapstructure:"country"`
	SortBy           string `mapstructure:"sort_by"`
	ProductCondition string `mapstructure:"product_condition"`
}

// SerpAPIConfig holds SerpAPI Google Shopping configuration
type SerpAPIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Locale  string `mapstructure:"locale"`  // hl query parameter
	Country string `mapstructure:"country"` // gl query parameter
}

// LLMConfig holds the LLM deployment identifier. It is loaded for parity
// with the deployment environment but the pipeline never invokes an LLM.
type LLMConfig struct {
	DeploymentID string `mapstructure:"deployment_id"`
}

// Load loads configuration from environment variables and config files.
// Missing API keys are not an error here: absent keys surface later as
// provider request failures, which the clients recover from with their
// fallback lists.
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shopscout/")

	// Environment variable settings; the replacer maps nested keys to env
	// names (server.port -> SHOPSCOUT_SERVER_PORT)
	v.SetEnvPrefix("SHOPSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Secrets also bind to the bare names used by the deployment environment
	v.BindEnv("amazon.api_key", "SHOPSCOUT_AMAZON_API_KEY", "RAPIDAPI_KEY")
	v.BindEnv("serpapi.api_key", "SHOPSCOUT_SERPAPI_API_KEY", "SERPAPI_KEY")
	v.BindEnv("llm.deployment_id", "SHOPSCOUT_LLM_DEPLOYMENT_ID", "LLM_DEPLOYMENT_ID")

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Amazon (RapidAPI) defaults
	v.SetDefault("amazon.base_url", "https://real-time-amazon-data.p.rapidapi.com")
	v.SetDefault("amazon.host", "real-time-amazon-data.p.rapidapi.com")
	v.SetDefault("amazon.country", "IN")
	v.SetDefault("amazon.sort_by", "RELEVANCE")
	v.SetDefault("amazon.product_condition", "ALL")

	// SerpAPI defaults
	v.SetDefault("serpapi.base_url", "https://serpapi.com")
	v.SetDefault("serpapi.locale", "en")
	v.SetDefault("serpapi.country", "in")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}

	if config.Amazon.BaseURL == "" {
		return fmt.Errorf("Amazon base URL must not be empty")
	}

	if config.SerpAPI.BaseURL == "" {
		return fmt.Errorf("SerpAPI base URL must not be empty")
	}

	return nil
}
