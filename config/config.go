package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// Model Backend Configuration
	LLMAPIKey    string `mapstructure:"LLM_API_KEY"`   // API key for the model backend
	LLMBaseURL   string `mapstructure:"LLM_BASE_URL"`  // OpenAI-compatible router endpoint; empty targets api.openai.com
	DefaultModel string `mapstructure:"DEFAULT_MODEL"` // logical model name used when a request doesn't name one

	// Persistence Configuration
	ProjectsDir string `mapstructure:"PROJECTS_DIR"` // where generated bundles are written; empty disables persistence

	// CORS Configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv() // Read environment variables that match keys

	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.ServerAddress == "" {
		config.ServerAddress = ":8080"
	}
	if config.DefaultModel == "" {
		config.DefaultModel = "gpt-5"
	}
	if config.LLMAPIKey == "" {
		log.Println("WARN: LLM_API_KEY is not set. Model calls will fail and every run will return the fallback bundle.")
	}

	return
}
