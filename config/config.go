package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":5000"

	// AI Configuration
	AIProvider   string `mapstructure:"AI_PROVIDER"`    // "gemini" (default) or "openai"
	AIModel      string `mapstructure:"AI_MODEL"`       // model id, e.g. "gemini-2.5-flash" or "gpt-4o"
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"` // API key for Google Gemini
	OpenAIKey    string `mapstructure:"OPENAI_API_KEY"` // API key for OpenAI

	// Image Search Configuration
	PexelsAPIKey string `mapstructure:"PEXELS_API_KEY"` // optional; image enrichment degrades to none without it

	// GitHub Integration Configuration
	GitHubToken string `mapstructure:"GITHUB_TOKEN"` // personal access token with repo scope

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`  // debug|info|warn|error
	LogFormat string `mapstructure:"LOG_FORMAT"` // json|console
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":5000")
	viper.SetDefault("AI_PROVIDER", "gemini")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")

	viper.AutomaticEnv() // Read environment variables that match keys

	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, continue: env vars may carry everything.
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

	config.AIProvider = strings.ToLower(strings.TrimSpace(config.AIProvider))
	if config.AIModel == "" {
		switch config.AIProvider {
		case "openai":
			config.AIModel = "gpt-4o"
		default:
			config.AIModel = "gemini-2.5-flash"
		}
	}

	// The generation key is the one credential the service cannot run without.
	switch config.AIProvider {
	case "gemini":
		if config.GeminiAPIKey == "" {
			return Config{}, errors.New("GEMINI_API_KEY is required when AI_PROVIDER=gemini")
		}
	case "openai":
		if config.OpenAIKey == "" {
			return Config{}, errors.New("OPENAI_API_KEY is required when AI_PROVIDER=openai")
		}
	default:
		return Config{}, fmt.Errorf("unknown AI_PROVIDER %q (expected gemini or openai)", config.AIProvider)
	}

	if config.PexelsAPIKey == "" {
		log.Println("WARN: PEXELS_API_KEY is not set; prompts will be built without stock images.")
	}
	if config.GitHubToken == "" {
		log.Println("WARN: GITHUB_TOKEN is not set; /generate-and-push-to-github will fail.")
	}

	return
}
