package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. Mapstructure tags map
// environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"`  // e.g., ":8080"
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"` // comma-separated CORS origins, "*" for any

	// Assistant Configuration
	OpenAIKey   string `mapstructure:"OPENAI_API_KEY"` // API key for the text-generation service
	ChatModelID string `mapstructure:"CHAT_MODEL_ID"`  // completion model id
	ChatBaseURL string `mapstructure:"CHAT_BASE_URL"`  // optional OpenAI-compatible gateway URL

	// Content Configuration
	CatalogPath string `mapstructure:"CATALOG_PATH"` // YAML catalog; empty uses built-in defaults

	// RSVP persistence (optional). Empty disables the sqlite store and
	// RSVPs stay session-scoped.
	RSVPDatabasePath string `mapstructure:"RSVP_DB_PATH"`

	// Home-page slide rotation period in seconds. Zero disables rotation.
	SlideIntervalSeconds int `mapstructure:"SLIDE_INTERVAL_SECONDS"`
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Defaults double as env-key bindings for AutomaticEnv.
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("CHAT_MODEL_ID", "")
	viper.SetDefault("CHAT_BASE_URL", "")
	viper.SetDefault("CATALOG_PATH", "")
	viper.SetDefault("RSVP_DB_PATH", "")
	viper.SetDefault("SLIDE_INTERVAL_SECONDS", 6)

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
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

	if config.OpenAIKey == "" {
		log.Println("WARN: OPENAI_API_KEY is not set; the assistant will answer with its fallback reply.")
	}

	return
}
