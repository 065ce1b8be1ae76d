// Package config provides Viper-based hierarchical configuration management
// for the extraction pipeline: defaults, an optional config.yaml, and
// SHIKHAR_-prefixed environment variables, in increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	AI struct {
		Enabled          bool   `mapstructure:"enabled" yaml:"enabled"`
		Model            string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds   int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		FallbackCategory string `mapstructure:"fallback_category" yaml:"fallback_category"`
		APIKey           string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	OCR struct {
		Tesseract string `mapstructure:"tesseract" yaml:"tesseract"`
		Language  string `mapstructure:"language" yaml:"language"`
	} `mapstructure:"ocr" yaml:"ocr"`

	PDF struct {
		Pdftotext string `mapstructure:"pdftotext" yaml:"pdftotext"`
	} `mapstructure:"pdf" yaml:"pdf"`

	Image struct {
		MaxWidth    int `mapstructure:"max_width" yaml:"max_width"`
		JPEGQuality int `mapstructure:"jpeg_quality" yaml:"jpeg_quality"`
	} `mapstructure:"image" yaml:"image"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Data struct {
		CategoriesFile   string `mapstructure:"categories_file" yaml:"categories_file"`
		TransactionsFile string `mapstructure:"transactions_file" yaml:"transactions_file"`
	} `mapstructure:"data" yaml:"data"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.shikhar-finance")
	v.AddConfigPath(".shikhar-finance")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("SHIKHAR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. The API key always comes from the unprefixed environment variable
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ai.enabled", true)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)
	v.SetDefault("ai.fallback_category", "Other")

	v.SetDefault("ocr.tesseract", "tesseract")
	v.SetDefault("ocr.language", "eng")

	v.SetDefault("pdf.pdftotext", "pdftotext")

	v.SetDefault("image.max_width", 1200)
	v.SetDefault("image.jpeg_quality", 95)

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("data.categories_file", "categories.yaml")
	v.SetDefault("data.transactions_file", "transactions.csv")
}

// validateConfig checks configuration values that would otherwise fail deep
// inside the pipeline.
func validateConfig(c *Config) error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	if c.AI.TimeoutSeconds <= 0 {
		return fmt.Errorf("ai.timeout_seconds must be positive, got %d", c.AI.TimeoutSeconds)
	}
	if c.Image.MaxWidth <= 0 {
		return fmt.Errorf("image.max_width must be positive, got %d", c.Image.MaxWidth)
	}
	if c.Image.JPEGQuality < 1 || c.Image.JPEGQuality > 100 {
		return fmt.Errorf("image.jpeg_quality must be in [1,100], got %d", c.Image.JPEGQuality)
	}
	if len(c.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv.delimiter must be a single character, got %q", c.CSV.Delimiter)
	}
	return nil
}
