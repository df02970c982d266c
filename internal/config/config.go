package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      App      `mapstructure:"app"`
	AI       AI       `mapstructure:"ai"`
	Generate Generate `mapstructure:"generate"`
	Logging  Logging  `mapstructure:"logging"`
}

// App holds general application configuration
type App struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// AI holds AI/LLM configuration
type AI struct {
	Gemini GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig holds Google Gemini configuration
type GeminiConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Timeout     string  `mapstructure:"timeout"`
	Temperature float32 `mapstructure:"temperature"`
}

// Generate holds defaults for the hashtag generation commands
type Generate struct {
	DefaultPlatform string `mapstructure:"default_platform"`
	DefaultCategory string `mapstructure:"default_category"`
	DefaultCount    int    `mapstructure:"default_count"`
}

// Logging holds logging configuration
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var globalConfig *Config

// Load loads the configuration from various sources: a .env file if present,
// then the .hashly.yaml config file, then environment variables.
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".hashly")
		viper.SetConfigType("yaml")
	}

	setDefaults()
	bindEnvironmentVariables()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.log_level", "info")

	viper.SetDefault("ai.gemini.model", "gemini-2.5-flash")
	viper.SetDefault("ai.gemini.timeout", "30s")
	viper.SetDefault("ai.gemini.temperature", 0.7)

	viper.SetDefault("generate.default_platform", "Instagram")
	viper.SetDefault("generate.default_category", "Business")
	viper.SetDefault("generate.default_count", 10)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}

// bindEnvironmentVariables sets up flexible environment variable binding
func bindEnvironmentVariables() {
	// Gemini API key - support multiple formats
	bindEnvKeys("ai.gemini.api_key", []string{
		"GEMINI_API_KEY",
		"GOOGLE_GEMINI_API_KEY",
		"GOOGLE_AI_API_KEY",
	})

	bindEnvKeys("app.debug", []string{
		"DEBUG",
		"HASHLY_DEBUG",
	})
}

// bindEnvKeys binds the first found environment variable to a viper key
func bindEnvKeys(viperKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			viper.Set(viperKey, value)
			return
		}
	}
}

// validateConfig ensures configuration values are well-formed. A missing
// Gemini key is tolerated here so catalog-only commands still work; the LLM
// client is the fail-fast point for credentials.
func validateConfig(config *Config) error {
	var errors []string

	if config.AI.Gemini.Timeout != "" {
		if _, err := time.ParseDuration(config.AI.Gemini.Timeout); err != nil {
			return fmt.Errorf("invalid duration for ai.gemini.timeout: %s", config.AI.Gemini.Timeout)
		}
	}

	if config.Generate.DefaultCount <= 0 {
		errors = append(errors, fmt.Sprintf("generate.default_count must be positive, got %d", config.Generate.DefaultCount))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Convenience getters for commonly used configuration values
func GetApp() App           { return Get().App }
func GetAI() AI             { return Get().AI }
func GetGenerate() Generate { return Get().Generate }
func GetLogging() Logging   { return Get().Logging }

func GetGeminiAPIKey() string    { return Get().AI.Gemini.APIKey }
func GetGeminiModel() string     { return Get().AI.Gemini.Model }
func GetDefaultPlatform() string { return Get().Generate.DefaultPlatform }
func GetDefaultCategory() string { return Get().Generate.DefaultCategory }
func GetDefaultCount() int       { return Get().Generate.DefaultCount }
func IsDebugMode() bool          { return Get().App.Debug }

// Reset clears the global configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viper.Reset()
}
