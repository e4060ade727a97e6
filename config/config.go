package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".fireeagle"))
		}

		// Check /etc
		v.AddConfigPath("/etc/fireeagle/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Fire Eagle defaults
	v.SetDefault("fireeagle.api_handler", "XPath")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid. Credentials and the
// handler enum are checked once here, never re-validated per call.
func validate(cfg *Config) error {
	if cfg.FireEagle.AppKey == "" {
		return fmt.Errorf("fireeagle.app_key is required")
	}

	if cfg.FireEagle.AppSecret == "" || cfg.FireEagle.AppSecret == "your-app-secret-here" {
		return fmt.Errorf("fireeagle.app_secret must be set to a valid shared secret")
	}

	// Validate XML handler
	validHandlers := map[string]bool{
		"XPath":  true,
		"LibXML": true,
	}
	if !validHandlers[cfg.FireEagle.APIHandler] {
		return fmt.Errorf("invalid fireeagle.api_handler: %s (must be 'XPath' or 'LibXML')", cfg.FireEagle.APIHandler)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
