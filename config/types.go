package config

// Config represents the complete configuration structure
type Config struct {
	FireEagle FireEagleConfig `mapstructure:"fireeagle"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// FireEagleConfig holds the Fire Eagle application credentials and the
// selected XML handler
type FireEagleConfig struct {
	AppKey     string `mapstructure:"app_key"`
	AppSecret  string `mapstructure:"app_secret"`
	APIHandler string `mapstructure:"api_handler"`
	AuthToken  string `mapstructure:"auth_token"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
