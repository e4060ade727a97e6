package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/fireeagle-go/config"
	"github.com/s0up4200/fireeagle-go/fireeagle"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *fireeagle.Client

	appVersion = "dev"
	buildTime  = "unknown"
)

// SetVersion records build information injected from main.
func SetVersion(version, build string) {
	appVersion = version
	buildTime = build
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fireeagle",
	Short: "A CLI for the Fire Eagle location-sharing service",
	Long: `fireeagle is a CLI for the Fire Eagle location-sharing service.

It signs requests with your application's shared secret, queries and
updates user locations, and handles the mobile shortcode token exchange.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Fire Eagle client
	var opts []fireeagle.Option
	if cfg.FireEagle.AuthToken != "" {
		opts = append(opts, fireeagle.WithAuthToken(cfg.FireEagle.AuthToken))
	}

	client, err = fireeagle.NewClient(
		cfg.FireEagle.AppKey,
		cfg.FireEagle.AppSecret,
		cfg.FireEagle.APIHandler,
		logger,
		opts...,
	)
	if err != nil {
		return fmt.Errorf("failed to create Fire Eagle client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when enabled and stderr is a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
