package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"milanfeed/internal/config"
)

var (
	cfgFile string
	verbose bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "milanfeed",
	Short: "milanfeed: an AC Milan news aggregator",
	Long: `milanfeed aggregates AC Milan news from several independent sources
(RSS feeds and the club's own site), translates Italian-language items,
deduplicates and orders them, and writes one JSON snapshot for the site.

Commands:
  collect  Run one aggregation pass (the default)
  watch    Run aggregation on a cron schedule`,
	// Running the binary with no arguments performs one collection.
	RunE: runCollect,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func initLogger() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func initConfig() {
	// Start with defaults
	cfg = config.Defaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
	}

	// Environment variable overrides
	// MILANFEED_OUTPUT_PATH -> output.path
	viper.SetEnvPrefix("MILANFEED")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("output.path", "MILANFEED_OUTPUT_PATH")
	viper.BindEnv("fetch.timeout", "MILANFEED_FETCH_TIMEOUT")
	viper.BindEnv("fetch.user_agent", "MILANFEED_FETCH_USER_AGENT")
	viper.BindEnv("translate.enabled", "MILANFEED_TRANSLATE_ENABLED")
	viper.BindEnv("schedule.cron_spec", "MILANFEED_SCHEDULE_CRON_SPEC")
	viper.BindEnv("storage.enabled", "MILANFEED_STORAGE_ENABLED")
	viper.BindEnv("storage.endpoint", "MILANFEED_STORAGE_ENDPOINT")
	viper.BindEnv("storage.bucket", "MILANFEED_STORAGE_BUCKET")
	viper.BindEnv("storage.access_key_id", "MILANFEED_STORAGE_ACCESS_KEY_ID")
	viper.BindEnv("storage.secret_access_key", "MILANFEED_STORAGE_SECRET_ACCESS_KEY")

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("config file error", "error", err)
		}
		// No config file - use defaults + env vars
	}

	// Unmarshal into struct (merges config file with defaults)
	if err := viper.Unmarshal(&cfg); err != nil {
		slog.Warn("failed to parse config", "error", err)
	}
}
