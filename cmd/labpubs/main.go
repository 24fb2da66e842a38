// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the labpubs CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/labpubs/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the labpubs CLI.
var rootCmd = &cobra.Command{
	Use:   "labpubs",
	Short: "Publication lists from DBLP for the lab website",
	Long: `labpubs fetches a researcher's publication record from DBLP, filters
out preprints and old entries, and renders the result for the lab website.

fetch prints the list once; serve keeps it available over HTTP with a
short-lived cache so page builds never hit DBLP directly.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./labpubs.yaml or ~/.config/labpubs/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("labpubs")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "labpubs"))
		}
	}

	viper.SetEnvPrefix("LABPUBS")
	// Config keys are dotted (fetch.pid); env names use underscores
	// (LABPUBS_FETCH_PID).
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig layers the config file and environment over the defaults.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()

	if viper.IsSet("fetch.pid") {
		cfg.Fetch.PID = viper.GetString("fetch.pid")
	}
	if viper.IsSet("fetch.min_year") {
		cfg.Fetch.MinYear = viper.GetInt("fetch.min_year")
	}
	if viper.IsSet("fetch.cache_ttl") {
		cfg.Fetch.CacheTTL = viper.GetDuration("fetch.cache_ttl")
	}
	if viper.IsSet("fetch.timeout") {
		cfg.Fetch.Timeout = viper.GetDuration("fetch.timeout")
	}
	if viper.IsSet("fetch.user_agent") {
		cfg.Fetch.UserAgent = viper.GetString("fetch.user_agent")
	}
	if viper.IsSet("fetch.max_retries") {
		cfg.Fetch.MaxRetries = viper.GetInt("fetch.max_retries")
	}
	if viper.IsSet("server.addr") {
		cfg.Server.Addr = viper.GetString("server.addr")
	}
	return cfg
}

// newLogger builds the CLI logger, honoring --verbose.
func newLogger(cmd *cobra.Command) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
