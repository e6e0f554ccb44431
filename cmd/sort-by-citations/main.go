// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sort-by-citations CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/O957/sort-by-citations/internal/secrets"
	"github.com/O957/sort-by-citations/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir holds plain-text secret files (openalex-email).
const secretsDir = ".secrets"

// rootCmd is the base command for the sort-by-citations CLI.
var rootCmd = &cobra.Command{
	Use:   "sort-by-citations",
	Short: "Find the most cited academic papers via OpenAlex",
	Long: `sort-by-citations searches OpenAlex for the most cited academic papers by
keyword or author name. Results can be narrowed by publication year range,
minimum citation count, and open-access status, and exported as text or CSV.

Supply a contact email (--email, OPENALEX_EMAIL, or .secrets/openalex-email)
to use the OpenAlex polite pool for faster, more consistent responses.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sort-by-citations.yaml or ~/.config/sort-by-citations/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sort-by-citations")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sort-by-citations"))
		}
	}

	viper.SetEnvPrefix("SORT_BY_CITATIONS")
	viper.AutomaticEnv()

	viper.SetDefault("timeout", 30*time.Second)
	viper.SetDefault("max_results", 10)
	viper.SetDefault("history_dir", ".sort-by-citations")
	viper.SetDefault("export_dir", "exports")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// resolveEmail picks the contact email: the --email flag, then config or
// SORT_BY_CITATIONS_EMAIL, then OPENALEX_EMAIL, then .secrets/openalex-email.
// Empty means the common pool; the rate-limit probe falls back to its own
// default address.
func resolveEmail(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := viper.GetString("email"); v != "" {
		return v
	}
	if v := os.Getenv("OPENALEX_EMAIL"); v != "" {
		return v
	}
	return secrets.Email(secretsDir)
}

// searchConfig assembles the search configuration for one command run.
func searchConfig(email string) types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: "sort-by-citations/" + version,
		},
		MaxResults: viper.GetInt("max_results"),
		Email:      email,
	}
}

// historyConfig assembles the history store configuration.
func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Dir:        viper.GetString("history_dir"),
		MaxEntries: viper.GetInt("history_max_entries"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
