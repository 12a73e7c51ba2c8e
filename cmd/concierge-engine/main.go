// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the concierge-engine CLI.
// Implements: prd001-catalog, prd002-extraction, prd003-dietary,
//             prd004-matching, prd006-generation (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/concierge-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the concierge-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "concierge-engine",
	Short: "Restaurant concierge query understanding and matching engine",
	Long: `concierge-engine turns free-text restaurant requests into structured
filters, ranks catalog restaurants against them, and scores how well a
venue accommodates dietary restrictions and allergies.

Each engine surface is a subcommand: filters shows query extraction,
search ranks a catalog, dietary analyzes one restaurant against a profile,
and generate builds synthetic catalogs for demos and testing.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./concierge-engine.yaml or ~/.config/concierge-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("concierge-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "concierge-engine"))
		}
	}

	viper.SetEnvPrefix("CONCIERGE_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// engineConfig assembles defaults from the viper-loaded config file.
// Command flags override these per invocation.
func engineConfig() types.EngineConfig {
	var cfg types.EngineConfig

	cfg.Catalog.Path = viper.GetString("catalog.path")
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "catalog.yaml"
	}

	cfg.Match.MaxResults = viper.GetInt("match.max_results")
	if cfg.Match.MaxResults == 0 {
		cfg.Match.MaxResults = 10
	}

	cfg.Generator.Count = viper.GetInt("generator.count")
	if cfg.Generator.Count == 0 {
		cfg.Generator.Count = 25
	}
	cfg.Generator.Seed = viper.GetInt64("generator.seed")
	if cfg.Generator.Seed == 0 {
		cfg.Generator.Seed = 1
	}
	cfg.Generator.City = viper.GetString("generator.city")
	cfg.Generator.CenterLatitude = viper.GetFloat64("generator.center_latitude")
	cfg.Generator.CenterLongitude = viper.GetFloat64("generator.center_longitude")

	return cfg
}

// flagOrDefault returns the string flag value when set, the fallback
// otherwise.
func flagOrDefault(cmd *cobra.Command, name, fallback string) string {
	v, _ := cmd.Flags().GetString(name)
	if v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
