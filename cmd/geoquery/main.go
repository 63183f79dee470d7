// Package main is the entry point for the geoquery CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gcbaptista/geoquery/config"
	"github.com/gcbaptista/geoquery/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg is loaded once by the root command before any subcommand runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "geoquery",
	Short: "Rule-based query router for land indicator data",
	Long: `geoquery routes natural-language questions about countries and regions to
the right slice of land indicator data: country profiles, restoration
commitments or legislation.

Collections are loaded from line-delimited JSON files at start-up and indexed
in memory. The serve command exposes the router over HTTP; query, recognize
and dispatch run a single question from the command line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(viper.New(), configFile)
		if err != nil {
			return err
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			loaded.Log.Level = level
		}
		cfg = loaded

		logger.Setup(logger.Options{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			Output: os.Stderr,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./geoquery.yaml or ~/.config/geoquery/geoquery.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "override log.level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd, queryCmd, recognizeCmd, dispatchCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
