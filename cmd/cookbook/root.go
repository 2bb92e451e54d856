package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cookbook",
	Short: "Cookbook is a recipe REST API",
	Long: `Cookbook serves a JSON API for creating, browsing, searching and
favoriting recipes. Configuration is read from COOKBOOK_* environment
variables (and a .env file when present).`,
	SilenceUsage: true,
	// Serving is the default action.
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}
