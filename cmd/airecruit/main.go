// Package main provides the entry point for the recruitment backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "airecruit",
	Short: "AI-assisted recruitment backend",
	Long:  "airecruit reconciles candidate spreadsheets with AI interview sessions, serves a recruitment REST API, and produces dashboards, reports, and evaluation exports.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
