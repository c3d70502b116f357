package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wenhao/airecruit/internal/config"
	"github.com/wenhao/airecruit/internal/observability"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dashboard statistics",
	Long:  "Load the workbooks and interview sessions, run the reconciliation pipeline, and print the dashboard statistics as plain text.",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	stats, err := buildService(cfg, store).Dashboard(ctx)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintDashboard(stats)
	return nil
}
