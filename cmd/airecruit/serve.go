package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wenhao/airecruit/internal/config"
	"github.com/wenhao/airecruit/internal/llm"
	"github.com/wenhao/airecruit/internal/report"
	"github.com/wenhao/airecruit/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server exposing the candidate, interview, dashboard, and reporting endpoints.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	client := buildLLMClient(ctx, cfg)
	defer client.Close()

	var mailer server.ReportMailer
	if cfg.SMTPHost != "" && cfg.SMTPSender != "" {
		mailer = report.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPSender, cfg.SMTPPassword)
	}

	srv := server.New(server.Config{Port: cfg.Port}, server.Deps{
		Data:        buildService(cfg, store),
		Store:       store,
		Interviewer: llm.NewInterviewer(client),
		Analyst:     llm.NewAnalyst(client),
		Mailer:      mailer,
	})
	return srv.Start()
}
