package main

import (
	"context"
	"log"

	"github.com/wenhao/airecruit/internal/config"
	"github.com/wenhao/airecruit/internal/db"
	"github.com/wenhao/airecruit/internal/llm"
	"github.com/wenhao/airecruit/internal/recruit"
	"github.com/wenhao/airecruit/internal/spreadsheet"
)

// openStore opens the SQLite store.
func openStore(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	return db.Open(ctx, cfg.DatabasePath)
}

// buildService wires the workbook loader and the store into the
// reconciliation service.
func buildService(cfg *config.Config, store *db.DB) *recruit.Service {
	loader := spreadsheet.NewLoader(cfg.CandidateFile, cfg.JobFile)
	cache := recruit.NewSnapshotCache(cfg.CacheTTL(), nil)
	return recruit.NewService(loader, loader, store, store, cache)
}

// buildLLMClient returns a live client when an API key is configured,
// otherwise a disabled one so question generation and analytics degrade
// to their fallbacks.
func buildLLMClient(ctx context.Context, cfg *config.Config) llm.Client {
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set; question generation and analytics run in fallback mode")
		return llm.NewDisabledClient()
	}

	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.Model)
	}
	client, err := llm.NewClient(ctx, llmCfg, cfg.GeminiAPIKey)
	if err != nil {
		log.Printf("Failed to create LLM client, running in fallback mode: %v", err)
		return llm.NewDisabledClient()
	}
	return client
}
