// Package config provides configuration loading for the server and CLI.
// Values come from an optional JSON file, overridden by environment
// variables so deployments can configure without a file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the full application configuration.
type Config struct {
	Port          int    `json:"port,omitempty"`
	DatabasePath  string `json:"database_path,omitempty"`
	CandidateFile string `json:"candidate_file,omitempty"` // candidate workbook (.xlsx)
	JobFile       string `json:"job_file,omitempty"`       // job posting workbook (.xlsx)

	GeminiAPIKey string `json:"api_key,omitempty"`
	Model        string `json:"model,omitempty"` // overrides the standard-tier model

	SMTPHost     string `json:"smtp_host,omitempty"`
	SMTPPort     int    `json:"smtp_port,omitempty"`
	SMTPSender   string `json:"smtp_sender,omitempty"`
	SMTPPassword string `json:"smtp_password,omitempty"`

	CacheTTLSeconds int `json:"cache_ttl_seconds,omitempty"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Port:            8080,
		DatabasePath:    "recruit.db",
		CandidateFile:   "data/candidates.xlsx",
		JobFile:         "data/jobs.xlsx",
		SMTPPort:        465,
		CacheTTLSeconds: 300,
	}
}

// Load builds the configuration: defaults, then the JSON file at path
// (when non-empty), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides fields from environment variables.
func (c *Config) applyEnv() {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setInt := func(dst *int, key string) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	setInt(&c.Port, "PORT")
	setString(&c.DatabasePath, "DATABASE_PATH")
	setString(&c.CandidateFile, "CANDIDATE_FILE")
	setString(&c.JobFile, "JOB_FILE")
	setString(&c.GeminiAPIKey, "GEMINI_API_KEY")
	setString(&c.Model, "LLM_MODEL")
	setString(&c.SMTPHost, "SMTP_HOST")
	setInt(&c.SMTPPort, "SMTP_PORT")
	setString(&c.SMTPSender, "SMTP_SENDER")
	setString(&c.SMTPPassword, "SMTP_PASSWORD")
	setInt(&c.CacheTTLSeconds, "CACHE_TTL_SECONDS")
}

// Validate checks value ranges. Missing optional integrations (API key,
// SMTP) are allowed; the server degrades those features at runtime.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("config error: database_path is required")
	}
	if c.CacheTTLSeconds < 0 {
		return fmt.Errorf("config error: cache_ttl_seconds must be non-negative")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("config error: smtp_port %d out of range", c.SMTPPort)
	}
	return nil
}

// CacheTTL returns the snapshot cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
