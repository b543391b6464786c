// Package config loads and validates morrow's environment-driven
// configuration. All settings come from MORROW_* environment variables,
// with an optional .env file in the working directory; there is no config
// file format.
package config

import (
	"strings"
	"time"

	"github.com/pablasso/morrow/internal/planner"
)

// Config is the full application configuration.
type Config struct {
	Notion  NotionConfig  `mapstructure:"notion"`
	Planner PlannerConfig `mapstructure:"planner"`
	Log     LogConfig     `mapstructure:"log"`
}

// NotionConfig holds credentials and client tuning for the remote store.
type NotionConfig struct {
	// APIKey is the integration token (MORROW_NOTION_API_KEY). Notion
	// tokens start with "secret_" or "ntn_".
	APIKey string `mapstructure:"api_key" validate:"required,notionkey"`

	// Database and page IDs are 32 hex characters, dashed or undashed.
	TasksDatabaseID string `mapstructure:"tasks_database_id" validate:"required,notionid"`
	JobsDatabaseID  string `mapstructure:"jobs_database_id" validate:"required,notionid"`
	ParentPageID    string `mapstructure:"parent_page_id" validate:"required,notionid"`

	// BaseURL overrides the API endpoint (MORROW_NOTION_BASE_URL).
	// Mainly for tests; empty means the public API.
	BaseURL string `mapstructure:"base_url"`

	// RateLimitRPS caps outbound requests per second (MORROW_NOTION_RATE_LIMIT_RPS).
	RateLimitRPS float64 `mapstructure:"rate_limit_rps" validate:"gt=0"`

	// MaxRetries bounds retry attempts for transient failures.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0,lte=10"`

	// RetryDelay is the base backoff delay between retries.
	RetryDelay time.Duration `mapstructure:"retry_delay" validate:"gte=0"`
}

// PlannerConfig holds the decision engine's settings.
type PlannerConfig struct {
	// MaxFeatureJobs is the shortlist size (MORROW_PLANNER_MAX_FEATURE_JOBS).
	// Negative values are a configuration fault, rejected at load.
	MaxFeatureJobs int `mapstructure:"max_feature_jobs" validate:"gte=0"`

	// Keyword overrides, comma separated. Empty means the built-in list
	// for that bucket.
	KeywordsResearch   string `mapstructure:"keywords_research"`
	KeywordsAIML       string `mapstructure:"keywords_ai_ml"`
	KeywordsInternship string `mapstructure:"keywords_internship"`
	KeywordsEngineer   string `mapstructure:"keywords_engineer"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	// File, when set, receives JSON logs. Useful while the TUI owns the
	// terminal.
	File string `mapstructure:"file"`
}

// Buckets returns the ranking keyword buckets in priority order, applying
// any comma-separated overrides on top of the built-in lists. Matching is
// case-insensitive substring, so overrides don't need case variants.
func (c PlannerConfig) Buckets() []planner.KeywordBucket {
	overrides := map[string]string{
		"research":   c.KeywordsResearch,
		"ai_ml":      c.KeywordsAIML,
		"internship": c.KeywordsInternship,
		"engineer":   c.KeywordsEngineer,
	}

	buckets := planner.DefaultBuckets()
	for i, b := range buckets {
		if csv := strings.TrimSpace(overrides[b.Name]); csv != "" {
			buckets[i].Keywords = splitKeywords(csv)
		}
	}
	return buckets
}

func splitKeywords(csv string) []string {
	parts := strings.Split(csv, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
