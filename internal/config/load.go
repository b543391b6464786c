package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables always win over .env entries.
func Load() (*Config, error) {
	// godotenv never overrides variables already set in the process.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MORROW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv picks the variables up
// during Unmarshal. Required settings default to empty and fail
// validation when left unset.
func setDefaults(v *viper.Viper) {
	v.SetDefault("notion.api_key", "")
	v.SetDefault("notion.tasks_database_id", "")
	v.SetDefault("notion.jobs_database_id", "")
	v.SetDefault("notion.parent_page_id", "")
	v.SetDefault("notion.base_url", "")
	v.SetDefault("notion.rate_limit_rps", 3.0)
	v.SetDefault("notion.max_retries", 3)
	v.SetDefault("notion.retry_delay", "1s")

	v.SetDefault("planner.max_feature_jobs", 4)
	v.SetDefault("planner.keywords_research", "")
	v.SetDefault("planner.keywords_ai_ml", "")
	v.SetDefault("planner.keywords_internship", "")
	v.SetDefault("planner.keywords_engineer", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Validate checks the configuration and reports every problem with the
// environment variable that caused it.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.RegisterValidation("notionkey", validNotionKey); err != nil {
		return fmt.Errorf("failed to register validator: %w", err)
	}
	if err := validate.RegisterValidation("notionid", validNotionID); err != nil {
		return fmt.Errorf("failed to register validator: %w", err)
	}

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var problems []string
	for _, fe := range validationErrs {
		problems = append(problems, describeFieldError(fe))
	}
	return fmt.Errorf("invalid configuration:\n  %s", strings.Join(problems, "\n  "))
}

// validNotionKey accepts Notion integration tokens ("secret_..." legacy
// form or "ntn_..." current form).
func validNotionKey(fl validator.FieldLevel) bool {
	key := fl.Field().String()
	return strings.HasPrefix(key, "secret_") || strings.HasPrefix(key, "ntn_")
}

// validNotionID accepts 32-hex Notion IDs, with or without dashes.
func validNotionID(fl validator.FieldLevel) bool {
	_, err := uuid.Parse(fl.Field().String())
	return err == nil
}

// describeFieldError turns a validator error into a message naming the
// offending environment variable.
func describeFieldError(fe validator.FieldError) string {
	env := envForField(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", env)
	case "notionkey":
		return fmt.Sprintf("%s must start with \"secret_\" or \"ntn_\"", env)
	case "notionid":
		return fmt.Sprintf("%s must be a 32-character Notion ID", env)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", env, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", env, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", env, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", env, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", env, fe.Tag())
	}
}

// envForField maps a validator namespace like "Config.Notion.APIKey" to
// the environment variable the user actually sets.
func envForField(namespace string) string {
	switch namespace {
	case "Config.Notion.APIKey":
		return "MORROW_NOTION_API_KEY"
	case "Config.Notion.TasksDatabaseID":
		return "MORROW_NOTION_TASKS_DATABASE_ID"
	case "Config.Notion.JobsDatabaseID":
		return "MORROW_NOTION_JOBS_DATABASE_ID"
	case "Config.Notion.ParentPageID":
		return "MORROW_NOTION_PARENT_PAGE_ID"
	case "Config.Notion.RateLimitRPS":
		return "MORROW_NOTION_RATE_LIMIT_RPS"
	case "Config.Notion.MaxRetries":
		return "MORROW_NOTION_MAX_RETRIES"
	case "Config.Notion.RetryDelay":
		return "MORROW_NOTION_RETRY_DELAY"
	case "Config.Planner.MaxFeatureJobs":
		return "MORROW_PLANNER_MAX_FEATURE_JOBS"
	case "Config.Log.Level":
		return "MORROW_LOG_LEVEL"
	case "Config.Log.File":
		return "MORROW_LOG_FILE"
	default:
		return namespace
	}
}
