package config

import (
	"fmt"
	"strings"
	"time"

	_ "time/tzdata"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d,%d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be > 0")
	}

	switch strings.ToLower(c.LLM.Provider) {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("llm.provider must be openai or anthropic (got %q)", c.LLM.Provider)
	}
	if c.LLM.MaxInputChars <= 0 {
		return fmt.Errorf("llm.max_input_chars must be > 0 (got %d)", c.LLM.MaxInputChars)
	}

	if err := c.Upload.validate(); err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	if err := c.Progress.validate(); err != nil {
		return fmt.Errorf("progress: %w", err)
	}

	return nil
}

func (u *UploadConfig) validate() error {
	if u.MaxSizeBytes <= 0 {
		return fmt.Errorf("max_size_bytes must be > 0 (got %d)", u.MaxSizeBytes)
	}
	if u.ReadTimeout < 0 {
		return fmt.Errorf("read_timeout must be >= 0 (got %s)", u.ReadTimeout)
	}
	if u.ProcessTimeout <= 0 {
		return fmt.Errorf("process_timeout must be > 0 (got %s)", u.ProcessTimeout)
	}
	if u.ScanEnabled && u.ScanCommand == "" {
		return fmt.Errorf("scan_command is required when scanning is enabled")
	}
	if u.SanitizeEnabled && u.SanitizeCommand == "" {
		return fmt.Errorf("sanitize_command is required when sanitizing is enabled")
	}
	return nil
}

func (p *ProgressConfig) validate() error {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", p.Timezone, err)
	}
	p.Location = loc

	if p.MaxHistoryDays <= 0 {
		return fmt.Errorf("max_history_days must be > 0 (got %d)", p.MaxHistoryDays)
	}
	if p.DefaultHistoryDays <= 0 || p.DefaultHistoryDays > p.MaxHistoryDays {
		return fmt.Errorf("default_history_days must be in [1,%d] (got %d)", p.MaxHistoryDays, p.DefaultHistoryDays)
	}
	return nil
}
