package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.ChangeControl.validate(); err != nil {
		return fmt.Errorf("change_control: %w", err)
	}

	if err := c.Alerting.validate(); err != nil {
		return fmt.Errorf("alerting: %w", err)
	}

	if !c.RateLimit.Disabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit: requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (l LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q", l.Format)
	}
	return nil
}

func (c ChangeControlConfig) validate() error {
	return validateOperation(c.OperationTimeout, c.DefaultListLimit, c.MaxListLimit)
}

func validateOperation(timeout time.Duration, defaultLimit, maxLimit int) error {
	if timeout <= 0 {
		return fmt.Errorf("operation_timeout must be > 0 (got %v)", timeout)
	}
	if defaultLimit <= 0 {
		return fmt.Errorf("default_list_limit must be > 0 (got %d)", defaultLimit)
	}
	if maxLimit < defaultLimit {
		return fmt.Errorf("max_list_limit (%d) must be >= default_list_limit (%d)", maxLimit, defaultLimit)
	}
	return nil
}

func (a AlertingConfig) validate() error {
	if a.EscalationFactor < 0 {
		return fmt.Errorf("escalation_factor must be >= 0 (got %v)", a.EscalationFactor)
	}
	if strings.TrimSpace(a.StatusMetric) == "" {
		return fmt.Errorf("status_metric is required")
	}
	switch a.DownSeverity {
	case "low", "medium", "high", "critical":
	default:
		return fmt.Errorf("down_severity %q must be one of low, medium, high, critical", a.DownSeverity)
	}
	return validateOperation(a.OperationTimeout, a.DefaultListLimit, a.MaxListLimit)
}
