package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	var errs []error

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("server: %w", err))
	}

	if err := c.Polling.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("polling: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if err := c.Auth.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("auth: %w", err))
	}

	return errors.Join(errs...)
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", s.Port)
	}
	return nil
}

func (p *PollingConfig) Validate() error {
	var errs []error

	if p.IntervalMS < 500 {
		errs = append(errs, fmt.Errorf("interval_ms must be at least 500, got %d", p.IntervalMS))
	}

	if p.ResolveTimeoutMS < 100 {
		errs = append(errs, fmt.Errorf("resolve_timeout_ms must be at least 100, got %d", p.ResolveTimeoutMS))
	}

	if p.ResolveTimeoutMS >= p.IntervalMS {
		errs = append(errs, fmt.Errorf("resolve_timeout_ms (%d) must be below interval_ms (%d)",
			p.ResolveTimeoutMS, p.IntervalMS))
	}

	return errors.Join(errs...)
}

func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", l.Level)
	}

	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[l.Format] {
		return fmt.Errorf("invalid log format: %s (valid: json, text)", l.Format)
	}

	return nil
}

func (a *AuthConfig) Validate() error {
	if a.Enabled {
		if a.User == "" {
			return fmt.Errorf("user cannot be empty when auth is enabled")
		}
		if a.Password == "" {
			return fmt.Errorf("password cannot be empty when auth is enabled")
		}
	}
	return nil
}
