package config

import "time"

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
	Polling PollingConfig `yaml:"polling"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Host      string          `yaml:"host"`
	Port      int             `yaml:"port"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

type AuthConfig struct {
	Enabled  bool   `yaml:"enabled"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// PollingConfig drives the collector cycle. IncludePseudo pulls virtual
// filesystems (tmpfs and friends) into the listing; displays normally
// leave it off.
type PollingConfig struct {
	IntervalMS       int  `yaml:"interval_ms"`
	IncludePseudo    bool `yaml:"include_pseudo"`
	ResolveTimeoutMS int  `yaml:"resolve_timeout_ms"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) PollingInterval() time.Duration {
	return time.Duration(c.Polling.IntervalMS) * time.Millisecond
}

func (c *Config) ResolveTimeout() time.Duration {
	return time.Duration(c.Polling.ResolveTimeoutMS) * time.Millisecond
}
