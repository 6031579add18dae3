package config

import "testing"

func TestValidate_Port(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for port 0")
	}

	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for port above range")
	}
}

func TestValidate_PollingInterval(t *testing.T) {
	cfg := Default()
	cfg.Polling.IntervalMS = 100
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for interval below 500ms")
	}
}

func TestValidate_ResolveTimeout(t *testing.T) {
	cfg := Default()
	cfg.Polling.ResolveTimeoutMS = 50
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for timeout below 100ms")
	}

	cfg = Default()
	cfg.Polling.ResolveTimeoutMS = cfg.Polling.IntervalMS
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for timeout not below interval")
	}
}

func TestValidate_Logging(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid log level")
	}

	cfg = Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid log format")
	}
}

func TestValidate_Auth(t *testing.T) {
	cfg := Default()
	cfg.Auth.Enabled = true
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for enabled auth without credentials")
	}

	cfg.Auth.User = "admin"
	cfg.Auth.Password = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid auth config, got %v", err)
	}
}
