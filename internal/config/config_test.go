package config

import (
	"reflect"
	"testing"
)

// TestLoad_Defaults tests the defaults used when nothing is set
func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("expected port 3000, got %s", cfg.Port)
	}
	if cfg.AdminPort != "3001" {
		t.Errorf("expected admin port 3001, got %s", cfg.AdminPort)
	}
	if cfg.KVBackend != "csv" {
		t.Errorf("expected csv backend, got %s", cfg.KVBackend)
	}
	if !reflect.DeepEqual(cfg.IPHeaders, []string{"CF-Connecting-IP"}) {
		t.Errorf("unexpected IP headers: %v", cfg.IPHeaders)
	}
	if cfg.CountryHeader != "CF-IPCountry" {
		t.Errorf("expected CF-IPCountry, got %s", cfg.CountryHeader)
	}
	if cfg.DefaultIP != "127.0.0.1" {
		t.Errorf("expected default IP 127.0.0.1, got %s", cfg.DefaultIP)
	}
	if cfg.DefaultCountry != "XX" {
		t.Errorf("expected default country XX, got %s", cfg.DefaultCountry)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got: %v", err)
	}
}

// TestLoad_FromEnvironment tests overriding values via environment variables
func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("KV_BACKEND", "REDIS")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("LOG_PRETTY", "false")
	t.Setenv("IP_HEADER", "X-Real-IP, ,True-Client-IP")
	t.Setenv("DEFAULT_IP", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.KVBackend != "redis" {
		t.Errorf("expected backend to be lower-cased, got %s", cfg.KVBackend)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("expected redis db 3, got %d", cfg.RedisDB)
	}
	if cfg.LogPretty {
		t.Error("expected pretty logging to be disabled")
	}
	if !reflect.DeepEqual(cfg.IPHeaders, []string{"X-Real-IP", "True-Client-IP"}) {
		t.Errorf("unexpected IP headers: %v", cfg.IPHeaders)
	}
	if cfg.DefaultIP != "" {
		t.Errorf("expected empty default IP, got %q", cfg.DefaultIP)
	}
}

// TestLoad_InvalidInt tests fallback for unparsable integers
func TestLoad_InvalidInt(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg := Load()

	if cfg.ShutdownTimeout != 5 {
		t.Errorf("expected default timeout 5, got %d", cfg.ShutdownTimeout)
	}
}

// TestConfig_Validate tests struct tag validation
func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:            "3000",
			AdminPort:       "3001",
			ShutdownTimeout: 5,
			LogLevel:        "info",
			KVBackend:       "memory",
			IPHeaders:       []string{"CF-Connecting-IP"},
			CountryHeader:   "CF-IPCountry",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown backend", func(c *Config) { c.KVBackend = "etcd" }, true},
		{"mysql without dsn", func(c *Config) { c.KVBackend = "mysql" }, true},
		{"mysql with dsn", func(c *Config) { c.KVBackend = "mysql"; c.MySQLDSN = "root@tcp(localhost:3306)/whoami" }, false},
		{"redis without addr", func(c *Config) { c.KVBackend = "redis" }, true},
		{"same ports", func(c *Config) { c.AdminPort = "3000" }, true},
		{"non numeric port", func(c *Config) { c.Port = "http" }, true},
		{"no ip headers", func(c *Config) { c.IPHeaders = nil }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"zero shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
