package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Cash.DefaultPaymentMethod != "cash" {
		t.Errorf("DefaultPaymentMethod = %q, want cash", cfg.Cash.DefaultPaymentMethod)
	}
	if cfg.Cash.MaxLedgerDays != 366 {
		t.Errorf("MaxLedgerDays = %d, want 366", cfg.Cash.MaxLedgerDays)
	}
	if cfg.Redis.TTL != 10*time.Minute {
		t.Errorf("Redis.TTL = %s, want 10m", cfg.Redis.TTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CASH_DEFAULT_PAYMENT_METHOD", "pix")
	t.Setenv("CASH_MAX_LEDGER_DAYS", "31")
	t.Setenv("REPORT_CACHE_TTL", "90s")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg := Load()

	if cfg.Cash.DefaultPaymentMethod != "pix" || cfg.Cash.MaxLedgerDays != 31 {
		t.Errorf("cash config not overridden: %+v", cfg.Cash)
	}
	if cfg.Redis.TTL != 90*time.Second || cfg.Redis.Enabled {
		t.Errorf("redis config not overridden: %+v", cfg.Redis)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("invalid SERVER_PORT should fall back to 8080, got %d", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults in development", mutate: func(*Config) {}},
		{
			name:    "default secret in production",
			mutate:  func(c *Config) { c.Server.Environment = "production" },
			wantErr: "JWT_SECRET",
		},
		{
			name: "custom secret in production",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
				c.JWT.Secret = "s3cr3t"
			},
		},
		{
			name:    "ledger days out of range",
			mutate:  func(c *Config) { c.Cash.MaxLedgerDays = 0 },
			wantErr: "CASH_MAX_LEDGER_DAYS",
		},
		{
			name:    "empty payment method",
			mutate:  func(c *Config) { c.Cash.DefaultPaymentMethod = "" },
			wantErr: "CASH_DEFAULT_PAYMENT_METHOD",
		},
		{
			name:    "zero notify timeout",
			mutate:  func(c *Config) { c.Email.NotifyTimeout = 0 },
			wantErr: "EMAIL_NOTIFY_TIMEOUT",
		},
		{
			name: "zero ttl with redis disabled",
			mutate: func(c *Config) {
				c.Redis.Enabled = false
				c.Redis.TTL = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}
