package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("PORT", "")

	cfg := Load()
	if cfg.Port != "8080" || cfg.StorageDriver != "dynamodb" {
		t.Fatalf("unexpected defaults: port=%q driver=%q", cfg.Port, cfg.StorageDriver)
	}
	if cfg.MerchantName != "UPA Religados" || cfg.MerchantCity != "Manaus" {
		t.Fatalf("unexpected merchant defaults: %+v", cfg)
	}
	if cfg.TokenTTL != 12*time.Hour {
		t.Fatalf("unexpected ttl: %v", cfg.TokenTTL)
	}
	if cfg.TrustedProxies != nil {
		t.Fatalf("expected no trusted proxies by default, got %+v", cfg.TrustedProxies)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", " SQLite ")
	t.Setenv("ADMIN_ACCOUNTS", "Admin@UPA.org:$2a$10$abc, broken, other@upa.org:$2a$10$def")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("GOOGLE_SHEETS_PRIVATE_KEY", `line1\nline2`)
	t.Setenv("EMAIL_MOCK", "true")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.10")

	cfg := Load()
	if cfg.StorageDriver != "sqlite" {
		t.Fatalf("expected normalized driver, got %q", cfg.StorageDriver)
	}
	if len(cfg.AdminAccounts) != 2 || cfg.AdminAccounts["admin@upa.org"] != "$2a$10$abc" {
		t.Fatalf("unexpected admin accounts: %+v", cfg.AdminAccounts)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %+v", cfg.AllowedOrigins)
	}
	if cfg.SheetsPrivateKey != "line1\nline2" {
		t.Fatalf("expected unescaped key, got %q", cfg.SheetsPrivateKey)
	}
	if !cfg.EmailMock {
		t.Fatalf("expected email mock enabled")
	}
	if len(cfg.TrustedProxies) != 2 || cfg.TrustedProxies[0] != "10.0.0.0/8" {
		t.Fatalf("unexpected trusted proxies: %+v", cfg.TrustedProxies)
	}
}
