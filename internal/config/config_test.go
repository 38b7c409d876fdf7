package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc"},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("expected longpoll default, got %q", cfg.Telegram.RunMode)
	}
	if cfg.Request.Trigger != "#ЗАЯВКА" {
		t.Fatalf("unexpected trigger default: %q", cfg.Request.Trigger)
	}
	if cfg.Request.DeleteAfterSeconds != 3 {
		t.Fatalf("unexpected delete_after default: %d", cfg.Request.DeleteAfterSeconds)
	}
	wh := cfg.Request.WorkingHours
	if wh.Start != 10 || wh.End != 21 {
		t.Fatalf("unexpected working hours defaults: %d..%d", wh.Start, wh.End)
	}
	if wh.Timezone != "Europe/Minsk" {
		t.Fatalf("unexpected timezone default: %q", wh.Timezone)
	}
	if cfg.Catalog.Path != "tours.yml" {
		t.Fatalf("unexpected catalog path default: %q", cfg.Catalog.Path)
	}
}

func TestNormalizeMissingToken(t *testing.T) {
	cfg := &Config{}
	err := Normalize(cfg)
	if err == nil {
		t.Fatal("expected error for missing token")
	}
	if !strings.Contains(err.Error(), "token") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNormalizeWebhookByURLPresence(t *testing.T) {
	cfg := validConfig()
	cfg.Webhook.URL = "https://bot.example.com/hook"
	cfg.Webhook.Listen = "0.0.0.0"
	cfg.Webhook.Port = 8443
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeWebhook {
		t.Fatalf("webhook URL presence must select webhook mode, got %q", cfg.Telegram.RunMode)
	}
}

func TestNormalizeWebhookRequiresListen(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "webhook"
	cfg.Webhook.URL = "https://bot.example.com/hook"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for missing webhook listen")
	}
}

func TestNormalizeRejectsBadHours(t *testing.T) {
	cfg := validConfig()
	cfg.Request.WorkingHours.Start = 25
	cfg.Request.WorkingHours.End = 21
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for out-of-range start hour")
	}
}

func TestNormalizeRejectsBadRunMode(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "carrier-pigeon"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for invalid run mode")
	}
}

func TestNormalizeRateLimitExcludes(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{" Callback ", "message"}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.RateLimit.ExcludeUpdates[0] != "callback" {
		t.Fatalf("exclude not normalized: %q", cfg.RateLimit.ExcludeUpdates[0])
	}

	cfg = validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{"inline_query"}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unsupported exclude value")
	}
}

func TestDatabaseEnabledDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Host = "localhost"
	cfg.Database.User = "bot"
	cfg.Database.Name = "zefir"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Database.Port != "5432" || cfg.Database.SSLMode != "disable" {
		t.Fatalf("database defaults not applied: %+v", cfg.Database)
	}
	if !cfg.Database.Enabled() {
		t.Fatal("database should be enabled when host is set")
	}
	if validConfig().Database.Enabled() {
		t.Fatal("database should be disabled without host")
	}
}
