package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// TelegramConfig holds Telegram bot transport settings.
type TelegramConfig struct {
	Token   string `yaml:"token" envconfig:"BOT_TOKEN"`
	AdminID int64  `yaml:"admin_id" envconfig:"TELEGRAM_ADMIN_ID"`
	RunMode string `yaml:"run_mode" envconfig:"TELEGRAM_RUN_MODE"`
	// LongPollTimeoutSeconds defines long polling timeout; 0 -> default
	LongPollTimeoutSeconds int `yaml:"longpoll_timeout_seconds" envconfig:"TELEGRAM_LONGPOLL_TIMEOUT_SECONDS"`
}

// WebhookConfig specifies webhook settings; presence of URL selects push delivery.
type WebhookConfig struct {
	URL    string `yaml:"url" envconfig:"WEBHOOK_URL"`
	Listen string `yaml:"listen" envconfig:"WEBHOOK_LISTEN"`
	Port   int    `yaml:"port" envconfig:"WEBHOOK_PORT"`
}

// LoggingConfig defines logging related configuration.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	KeysOrder   string `yaml:"keys_order"`
	DebugSample string `yaml:"debug_sample"`
	Dir         string `yaml:"dir"`
	BotFile     string `yaml:"bot_file"`
	// Profile indicates environment profile such as "debug" or "prod".
	Profile string `yaml:"profile"`
}

// RateLimitConfig holds settings for rate limiting.
// ExcludeUpdates accepts update types to bypass limiting:
// - "callback": Telegram callback button presses
// - "message": standard text messages
type RateLimitConfig struct {
	IntervalMS     int      `yaml:"interval_ms" envconfig:"RATE_LIMIT_INTERVAL_MS"`
	ExcludeUpdates []string `yaml:"exclude_updates" envconfig:"RATE_LIMIT_EXCLUDE_UPDATES"`
}

// HealthConfig configures the keep-alive HTTP endpoint. Port 0 disables it.
type HealthConfig struct {
	Port int `yaml:"port" envconfig:"HEALTH_PORT"`
}

// WorkingHoursConfig is the staffed-hours band, start inclusive, end exclusive.
type WorkingHoursConfig struct {
	Start    int    `yaml:"start" envconfig:"WORKING_HOURS_START"`
	End      int    `yaml:"end" envconfig:"WORKING_HOURS_END"`
	Timezone string `yaml:"timezone" envconfig:"WORKING_HOURS_TZ"`
}

// RequestConfig tunes the lead request pipeline.
type RequestConfig struct {
	Trigger            string             `yaml:"trigger" envconfig:"REQUEST_TRIGGER"`
	DeleteAfterSeconds int                `yaml:"delete_after_seconds" envconfig:"REQUEST_DELETE_AFTER_SECONDS"`
	WorkingHours       WorkingHoursConfig `yaml:"working_hours"`
}

// ContactsConfig holds agency contact strings rendered on the contacts screen.
type ContactsConfig struct {
	Default  string `yaml:"default" envconfig:"CONTACT_DEFAULT"`
	Address  string `yaml:"address"`
	Schedule string `yaml:"schedule"`
}

// CatalogConfig points at the tour catalog document.
type CatalogConfig struct {
	Path    string `yaml:"path" envconfig:"CATALOG_PATH"`
	AviaURL string `yaml:"avia_url" envconfig:"AVIA_TOUR_URL"`
}

// DatabaseConfig holds lead journal connection settings. An empty host
// disables the journal entirely.
type DatabaseConfig struct {
	Host           string `yaml:"host" envconfig:"DB_HOST"`
	Port           string `yaml:"port" envconfig:"DB_PORT"`
	User           string `yaml:"user" envconfig:"DB_USER"`
	Password       string `yaml:"password" envconfig:"DB_PASSWORD"`
	Name           string `yaml:"name" envconfig:"DB_NAME"`
	SSLMode        string `yaml:"sslmode" envconfig:"DB_SSLMODE"`
	MaxConnections int    `yaml:"max_connections" envconfig:"DB_MAX_CONNECTIONS"`
	MigrationsDir  string `yaml:"migrations_dir" envconfig:"DB_MIGRATIONS_DIR"`
}

// Enabled reports whether a lead journal database is configured.
func (d DatabaseConfig) Enabled() bool {
	return strings.TrimSpace(d.Host) != ""
}

const (
	// RunModeWebhook selects webhook mode for Telegram updates.
	RunModeWebhook = "webhook"
	// RunModeLongpoll selects long-polling mode for Telegram updates.
	RunModeLongpoll = "longpoll"
)

const (
	// UpdateCallback identifies callback updates for rate limit exclusions.
	UpdateCallback = "callback"
	// UpdateMessage identifies message updates for rate limit exclusions.
	UpdateMessage = "message"
)

const (
	defaultTrigger       = "#ЗАЯВКА"
	defaultDeleteAfter   = 3
	defaultHoursStart    = 10
	defaultHoursEnd      = 21
	defaultTimezone      = "Europe/Minsk"
	defaultCatalogPath   = "tours.yml"
	defaultMigrationsDir = "migrations"
)

// Config aggregates the full application configuration.
type Config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	Webhook   WebhookConfig   `yaml:"webhook"`
	Logging   LoggingConfig   `yaml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Health    HealthConfig    `yaml:"health"`
	Request   RequestConfig   `yaml:"request"`
	Contacts  ContactsConfig  `yaml:"contacts"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Database  DatabaseConfig  `yaml:"database"`
}

// DeleteAfter returns the notice retraction delay as a duration.
func (c *Config) DeleteAfter() time.Duration {
	return time.Duration(c.Request.DeleteAfterSeconds) * time.Second
}

// Load reads configuration from a YAML file and environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates required configuration fields and applies defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}

	if strings.TrimSpace(cfg.Telegram.Token) == "" {
		return fmt.Errorf("telegram token is required")
	}

	rm := strings.ToLower(strings.TrimSpace(cfg.Telegram.RunMode))
	if rm == "" {
		// webhook URL presence selects push delivery, otherwise long polling
		if strings.TrimSpace(cfg.Webhook.URL) != "" {
			rm = RunModeWebhook
		} else {
			rm = RunModeLongpoll
		}
	}
	if rm == "polling" { // accept alias
		rm = RunModeLongpoll
	}
	switch rm {
	case RunModeWebhook:
		if strings.TrimSpace(cfg.Webhook.URL) == "" {
			return fmt.Errorf("webhook.url is required when telegram.run_mode is 'webhook'")
		}
		if strings.TrimSpace(cfg.Webhook.Listen) == "" {
			return fmt.Errorf("webhook.listen is required when telegram.run_mode is 'webhook'")
		}
		if cfg.Webhook.Port <= 0 {
			return fmt.Errorf("webhook.port must be > 0 when telegram.run_mode is 'webhook'")
		}
	case RunModeLongpoll:
		if cfg.Telegram.LongPollTimeoutSeconds < 0 {
			return fmt.Errorf("telegram.longpoll_timeout_seconds must be >= 0")
		}
	default:
		return fmt.Errorf("invalid telegram.run_mode %q; allowed: webhook, longpoll", cfg.Telegram.RunMode)
	}
	cfg.Telegram.RunMode = rm

	if strings.TrimSpace(cfg.Request.Trigger) == "" {
		cfg.Request.Trigger = defaultTrigger
	}
	if cfg.Request.DeleteAfterSeconds <= 0 {
		cfg.Request.DeleteAfterSeconds = defaultDeleteAfter
	}

	wh := &cfg.Request.WorkingHours
	if wh.Start == 0 && wh.End == 0 {
		wh.Start = defaultHoursStart
		wh.End = defaultHoursEnd
	}
	if wh.Start < 0 || wh.Start > 23 {
		return fmt.Errorf("request.working_hours.start must be within 0..23")
	}
	if wh.End < 0 || wh.End > 24 {
		return fmt.Errorf("request.working_hours.end must be within 0..24")
	}
	if strings.TrimSpace(wh.Timezone) == "" {
		wh.Timezone = defaultTimezone
	}

	if strings.TrimSpace(cfg.Catalog.Path) == "" {
		cfg.Catalog.Path = defaultCatalogPath
	}

	if cfg.Health.Port < 0 {
		return fmt.Errorf("health.port must be >= 0")
	}

	if cfg.Database.Enabled() {
		if strings.TrimSpace(cfg.Database.Port) == "" {
			cfg.Database.Port = "5432"
		}
		if strings.TrimSpace(cfg.Database.SSLMode) == "" {
			cfg.Database.SSLMode = "disable"
		}
		if cfg.Database.MaxConnections <= 0 {
			cfg.Database.MaxConnections = 5
		}
		if strings.TrimSpace(cfg.Database.MigrationsDir) == "" {
			cfg.Database.MigrationsDir = defaultMigrationsDir
		}
	}

	allowed := map[string]struct{}{
		UpdateCallback: {},
		UpdateMessage:  {},
	}
	for i, v := range cfg.RateLimit.ExcludeUpdates {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if _, ok := allowed[key]; !ok {
			return fmt.Errorf("invalid rate_limit.exclude_updates value %q; allowed: callback, message", v)
		}
		cfg.RateLimit.ExcludeUpdates[i] = key
	}
	return nil
}
