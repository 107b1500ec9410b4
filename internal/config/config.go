package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone   = "UTC"
	configPathEnv     = "MARKET_INTEL_CONFIG"
	databaseDSNEnv    = "DATABASE_DSN"
	geminiAPIKeyEnv   = "GEMINI_API_KEY"
	anthropicKeyEnv   = "ANTHROPIC_API_KEY"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Database      DatabaseConfig     `yaml:"database"`
	Scheduler     SchedulerConfig    `yaml:"scheduler"`
	Pipeline      PipelineConfig     `yaml:"pipeline"`
	Gemini        GeminiConfig       `yaml:"gemini"`
	Anthropic     AnthropicConfig    `yaml:"anthropic"`
	Notifications NotificationConfig `yaml:"notifications"`
	Sites         []SiteConfig       `yaml:"sites"`
}

// LoggingConfig controls console log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DatabaseConfig describes Postgres connection details.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// SchedulerConfig defines when the pipeline should run.
type SchedulerConfig struct {
	CronExpression string         `yaml:"cronExpression"`
	Timezone       string         `yaml:"timezone"`
	location       *time.Location `yaml:"-"`
}

// Location resolves the scheduler timezone string to a time.Location.
func (s SchedulerConfig) Location() *time.Location {
	if s.location != nil {
		return s.location
	}
	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// PipelineConfig carries the tunable clustering/classification parameters.
type PipelineConfig struct {
	DaysBack            int     `yaml:"daysBack"`
	SimilarityThreshold float64 `yaml:"similarityThreshold"`
	MinClusterSize      int     `yaml:"minClusterSize"`
	UseModels           bool    `yaml:"useModels"`
}

// Validate rejects parameter values the pipeline must not run with.
func (p PipelineConfig) Validate() error {
	if p.SimilarityThreshold <= 0 || p.SimilarityThreshold >= 1 {
		return fmt.Errorf("similarityThreshold %v outside (0,1)", p.SimilarityThreshold)
	}
	if p.MinClusterSize < 1 {
		return fmt.Errorf("minClusterSize %d below 1", p.MinClusterSize)
	}
	if p.DaysBack < 1 {
		return fmt.Errorf("daysBack %d below 1", p.DaysBack)
	}
	return nil
}

// GeminiConfig defines how to contact the Gemini API for embeddings/summaries.
type GeminiConfig struct {
	APIKey     string `yaml:"apiKey"`
	EmbedModel string `yaml:"embedModel"`
	Model      string `yaml:"model"`
}

// AnthropicConfig defines the Claude sentiment classifier access.
type AnthropicConfig struct {
	APIKey string `yaml:"apiKey"`
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// SiteConfig describes a single headline site with its scanner strategy.
type SiteConfig struct {
	Name       string            `yaml:"name"`
	Scanner    string            `yaml:"scanner"`
	Categories []CategoryConfig  `yaml:"categories"`
	Options    map[string]string `yaml:"options"`
}

// CategoryConfig holds the concrete page to scan for headlines.
type CategoryConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	if len(cfg.Sites) == 0 {
		cfg.Sites = defaultConfig().Sites
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(geminiAPIKeyEnv); v != "" {
		c.Gemini.APIKey = v
	}

	if v := os.Getenv(anthropicKeyEnv); v != "" {
		c.Anthropic.APIKey = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Scheduler.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc, _ = time.LoadLocation(defaultTimezone)
	}
	c.Scheduler.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Scheduler.CronExpression != "" {
		base.Scheduler.CronExpression = override.Scheduler.CronExpression
	}
	if override.Scheduler.Timezone != "" {
		base.Scheduler.Timezone = override.Scheduler.Timezone
	}

	if override.Pipeline.DaysBack != 0 {
		base.Pipeline.DaysBack = override.Pipeline.DaysBack
	}
	if override.Pipeline.SimilarityThreshold != 0 {
		base.Pipeline.SimilarityThreshold = override.Pipeline.SimilarityThreshold
	}
	if override.Pipeline.MinClusterSize != 0 {
		base.Pipeline.MinClusterSize = override.Pipeline.MinClusterSize
	}
	base.Pipeline.UseModels = override.Pipeline.UseModels

	if override.Gemini.APIKey != "" {
		base.Gemini.APIKey = override.Gemini.APIKey
	}
	if override.Gemini.EmbedModel != "" {
		base.Gemini.EmbedModel = override.Gemini.EmbedModel
	}
	if override.Gemini.Model != "" {
		base.Gemini.Model = override.Gemini.Model
	}

	if override.Anthropic.APIKey != "" {
		base.Anthropic.APIKey = override.Anthropic.APIKey
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	if len(override.Sites) > 0 {
		base.Sites = override.Sites
	}

	return base
}

func defaultConfig() Config {
	tz, _ := time.LoadLocation(defaultTimezone)
	return Config{
		Logging:   LoggingConfig{Level: "info"},
		Database:  DatabaseConfig{DSN: ""},
		Scheduler: SchedulerConfig{CronExpression: "", Timezone: defaultTimezone, location: tz},
		Pipeline: PipelineConfig{
			DaysBack:            7,
			SimilarityThreshold: 0.78,
			MinClusterSize:      2,
			UseModels:           true,
		},
		Gemini: GeminiConfig{
			EmbedModel: "gemini-embedding-001",
			Model:      "gemini-2.5-flash",
		},
		Anthropic: AnthropicConfig{},
		Notifications: NotificationConfig{
			Telegram: TelegramConfig{BotToken: "", ChatID: ""},
		},
		Sites: []SiteConfig{
			{
				Name:    "oilprice",
				Scanner: "headline",
				Categories: []CategoryConfig{
					{Name: "front", URL: "https://oilprice.com/"},
				},
				Options: map[string]string{"selector": "a.category-article__title"},
			},
			{
				Name:    "investing",
				Scanner: "headline",
				Categories: []CategoryConfig{
					{Name: "commodities", URL: "https://www.investing.com/news/commodities-news"},
				},
				Options: map[string]string{"selector": "a.title"},
			},
		},
	}
}
