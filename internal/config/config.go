package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"shoplist/internal/speech"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	defaultHistoryLimit = 20
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
)

type Config struct {
	Language       string `yaml:"language"`
	CatalogPath    string `yaml:"catalog_path"`
	InterimResults bool   `yaml:"interim_results"`

	HistoryEnabled bool `yaml:"history_enabled"`
	HistoryLimit   int  `yaml:"history_limit"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	LanguageTag language.Tag `yaml:"-"` // computed from Language, not from YAML
	Level       log.Level    `yaml:"-"` // computed from LogLevel
}

// Load reads config.yaml (or SHOPLIST_CONFIG), applies SHOPLIST_* env
// overrides and defaults, and validates the result.
func Load() (Config, error) {
	cfg := Config{HistoryEnabled: true, InterimResults: true}

	configPath := "config.yaml"
	if envPath := os.Getenv("SHOPLIST_CONFIG"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", configPath, err)
		}
		log.Debugf("config loaded path=%s", configPath)
	}

	envOverride(&cfg.Language, "SHOPLIST_LANGUAGE")
	envOverrideAllowEmpty(&cfg.CatalogPath, "SHOPLIST_CATALOG_PATH")
	if err := envOverrideBool(&cfg.InterimResults, "SHOPLIST_INTERIM_RESULTS"); err != nil {
		return cfg, err
	}
	if err := envOverrideBool(&cfg.HistoryEnabled, "SHOPLIST_HISTORY_ENABLED"); err != nil {
		return cfg, err
	}
	if err := envOverrideInt(&cfg.HistoryLimit, "SHOPLIST_HISTORY_LIMIT"); err != nil {
		return cfg, err
	}
	envOverride(&cfg.LogLevel, "SHOPLIST_LOG_LEVEL")
	envOverride(&cfg.LogFormat, "SHOPLIST_LOG_FORMAT")

	if cfg.Language == "" {
		cfg.Language = speech.SupportedLanguages[0].String()
	}
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = defaultLogFormat
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// MustLoad is Load for callers that cannot continue without a config.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	return cfg
}

func (c *Config) validate() error {
	tag, err := speech.MatchLanguage(c.Language)
	if err != nil {
		return fmt.Errorf("invalid language '%s': %w", c.Language, err)
	}
	c.LanguageTag = tag

	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log_level '%s': %w", c.LogLevel, err)
	}
	c.Level = level

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be 'text' or 'json', got '%s'", c.LogFormat)
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("invalid history_limit '%d': must be >= 1", c.HistoryLimit)
	}
	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); err != nil {
			return fmt.Errorf("invalid catalog_path '%s': %w", c.CatalogPath, err)
		}
	}
	return nil
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideAllowEmpty(field *string, envKey string) {
	if val, ok := os.LookupEnv(envKey); ok {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) error {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", envKey, val, err)
		}
		*field = parsed
	}
	return nil
}

func envOverrideBool(field *bool, envKey string) error {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", envKey, val, err)
		}
		*field = parsed
	}
	return nil
}
