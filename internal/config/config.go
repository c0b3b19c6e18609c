package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/paint-estimator/internal/report"
)

const (
	defaultLogLevel    = "warn"
	defaultLogEncoding = "json"
	defaultLocale      = "pt-BR"
	defaultCurrency    = "R$"

	// OutputAuto renders boxed output on a terminal and plain text otherwise.
	OutputAuto = "auto"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > Environment variables > YAML config > Defaults
type Config struct {
	LogLevel    string `yaml:"log_level"`
	LogEncoding string `yaml:"log_encoding"`
	Locale      string `yaml:"locale"`
	Currency    string `yaml:"currency"`
	Output      string `yaml:"output"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile  string
	LogLevel    *string
	LogEncoding *string
	Locale      *string
	Currency    *string
	Output      *string
}

// Load resolves configuration with precedence:
// CLI flags > Environment variables > YAML config > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	if overrides != nil && overrides.ConfigFile != "" {
		fileCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyFileConfig(&cfg, fileCfg)
	}

	applyEnvConfig(&cfg)

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LocaleTag returns the configured locale as a language tag.
func (c Config) LocaleTag() language.Tag {
	return language.Make(c.Locale)
}

func defaultConfig() Config {
	return Config{
		LogLevel:    defaultLogLevel,
		LogEncoding: defaultLogEncoding,
		Locale:      defaultLocale,
		Currency:    defaultCurrency,
		Output:      OutputAuto,
	}
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &fileCfg, nil
}

func applyFileConfig(cfg *Config, fileCfg *Config) {
	overlay(cfg, fileCfg.LogLevel, fileCfg.LogEncoding, fileCfg.Locale, fileCfg.Currency, fileCfg.Output)
}

func applyEnvConfig(cfg *Config) {
	overlay(cfg,
		os.Getenv("ESTIMATOR_LOG_LEVEL"),
		os.Getenv("ESTIMATOR_LOG_ENCODING"),
		os.Getenv("ESTIMATOR_LOCALE"),
		os.Getenv("ESTIMATOR_CURRENCY"),
		os.Getenv("ESTIMATOR_OUTPUT"),
	)
}

func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	overlay(cfg,
		deref(overrides.LogLevel),
		deref(overrides.LogEncoding),
		deref(overrides.Locale),
		deref(overrides.Currency),
		deref(overrides.Output),
	)
}

// overlay replaces every field whose new value is not blank.
func overlay(cfg *Config, logLevel, logEncoding, locale, currency, output string) {
	set := func(dst *string, value string) {
		if value = strings.TrimSpace(value); value != "" {
			*dst = value
		}
	}
	set(&cfg.LogLevel, logLevel)
	set(&cfg.LogEncoding, logEncoding)
	set(&cfg.Locale, locale)
	set(&cfg.Currency, currency)
	set(&cfg.Output, output)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func validateConfig(cfg Config) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if cfg.LogEncoding != "json" && cfg.LogEncoding != "console" {
		return fmt.Errorf("log encoding must be json or console, got %q", cfg.LogEncoding)
	}
	if _, err := language.Parse(cfg.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
	}
	if !strings.EqualFold(cfg.Output, OutputAuto) {
		if _, err := report.ParseFormat(cfg.Output); err != nil {
			return fmt.Errorf("invalid output: %w", err)
		}
	}
	return nil
}
