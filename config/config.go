package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"smart-quick-add/pkg/datemath"
	"smart-quick-add/pkg/postag"
)

// Date engines selectable with parser.date_engine.
const (
	DateEngineRules = datemath.EngineRules
	DateEngineWhen  = datemath.EngineWhen
)

// Noun taggers selectable with parser.pos_tagger.
const (
	TaggerProse = postag.NameProse
	TaggerNone  = postag.NameNone
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Quick-add specifics
	Parser     ParserConfig
	Categories CategoriesConfig
	Session    SessionConfig
	RateLimit  RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ParserConfig struct {
	Timezone            string
	DefaultHour         int
	DefaultEventMinutes int
	DateEngine          string
	POSTagger           string
}

// EventDuration is the length given to events without an explicit end.
func (p ParserConfig) EventDuration() time.Duration {
	return time.Duration(p.DefaultEventMinutes) * time.Minute
}

type CategoriesConfig struct {
	File string // empty means the built-in defaults
}

type SessionConfig struct {
	Size int
	TTL  time.Duration
}

type RateLimitConfig struct {
	PerMin int // 0 disables limiting
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Parser
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.DefaultHour = viper.GetInt("parser.default_hour")
	cfg.Parser.DefaultEventMinutes = viper.GetInt("parser.default_event_minutes")
	cfg.Parser.DateEngine = strings.ToLower(viper.GetString("parser.date_engine"))
	cfg.Parser.POSTagger = strings.ToLower(viper.GetString("parser.pos_tagger"))

	cfg.Categories.File = viper.GetString("categories.file")

	cfg.Session.Size = viper.GetInt("session.size")
	cfg.Session.TTL = viper.GetDuration("session.ttl")

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("parser.timezone", "UTC")
	viper.SetDefault("parser.default_hour", 12)
	viper.SetDefault("parser.default_event_minutes", 60)
	viper.SetDefault("parser.date_engine", DateEngineRules)
	viper.SetDefault("parser.pos_tagger", TaggerProse)

	viper.SetDefault("session.size", 1000)
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("rate_limit.per_min", 120)
}

func validate(cfg *Config) error {
	if cfg.Parser.DefaultHour < 0 || cfg.Parser.DefaultHour > 23 {
		return fmt.Errorf("parser.default_hour must be within 0-23, got %d", cfg.Parser.DefaultHour)
	}
	if cfg.Parser.DefaultEventMinutes <= 0 {
		return fmt.Errorf("parser.default_event_minutes must be positive, got %d", cfg.Parser.DefaultEventMinutes)
	}
	switch cfg.Parser.DateEngine {
	case DateEngineRules, DateEngineWhen:
	default:
		return fmt.Errorf("parser.date_engine: unknown engine %q", cfg.Parser.DateEngine)
	}
	switch cfg.Parser.POSTagger {
	case TaggerProse, TaggerNone:
	default:
		return fmt.Errorf("parser.pos_tagger: unknown tagger %q", cfg.Parser.POSTagger)
	}
	return nil
}
