// Package config loads ffcv-tracker settings from an optional YAML file and the environment.
//
// Defaults track CD Meliana: the three FFCV pages of its competition group,
// "meliana" as highlight token and port 3000. A YAML file overrides the defaults
// and environment variables override the file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultStandingsURL = "https://resultadosffcv.isquad.es/clasificacion.php?id_temp=21&id_modalidad=33345&id_competicion=29509572&id_torneo=905019319"
	DefaultRoundURL     = "https://resultadosffcv.isquad.es/total_partidos.php?id_temp=21&id_modalidad=33345&id_competicion=29509572&id_torneo=905019319"
	DefaultCalendarURL  = "https://resultadosffcv.isquad.es/equipo_calendario.php?id_temp=21&id_modalidad=33345&id_competicion=29509572&id_equipo=15228&torneo_equipo=905019319&id_torneo=905019319"

	FetchModeHTTP    = "http"
	FetchModeBrowser = "browser"
)

// Config stores runtime configuration
type Config struct {
	Highlight string        `yaml:"highlight" validate:"required"`
	Timezone  string        `yaml:"timezone" validate:"required,timezone"`
	DataDir   string        `yaml:"data_dir" validate:"required"`
	Server    ServerConfig  `yaml:"server"`
	Sources   SourcesConfig `yaml:"sources"`
	Fetch     FetchConfig   `yaml:"fetch"`
	Log       LogConfig     `yaml:"log"`
	Notify    NotifyConfig  `yaml:"notify"`
}

// ServerConfig configures the HTTP serving boundary
type ServerConfig struct {
	Addr         string        `yaml:"addr" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gt=0"`
}

// SourcesConfig holds the provider page URLs
type SourcesConfig struct {
	Standings string `yaml:"standings" validate:"required,url"`
	Round     string `yaml:"round" validate:"required,url"`
	Calendar  string `yaml:"calendar" validate:"required,url"`
}

// FetchConfig selects how provider pages are retrieved
type FetchConfig struct {
	Mode       string        `yaml:"mode" validate:"oneof=http browser"`
	UserAgent  string        `yaml:"user_agent" validate:"required"`
	Timeout    time.Duration `yaml:"timeout" validate:"gt=0"`
	ChromePath string        `yaml:"chrome_path"`
}

// LogConfig configures the structured logger
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// NotifyConfig configures result notifications
type NotifyConfig struct {
	Channel          string `yaml:"channel" validate:"oneof=dryrun telegram twitter"`
	TelegramBotToken string `yaml:"telegram_bot_token" validate:"required_if=Channel telegram"`
	TelegramChatID   string `yaml:"telegram_chat_id" validate:"required_if=Channel telegram"`
	Hashtags         string `yaml:"hashtags"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Highlight: "meliana",
		Timezone:  "Europe/Madrid",
		DataDir:   "~/.local/share/ffcv-tracker",
		Server: ServerConfig{
			Addr:         ":3000",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
		Sources: SourcesConfig{
			Standings: DefaultStandingsURL,
			Round:     DefaultRoundURL,
			Calendar:  DefaultCalendarURL,
		},
		Fetch: FetchConfig{
			Mode:      FetchModeHTTP,
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			Timeout:   30 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Notify: NotifyConfig{
			Channel:  "dryrun",
			Hashtags: "#FFCV",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (optional)
// and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for missing or malformed values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Location returns the configured time zone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone: %w", err)
	}
	return loc, nil
}

type lookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	setString := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	setString("FFCV_HIGHLIGHT", &c.Highlight)
	setString("FFCV_TIMEZONE", &c.Timezone)
	setString("FFCV_DATA_DIR", &c.DataDir)
	setString("FFCV_ADDR", &c.Server.Addr)
	setString("FFCV_STANDINGS_URL", &c.Sources.Standings)
	setString("FFCV_ROUND_URL", &c.Sources.Round)
	setString("FFCV_CALENDAR_URL", &c.Sources.Calendar)
	setString("FFCV_FETCH_MODE", &c.Fetch.Mode)
	setString("FFCV_USER_AGENT", &c.Fetch.UserAgent)
	setString("FFCV_CHROME_PATH", &c.Fetch.ChromePath)
	setString("FFCV_LOG_LEVEL", &c.Log.Level)
	setString("FFCV_NOTIFY_CHANNEL", &c.Notify.Channel)
	setString("TELEGRAM_BOT_TOKEN", &c.Notify.TelegramBotToken)
	setString("TELEGRAM_CHAT_ID", &c.Notify.TelegramChatID)

	if port, ok := lookup("PORT"); ok && strings.TrimSpace(port) != "" {
		if _, err := strconv.Atoi(strings.TrimSpace(port)); err != nil {
			return fmt.Errorf("parse PORT: %w", err)
		}
		c.Server.Addr = ":" + strings.TrimSpace(port)
	}

	if v, ok := lookup("FFCV_FETCH_TIMEOUT"); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse FFCV_FETCH_TIMEOUT: %w", err)
		}
		c.Fetch.Timeout = d
	}

	return nil
}
