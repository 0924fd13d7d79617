// Package config loads server configuration from PERS_* environment
// variables, optionally merged over a YAML file, with defaults applied and
// the result validated.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all settings, so that
// "server.port" resolves to PERS_SERVER_PORT.
const envPrefix = "PERS"

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ProcessConfig holds the wall-clock budget of one rewrite request.
type ProcessConfig struct {
	Budget       time.Duration `mapstructure:"budget"`
	SafetyMargin time.Duration `mapstructure:"safety_margin"`
	MinRemaining time.Duration `mapstructure:"min_remaining"`
	CallCap      time.Duration `mapstructure:"call_cap"`
}

// JobsConfig holds job lifecycle settings.
type JobsConfig struct {
	DBPath        string        `mapstructure:"db_path"`
	SpoolDir      string        `mapstructure:"spool_dir"`
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// OpenAIConfig holds rewrite-capability settings. An empty key selects the
// stub client.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Config is the root configuration object.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Process ProcessConfig `mapstructure:"process"`
	Jobs    JobsConfig    `mapstructure:"jobs"`
	OpenAI  OpenAIConfig  `mapstructure:"openai"`
	Log     LogConfig     `mapstructure:"log"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	applyDefaults(v)
	return v
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_upload_bytes", int64(10*1024*1024))
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("process.budget", 360*time.Second)
	v.SetDefault("process.safety_margin", 15*time.Second)
	v.SetDefault("process.min_remaining", 5*time.Second)
	v.SetDefault("process.call_cap", 330*time.Second)

	v.SetDefault("jobs.db_path", "perstool.db")
	v.SetDefault("jobs.spool_dir", "spool")
	v.SetDefault("jobs.ttl", 20*time.Minute)
	v.SetDefault("jobs.sweep_interval", 60*time.Second)

	// Registered with an empty default so AutomaticEnv picks the key up.
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads the YAML file at configPath, merges PERS_* environment
// overrides, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %q: %w", configPath, err)
	}
	return finalize(v)
}

// LoadFromEnv builds a Config from PERS_* environment variables alone. This
// is the loading strategy for containerised deployments.
func LoadFromEnv() (*Config, error) {
	return finalize(newViper())
}

func finalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations that cannot work.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive")
	}
	if c.Process.Budget <= c.Process.SafetyMargin {
		return fmt.Errorf("process.budget must exceed process.safety_margin")
	}
	if c.Jobs.TTL <= 0 || c.Jobs.SweepInterval <= 0 {
		return fmt.Errorf("jobs.ttl and jobs.sweep_interval must be positive")
	}
	return nil
}
