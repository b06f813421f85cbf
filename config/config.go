// Package config loads the API configuration from a TOML or YAML file.
// Every field has a working default, so the server also starts with no
// file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that points at the
// configuration file.
const EnvConfigPath = "TVM_CONFIG"

// Config holds the complete application configuration.
type Config struct {
	Server    ServerConfig    `toml:"server" yaml:"server"`
	Cache     CacheConfig     `toml:"cache" yaml:"cache"`
	RateLimit RateLimitConfig `toml:"rate_limit" yaml:"rate_limit"`
}

type ServerConfig struct {
	Port            int      `toml:"port" yaml:"port"`
	ReadTimeout     Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout" yaml:"write_timeout"`
	IdleTimeout     Duration `toml:"idle_timeout" yaml:"idle_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
}

type CacheConfig struct {
	// RedisAddr selects the shared Redis cache; empty selects the
	// in-memory cache.
	RedisAddr string   `toml:"redis_addr" yaml:"redis_addr"`
	TTL       Duration `toml:"ttl" yaml:"ttl"`
}

type RateLimitConfig struct {
	Capacity       int      `toml:"capacity" yaml:"capacity"`
	RefillInterval Duration `toml:"refill_interval" yaml:"refill_interval"`
}

// Duration wraps time.Duration so "15s" parses from TOML and YAML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML exists because yaml.v3 does not fall back to
// encoding.TextUnmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Load reads the configuration at path, choosing the parser by file
// extension: .yaml and .yml parse as YAML, everything else as TOML.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv loads the file named by TVM_CONFIG, falling back to
// ./config.toml. When neither exists it returns the defaults.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = "config.toml"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 15 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 15 * time.Second
	}
	if c.Server.IdleTimeout.Duration == 0 {
		c.Server.IdleTimeout.Duration = 60 * time.Second
	}
	if c.Server.ShutdownTimeout.Duration == 0 {
		c.Server.ShutdownTimeout.Duration = 10 * time.Second
	}
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL.Duration = 5 * time.Minute
	}
	if c.RateLimit.Capacity == 0 {
		c.RateLimit.Capacity = 5
	}
	if c.RateLimit.RefillInterval.Duration == 0 {
		c.RateLimit.RefillInterval.Duration = time.Minute
	}
}
