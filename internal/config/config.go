// Package config loads the optional wordhunt configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/wordhunt/config.toml, or
// ~/.config/wordhunt/config.toml when XDG_CONFIG_HOME is unset:
//
//	dictionaries = ["~/words/en.txt"]
//	skip_invalid = true
//	min_length   = 3
//	dimension    = 5
//	log_level    = "info"
//
//	[cache]
//	redis_addr = "localhost:6379"
//	ttl        = "72h"
//
// Every field is optional. Command-line flags override file values.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	apperrors "github.com/matzehuels/wordhunt/pkg/errors"
	"github.com/matzehuels/wordhunt/pkg/grid"
)

// AppName names the config and cache directories.
const AppName = "wordhunt"

// Config holds settings shared by all commands.
type Config struct {
	Dictionaries []string    `toml:"dictionaries"`
	SkipInvalid  bool        `toml:"skip_invalid"`
	MinLength    int         `toml:"min_length"`
	Dimension    int         `toml:"dimension"`
	Seed         uint64      `toml:"seed"`
	LogLevel     string      `toml:"log_level"`
	Cache        CacheConfig `toml:"cache"`
}

// CacheConfig selects and tunes the render cache.
type CacheConfig struct {
	Disabled      bool     `toml:"disabled"`
	Dir           string   `toml:"dir"`
	RedisAddr     string   `toml:"redis_addr"`
	RedisPassword string   `toml:"redis_password"`
	RedisDB       int      `toml:"redis_db"`
	TTL           Duration `toml:"ttl"`
}

// Duration is a time.Duration written as a string such as "36h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills in zero-valued fields.
func (c *Config) SetDefaults() {
	if c.Dimension == 0 {
		c.Dimension = grid.DefaultDimension
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL.Duration = 7 * 24 * time.Hour
	}
}

// Validate rejects values no command can use.
func (c *Config) Validate() error {
	if err := apperrors.ValidateDimension(c.Dimension); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "dimension")
	}
	if c.MinLength < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "min_length must not be negative")
	}
	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "log_level %q must be one of %s", c.LogLevel, strings.Join(logLevels, ", "))
	}
	if c.Cache.TTL.Duration < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Load reads the file at path. An empty path means [DefaultPath], and a
// missing default file yields [Default] without error; a missing explicit
// path is an error. Unknown keys are rejected so typos do not go unnoticed.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	c := &Config{}
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if explicit {
				return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "config %s", path)
			}
			return Default(), nil
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	c.SetDefaults()
	c.expandPaths()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) expandPaths() {
	for i, p := range c.Dictionaries {
		c.Dictionaries[i] = ExpandPath(p)
	}
	if c.Cache.Dir != "" {
		c.Cache.Dir = ExpandPath(c.Cache.Dir)
	}
}

// ExpandPath expands environment variables and a leading "~/".
func ExpandPath(p string) string {
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the file cache directory: the configured one, or
// $XDG_CACHE_HOME/wordhunt, or ~/.cache/wordhunt.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	return DefaultCacheDir()
}

// DefaultCacheDir returns the cache directory using the XDG standard.
func DefaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}
