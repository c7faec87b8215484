// Package cli implements the wordhunt command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordhunt/internal/config"
	"github.com/matzehuels/wordhunt/pkg/buildinfo"
	"github.com/matzehuels/wordhunt/pkg/cache"
	"github.com/matzehuels/wordhunt/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// cacheKeyType labels render cache traffic in observability hooks.
const cacheKeyType = "render"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger and configuration.
// The configuration file is read when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the configuration file and applies its log level unless
// --verbose was given.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	if c.verbose {
		c.SetLogLevel(LogDebug)
	} else {
		c.SetLogLevel(cfg.Level())
	}
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. The caller must Close it.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), cachePrefix())
	runner := pipeline.NewRunner(cache.Instrument(store, cacheKeyType), keyer, c.Logger)
	if ttl := c.Config.Cache.TTL.Duration; ttl > 0 {
		runner.TTL = ttl
	}
	return runner, nil
}

// newCache picks the cache backend: Redis when an address is configured,
// the file cache otherwise, and no cache when disabled.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cfg := c.Config.Cache
	if noCache || cfg.Disabled {
		return cache.NewNullCache(), nil
	}
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			c.Logger.Warn("redis cache unavailable, rendering without cache", "addr", cfg.RedisAddr, "err", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	}
	dir, err := c.Config.CacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// cachePrefix scopes cache keys to the running version.
func cachePrefix() string {
	return appName + ":" + buildinfo.Version + ":"
}

// =============================================================================
// Options Helpers
// =============================================================================

// dictionaries returns args, or the configured dictionaries when args is empty.
func (c *CLI) dictionaries(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return c.Config.Dictionaries
}

// loadOptions builds pipeline options for reading the given dictionaries.
func (c *CLI) loadOptions(paths []string) pipeline.Options {
	return pipeline.Options{
		Dictionaries: c.dictionaries(paths),
		SkipInvalid:  c.Config.SkipInvalid,
		MinLength:    c.Config.MinLength,
		Logger:       c.Logger,
	}
}
