// Package config loads the settings of the minspan service.
//
// Precedence, lowest first: Default(), MINSPAN_* environment variables,
// command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/minspan/logging"
	"github.com/katalvlaran/minspan/mst"
)

// ErrInvalidConfig indicates a setting outside its accepted range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MINSPAN_"

// Config holds the service settings.
type Config struct {
	Addr      string // listen address
	LogLevel  string // debug|info|warn|error
	LogFormat string // text|json

	MaxPoints           int     // ceiling forwarded to mst.WithMaxPoints
	MaxConcurrentBuilds int64   // weight of the build semaphore
	RateLimit           float64 // requests per second; 0 disables limiting
	RateBurst           int

	CacheDSN   string // SQLite DSN; empty disables the cache
	CacheCodec string // none|lz4|zstd

	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:                ":8080",
		LogLevel:            "info",
		LogFormat:           "text",
		MaxPoints:           2000,
		MaxConcurrentBuilds: 4,
		RateLimit:           20,
		RateBurst:           40,
		CacheCodec:          "zstd",
		AllowedOrigins:      []string{"*"},
		ShutdownTimeout:     10 * time.Second,
	}
}

// Load applies environment overrides read through getenv, then parses args.
// getenv may be nil, in which case the environment is ignored.
func Load(args []string, getenv func(string) string) (Config, error) {
	return LoadFlagSet(flag.NewFlagSet("minspan", flag.ContinueOnError), args, getenv)
}

// LoadFlagSet is Load on a caller-owned FlagSet, which may already hold
// flags of its own. fs should use flag.ContinueOnError.
func LoadFlagSet(fs *flag.FlagSet, args []string, getenv func(string) string) (Config, error) {
	cfg := Default()
	if getenv != nil {
		if err := cfg.applyEnv(getenv); err != nil {
			return Config{}, err
		}
	}

	cfg.Register(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Register binds every field to a flag on fs, using the current values as defaults.
func (c *Config) Register(fs *flag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
	fs.IntVar(&c.MaxPoints, "max-points", c.MaxPoints, "largest accepted point set")
	fs.Int64Var(&c.MaxConcurrentBuilds, "max-builds", c.MaxConcurrentBuilds, "concurrent tree builds")
	fs.Float64Var(&c.RateLimit, "rate", c.RateLimit, "requests per second, 0 disables limiting")
	fs.IntVar(&c.RateBurst, "burst", c.RateBurst, "rate limiter burst")
	fs.StringVar(&c.CacheDSN, "cache", c.CacheDSN, "SQLite DSN of the result cache, empty disables it")
	fs.StringVar(&c.CacheCodec, "cache-codec", c.CacheCodec, "cache blob codec: none, lz4, zstd")
	fs.Func("origins", "comma-separated CORS origins", func(s string) error {
		c.AllowedOrigins = splitList(s)
		return nil
	})
	fs.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", c.ShutdownTimeout, "graceful shutdown budget")
}

func (c *Config) applyEnv(getenv func(string) string) error {
	str := func(name string, dst *string) {
		if v := getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}
	str("ADDR", &c.Addr)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("CACHE_DSN", &c.CacheDSN)
	str("CACHE_CODEC", &c.CacheCodec)
	if v := getenv(EnvPrefix + "ORIGINS"); v != "" {
		c.AllowedOrigins = splitList(v)
	}

	var err error
	num := func(name string, parse func(string) error) {
		v := getenv(EnvPrefix + name)
		if v == "" || err != nil {
			return
		}
		if perr := parse(v); perr != nil {
			err = fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidConfig, EnvPrefix, name, v, perr)
		}
	}
	num("MAX_POINTS", func(v string) (e error) { c.MaxPoints, e = strconv.Atoi(v); return })
	num("MAX_BUILDS", func(v string) (e error) { c.MaxConcurrentBuilds, e = strconv.ParseInt(v, 10, 64); return })
	num("RATE", func(v string) (e error) { c.RateLimit, e = strconv.ParseFloat(v, 64); return })
	num("BURST", func(v string) (e error) { c.RateBurst, e = strconv.Atoi(v); return })
	num("SHUTDOWN_TIMEOUT", func(v string) (e error) { c.ShutdownTimeout, e = time.ParseDuration(v); return })

	return err
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	case c.MaxPoints < 2 || c.MaxPoints > mst.DefaultMaxPoints:
		return fmt.Errorf("%w: max points %d not in [2, %d]", ErrInvalidConfig, c.MaxPoints, mst.DefaultMaxPoints)
	case c.MaxConcurrentBuilds < 1:
		return fmt.Errorf("%w: max builds %d < 1", ErrInvalidConfig, c.MaxConcurrentBuilds)
	case c.RateLimit < 0:
		return fmt.Errorf("%w: negative rate %v", ErrInvalidConfig, c.RateLimit)
	case c.RateLimit > 0 && c.RateBurst < 1:
		return fmt.Errorf("%w: burst %d < 1", ErrInvalidConfig, c.RateBurst)
	case c.ShutdownTimeout <= 0:
		return fmt.Errorf("%w: shutdown timeout %v", ErrInvalidConfig, c.ShutdownTimeout)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}
	switch strings.ToLower(c.CacheCodec) {
	case "none", "lz4", "zstd":
	default:
		return fmt.Errorf("%w: cache codec %q", ErrInvalidConfig, c.CacheCodec)
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
