package datefmt

import (
	"context"
	"time"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
	"golang.org/x/text/language"
)

// Key identifies a cached formatter.
type Key struct {
	Pattern string
	Locale  language.Tag
}

// Config controls Cache instance.
type Config struct {
	// Logger is an instance of contextualized logger, can be nil.
	Logger ctxd.Logger

	// Stats is metrics collector, can be nil.
	Stats stats.Tracker

	// Name is cache instance name, used in stats and logging.
	Name string

	// Defaults provides locale and time zone for requests without them, SystemDefaults by default.
	Defaults Defaults
}

// Option adjusts formatter request.
type Option func(r *request)

type request struct {
	locale    language.Tag
	hasLocale bool
	zone      *time.Location
}

// WithLocale requests formatter for a locale instead of the default one.
func WithLocale(tag language.Tag) Option {
	return func(r *request) {
		r.locale = tag
		r.hasLocale = true
	}
}

// WithTimeZone requests formatter with a time zone instead of the default one, nil is ignored.
func WithTimeZone(zone *time.Location) Option {
	return func(r *request) {
		r.zone = zone
	}
}

// Cache keeps formatters of a single goroutine, one per pattern and locale.
//
// Cache is not safe for concurrent use, it must be owned by one goroutine.
// Zero value is ready to use with system defaults.
type Cache struct {
	entries map[Key]*Formatter

	config   Config
	log      ctxd.Logger
	stat     stats.Tracker
	defaults Defaults
}

// New creates an instance of formatter cache with optional configuration.
func New(cfg ...Config) *Cache {
	config := Config{}

	if len(cfg) >= 1 {
		config = cfg[0]
	}

	return &Cache{
		config:   config,
		log:      config.Logger,
		stat:     config.Stats,
		defaults: config.Defaults,
	}
}

// Formatter returns formatter for pattern with requested time zone applied.
//
// Missing locale and time zone are taken from defaults on every call.
// Same formatter instance is returned for the same pattern and locale for the lifetime of cache.
// Invalid pattern results in *ConstructionError and nothing is cached.
func (c *Cache) Formatter(ctx context.Context, pattern string, options ...Option) (*Formatter, error) {
	r := request{}

	for _, o := range options {
		o(&r)
	}

	defaults := c.defaults
	if defaults == nil {
		defaults = SystemDefaults{}
	}

	if !r.hasLocale {
		r.locale = defaults.Locale()
	}

	if r.zone == nil {
		r.zone = defaults.TimeZone()
	}

	if c.entries == nil {
		c.entries = make(map[Key]*Formatter)
	}

	k := Key{Pattern: pattern, Locale: r.locale}

	f, found := c.entries[k]
	if found {
		if c.stat != nil {
			c.stat.Add(ctx, MetricHit, 1, "name", c.config.Name)
		}
	} else {
		var err error

		if f, err = c.build(ctx, k); err != nil {
			return nil, err
		}

		c.entries[k] = f
	}

	f.SetTimeZone(r.zone)

	return f, nil
}

// Default returns formatter for DefaultPattern.
func (c *Cache) Default(ctx context.Context, options ...Option) (*Formatter, error) {
	return c.Formatter(ctx, DefaultPattern, options...)
}

func (c *Cache) build(ctx context.Context, k Key) (*Formatter, error) {
	f, err := NewFormatter(k.Pattern, k.Locale, nil)
	if err != nil {
		if c.log != nil {
			c.log.Warn(ctx, "failed to build date formatter",
				"name", c.config.Name,
				"pattern", k.Pattern,
				"locale", k.Locale.String(),
				"error", err)
		}

		if c.stat != nil {
			c.stat.Add(ctx, MetricBuildFailed, 1, "name", c.config.Name)
		}

		return nil, err
	}

	if c.log != nil {
		c.log.Debug(ctx, "built date formatter",
			"name", c.config.Name,
			"pattern", k.Pattern,
			"locale", k.Locale.String())
	}

	if c.stat != nil {
		c.stat.Add(ctx, MetricBuild, 1, "name", c.config.Name)
	}

	return f, nil
}

// Len returns number of cached formatters.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Walk calls walkFn for every cached formatter and stops on first error.
//
// Count of processed entries is returned.
func (c *Cache) Walk(walkFn func(k Key, f *Formatter) error) (int, error) {
	n := 0

	for k, f := range c.entries {
		if err := walkFn(k, f); err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}
