package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Defaults match the production deployment: the Meetup startingSoon page often
// omits strict timestamps, so the window is wider than the page's nominal
// "soon" and unresolvable cards are kept by default.
const (
	DefaultWindowMinutes = 90
	DefaultMaxItems      = 50
	DefaultTTLMinutes    = 60
	DefaultTimezone      = "America/Toronto"
	DefaultOrigin        = "https://www.meetup.com"
	DefaultSourceURL     = "https://www.meetup.com/find/?dateRange=startingSoon&source=EVENTS&eventType=online"
)

// Sort order values accepted in config and flags.
const (
	SortChronological = "chronological"
	SortAttendance    = "attendance"
)

// Fallback policy values for cards with no resolvable start time and no
// recognizable relative phrase.
const (
	FallbackInclude = "include"
	FallbackExclude = "exclude"
)

// Config holds the full pipeline configuration. It is built once at startup
// and treated as immutable afterwards.
type Config struct {
	WindowMinutes int    `yaml:"window_minutes"`
	MaxItems      int    `yaml:"max_items"`
	Sort          string `yaml:"sort"`
	Timezone      string `yaml:"timezone"`
	Fallback      string `yaml:"fallback"`
	SiteOrigin    string `yaml:"site_origin"`

	FeedTitle       string `yaml:"feed_title"`
	FeedLink        string `yaml:"feed_link"`
	FeedDescription string `yaml:"feed_description"`
	TTLMinutes      int    `yaml:"ttl_minutes"`

	OutDir string `yaml:"out_dir"`
}

// Default returns the configuration used when no file or flags override it.
func Default() *Config {
	return &Config{
		WindowMinutes: DefaultWindowMinutes,
		MaxItems:      DefaultMaxItems,
		Sort:          SortChronological,
		Timezone:      DefaultTimezone,
		Fallback:      FallbackInclude,
		SiteOrigin:    DefaultOrigin,
		FeedTitle:     "Meetup (Online) — Starting Soon (Next ~90 Minutes)",
		FeedLink:      DefaultSourceURL,
		FeedDescription: "Auto-generated RSS for Meetup online events starting soon. " +
			"Prefers next ~90 minutes when timestamps exist; otherwise uses relative-text fallbacks.",
		TTLMinutes: DefaultTTLMinutes,
		OutDir:     "public",
	}
}

// DefaultPath returns the XDG config file location for meetup-soon.
func DefaultPath() string {
	path, err := xdg.ConfigFile("meetup-soon/config.yaml")
	if err != nil {
		return ""
	}
	return path
}

// Load reads a YAML config file and merges it over the defaults. A missing
// file is not an error; it simply yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.WindowMinutes <= 0 {
		return fmt.Errorf("window_minutes must be positive, got %d", c.WindowMinutes)
	}
	if c.MaxItems <= 0 {
		return fmt.Errorf("max_items must be positive, got %d", c.MaxItems)
	}
	if c.Sort != SortChronological && c.Sort != SortAttendance {
		return fmt.Errorf("invalid sort: %s (must be '%s' or '%s')", c.Sort, SortChronological, SortAttendance)
	}
	if c.Fallback != FallbackInclude && c.Fallback != FallbackExclude {
		return fmt.Errorf("invalid fallback: %s (must be '%s' or '%s')", c.Fallback, FallbackInclude, FallbackExclude)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.SiteOrigin == "" {
		return fmt.Errorf("site_origin is required")
	}
	if _, err := url.Parse(c.SiteOrigin); err != nil {
		return fmt.Errorf("invalid site_origin %q: %w", c.SiteOrigin, err)
	}
	return nil
}

// Window returns the inclusion window as a duration.
func (c *Config) Window() time.Duration {
	return time.Duration(c.WindowMinutes) * time.Minute
}

// Location resolves the configured reference time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
