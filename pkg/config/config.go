package config

import (
	"time"
)

// Mode selects the model roster and timeout profile for a request.
type Mode string

const (
	ModeFast     Mode = "fast"
	ModeBalanced Mode = "balanced"
	ModeDeep     Mode = "deep"
)

// NormalizeMode maps arbitrary input to a supported mode; anything
// unrecognized (including empty) falls back to balanced.
func NormalizeMode(s string) Mode {
	switch Mode(s) {
	case ModeFast:
		return ModeFast
	case ModeDeep:
		return ModeDeep
	default:
		return ModeBalanced
	}
}

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	// Environment name, used for warnings and behavior toggles.
	Env string

	// Auth settings.
	AllowNoAuth  bool
	APIKeyPepper string

	Upstream UpstreamConfig
	Council  CouncilConfig
	Routing  RoutingConfig
	Pipeline PipelineConfig
	Cache    CacheConfig
	Limits   LimitsConfig
	Pricing  *PriceBook

	// DataDir holds file-backed conversation storage when no database is
	// configured.
	DataDir string
}

// UpstreamConfig holds the OpenRouter client hardening knobs.
type UpstreamConfig struct {
	APIKey         string
	URL            string
	MaxConcurrency int
	MaxRetries     int
	RetryBase      time.Duration
	Timeout        time.Duration
	AuthCooldown   time.Duration

	// Per-mode timeout overrides; zero means fall back to Timeout.
	ModeTimeouts map[Mode]time.Duration
}

// TimeoutForMode returns the request timeout for the given mode, falling
// back to the global timeout when no override is set.
func (u UpstreamConfig) TimeoutForMode(mode Mode) time.Duration {
	if d, ok := u.ModeTimeouts[mode]; ok && d > 0 {
		return d
	}
	return u.Timeout
}

// CouncilConfig holds the default council composition.
type CouncilConfig struct {
	Models     []string
	Chairman   string
	TitleModel string
}

// ModeRoster is one mode's model routing overrides. Empty slices and
// strings mean "use the council defaults".
type ModeRoster struct {
	Models []string `yaml:"models"`
	Judges []string `yaml:"judges"`
	Chair  string   `yaml:"chair"`
}

// RoutingConfig maps modes to rosters.
type RoutingConfig struct {
	Fast     ModeRoster `yaml:"fast"`
	Balanced ModeRoster `yaml:"balanced"`
	Deep     ModeRoster `yaml:"deep"`
}

func (r RoutingConfig) roster(mode Mode) ModeRoster {
	switch mode {
	case ModeFast:
		return r.Fast
	case ModeDeep:
		return r.Deep
	default:
		return r.Balanced
	}
}

// ModelsForMode returns the responder roster for a mode, falling back to
// the council defaults.
func (c *Config) ModelsForMode(mode Mode) []string {
	if ms := c.Routing.roster(mode).Models; len(ms) > 0 {
		return ms
	}
	return c.Council.Models
}

// JudgesForMode returns the judge roster for a mode. When no judges are
// configured the responders double as judges.
func (c *Config) JudgesForMode(mode Mode) []string {
	if js := c.Routing.roster(mode).Judges; len(js) > 0 {
		return js
	}
	return c.ModelsForMode(mode)
}

// ChairForMode returns the chairman model for a mode, falling back to the
// council default chairman.
func (c *Config) ChairForMode(mode Mode) string {
	if ch := c.Routing.roster(mode).Chair; ch != "" {
		return ch
	}
	return c.Council.Chairman
}

// PipelineConfig holds env-first role model overrides for the software
// factory pipeline. Empty values mean "derive from the mode roster".
type PipelineConfig struct {
	LeaderModel      string
	ReviewerModel    string
	SecurityModel    string
	TestWriterModel  string
	ImplementerModel string
	GateModel        string
}

// CacheConfig controls the read-through stage cache.
type CacheConfig struct {
	Enabled bool
	// TTL of zero means entries never expire.
	TTL time.Duration
}

// LimitsConfig holds operational limits for the tool runtimes and input
// validation.
type LimitsConfig struct {
	MaxConcurrentCalls int
	ToolTimeout        time.Duration

	HTTPMaxConcurrentToolCalls int
	HTTPToolTimeout            time.Duration

	MaxPromptChars    int
	MaxTaskChars      int
	MaxRepoFiles      int
	MaxRepoTotalChars int
	MaxPathChars      int
}
