package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// CouncilYAMLConfig represents the optional council.yaml overlay. Everything
// here can also be set through the environment; environment values win.
type CouncilYAMLConfig struct {
	Council *CouncilYAMLSection `yaml:"council"`
	Routing *RoutingConfig      `yaml:"routing"`
	Pricing *PriceBook          `yaml:"pricing"`
}

// CouncilYAMLSection holds the council composition overrides from YAML.
type CouncilYAMLSection struct {
	Models     []string `yaml:"models"`
	Chairman   string   `yaml:"chairman"`
	TitleModel string   `yaml:"title_model"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Precedence, lowest to highest: built-in defaults, council.yaml overlay
// from configDir (if present), environment variables.
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := defaultConfig()

	if err := applyYAMLOverlay(cfg, configDir); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"env", cfg.Env,
		"council_models", len(cfg.Council.Models),
		"priced_models", len(cfg.Pricing.Models),
		"cache_enabled", cfg.Cache.Enabled)

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Env: "development",
		Upstream: UpstreamConfig{
			URL:            "https://openrouter.ai/api/v1/chat/completions",
			MaxConcurrency: 6,
			MaxRetries:     2,
			RetryBase:      500 * time.Millisecond,
			Timeout:        120 * time.Second,
			AuthCooldown:   60 * time.Second,
			ModeTimeouts:   map[Mode]time.Duration{},
		},
		Council: CouncilConfig{
			Models: []string{
				"openai/gpt-5.1",
				"google/gemini-3-pro-preview",
				"anthropic/claude-sonnet-4.5",
				"x-ai/grok-4",
			},
			Chairman:   "google/gemini-3-pro-preview",
			TitleModel: "google/gemini-2.5-flash",
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Limits: LimitsConfig{
			MaxConcurrentCalls:         4,
			ToolTimeout:                300 * time.Second,
			HTTPMaxConcurrentToolCalls: 16,
			HTTPToolTimeout:            300 * time.Second,
			MaxPromptChars:             20000,
			MaxTaskChars:               20000,
			MaxRepoFiles:               25,
			MaxRepoTotalChars:          200000,
			MaxPathChars:               300,
		},
		Pricing: &PriceBook{
			Version: "v1",
			Models:  map[string]ModelPrice{},
		},
		DataDir: "data/conversations",
	}
}

// applyYAMLOverlay merges council.yaml from configDir into cfg. A missing
// file is not an error; the overlay is optional.
func applyYAMLOverlay(cfg *Config, configDir string) error {
	if configDir == "" {
		return nil
	}
	path := filepath.Join(configDir, "council.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return NewLoadError("council.yaml", err)
	}

	var overlay CouncilYAMLConfig
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return NewLoadError("council.yaml", fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	if overlay.Council != nil {
		if len(overlay.Council.Models) > 0 {
			cfg.Council.Models = overlay.Council.Models
		}
		if overlay.Council.Chairman != "" {
			cfg.Council.Chairman = overlay.Council.Chairman
		}
		if overlay.Council.TitleModel != "" {
			cfg.Council.TitleModel = overlay.Council.TitleModel
		}
	}
	if overlay.Routing != nil {
		if err := mergo.Merge(&cfg.Routing, overlay.Routing, mergo.WithOverride); err != nil {
			return fmt.Errorf("failed to merge routing config: %w", err)
		}
	}
	if overlay.Pricing != nil {
		if overlay.Pricing.Version != "" {
			cfg.Pricing.Version = overlay.Pricing.Version
		}
		if err := mergo.Merge(&cfg.Pricing.Models, overlay.Pricing.Models, mergo.WithOverride); err != nil {
			return fmt.Errorf("failed to merge pricing config: %w", err)
		}
	}
	return nil
}

// applyEnv layers environment variables on top of whatever the defaults and
// YAML overlay produced.
func applyEnv(cfg *Config) error {
	cfg.Env = envString("ENV", cfg.Env)
	cfg.AllowNoAuth = envBool("ALLOW_NO_AUTH", cfg.AllowNoAuth)
	cfg.APIKeyPepper = envString("API_KEY_PEPPER", cfg.APIKeyPepper)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)

	u := &cfg.Upstream
	u.APIKey = envString("OPENROUTER_API_KEY", u.APIKey)
	u.URL = envString("OPENROUTER_URL", u.URL)
	u.MaxConcurrency = envInt("OPENROUTER_MAX_CONCURRENCY", u.MaxConcurrency)
	u.MaxRetries = envInt("OPENROUTER_MAX_RETRIES", u.MaxRetries)
	u.RetryBase = envSeconds("OPENROUTER_RETRY_BASE_SECONDS", u.RetryBase)
	u.Timeout = envSeconds("OPENROUTER_TIMEOUT_SECONDS", u.Timeout)
	u.AuthCooldown = envSeconds("OPENROUTER_AUTH_COOLDOWN_SECONDS", u.AuthCooldown)
	for mode, key := range map[Mode]string{
		ModeFast:     "OPENROUTER_TIMEOUT_SECONDS_FAST",
		ModeBalanced: "OPENROUTER_TIMEOUT_SECONDS_BALANCED",
		ModeDeep:     "OPENROUTER_TIMEOUT_SECONDS_DEEP",
	} {
		if d := envSeconds(key, 0); d > 0 {
			u.ModeTimeouts[mode] = d
		}
	}

	if ms := envCSV("COUNCIL_MODELS"); len(ms) > 0 {
		cfg.Council.Models = ms
	}
	cfg.Council.Chairman = envString("CHAIRMAN_MODEL", cfg.Council.Chairman)
	cfg.Council.TitleModel = envString("TITLE_MODEL", cfg.Council.TitleModel)

	applyRosterEnv(&cfg.Routing.Fast, "FAST")
	applyRosterEnv(&cfg.Routing.Balanced, "BALANCED")
	applyRosterEnv(&cfg.Routing.Deep, "DEEP")

	p := &cfg.Pipeline
	p.LeaderModel = envString("LEADER_MODEL", p.LeaderModel)
	p.ReviewerModel = envString("REVIEWER_MODEL", p.ReviewerModel)
	p.SecurityModel = envString("SECURITY_MODEL", p.SecurityModel)
	p.TestWriterModel = envString("TEST_WRITER_MODEL", p.TestWriterModel)
	p.ImplementerModel = envString("IMPLEMENTER_MODEL", p.ImplementerModel)
	p.GateModel = envString("GATE_MODEL", p.GateModel)

	cfg.Cache.Enabled = envBool("COUNCIL_CACHE_ENABLED", cfg.Cache.Enabled)
	cfg.Cache.TTL = envSeconds("COUNCIL_CACHE_TTL_SECONDS", cfg.Cache.TTL)

	l := &cfg.Limits
	l.MaxConcurrentCalls = envInt("MCP_MAX_CONCURRENT_CALLS", l.MaxConcurrentCalls)
	l.ToolTimeout = envSeconds("MCP_TOOL_TIMEOUT_SECONDS", l.ToolTimeout)
	l.HTTPMaxConcurrentToolCalls = envInt("HTTP_MAX_CONCURRENT_TOOL_CALLS", l.HTTPMaxConcurrentToolCalls)
	l.HTTPToolTimeout = envSeconds("HTTP_TOOL_TIMEOUT_SECONDS", l.HTTPToolTimeout)
	l.MaxPromptChars = envInt("MCP_MAX_PROMPT_CHARS", l.MaxPromptChars)
	l.MaxTaskChars = envInt("MCP_MAX_TASK_CHARS", l.MaxTaskChars)
	l.MaxRepoFiles = envInt("MCP_MAX_REPO_FILES", l.MaxRepoFiles)
	l.MaxRepoTotalChars = envInt("MCP_MAX_REPO_TOTAL_CHARS", l.MaxRepoTotalChars)
	l.MaxPathChars = envInt("MCP_MAX_PATH_CHARS", l.MaxPathChars)

	cfg.Pricing.Version = envString("PRICE_BOOK_VERSION", cfg.Pricing.Version)
	if raw := os.Getenv("MODEL_PRICING_JSON"); raw != "" {
		models, err := parsePricingJSON(raw)
		if err != nil {
			return err
		}
		if err := mergo.Merge(&cfg.Pricing.Models, models, mergo.WithOverride); err != nil {
			return fmt.Errorf("failed to merge pricing config: %w", err)
		}
	}

	return nil
}

func applyRosterEnv(roster *ModeRoster, suffix string) {
	if ms := envCSV("MCP_MODELS_" + suffix); len(ms) > 0 {
		roster.Models = ms
	}
	if js := envCSV("MCP_JUDGES_" + suffix); len(js) > 0 {
		roster.Judges = js
	}
	roster.Chair = envString("MCP_CHAIR_"+suffix, roster.Chair)
}

// validate performs sanity checks on loaded configuration.
func validate(cfg *Config) error {
	if !cfg.AllowNoAuth && cfg.APIKeyPepper == "" {
		return ErrMissingPepper
	}
	if len(cfg.Council.Models) == 0 {
		return fmt.Errorf("at least one council model is required")
	}
	if cfg.Council.Chairman == "" {
		return fmt.Errorf("chairman model is required")
	}
	if cfg.Upstream.MaxConcurrency < 1 {
		return fmt.Errorf("OPENROUTER_MAX_CONCURRENCY must be at least 1")
	}
	if cfg.Upstream.MaxRetries < 0 {
		return fmt.Errorf("OPENROUTER_MAX_RETRIES must not be negative")
	}
	return nil
}
