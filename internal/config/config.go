// Package config loads the bertpiece-bench harness configuration from
// flags, environment variables (BERTPIECE_ prefix) and defaults, layered
// through viper.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the benchmarking harness configuration.
type Config struct {
	VocabPath   string
	CorpusPath  string
	MaxTokens   int
	PadTo       int
	BatchSize   int
	Workers     int
	Lowercase   bool
	Verbosity   string // "quiet", "standard", "verbose"
	MetricsAddr string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("max-tokens", 128)
	v.SetDefault("pad-to", 0)
	v.SetDefault("batch-size", 32)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("lowercase", true)
	v.SetDefault("verbosity", "standard")
	v.SetDefault("metrics-addr", ":9090")
}

// Load builds a Config from v, which the caller has already bound to cobra
// flags. Environment variables under the BERTPIECE_ prefix (e.g.
// BERTPIECE_MAX_TOKENS) override defaults; bound flags override both.
func Load(v *viper.Viper) (Config, error) {
	setDefaults(v)
	v.SetEnvPrefix("bertpiece")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := Config{
		VocabPath:   v.GetString("vocab"),
		CorpusPath:  v.GetString("corpus"),
		MaxTokens:   v.GetInt("max-tokens"),
		PadTo:       v.GetInt("pad-to"),
		BatchSize:   v.GetInt("batch-size"),
		Workers:     v.GetInt("workers"),
		Lowercase:   v.GetBool("lowercase"),
		Verbosity:   v.GetString("verbosity"),
		MetricsAddr: v.GetString("metrics-addr"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that cfg is complete and internally consistent. It
// returns the first problem found.
func (c Config) Validate() error {
	if c.VocabPath == "" {
		return fmt.Errorf("config: vocab path is required")
	}
	if c.CorpusPath == "" {
		return fmt.Errorf("config: corpus path is required")
	}
	if c.MaxTokens < 2 {
		return fmt.Errorf("config: max-tokens must be >= 2, got %d", c.MaxTokens)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("config: batch-size must be >= 1, got %d", c.BatchSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be >= 1, got %d", c.Workers)
	}
	switch c.Verbosity {
	case "quiet", "standard", "verbose":
	default:
		return fmt.Errorf("config: verbosity %q is invalid; expected quiet|standard|verbose", c.Verbosity)
	}
	return nil
}
