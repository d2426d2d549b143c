package config

import (
	"testing"

	"github.com/spf13/viper"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.Set("vocab", "testdata/vocab.txt")
	v.Set("corpus", "testdata/corpus.txt")
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxTokens != 128 {
		t.Errorf("MaxTokens = %d, want 128", cfg.MaxTokens)
	}
	if cfg.BatchSize != 32 {
		t.Errorf("BatchSize = %d, want 32", cfg.BatchSize)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Workers)
	}
	if !cfg.Lowercase {
		t.Error("expected default Lowercase=true")
	}
	if cfg.Verbosity != "standard" {
		t.Errorf("Verbosity = %q, want standard", cfg.Verbosity)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("MetricsAddr = %q, want :9090", cfg.MetricsAddr)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BERTPIECE_MAX_TOKENS", "64")
	cfg, err := Load(newViper())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxTokens != 64 {
		t.Errorf("MaxTokens = %d, want 64 from env", cfg.MaxTokens)
	}
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	t.Setenv("BERTPIECE_MAX_TOKENS", "64")
	v := newViper()
	v.Set("max-tokens", 16)
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxTokens != 16 {
		t.Errorf("MaxTokens = %d, want 16 from explicit set", cfg.MaxTokens)
	}
}

func TestLoadMissingVocabPath(t *testing.T) {
	v := viper.New()
	v.Set("corpus", "testdata/corpus.txt")
	if _, err := Load(v); err == nil {
		t.Fatal("expected error for missing vocab path")
	}
}

func TestValidateBadVerbosity(t *testing.T) {
	cfg := Config{VocabPath: "v", CorpusPath: "c", MaxTokens: 128, BatchSize: 1, Workers: 1, Verbosity: "loud"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid verbosity")
	}
}

func TestValidateBadMaxTokens(t *testing.T) {
	cfg := Config{VocabPath: "v", CorpusPath: "c", MaxTokens: 1, BatchSize: 1, Workers: 1, Verbosity: "standard"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for max-tokens < 2")
	}
}

func TestValidateValidConfig(t *testing.T) {
	cfg := Config{
		VocabPath: "v", CorpusPath: "c", MaxTokens: 128, BatchSize: 32,
		Workers: 4, Verbosity: "standard", MetricsAddr: ":9090",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
