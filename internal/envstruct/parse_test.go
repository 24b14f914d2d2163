package envstruct_test

import (
	"errors"
	"testing"

	"github.com/claude/fitcoach/internal/envstruct"
)

func lookupFromMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestPopulate(t *testing.T) {
	type config struct {
		Addr      string  `env:"TEST_ADDR" envDefault:"localhost:0"`
		APIKey    string  `env:"TEST_API_KEY" envDefault:""`
		Timeout   int     `env:"TEST_TIMEOUT" envDefault:"5"`
		Verbose   bool    `env:"TEST_VERBOSE" envDefault:"false"`
		Threshold float64 `env:"TEST_THRESHOLD" envDefault:"0.5"`
		Untagged  string
	}

	t.Run("defaults apply when environment is empty", func(t *testing.T) {
		var cfg config
		if err := envstruct.Populate(&cfg, lookupFromMap(nil)); err != nil {
			t.Fatalf("Populate: %v", err)
		}
		if cfg.Addr != "localhost:0" {
			t.Errorf("Addr = %q, want %q", cfg.Addr, "localhost:0")
		}
		if cfg.Timeout != 5 {
			t.Errorf("Timeout = %d, want 5", cfg.Timeout)
		}
		if cfg.Verbose {
			t.Error("Verbose = true, want false")
		}
		if cfg.Threshold != 0.5 {
			t.Errorf("Threshold = %v, want 0.5", cfg.Threshold)
		}
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		var cfg config
		env := map[string]string{
			"TEST_ADDR":      "0.0.0.0:8080",
			"TEST_TIMEOUT":   "30",
			"TEST_VERBOSE":   "true",
			"TEST_THRESHOLD": "1.25",
		}
		if err := envstruct.Populate(&cfg, lookupFromMap(env)); err != nil {
			t.Fatalf("Populate: %v", err)
		}
		if cfg.Addr != "0.0.0.0:8080" {
			t.Errorf("Addr = %q, want %q", cfg.Addr, "0.0.0.0:8080")
		}
		if cfg.Timeout != 30 {
			t.Errorf("Timeout = %d, want 30", cfg.Timeout)
		}
		if !cfg.Verbose {
			t.Error("Verbose = false, want true")
		}
		if cfg.Threshold != 1.25 {
			t.Errorf("Threshold = %v, want 1.25", cfg.Threshold)
		}
	})

	t.Run("missing variable without default", func(t *testing.T) {
		type strictConfig struct {
			Required string `env:"TEST_REQUIRED"`
		}
		var cfg strictConfig
		err := envstruct.Populate(&cfg, lookupFromMap(nil))
		if !errors.Is(err, envstruct.ErrEnvNotSet) {
			t.Errorf("Populate error = %v, want ErrEnvNotSet", err)
		}
	})

	t.Run("malformed int", func(t *testing.T) {
		var cfg config
		env := map[string]string{"TEST_TIMEOUT": "not-a-number"}
		if err := envstruct.Populate(&cfg, lookupFromMap(env)); err == nil {
			t.Error("Populate: expected error for malformed int, got nil")
		}
	})

	t.Run("non-pointer argument", func(t *testing.T) {
		var cfg config
		if err := envstruct.Populate(cfg, lookupFromMap(nil)); err == nil {
			t.Error("Populate: expected error for non-pointer argument, got nil")
		}
	})
}
