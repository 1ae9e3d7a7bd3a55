package config

import (
	"testing"
	"time"
)

func TestLoadIncludesTrafficControlDefaults(t *testing.T) {
	t.Setenv("API_RATE_LIMIT_RPS", "")
	t.Setenv("API_RATE_LIMIT_BURST", "")
	t.Setenv("API_MAX_CONCURRENT", "")
	t.Setenv("API_MAX_CONNECTIONS", "")

	cfg := Load()
	if cfg.APIRateLimitRPS != 20 {
		t.Fatalf("expected default rate limit 20 rps, got %v", cfg.APIRateLimitRPS)
	}
	if cfg.APIRateLimitBurst != 40 {
		t.Fatalf("expected default burst 40, got %d", cfg.APIRateLimitBurst)
	}
	if cfg.APIMaxConcurrent != 32 {
		t.Fatalf("expected default max concurrent 32, got %d", cfg.APIMaxConcurrent)
	}
	if cfg.APIMaxConnections != 256 {
		t.Fatalf("expected default max connections 256, got %d", cfg.APIMaxConnections)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("API_RATE_LIMIT_RPS", "2.5")
	t.Setenv("RETRY_MAX_ATTEMPTS", "5")
	t.Setenv("RETRY_INITIAL_BACKOFF_MS", "250")
	t.Setenv("BREAKER_ENABLED", "false")
	t.Setenv("RULES_PATH", "/etc/cta/rules.yaml")

	cfg := Load()
	if cfg.APIRateLimitRPS != 2.5 {
		t.Fatalf("expected rate limit override 2.5, got %v", cfg.APIRateLimitRPS)
	}
	if cfg.RetryMaxAttempts != 5 {
		t.Fatalf("expected retry attempts 5, got %d", cfg.RetryMaxAttempts)
	}
	if cfg.RetryInitialBackoff != 250*time.Millisecond {
		t.Fatalf("expected initial backoff 250ms, got %v", cfg.RetryInitialBackoff)
	}
	if cfg.BreakerEnabled {
		t.Fatalf("expected breaker disabled")
	}
	if cfg.RulesPath != "/etc/cta/rules.yaml" {
		t.Fatalf("expected rules path override, got %q", cfg.RulesPath)
	}
}

func TestLoadFallsBackOnMalformedNumbers(t *testing.T) {
	t.Setenv("API_RATE_LIMIT_RPS", "not-a-number")
	t.Setenv("API_RATE_LIMIT_BURST", "also-bad")

	cfg := Load()
	if cfg.APIRateLimitRPS != 20 {
		t.Fatalf("expected fallback rate limit 20, got %v", cfg.APIRateLimitRPS)
	}
	if cfg.APIRateLimitBurst != 40 {
		t.Fatalf("expected fallback burst 40, got %d", cfg.APIRateLimitBurst)
	}
}
