package main

import (
	"testing"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "tape")
	if code := run(); code != 1 {
		t.Fatalf("expected exit code 1 for invalid config, got %d", code)
	}
}
