package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Port != 8080 || cfg.TotalRounds != 5 || cfg.ChoicesPerRound != 4 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.RevealDelay() != 2*time.Second || cfg.ShapeRevealDelay() != 1500*time.Millisecond || cfg.RetryDelay() != time.Second {
		t.Fatalf("unexpected delays %+v", cfg)
	}
	if cfg.StarRadius != 20 || cfg.OpenAISpeechVoice != "coral" || cfg.DatabaseURL != "" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadReadsEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOTAL_ROUNDS", "3")
	t.Setenv("RETRY_MS", "250")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := Load()
	if cfg.Port != 9090 || cfg.Addr() != ":9090" {
		t.Fatalf("unexpected port %d", cfg.Port)
	}
	if cfg.TotalRounds != 3 || cfg.RetryDelay() != 250*time.Millisecond {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Fatalf("expected api key, got %q", cfg.OpenAIAPIKey)
	}
}

func TestLoadFallsBackOnBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "not a number", key: "TOTAL_ROUNDS", value: "five"},
		{name: "zero", key: "TOTAL_ROUNDS", value: "0"},
		{name: "negative", key: "TOTAL_ROUNDS", value: "-2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if cfg := Load(); cfg.TotalRounds != 5 {
				t.Fatalf("expected fallback to 5, got %d", cfg.TotalRounds)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("missing file should be ignored: %v", err)
	}

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("PLAYROOM_DOTENV_TEST=from-file\nPLAYROOM_DOTENV_KEEP=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Setenv("PLAYROOM_DOTENV_KEEP", "from-env")
	t.Setenv("PLAYROOM_DOTENV_TEST", "")
	os.Unsetenv("PLAYROOM_DOTENV_TEST")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := os.Getenv("PLAYROOM_DOTENV_TEST"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if got := os.Getenv("PLAYROOM_DOTENV_KEEP"); got != "from-env" {
		t.Fatalf("existing env should win, got %q", got)
	}
}
