package coach

import "testing"

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("EXPLAINLY_COACH_PROVIDER", "openai")
	t.Setenv("EXPLAINLY_OPENAI_API_KEY", "sk-test")
	t.Setenv("EXPLAINLY_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai config = %+v", cfg.OpenAI)
	}
	// Untouched sections keep their defaults.
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("anthropic model = %q", cfg.Anthropic.Model)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, false},
		{"anthropic missing key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"anthropic with key", func(c *Config) {
			c.Provider = "anthropic"
			c.Anthropic.APIKey = "k"
		}, false},
		{"openrouter missing key", func(c *Config) { c.Provider = "openrouter" }, true},
		{"unknown provider", func(c *Config) { c.Provider = "llama-local" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("OPENAI_API_KEY", "o")
	t.Setenv("ANTHROPIC_API_KEY", "a")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g" {
		t.Errorf("expected gemini first, got %q", cfg.Provider)
	}
}

func TestDiscoverConfig_NoneSet(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}
