package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	Reset()
	defer Reset()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.AI.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Default model = %q, want gemini-2.5-flash", cfg.AI.Gemini.Model)
	}
	if cfg.Generate.DefaultPlatform != "Instagram" {
		t.Errorf("Default platform = %q, want Instagram", cfg.Generate.DefaultPlatform)
	}
	if cfg.Generate.DefaultCategory != "Business" {
		t.Errorf("Default category = %q, want Business", cfg.Generate.DefaultCategory)
	}
	if cfg.Generate.DefaultCount != 10 {
		t.Errorf("Default count = %d, want 10", cfg.Generate.DefaultCount)
	}
}

func TestLoad_EnvKeyBinding(t *testing.T) {
	Reset()
	defer Reset()

	for _, key := range []string{"GEMINI_API_KEY", "GOOGLE_GEMINI_API_KEY", "GOOGLE_AI_API_KEY"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
	t.Setenv("GOOGLE_GEMINI_API_KEY", "alt-env-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AI.Gemini.APIKey != "alt-env-key" {
		t.Errorf("API key = %q, want value from GOOGLE_GEMINI_API_KEY", cfg.AI.Gemini.APIKey)
	}
}

func TestLoad_MissingKeyIsNotFatal(t *testing.T) {
	Reset()
	defer Reset()

	for _, key := range []string{"GEMINI_API_KEY", "GOOGLE_GEMINI_API_KEY", "GOOGLE_AI_API_KEY"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load must tolerate a missing API key (catalog commands need no credentials): %v", err)
	}
	if cfg.AI.Gemini.APIKey != "" {
		t.Errorf("Expected empty API key, got %q", cfg.AI.Gemini.APIKey)
	}
}

func TestGet_ReturnsSameInstance(t *testing.T) {
	Reset()
	defer Reset()
	t.Setenv("GEMINI_API_KEY", "test-key")

	first := Get()
	second := Get()
	if first != second {
		t.Error("Get should return the same config instance")
	}
}
