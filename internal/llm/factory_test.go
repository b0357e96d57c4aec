package llm

import (
	"context"
	"testing"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SPROUT_LLM_PROVIDER", "")
	t.Setenv("SPROUT_ANTHROPIC_API_KEY", "")
	t.Setenv("SPROUT_OPENAI_API_KEY", "")
	t.Setenv("SPROUT_GEMINI_API_KEY", "")
}

func TestNewProviderFromEnvUnconfigured(t *testing.T) {
	clearProviderEnv(t)

	provider, err := NewProviderFromEnv(context.Background())
	if err != nil {
		t.Fatalf("unconfigured env must not error, got %v", err)
	}
	if provider != nil {
		t.Fatal("unconfigured env must yield a nil provider")
	}
}

func TestNewProviderFromEnvMock(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("SPROUT_LLM_PROVIDER", "mock")

	provider, err := NewProviderFromEnv(context.Background())
	if err != nil {
		t.Fatalf("mock provider: %v", err)
	}
	if provider == nil {
		t.Fatal("expected a provider for the mock backend")
	}
	if provider.ModelID() == "" {
		t.Error("provider reports no model ID")
	}
}

func TestNewProviderUnknown(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "carrier-pigeon"})
	if err == nil {
		t.Fatal("expected an error for an unknown provider")
	}
}
