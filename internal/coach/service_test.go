package coach

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sproutfi/sprout/internal/catalog"
	"github.com/sproutfi/sprout/internal/llm"
)

var testChallenge = catalog.Challenge{
	ID:          "compound-interest-101",
	Title:       "Compound Interest 101",
	Description: "Learn how money grows on itself over time",
	Type:        catalog.ChallengeLearning,
	Duration:    "5 min",
	XPReward:    50,
	CoinReward:  10,
}

func TestTipForChallenge(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"headline":"Money that earns money","body":"Interest on interest is the whole trick."}`),
	})
	svc := NewService(mock)

	tip, err := svc.TipForChallenge(context.Background(), testChallenge, nil)
	if err != nil {
		t.Fatalf("TipForChallenge: %v", err)
	}
	if tip.Headline != "Money that earns money" {
		t.Errorf("headline = %q", tip.Headline)
	}
	if tip.Body == "" {
		t.Error("empty body")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "coach-tip" {
		t.Errorf("request schema = %+v, want coach-tip", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, testChallenge.Title) {
		t.Error("prompt missing challenge title")
	}
}

func TestTipForChallengePersonaAngle(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"headline":"h","body":"b"}`),
	})
	svc := NewService(mock)

	persona := &catalog.Persona{ID: 4, Name: "The Oracle", Description: "Patient and analytical"}
	if _, err := svc.TipForChallenge(context.Background(), testChallenge, persona); err != nil {
		t.Fatalf("TipForChallenge: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "The Oracle") {
		t.Error("prompt missing persona name")
	}
}

func TestTipForChallengeInvalidJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	svc := NewService(mock)

	_, err := svc.TipForChallenge(context.Background(), testChallenge, nil)
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestTipForChallengeEmptyFields(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"headline":"","body":""}`),
	})
	svc := NewService(mock)

	_, err := svc.TipForChallenge(context.Background(), testChallenge, nil)
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestTipForChallengeProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock)

	if _, err := svc.TipForChallenge(context.Background(), testChallenge, nil); err == nil {
		t.Fatal("expected error from provider")
	}
}

func TestNewServiceFromEnvUnconfigured(t *testing.T) {
	t.Setenv("SPROUT_LLM_PROVIDER", "anthropic")
	t.Setenv("SPROUT_ANTHROPIC_API_KEY", "")

	svc, err := NewServiceFromEnv()
	if err != nil {
		t.Fatalf("NewServiceFromEnv: %v", err)
	}
	if svc != nil {
		t.Fatal("expected nil service when no key configured")
	}
}

func TestNewServiceFromEnvConfigured(t *testing.T) {
	t.Setenv("SPROUT_LLM_PROVIDER", "mock")

	svc, err := NewServiceFromEnv()
	if err != nil {
		t.Fatalf("NewServiceFromEnv: %v", err)
	}
	if svc == nil {
		t.Fatal("expected a service for a configured provider")
	}
}
