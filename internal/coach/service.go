// Package coach turns an LLM provider into short, structured nudges for the
// challenge screens. The whole package is optional: when no provider is
// configured the app simply never shows a tip.
package coach

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sproutfi/sprout/internal/catalog"
	"github.com/sproutfi/sprout/internal/llm"
)

// Tip is one coach message shown alongside a challenge.
type Tip struct {
	Headline string `json:"headline"`
	Body     string `json:"body"`
}

// Service generates tips through a configured LLM provider.
type Service struct {
	provider llm.Provider
}

// NewService wires a coach around the given provider.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// NewServiceFromEnv builds a coach from environment configuration. It returns
// (nil, nil) when no provider is configured, which callers treat as "coach
// disabled" rather than an error.
func NewServiceFromEnv() (*Service, error) {
	provider, err := llm.NewProviderFromEnv(context.Background())
	if err != nil {
		return nil, fmt.Errorf("creating coach provider: %w", err)
	}
	if provider == nil {
		return nil, nil
	}
	return NewService(provider), nil
}

// TipForChallenge asks the provider for a single tip about the given
// challenge. A nil persona is fine; the prompt just skips the persona angle.
func (s *Service) TipForChallenge(ctx context.Context, c catalog.Challenge, p *catalog.Persona) (*Tip, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTipPrompt(c, p)},
		},
		Schema: TipSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("generating tip: %w", err)
	}

	var tip Tip
	if err := json.Unmarshal(resp.Content, &tip); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	if tip.Headline == "" || tip.Body == "" {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("empty tip fields")}
	}
	return &tip, nil
}
