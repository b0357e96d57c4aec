package coach

import (
	"fmt"
	"strings"

	"github.com/sproutfi/sprout/internal/catalog"
)

const systemPrompt = `You are an investing-education coach inside a gamified
learning app. You explain one idea at a time in plain language for a complete
beginner. Stay educational: no predictions, no specific securities, no
personalized financial advice.`

// buildTipPrompt renders the user message for a challenge tip, optionally
// colored by the user's assigned persona.
func buildTipPrompt(c catalog.Challenge, p *catalog.Persona) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The learner is about to start this challenge:\n")
	fmt.Fprintf(&b, "Title: %s\n", c.Title)
	fmt.Fprintf(&b, "Description: %s\n", c.Description)
	fmt.Fprintf(&b, "Kind: %s (%s)\n", c.Type.DisplayName(), c.Duration)

	if p != nil {
		fmt.Fprintf(&b, "\nTheir investor persona is %q: %s\n", p.Name, p.Description)
		b.WriteString("Angle the tip toward that temperament without naming the persona.\n")
	}

	b.WriteString("\nGive one tip that makes the challenge feel worth doing.")
	return b.String()
}
