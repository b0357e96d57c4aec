package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/*.json
var dataFS embed.FS

// Catalog holds the static content the app runs on: the persona archetypes,
// the quiz questions, and the challenge list.
type Catalog struct {
	Personas   []Persona
	Questions  []QuizQuestion
	Challenges []Challenge
}

// Load parses and validates the embedded catalogs.
func Load() (*Catalog, error) {
	c := &Catalog{}

	if err := loadFile("data/personas.json", personaSchema, &c.Personas); err != nil {
		return nil, err
	}
	if err := loadFile("data/quiz.json", quizSchema, &c.Questions); err != nil {
		return nil, err
	}
	if err := loadFile("data/challenges.json", challengeSchema, &c.Challenges); err != nil {
		return nil, err
	}

	for i := range c.Questions {
		c.Questions[i].SelectedIndex = -1
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate enforces cross-catalog invariants that JSON Schema can't express.
func (c *Catalog) validate() error {
	// Persona assignment indexes the persona catalog by the option chosen
	// on the final question, so those two ranges must line up exactly.
	last := c.Questions[len(c.Questions)-1]
	if len(last.Options) != len(c.Personas) {
		return fmt.Errorf("catalog: final question has %d options but there are %d personas",
			len(last.Options), len(c.Personas))
	}

	seen := make(map[string]bool, len(c.Challenges))
	for _, ch := range c.Challenges {
		if seen[ch.ID] {
			return fmt.Errorf("catalog: duplicate challenge id %q", ch.ID)
		}
		seen[ch.ID] = true
	}
	return nil
}

// PersonaAt returns the persona at the given catalog index.
func (c *Catalog) PersonaAt(index int) (Persona, bool) {
	if index < 0 || index >= len(c.Personas) {
		return Persona{}, false
	}
	return c.Personas[index], true
}

// ChallengeByID looks up a challenge by its stable id.
func (c *Catalog) ChallengeByID(id string) (Challenge, bool) {
	for _, ch := range c.Challenges {
		if ch.ID == id {
			return ch, true
		}
	}
	return Challenge{}, false
}

func loadFile(name string, schema map[string]any, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := validateAgainst(name, schema, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func validateAgainst(name string, schema map[string]any, raw []byte) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%s: invalid JSON: %w", name, err)
	}

	defBytes, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("marshal schema for %s: %w", name, err)
	}
	defParsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
	if err != nil {
		return fmt.Errorf("parse schema for %s: %w", name, err)
	}

	compiler := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s", name)
	if err := compiler.AddResource(url, defParsed); err != nil {
		return fmt.Errorf("add schema for %s: %w", name, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return fmt.Errorf("compile schema for %s: %w", name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("%s: schema validation failed: %w", name, err)
	}
	return nil
}
