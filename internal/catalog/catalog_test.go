package catalog

import "testing"

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(c.Personas) != 5 {
		t.Errorf("expected 5 personas, got %d", len(c.Personas))
	}
	if len(c.Questions) != 4 {
		t.Errorf("expected 4 questions, got %d", len(c.Questions))
	}
	if len(c.Challenges) == 0 {
		t.Error("expected a non-empty challenge catalog")
	}
}

func TestPersonaIDsMatchPosition(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, p := range c.Personas {
		if p.ID != i+1 {
			t.Errorf("persona at index %d has id %d, want %d", i, p.ID, i+1)
		}
	}
}

func TestOracleAtIndexThree(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p, ok := c.PersonaAt(3)
	if !ok {
		t.Fatal("expected a persona at index 3")
	}
	if p.Name != "The Oracle" || p.ID != 4 {
		t.Errorf("index 3 = %q (id %d), want The Oracle (id 4)", p.Name, p.ID)
	}
}

func TestFinalQuestionCoversAllPersonas(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	last := c.Questions[len(c.Questions)-1]
	if len(last.Options) != len(c.Personas) {
		t.Errorf("final question has %d options, personas %d", len(last.Options), len(c.Personas))
	}
}

func TestPersonaAtOutOfRange(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := c.PersonaAt(-1); ok {
		t.Error("PersonaAt(-1) should not resolve")
	}
	if _, ok := c.PersonaAt(len(c.Personas)); ok {
		t.Error("PersonaAt(len) should not resolve")
	}
}

func TestQuestionsStartUnanswered(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, q := range c.Questions {
		if q.SelectedIndex != -1 {
			t.Errorf("question %d starts with SelectedIndex %d, want -1", i, q.SelectedIndex)
		}
	}
}

func TestChallengeByID(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ch, ok := c.ChallengeByID("compound-interest-101")
	if !ok {
		t.Fatal("known challenge id not found")
	}
	if ch.XPReward <= 0 || ch.CoinReward <= 0 {
		t.Errorf("challenge rewards should be positive, got xp=%d coins=%d", ch.XPReward, ch.CoinReward)
	}
	if ch.IsCompleted {
		t.Error("catalog challenges must start incomplete")
	}
	if _, ok := c.ChallengeByID("nope"); ok {
		t.Error("unknown id should not resolve")
	}
}
