package flow

import (
	"errors"
	"testing"

	"github.com/sproutfi/sprout/internal/catalog"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return NewStore(cat)
}

func TestStartMovesWelcomeToQuiz(t *testing.T) {
	st := testStore(t)

	if st.State().Current != ScreenWelcome {
		t.Fatalf("journey starts on %s, want welcome", st.State().Current)
	}
	if err := st.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s := st.State()
	if s.Current != ScreenQuiz {
		t.Errorf("after Start on %s, want quiz", s.Current)
	}
	if s.QuestionIndex != 0 {
		t.Errorf("after Start questionIndex = %d, want 0", s.QuestionIndex)
	}
	if s.User.XP != 0 || s.User.Coins != 0 || len(s.QuizAnswers) != 0 {
		t.Error("Start must have no side effects beyond the screen change")
	}
}

func TestStartOffWelcomeIsInvalid(t *testing.T) {
	st := testStore(t)
	st.Navigate(ScreenDashboard)

	err := st.Start()
	var ite *InvalidTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("Start from dashboard returned %v, want InvalidTransitionError", err)
	}
	if st.State().Current != ScreenDashboard {
		t.Error("failed Start must not move the journey")
	}
}

func TestSelectAnswerAdvances(t *testing.T) {
	st := testStore(t)
	if err := st.Start(); err != nil {
		t.Fatal(err)
	}

	done, err := st.SelectAnswer(0, 1)
	if err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	if done {
		t.Error("first answer should not finish the quiz")
	}
	s := st.State()
	if s.QuestionIndex != 1 {
		t.Errorf("questionIndex = %d, want 1", s.QuestionIndex)
	}
	if len(s.QuizAnswers) != 1 || s.QuizAnswers[0] != 1 {
		t.Errorf("answers = %v, want [1]", s.QuizAnswers)
	}
}

func TestSelectAnswerOverwrites(t *testing.T) {
	st := testStore(t)
	if err := st.Start(); err != nil {
		t.Fatal(err)
	}

	if _, err := st.SelectAnswer(0, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := st.SelectAnswer(0, 2); err != nil {
		t.Fatal(err)
	}

	s := st.State()
	if len(s.QuizAnswers) != 1 {
		t.Fatalf("re-answering duplicated: answers = %v", s.QuizAnswers)
	}
	if s.QuizAnswers[0] != 2 {
		t.Errorf("answers[0] = %d, want the overwrite 2", s.QuizAnswers[0])
	}
}

func TestAnswersNeverExceedQuestionCount(t *testing.T) {
	st := testStore(t)
	if err := st.Start(); err != nil {
		t.Fatal(err)
	}

	// Answer everything, then re-answer positions repeatedly.
	answers := []int{1, 2, 0, 3}
	for i, a := range answers {
		if _, err := st.SelectAnswer(i, a); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}
	for i := 0; i < len(answers); i++ {
		if _, err := st.SelectAnswer(i, 0); err != nil {
			t.Fatalf("re-answer %d: %v", i, err)
		}
	}

	if n := len(st.State().QuizAnswers); n > len(st.Catalog().Questions) {
		t.Errorf("answers grew to %d, max is %d", n, len(st.Catalog().Questions))
	}
}

func TestSelectAnswerRejectsSkippingAhead(t *testing.T) {
	st := testStore(t)
	if err := st.Start(); err != nil {
		t.Fatal(err)
	}

	_, err := st.SelectAnswer(2, 0)
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("skipping ahead returned %v, want OutOfRangeError", err)
	}
}

func TestFullScenarioLandsOnTheOracle(t *testing.T) {
	st := testStore(t)
	if err := st.Start(); err != nil {
		t.Fatal(err)
	}
	if got := st.State().Current; got != ScreenQuiz {
		t.Fatalf("screen = %s, want quiz", got)
	}

	steps := []struct{ q, opt int }{{0, 1}, {1, 2}, {2, 0}, {3, 3}}
	var done bool
	var err error
	for _, step := range steps {
		done, err = st.SelectAnswer(step.q, step.opt)
		if err != nil {
			t.Fatalf("SelectAnswer(%d,%d): %v", step.q, step.opt, err)
		}
	}
	if !done {
		t.Fatal("fourth answer should finish the quiz")
	}

	s := st.State()
	if s.Current != ScreenPersonaReveal {
		t.Errorf("screen = %s, want personaReveal", s.Current)
	}
	if s.User.Persona == nil {
		t.Fatal("persona not assigned")
	}
	if s.User.Persona.ID != 4 {
		t.Errorf("persona id = %d, want 4 (The Oracle)", s.User.Persona.ID)
	}
	if s.User.Persona.Name != "The Oracle" {
		t.Errorf("persona = %q, want The Oracle", s.User.Persona.Name)
	}
}

func TestPersonaMatchesLastAnswerForAllOptions(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatal(err)
	}
	lastQ := len(cat.Questions) - 1

	for opt := range cat.Questions[lastQ].Options {
		st := NewStore(cat)
		if err := st.Start(); err != nil {
			t.Fatal(err)
		}
		for q := 0; q < lastQ; q++ {
			if _, err := st.SelectAnswer(q, 0); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := st.SelectAnswer(lastQ, opt); err != nil {
			t.Fatal(err)
		}

		got := st.State().User.Persona
		if got == nil {
			t.Fatalf("option %d: no persona", opt)
		}
		if got.ID != cat.Personas[opt].ID {
			t.Errorf("option %d: persona id %d, want %d", opt, got.ID, cat.Personas[opt].ID)
		}
	}
}

func TestAssignPersonaWithNoAnswers(t *testing.T) {
	st := testStore(t)

	_, err := st.AssignPersona()
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("AssignPersona with no answers returned %v, want OutOfRangeError", err)
	}
	s := st.State()
	if s.User.Persona != nil {
		t.Error("failed assignment must not set a persona")
	}
	if s.Current != ScreenWelcome {
		t.Error("failed assignment must not move the journey")
	}
}

func TestCompleteChallengeRewards(t *testing.T) {
	st := testStore(t)
	c := catalog.Challenge{ID: "c", Title: "T", XPReward: 50, CoinReward: 10}

	st.CompleteChallenge(c)

	s := st.State()
	if s.User.XP != 50 || s.User.Coins != 10 {
		t.Errorf("xp=%d coins=%d, want 50/10", s.User.XP, s.User.Coins)
	}
	if len(s.User.CompletedChallenges) != 1 {
		t.Errorf("completed = %d, want 1", len(s.User.CompletedChallenges))
	}
	if !s.ShowReward {
		t.Error("overlay flag not raised")
	}
}

func TestCompleteChallengeTwiceDoubleCounts(t *testing.T) {
	st := testStore(t)
	c := catalog.Challenge{ID: "c", XPReward: 50, CoinReward: 10}

	st.CompleteChallenge(c)
	st.CompleteChallenge(c)

	s := st.State()
	if s.User.XP != 100 || s.User.Coins != 20 {
		t.Errorf("xp=%d coins=%d after double completion, want 100/20", s.User.XP, s.User.Coins)
	}
	if len(s.User.CompletedChallenges) != 2 {
		t.Errorf("completed = %d, want 2 (not idempotent)", len(s.User.CompletedChallenges))
	}
}

func TestDismissRewardFromEveryScreen(t *testing.T) {
	for _, from := range AllScreens() {
		st := testStore(t)
		st.CompleteChallenge(catalog.Challenge{ID: "c", XPReward: 1})
		st.Navigate(from)

		st.DismissReward()

		s := st.State()
		if s.ShowReward {
			t.Errorf("from %s: overlay still raised", from)
		}
		if s.Current != ScreenDashboard {
			t.Errorf("from %s: landed on %s, want dashboard", from, s.Current)
		}
	}
}

func TestNavigateIsUnconditional(t *testing.T) {
	st := testStore(t)
	for _, target := range AllScreens() {
		st.Navigate(target)
		if st.State().Current != target {
			t.Errorf("Navigate(%s) landed on %s", target, st.State().Current)
		}
	}
}

func TestXPAndCoinsAreMonotonic(t *testing.T) {
	st := testStore(t)
	prevXP, prevCoins := 0, 0
	for _, c := range st.Catalog().Challenges {
		st.CompleteChallenge(c)
		s := st.State()
		if s.User.XP < prevXP || s.User.Coins < prevCoins {
			t.Fatalf("counters decreased: xp %d→%d coins %d→%d", prevXP, s.User.XP, prevCoins, s.User.Coins)
		}
		prevXP, prevCoins = s.User.XP, s.User.Coins
	}
}

func TestCurrentQuestionCarriesSelection(t *testing.T) {
	st := testStore(t)
	if err := st.Start(); err != nil {
		t.Fatal(err)
	}

	if q := st.CurrentQuestion(); q.SelectedIndex != -1 {
		t.Errorf("unanswered question SelectedIndex = %d, want -1", q.SelectedIndex)
	}

	if _, err := st.SelectAnswer(0, 2); err != nil {
		t.Fatal(err)
	}
	// Back on question 0 the previous choice shows through.
	st.state.QuestionIndex = 0
	if q := st.CurrentQuestion(); q.SelectedIndex != 2 {
		t.Errorf("re-visited question SelectedIndex = %d, want 2", q.SelectedIndex)
	}
}
