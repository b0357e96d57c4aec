package flow

import (
	"github.com/sproutfi/sprout/internal/catalog"
)

// Store owns the journey state for one session. All mutation goes through
// the pure transition functions in state.go; the Store just holds the
// current value and the catalogs the transitions need. Single UI goroutine,
// no locking.
type Store struct {
	catalog *catalog.Catalog
	state   State
}

// NewStore creates a Store at the welcome screen.
func NewStore(cat *catalog.Catalog) *Store {
	return &Store{
		catalog: cat,
		state:   NewState(),
	}
}

// State returns a snapshot of the current journey state.
func (st *Store) State() State {
	return st.state
}

// Catalog returns the content catalog the journey runs on.
func (st *Store) Catalog() *catalog.Catalog {
	return st.catalog
}

// Start begins the quiz from the welcome screen.
func (st *Store) Start() error {
	next, err := start(st.state)
	if err != nil {
		return err
	}
	st.state = next
	return nil
}

// SelectAnswer records an answer for the given question. It reports
// whether the quiz finished (persona assigned, journey on the reveal).
func (st *Store) SelectAnswer(questionIndex, optionIndex int) (bool, error) {
	next, err := selectAnswer(st.state, st.catalog.Questions, st.catalog.Personas, questionIndex, optionIndex)
	if err != nil {
		return false, err
	}
	st.state = next
	return next.Current == ScreenPersonaReveal, nil
}

// AssignPersona resolves the persona from the last recorded answer.
// Exposed for callers that drive the quiz themselves; SelectAnswer invokes
// it automatically on the final question.
func (st *Store) AssignPersona() (catalog.Persona, error) {
	next, err := assignPersona(st.state, st.catalog.Personas)
	if err != nil {
		return catalog.Persona{}, err
	}
	st.state = next
	return *next.User.Persona, nil
}

// CompleteChallenge applies the challenge reward and raises the overlay.
func (st *Store) CompleteChallenge(c catalog.Challenge) {
	st.state = completeChallenge(st.state, c)
}

// DismissReward clears the overlay and returns to the dashboard.
func (st *Store) DismissReward() {
	st.state = dismissReward(st.state)
}

// Navigate jumps to the target screen unconditionally.
func (st *Store) Navigate(target Screen) {
	st.state = navigate(st.state, target)
}

// CurrentQuestion returns the question the quiz is waiting on, with the
// already-recorded selection filled in (-1 when unanswered).
func (st *Store) CurrentQuestion() catalog.QuizQuestion {
	q := st.catalog.Questions[st.state.QuestionIndex]
	if st.state.QuestionIndex < len(st.state.QuizAnswers) {
		q.SelectedIndex = st.state.QuizAnswers[st.state.QuestionIndex]
	}
	return q
}
