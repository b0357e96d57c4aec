package flow

import (
	"github.com/sproutfi/sprout/internal/catalog"
	"github.com/sproutfi/sprout/internal/progress"
)

// State is the full journey state: which screen is showing, the quiz
// answers recorded so far, the progress aggregate, and the reward overlay
// flag. Transitions are value semantics — every operation takes a State
// and returns the next one, leaving the input untouched on error.
type State struct {
	Current       Screen
	QuizAnswers   []int
	QuestionIndex int
	User          progress.UserProgress
	ShowReward    bool
}

// NewState returns the initial journey state on the welcome screen.
func NewState() State {
	return State{
		Current: ScreenWelcome,
		User:    progress.New(),
	}
}

// start moves welcome → quiz. Any other origin is a scripted-path violation.
func start(s State) (State, error) {
	if s.Current != ScreenWelcome {
		return s, &InvalidTransitionError{From: s.Current, Op: "start"}
	}
	s.Current = ScreenQuiz
	s.QuestionIndex = 0
	return s, nil
}

// selectAnswer records an answer positionally: re-answering a question the
// user has already reached overwrites; answering the next fresh question
// appends. Skipping ahead is rejected so the answer list can never grow
// past the question count. After the final question the persona is
// assigned and the journey moves to the reveal.
func selectAnswer(s State, questions []catalog.QuizQuestion, personas []catalog.Persona, questionIndex, optionIndex int) (State, error) {
	if questionIndex < 0 || questionIndex >= len(questions) {
		return s, &OutOfRangeError{Index: questionIndex, Size: len(questions), What: "question"}
	}
	if questionIndex > len(s.QuizAnswers) {
		return s, &OutOfRangeError{Index: questionIndex, Size: len(s.QuizAnswers) + 1, What: "question"}
	}
	opts := questions[questionIndex].Options
	if optionIndex < 0 || optionIndex >= len(opts) {
		return s, &OutOfRangeError{Index: optionIndex, Size: len(opts), What: "option"}
	}

	answers := make([]int, len(s.QuizAnswers), len(s.QuizAnswers)+1)
	copy(answers, s.QuizAnswers)
	if questionIndex < len(answers) {
		answers[questionIndex] = optionIndex
	} else {
		answers = append(answers, optionIndex)
	}
	s.QuizAnswers = answers

	if questionIndex < len(questions)-1 {
		s.QuestionIndex = questionIndex + 1
		return s, nil
	}

	return assignPersona(s, personas)
}

// assignPersona looks up the persona catalog at the index of the last
// recorded answer. No answers, or an index outside the catalog, rejects
// with OutOfRangeError and no mutation — never a silent default.
func assignPersona(s State, personas []catalog.Persona) (State, error) {
	if len(s.QuizAnswers) == 0 {
		return s, &OutOfRangeError{Index: -1, Size: len(personas), What: "persona"}
	}
	idx := s.QuizAnswers[len(s.QuizAnswers)-1]
	if idx < 0 || idx >= len(personas) {
		return s, &OutOfRangeError{Index: idx, Size: len(personas), What: "persona"}
	}
	s.User.SetPersona(personas[idx])
	s.Current = ScreenPersonaReveal
	return s, nil
}

// completeChallenge applies the reward and raises the overlay flag.
// Total, and intentionally not idempotent.
func completeChallenge(s State, c catalog.Challenge) State {
	s.User.AddReward(c)
	s.ShowReward = true
	return s
}

// dismissReward clears the overlay and lands on the dashboard, whatever
// screen was showing.
func dismissReward(s State) State {
	s.ShowReward = false
	s.Current = ScreenDashboard
	return s
}

// navigate is the unconditional jump backing every back/close/open action.
func navigate(s State, target Screen) State {
	s.Current = target
	return s
}
