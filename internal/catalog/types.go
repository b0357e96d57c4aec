package catalog

// Persona is a static investor archetype assigned once per session
// from the quiz results.
type Persona struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Emoji           string `json:"emoji"`
	Description     string `json:"description"`
	Theme           string `json:"theme"`
	InvestmentRange string `json:"investment_range"`
}

// ChallengeType distinguishes read-and-learn tasks from do-something tasks.
type ChallengeType string

const (
	ChallengeLearning ChallengeType = "learning"
	ChallengeAction   ChallengeType = "action"
)

// DisplayName returns a human-readable label for the challenge type.
func (t ChallengeType) DisplayName() string {
	switch t {
	case ChallengeLearning:
		return "Learn"
	case ChallengeAction:
		return "Action"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the challenge type.
func (t ChallengeType) Icon() string {
	switch t {
	case ChallengeLearning:
		return "📖"
	case ChallengeAction:
		return "⚡"
	default:
		return "✦"
	}
}

// Challenge is a discrete learning or action task that grants XP and
// coin rewards when completed.
type Challenge struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        ChallengeType `json:"type"`
	Duration    string        `json:"duration"`
	XPReward    int           `json:"xp_reward"`
	CoinReward  int           `json:"coin_reward"`
	IsCompleted bool          `json:"is_completed"`
}

// QuizQuestion is a single quiz question with its ordered options.
// SelectedIndex is -1 until the user answers.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	SelectedIndex int      `json:"-"`
}
