package flow

// Screen enumerates the journey's screens. The forward path is scripted
// (welcome → quiz → personaReveal → dashboard); everything after the reveal
// is freely navigable in any direction.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenQuiz
	ScreenPersonaReveal
	ScreenDashboard
	ScreenChallengePath
	ScreenChallengeDetail
	ScreenPaywall
	ScreenLeaderboard
)

// String returns the screen name used in errors and event records.
func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenQuiz:
		return "quiz"
	case ScreenPersonaReveal:
		return "personaReveal"
	case ScreenDashboard:
		return "dashboard"
	case ScreenChallengePath:
		return "challengePath"
	case ScreenChallengeDetail:
		return "challengeDetail"
	case ScreenPaywall:
		return "paywall"
	case ScreenLeaderboard:
		return "leaderboard"
	default:
		return "unknown"
	}
}

// AllScreens returns every screen value, in journey order.
func AllScreens() []Screen {
	return []Screen{
		ScreenWelcome,
		ScreenQuiz,
		ScreenPersonaReveal,
		ScreenDashboard,
		ScreenChallengePath,
		ScreenChallengeDetail,
		ScreenPaywall,
		ScreenLeaderboard,
	}
}
