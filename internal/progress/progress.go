package progress

import "github.com/sproutfi/sprout/internal/catalog"

// XPPerLevel is the XP span of a single level.
const XPPerLevel = 150

// UserProgress is the session-scoped progress aggregate. It starts empty
// and only ever grows: XP and coins never decrease, the completed list is
// append-only, and the persona is immutable once set.
type UserProgress struct {
	Persona             *catalog.Persona
	XP                  int
	Coins               int
	Level               int
	DailyStreak         int
	ChallengeStreak     int
	CompletedChallenges []catalog.Challenge
}

// New returns a fresh UserProgress at level 1 with everything at zero.
func New() UserProgress {
	return UserProgress{Level: 1}
}

// AddReward applies a challenge reward: XP and coins go up by exactly the
// challenge amounts, the challenge is appended, and the challenge streak
// advances. Deliberately not idempotent — completing the same challenge
// twice counts twice.
func (u *UserProgress) AddReward(c catalog.Challenge) {
	u.XP += c.XPReward
	u.Coins += c.CoinReward
	u.ChallengeStreak++
	c.IsCompleted = true
	u.CompletedChallenges = append(u.CompletedChallenges, c)
	u.Level = LevelForXP(u.XP)
}

// SetPersona records the quiz outcome. The first assignment wins; later
// calls are ignored so the persona stays fixed for the session.
func (u *UserProgress) SetPersona(p catalog.Persona) {
	if u.Persona != nil {
		return
	}
	u.Persona = &p
}

// HasCompleted reports whether a challenge id appears in the completed list.
func (u *UserProgress) HasCompleted(id string) bool {
	for _, c := range u.CompletedChallenges {
		if c.ID == id {
			return true
		}
	}
	return false
}

// LevelForXP maps total XP onto a level, starting at 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return 1 + xp/XPPerLevel
}

// LevelProgress returns how far into the current level the XP total is,
// as a fraction in [0, 1).
func LevelProgress(xp int) float64 {
	if xp < 0 {
		return 0
	}
	return float64(xp%XPPerLevel) / float64(XPPerLevel)
}
