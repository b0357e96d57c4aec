package progress

import (
	"testing"

	"github.com/sproutfi/sprout/internal/catalog"
)

func TestNewStartsEmpty(t *testing.T) {
	u := New()
	if u.XP != 0 || u.Coins != 0 {
		t.Errorf("fresh progress has xp=%d coins=%d, want zeros", u.XP, u.Coins)
	}
	if u.Level != 1 {
		t.Errorf("fresh progress level = %d, want 1", u.Level)
	}
	if u.Persona != nil {
		t.Error("fresh progress should have no persona")
	}
	if len(u.CompletedChallenges) != 0 {
		t.Error("fresh progress should have no completed challenges")
	}
	if u.DailyStreak != 0 || u.ChallengeStreak != 0 {
		t.Error("fresh progress streaks should be zero")
	}
}

func TestAddRewardExactAmounts(t *testing.T) {
	u := New()
	c := catalog.Challenge{ID: "c1", Title: "t", XPReward: 50, CoinReward: 10}

	u.AddReward(c)

	if u.XP != 50 || u.Coins != 10 {
		t.Errorf("got xp=%d coins=%d, want 50/10", u.XP, u.Coins)
	}
	if len(u.CompletedChallenges) != 1 {
		t.Fatalf("completed list has %d entries, want 1", len(u.CompletedChallenges))
	}
	if !u.CompletedChallenges[0].IsCompleted {
		t.Error("appended challenge should be marked completed")
	}
	if u.ChallengeStreak != 1 {
		t.Errorf("challenge streak = %d, want 1", u.ChallengeStreak)
	}
}

func TestAddRewardDoubleCounts(t *testing.T) {
	u := New()
	c := catalog.Challenge{ID: "c1", XPReward: 50, CoinReward: 10}

	u.AddReward(c)
	u.AddReward(c)

	if u.XP != 100 || u.Coins != 20 {
		t.Errorf("repeat completion got xp=%d coins=%d, want 100/20", u.XP, u.Coins)
	}
	if len(u.CompletedChallenges) != 2 {
		t.Errorf("repeat completion appended %d entries, want 2", len(u.CompletedChallenges))
	}
}

func TestSetPersonaIsImmutable(t *testing.T) {
	u := New()
	u.SetPersona(catalog.Persona{ID: 2, Name: "The Builder"})
	u.SetPersona(catalog.Persona{ID: 5, Name: "The Maverick"})

	if u.Persona == nil || u.Persona.ID != 2 {
		t.Errorf("persona should stay at first assignment, got %+v", u.Persona)
	}
}

func TestHasCompleted(t *testing.T) {
	u := New()
	if u.HasCompleted("c1") {
		t.Error("fresh progress should report nothing completed")
	}
	u.AddReward(catalog.Challenge{ID: "c1"})
	if !u.HasCompleted("c1") {
		t.Error("completed challenge not reported")
	}
}

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{149, 1},
		{150, 2},
		{299, 2},
		{300, 3},
		{-5, 1},
	}
	for _, tc := range cases {
		if got := LevelForXP(tc.xp); got != tc.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestLevelProgressFraction(t *testing.T) {
	if got := LevelProgress(0); got != 0 {
		t.Errorf("LevelProgress(0) = %v, want 0", got)
	}
	if got := LevelProgress(75); got != 0.5 {
		t.Errorf("LevelProgress(75) = %v, want 0.5", got)
	}
	if got := LevelProgress(150); got != 0 {
		t.Errorf("LevelProgress(150) = %v, want 0 (fresh level)", got)
	}
}
