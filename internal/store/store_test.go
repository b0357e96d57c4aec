package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) (*Store, EventRepo) {
	t.Helper()
	s, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return s, repo
}

func TestOpenClose(t *testing.T) {
	s, _ := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestSequenceOrdersAcrossEventTypes(t *testing.T) {
	_, repo := openTestStore(t)
	ctx := context.Background()

	if err := repo.AppendSession(ctx, SessionEventData{SessionID: "s1", Action: "start"}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendQuizAnswer(ctx, QuizAnswerEventData{SessionID: "s1", QuestionIndex: 0, OptionIndex: 1}); err != nil {
		t.Fatalf("append quiz answer: %v", err)
	}
	if err := repo.AppendChallenge(ctx, ChallengeEventData{
		SessionID: "s1", ChallengeID: "c1", ChallengeTitle: "T", ChallengeType: "learning",
		XPAwarded: 50, CoinsAwarded: 10,
	}); err != nil {
		t.Fatalf("append challenge: %v", err)
	}

	recs, err := repo.QueryChallengeEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d challenge events, want 1", len(recs))
	}
	// The challenge event came third, after a session and a quiz event.
	if recs[0].Sequence < 3 {
		t.Errorf("challenge sequence = %d, want >= 3 (global across types)", recs[0].Sequence)
	}
}

func TestChallengeCounts(t *testing.T) {
	_, repo := openTestStore(t)
	ctx := context.Background()

	for i, typ := range []string{"learning", "learning", "action"} {
		err := repo.AppendChallenge(ctx, ChallengeEventData{
			SessionID: "s1", ChallengeID: "c", ChallengeTitle: "T", ChallengeType: typ,
			Repeat: i == 1,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byType, total, err := repo.ChallengeCounts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3 (repeats count)", total)
	}
	if byType["learning"] != 2 || byType["action"] != 1 {
		t.Errorf("byType = %v", byType)
	}
}

func TestSessionSummariesOnlyEnds(t *testing.T) {
	_, repo := openTestStore(t)
	ctx := context.Background()

	if err := repo.AppendSession(ctx, SessionEventData{SessionID: "s1", Action: "start"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendSession(ctx, SessionEventData{
		SessionID: "s1", Action: "end", Persona: "The Oracle", XP: 150, Coins: 30,
		ChallengesCompleted: 2, DurationSecs: 90,
	}); err != nil {
		t.Fatal(err)
	}

	sums, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(sums) != 1 {
		t.Fatalf("got %d summaries, want 1 (start events excluded)", len(sums))
	}
	got := sums[0]
	if got.Persona != "The Oracle" || got.XP != 150 || got.Coins != 30 || got.ChallengesCompleted != 2 {
		t.Errorf("summary = %+v", got)
	}
}

func TestResolveDSN(t *testing.T) {
	dsn, err := ResolveDSN("")
	if err != nil {
		t.Fatal(err)
	}
	if dsn != MemoryDSN {
		t.Errorf("default dsn = %q, want in-memory", dsn)
	}

	dsn, err = ResolveDSN(t.TempDir() + "/j/sprout.db")
	if err != nil {
		t.Fatal(err)
	}
	if dsn == MemoryDSN {
		t.Error("explicit path should not fall back to memory")
	}
}
