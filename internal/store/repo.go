package store

import (
	"context"
	"time"

	"github.com/sproutfi/sprout/ent"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// QuizAnswerEventData is the payload for a recorded quiz answer.
type QuizAnswerEventData struct {
	SessionID     string
	QuestionIndex int
	OptionIndex   int
	Overwrite     bool
}

// ChallengeEventData is the payload for a challenge completion.
type ChallengeEventData struct {
	SessionID      string
	ChallengeID    string
	ChallengeTitle string
	ChallengeType  string
	XPAwarded      int
	CoinsAwarded   int
	Repeat         bool
}

// SessionEventData is the payload for session start/end.
type SessionEventData struct {
	SessionID           string
	Action              string // "start" or "end"
	Persona             string
	XP                  int
	Coins               int
	ChallengesCompleted int
	DurationSecs        int
}

// ChallengeEventRecord is a queried challenge completion.
type ChallengeEventRecord struct {
	SessionID      string
	ChallengeID    string
	ChallengeTitle string
	ChallengeType  string
	XPAwarded      int
	CoinsAwarded   int
	Repeat         bool
	Sequence       int64
	Timestamp      time.Time
}

// SessionSummaryRecord aggregates one finished session for the stats view.
type SessionSummaryRecord struct {
	SessionID           string
	Timestamp           time.Time
	Persona             string
	XP                  int
	Coins               int
	ChallengesCompleted int
	DurationSecs        int
}

// EventRepo provides append and query access to the session journal.
type EventRepo interface {
	// AppendQuizAnswer records an answer selection.
	AppendQuizAnswer(ctx context.Context, data QuizAnswerEventData) error

	// AppendChallenge records a challenge completion.
	AppendChallenge(ctx context.Context, data ChallengeEventData) error

	// AppendSession records a session start or end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// QueryChallengeEvents returns challenge completions, newest first.
	QueryChallengeEvents(ctx context.Context, opts QueryOpts) ([]ChallengeEventRecord, error)

	// QuerySessionSummaries returns finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// ChallengeCounts returns completion counts by challenge type and the total.
	ChallengeCounts(ctx context.Context) (map[string]int, int, error)
}

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ EventRepo = (*eventRepo)(nil)
