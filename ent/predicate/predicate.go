// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChallengeEvent is the predicate function for challengeevent builders.
type ChallengeEvent func(*sql.Selector)

// QuizAnswerEvent is the predicate function for quizanswerevent builders.
type QuizAnswerEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
