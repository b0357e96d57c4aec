// Code generated by ent, DO NOT EDIT.

package challengeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the challengeevent type in the database.
	Label = "challenge_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldChallengeID holds the string denoting the challenge_id field in the database.
	FieldChallengeID = "challenge_id"
	// FieldChallengeTitle holds the string denoting the challenge_title field in the database.
	FieldChallengeTitle = "challenge_title"
	// FieldChallengeType holds the string denoting the challenge_type field in the database.
	FieldChallengeType = "challenge_type"
	// FieldXpAwarded holds the string denoting the xp_awarded field in the database.
	FieldXpAwarded = "xp_awarded"
	// FieldCoinsAwarded holds the string denoting the coins_awarded field in the database.
	FieldCoinsAwarded = "coins_awarded"
	// FieldRepeat holds the string denoting the repeat field in the database.
	FieldRepeat = "repeat"
	// Table holds the table name of the challengeevent in the database.
	Table = "challenge_events"
)

// Columns holds all SQL columns for challengeevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldChallengeID,
	FieldChallengeTitle,
	FieldChallengeType,
	FieldXpAwarded,
	FieldCoinsAwarded,
	FieldRepeat,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	ChallengeIDValidator func(string) error
	// ChallengeTitleValidator is a validator for the "challenge_title" field. It is called by the builders before save.
	ChallengeTitleValidator func(string) error
	// ChallengeTypeValidator is a validator for the "challenge_type" field. It is called by the builders before save.
	ChallengeTypeValidator func(string) error
	// XpAwardedValidator is a validator for the "xp_awarded" field. It is called by the builders before save.
	XpAwardedValidator func(int) error
	// CoinsAwardedValidator is a validator for the "coins_awarded" field. It is called by the builders before save.
	CoinsAwardedValidator func(int) error
	// DefaultRepeat holds the default value on creation for the "repeat" field.
	DefaultRepeat bool
)

// OrderOption defines the ordering options for the ChallengeEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByChallengeID orders the results by the challenge_id field.
func ByChallengeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeID, opts...).ToFunc()
}

// ByChallengeTitle orders the results by the challenge_title field.
func ByChallengeTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeTitle, opts...).ToFunc()
}

// ByChallengeType orders the results by the challenge_type field.
func ByChallengeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeType, opts...).ToFunc()
}

// ByXpAwarded orders the results by the xp_awarded field.
func ByXpAwarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpAwarded, opts...).ToFunc()
}

// ByCoinsAwarded orders the results by the coins_awarded field.
func ByCoinsAwarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoinsAwarded, opts...).ToFunc()
}

// ByRepeat orders the results by the repeat field.
func ByRepeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepeat, opts...).ToFunc()
}
