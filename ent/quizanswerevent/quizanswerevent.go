// Code generated by ent, DO NOT EDIT.

package quizanswerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizanswerevent type in the database.
	Label = "quiz_answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuestionIndex holds the string denoting the question_index field in the database.
	FieldQuestionIndex = "question_index"
	// FieldOptionIndex holds the string denoting the option_index field in the database.
	FieldOptionIndex = "option_index"
	// FieldOverwrite holds the string denoting the overwrite field in the database.
	FieldOverwrite = "overwrite"
	// Table holds the table name of the quizanswerevent in the database.
	Table = "quiz_answer_events"
)

// Columns holds all SQL columns for quizanswerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldQuestionIndex,
	FieldOptionIndex,
	FieldOverwrite,
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
	// QuestionIndexValidator is a validator for the "question_index" field. It is called by the builders before save.
	QuestionIndexValidator func(int) error
	// OptionIndexValidator is a validator for the "option_index" field. It is called by the builders before save.
	OptionIndexValidator func(int) error
	// DefaultOverwrite holds the default value on creation for the "overwrite" field.
	DefaultOverwrite bool
)

// OrderOption defines the ordering options for the QuizAnswerEvent queries.
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

// ByQuestionIndex orders the results by the question_index field.
func ByQuestionIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionIndex, opts...).ToFunc()
}

// ByOptionIndex orders the results by the option_index field.
func ByOptionIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionIndex, opts...).ToFunc()
}

// ByOverwrite orders the results by the overwrite field.
func ByOverwrite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverwrite, opts...).ToFunc()
}
