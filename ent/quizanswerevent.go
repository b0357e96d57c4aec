// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sproutfi/sprout/ent/quizanswerevent"
)

// QuizAnswerEvent is the model entity for the QuizAnswerEvent schema.
type QuizAnswerEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a session
	SessionID string `json:"session_id,omitempty"`
	// QuestionIndex holds the value of the "question_index" field.
	QuestionIndex int `json:"question_index,omitempty"`
	// OptionIndex holds the value of the "option_index" field.
	OptionIndex int `json:"option_index,omitempty"`
	// True when this answer replaced an earlier one
	Overwrite    bool `json:"overwrite,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizAnswerEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizanswerevent.FieldOverwrite:
			values[i] = new(sql.NullBool)
		case quizanswerevent.FieldID, quizanswerevent.FieldSequence, quizanswerevent.FieldQuestionIndex, quizanswerevent.FieldOptionIndex:
			values[i] = new(sql.NullInt64)
		case quizanswerevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case quizanswerevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizAnswerEvent fields.
func (_m *QuizAnswerEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizanswerevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizanswerevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case quizanswerevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case quizanswerevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case quizanswerevent.FieldQuestionIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_index", values[i])
			} else if value.Valid {
				_m.QuestionIndex = int(value.Int64)
			}
		case quizanswerevent.FieldOptionIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field option_index", values[i])
			} else if value.Valid {
				_m.OptionIndex = int(value.Int64)
			}
		case quizanswerevent.FieldOverwrite:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field overwrite", values[i])
			} else if value.Valid {
				_m.Overwrite = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizAnswerEvent.
// This includes values selected through modifiers, order, etc.
func (_m *QuizAnswerEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizAnswerEvent.
// Note that you need to call QuizAnswerEvent.Unwrap() before calling this method if this QuizAnswerEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizAnswerEvent) Update() *QuizAnswerEventUpdateOne {
	return NewQuizAnswerEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizAnswerEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizAnswerEvent) Unwrap() *QuizAnswerEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizAnswerEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizAnswerEvent) String() string {
	var builder strings.Builder
	builder.WriteString("QuizAnswerEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("question_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionIndex))
	builder.WriteString(", ")
	builder.WriteString("option_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OptionIndex))
	builder.WriteString(", ")
	builder.WriteString("overwrite=")
	builder.WriteString(fmt.Sprintf("%v", _m.Overwrite))
	builder.WriteByte(')')
	return builder.String()
}

// QuizAnswerEvents is a parsable slice of QuizAnswerEvent.
type QuizAnswerEvents []*QuizAnswerEvent
