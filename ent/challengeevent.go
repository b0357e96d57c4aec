// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sproutfi/sprout/ent/challengeevent"
)

// ChallengeEvent is the model entity for the ChallengeEvent schema.
type ChallengeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ChallengeID holds the value of the "challenge_id" field.
	ChallengeID string `json:"challenge_id,omitempty"`
	// ChallengeTitle holds the value of the "challenge_title" field.
	ChallengeTitle string `json:"challenge_title,omitempty"`
	// learning or action
	ChallengeType string `json:"challenge_type,omitempty"`
	// XpAwarded holds the value of the "xp_awarded" field.
	XpAwarded int `json:"xp_awarded,omitempty"`
	// CoinsAwarded holds the value of the "coins_awarded" field.
	CoinsAwarded int `json:"coins_awarded,omitempty"`
	// True when the same challenge was already completed this session
	Repeat       bool `json:"repeat,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChallengeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case challengeevent.FieldRepeat:
			values[i] = new(sql.NullBool)
		case challengeevent.FieldID, challengeevent.FieldSequence, challengeevent.FieldXpAwarded, challengeevent.FieldCoinsAwarded:
			values[i] = new(sql.NullInt64)
		case challengeevent.FieldSessionID, challengeevent.FieldChallengeID, challengeevent.FieldChallengeTitle, challengeevent.FieldChallengeType:
			values[i] = new(sql.NullString)
		case challengeevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChallengeEvent fields.
func (_m *ChallengeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case challengeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case challengeevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case challengeevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case challengeevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case challengeevent.FieldChallengeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field challenge_id", values[i])
			} else if value.Valid {
				_m.ChallengeID = value.String
			}
		case challengeevent.FieldChallengeTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field challenge_title", values[i])
			} else if value.Valid {
				_m.ChallengeTitle = value.String
			}
		case challengeevent.FieldChallengeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field challenge_type", values[i])
			} else if value.Valid {
				_m.ChallengeType = value.String
			}
		case challengeevent.FieldXpAwarded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_awarded", values[i])
			} else if value.Valid {
				_m.XpAwarded = int(value.Int64)
			}
		case challengeevent.FieldCoinsAwarded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field coins_awarded", values[i])
			} else if value.Valid {
				_m.CoinsAwarded = int(value.Int64)
			}
		case challengeevent.FieldRepeat:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field repeat", values[i])
			} else if value.Valid {
				_m.Repeat = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChallengeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ChallengeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChallengeEvent.
// Note that you need to call ChallengeEvent.Unwrap() before calling this method if this ChallengeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChallengeEvent) Update() *ChallengeEventUpdateOne {
	return NewChallengeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChallengeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChallengeEvent) Unwrap() *ChallengeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChallengeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChallengeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ChallengeEvent(")
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
	builder.WriteString("challenge_id=")
	builder.WriteString(_m.ChallengeID)
	builder.WriteString(", ")
	builder.WriteString("challenge_title=")
	builder.WriteString(_m.ChallengeTitle)
	builder.WriteString(", ")
	builder.WriteString("challenge_type=")
	builder.WriteString(_m.ChallengeType)
	builder.WriteString(", ")
	builder.WriteString("xp_awarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpAwarded))
	builder.WriteString(", ")
	builder.WriteString("coins_awarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoinsAwarded))
	builder.WriteString(", ")
	builder.WriteString("repeat=")
	builder.WriteString(fmt.Sprintf("%v", _m.Repeat))
	builder.WriteByte(')')
	return builder.String()
}

// ChallengeEvents is a parsable slice of ChallengeEvent.
type ChallengeEvents []*ChallengeEvent
