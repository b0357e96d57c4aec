// Code generated by ent, DO NOT EDIT.

package quizanswerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sproutfi/sprout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldSessionID, v))
}

// QuestionIndex applies equality check predicate on the "question_index" field. It's identical to QuestionIndexEQ.
func QuestionIndex(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldQuestionIndex, v))
}

// OptionIndex applies equality check predicate on the "option_index" field. It's identical to OptionIndexEQ.
func OptionIndex(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldOptionIndex, v))
}

// Overwrite applies equality check predicate on the "overwrite" field. It's identical to OverwriteEQ.
func Overwrite(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldOverwrite, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionIndexEQ applies the EQ predicate on the "question_index" field.
func QuestionIndexEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldQuestionIndex, v))
}

// QuestionIndexNEQ applies the NEQ predicate on the "question_index" field.
func QuestionIndexNEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldQuestionIndex, v))
}

// QuestionIndexIn applies the In predicate on the "question_index" field.
func QuestionIndexIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldQuestionIndex, vs...))
}

// QuestionIndexNotIn applies the NotIn predicate on the "question_index" field.
func QuestionIndexNotIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldQuestionIndex, vs...))
}

// QuestionIndexGT applies the GT predicate on the "question_index" field.
func QuestionIndexGT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldQuestionIndex, v))
}

// QuestionIndexGTE applies the GTE predicate on the "question_index" field.
func QuestionIndexGTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldQuestionIndex, v))
}

// QuestionIndexLT applies the LT predicate on the "question_index" field.
func QuestionIndexLT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldQuestionIndex, v))
}

// QuestionIndexLTE applies the LTE predicate on the "question_index" field.
func QuestionIndexLTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldQuestionIndex, v))
}

// OptionIndexEQ applies the EQ predicate on the "option_index" field.
func OptionIndexEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldOptionIndex, v))
}

// OptionIndexNEQ applies the NEQ predicate on the "option_index" field.
func OptionIndexNEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldOptionIndex, v))
}

// OptionIndexIn applies the In predicate on the "option_index" field.
func OptionIndexIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldOptionIndex, vs...))
}

// OptionIndexNotIn applies the NotIn predicate on the "option_index" field.
func OptionIndexNotIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldOptionIndex, vs...))
}

// OptionIndexGT applies the GT predicate on the "option_index" field.
func OptionIndexGT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldOptionIndex, v))
}

// OptionIndexGTE applies the GTE predicate on the "option_index" field.
func OptionIndexGTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldOptionIndex, v))
}

// OptionIndexLT applies the LT predicate on the "option_index" field.
func OptionIndexLT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldOptionIndex, v))
}

// OptionIndexLTE applies the LTE predicate on the "option_index" field.
func OptionIndexLTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldOptionIndex, v))
}

// OverwriteEQ applies the EQ predicate on the "overwrite" field.
func OverwriteEQ(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldOverwrite, v))
}

// OverwriteNEQ applies the NEQ predicate on the "overwrite" field.
func OverwriteNEQ(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldOverwrite, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizAnswerEvent) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizAnswerEvent) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizAnswerEvent) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.NotPredicates(p))
}
