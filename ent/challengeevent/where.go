// Code generated by ent, DO NOT EDIT.

package challengeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sproutfi/sprout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldSessionID, v))
}

// ChallengeID applies equality check predicate on the "challenge_id" field. It's identical to ChallengeIDEQ.
func ChallengeID(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldChallengeID, v))
}

// ChallengeTitle applies equality check predicate on the "challenge_title" field. It's identical to ChallengeTitleEQ.
func ChallengeTitle(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldChallengeTitle, v))
}

// ChallengeType applies equality check predicate on the "challenge_type" field. It's identical to ChallengeTypeEQ.
func ChallengeType(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldChallengeType, v))
}

// XpAwarded applies equality check predicate on the "xp_awarded" field. It's identical to XpAwardedEQ.
func XpAwarded(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// CoinsAwarded applies equality check predicate on the "coins_awarded" field. It's identical to CoinsAwardedEQ.
func CoinsAwarded(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldCoinsAwarded, v))
}

// Repeat applies equality check predicate on the "repeat" field. It's identical to RepeatEQ.
func Repeat(v bool) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldRepeat, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ChallengeIDEQ applies the EQ predicate on the "challenge_id" field.
func ChallengeIDEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldChallengeID, v))
}

// ChallengeIDNEQ applies the NEQ predicate on the "challenge_id" field.
func ChallengeIDNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldChallengeID, v))
}

// ChallengeIDIn applies the In predicate on the "challenge_id" field.
func ChallengeIDIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldChallengeID, vs...))
}

// ChallengeIDNotIn applies the NotIn predicate on the "challenge_id" field.
func ChallengeIDNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldChallengeID, vs...))
}

// ChallengeIDGT applies the GT predicate on the "challenge_id" field.
func ChallengeIDGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldChallengeID, v))
}

// ChallengeIDGTE applies the GTE predicate on the "challenge_id" field.
func ChallengeIDGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldChallengeID, v))
}

// ChallengeIDLT applies the LT predicate on the "challenge_id" field.
func ChallengeIDLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldChallengeID, v))
}

// ChallengeIDLTE applies the LTE predicate on the "challenge_id" field.
func ChallengeIDLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldChallengeID, v))
}

// ChallengeIDContains applies the Contains predicate on the "challenge_id" field.
func ChallengeIDContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldChallengeID, v))
}

// ChallengeIDHasPrefix applies the HasPrefix predicate on the "challenge_id" field.
func ChallengeIDHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldChallengeID, v))
}

// ChallengeIDHasSuffix applies the HasSuffix predicate on the "challenge_id" field.
func ChallengeIDHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldChallengeID, v))
}

// ChallengeIDEqualFold applies the EqualFold predicate on the "challenge_id" field.
func ChallengeIDEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldChallengeID, v))
}

// ChallengeIDContainsFold applies the ContainsFold predicate on the "challenge_id" field.
func ChallengeIDContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldChallengeID, v))
}

// ChallengeTitleEQ applies the EQ predicate on the "challenge_title" field.
func ChallengeTitleEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldChallengeTitle, v))
}

// ChallengeTitleNEQ applies the NEQ predicate on the "challenge_title" field.
func ChallengeTitleNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldChallengeTitle, v))
}

// ChallengeTitleIn applies the In predicate on the "challenge_title" field.
func ChallengeTitleIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldChallengeTitle, vs...))
}

// ChallengeTitleNotIn applies the NotIn predicate on the "challenge_title" field.
func ChallengeTitleNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldChallengeTitle, vs...))
}

// ChallengeTitleGT applies the GT predicate on the "challenge_title" field.
func ChallengeTitleGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldChallengeTitle, v))
}

// ChallengeTitleGTE applies the GTE predicate on the "challenge_title" field.
func ChallengeTitleGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldChallengeTitle, v))
}

// ChallengeTitleLT applies the LT predicate on the "challenge_title" field.
func ChallengeTitleLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldChallengeTitle, v))
}

// ChallengeTitleLTE applies the LTE predicate on the "challenge_title" field.
func ChallengeTitleLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldChallengeTitle, v))
}

// ChallengeTitleContains applies the Contains predicate on the "challenge_title" field.
func ChallengeTitleContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldChallengeTitle, v))
}

// ChallengeTitleHasPrefix applies the HasPrefix predicate on the "challenge_title" field.
func ChallengeTitleHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldChallengeTitle, v))
}

// ChallengeTitleHasSuffix applies the HasSuffix predicate on the "challenge_title" field.
func ChallengeTitleHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldChallengeTitle, v))
}

// ChallengeTitleEqualFold applies the EqualFold predicate on the "challenge_title" field.
func ChallengeTitleEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldChallengeTitle, v))
}

// ChallengeTitleContainsFold applies the ContainsFold predicate on the "challenge_title" field.
func ChallengeTitleContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldChallengeTitle, v))
}

// ChallengeTypeEQ applies the EQ predicate on the "challenge_type" field.
func ChallengeTypeEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldChallengeType, v))
}

// ChallengeTypeNEQ applies the NEQ predicate on the "challenge_type" field.
func ChallengeTypeNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldChallengeType, v))
}

// ChallengeTypeIn applies the In predicate on the "challenge_type" field.
func ChallengeTypeIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldChallengeType, vs...))
}

// ChallengeTypeNotIn applies the NotIn predicate on the "challenge_type" field.
func ChallengeTypeNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldChallengeType, vs...))
}

// ChallengeTypeGT applies the GT predicate on the "challenge_type" field.
func ChallengeTypeGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldChallengeType, v))
}

// ChallengeTypeGTE applies the GTE predicate on the "challenge_type" field.
func ChallengeTypeGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldChallengeType, v))
}

// ChallengeTypeLT applies the LT predicate on the "challenge_type" field.
func ChallengeTypeLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldChallengeType, v))
}

// ChallengeTypeLTE applies the LTE predicate on the "challenge_type" field.
func ChallengeTypeLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldChallengeType, v))
}

// ChallengeTypeContains applies the Contains predicate on the "challenge_type" field.
func ChallengeTypeContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldChallengeType, v))
}

// ChallengeTypeHasPrefix applies the HasPrefix predicate on the "challenge_type" field.
func ChallengeTypeHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldChallengeType, v))
}

// ChallengeTypeHasSuffix applies the HasSuffix predicate on the "challenge_type" field.
func ChallengeTypeHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldChallengeType, v))
}

// ChallengeTypeEqualFold applies the EqualFold predicate on the "challenge_type" field.
func ChallengeTypeEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldChallengeType, v))
}

// ChallengeTypeContainsFold applies the ContainsFold predicate on the "challenge_type" field.
func ChallengeTypeContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldChallengeType, v))
}

// XpAwardedEQ applies the EQ predicate on the "xp_awarded" field.
func XpAwardedEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// XpAwardedNEQ applies the NEQ predicate on the "xp_awarded" field.
func XpAwardedNEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldXpAwarded, v))
}

// XpAwardedIn applies the In predicate on the "xp_awarded" field.
func XpAwardedIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldXpAwarded, vs...))
}

// XpAwardedNotIn applies the NotIn predicate on the "xp_awarded" field.
func XpAwardedNotIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldXpAwarded, vs...))
}

// XpAwardedGT applies the GT predicate on the "xp_awarded" field.
func XpAwardedGT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldXpAwarded, v))
}

// XpAwardedGTE applies the GTE predicate on the "xp_awarded" field.
func XpAwardedGTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldXpAwarded, v))
}

// XpAwardedLT applies the LT predicate on the "xp_awarded" field.
func XpAwardedLT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldXpAwarded, v))
}

// XpAwardedLTE applies the LTE predicate on the "xp_awarded" field.
func XpAwardedLTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldXpAwarded, v))
}

// CoinsAwardedEQ applies the EQ predicate on the "coins_awarded" field.
func CoinsAwardedEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldCoinsAwarded, v))
}

// CoinsAwardedNEQ applies the NEQ predicate on the "coins_awarded" field.
func CoinsAwardedNEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldCoinsAwarded, v))
}

// CoinsAwardedIn applies the In predicate on the "coins_awarded" field.
func CoinsAwardedIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldCoinsAwarded, vs...))
}

// CoinsAwardedNotIn applies the NotIn predicate on the "coins_awarded" field.
func CoinsAwardedNotIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldCoinsAwarded, vs...))
}

// CoinsAwardedGT applies the GT predicate on the "coins_awarded" field.
func CoinsAwardedGT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldCoinsAwarded, v))
}

// CoinsAwardedGTE applies the GTE predicate on the "coins_awarded" field.
func CoinsAwardedGTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldCoinsAwarded, v))
}

// CoinsAwardedLT applies the LT predicate on the "coins_awarded" field.
func CoinsAwardedLT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldCoinsAwarded, v))
}

// CoinsAwardedLTE applies the LTE predicate on the "coins_awarded" field.
func CoinsAwardedLTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldCoinsAwarded, v))
}

// RepeatEQ applies the EQ predicate on the "repeat" field.
func RepeatEQ(v bool) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldRepeat, v))
}

// RepeatNEQ applies the NEQ predicate on the "repeat" field.
func RepeatNEQ(v bool) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldRepeat, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChallengeEvent) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChallengeEvent) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChallengeEvent) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.NotPredicates(p))
}
