// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sproutfi/sprout/ent/challengeevent"
	"github.com/sproutfi/sprout/ent/quizanswerevent"
	"github.com/sproutfi/sprout/ent/schema"
	"github.com/sproutfi/sprout/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	challengeeventMixin := schema.ChallengeEvent{}.Mixin()
	challengeeventMixinFields0 := challengeeventMixin[0].Fields()
	_ = challengeeventMixinFields0
	challengeeventFields := schema.ChallengeEvent{}.Fields()
	_ = challengeeventFields
	// challengeeventDescTimestamp is the schema descriptor for timestamp field.
	challengeeventDescTimestamp := challengeeventMixinFields0[1].Descriptor()
	// challengeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	challengeevent.DefaultTimestamp = challengeeventDescTimestamp.Default.(func() time.Time)
	// challengeeventDescSessionID is the schema descriptor for session_id field.
	challengeeventDescSessionID := challengeeventFields[0].Descriptor()
	// challengeevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	challengeevent.SessionIDValidator = challengeeventDescSessionID.Validators[0].(func(string) error)
	// challengeeventDescChallengeID is the schema descriptor for challenge_id field.
	challengeeventDescChallengeID := challengeeventFields[1].Descriptor()
	// challengeevent.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	challengeevent.ChallengeIDValidator = challengeeventDescChallengeID.Validators[0].(func(string) error)
	// challengeeventDescChallengeTitle is the schema descriptor for challenge_title field.
	challengeeventDescChallengeTitle := challengeeventFields[2].Descriptor()
	// challengeevent.ChallengeTitleValidator is a validator for the "challenge_title" field. It is called by the builders before save.
	challengeevent.ChallengeTitleValidator = challengeeventDescChallengeTitle.Validators[0].(func(string) error)
	// challengeeventDescChallengeType is the schema descriptor for challenge_type field.
	challengeeventDescChallengeType := challengeeventFields[3].Descriptor()
	// challengeevent.ChallengeTypeValidator is a validator for the "challenge_type" field. It is called by the builders before save.
	challengeevent.ChallengeTypeValidator = challengeeventDescChallengeType.Validators[0].(func(string) error)
	// challengeeventDescXpAwarded is the schema descriptor for xp_awarded field.
	challengeeventDescXpAwarded := challengeeventFields[4].Descriptor()
	// challengeevent.XpAwardedValidator is a validator for the "xp_awarded" field. It is called by the builders before save.
	challengeevent.XpAwardedValidator = challengeeventDescXpAwarded.Validators[0].(func(int) error)
	// challengeeventDescCoinsAwarded is the schema descriptor for coins_awarded field.
	challengeeventDescCoinsAwarded := challengeeventFields[5].Descriptor()
	// challengeevent.CoinsAwardedValidator is a validator for the "coins_awarded" field. It is called by the builders before save.
	challengeevent.CoinsAwardedValidator = challengeeventDescCoinsAwarded.Validators[0].(func(int) error)
	// challengeeventDescRepeat is the schema descriptor for repeat field.
	challengeeventDescRepeat := challengeeventFields[6].Descriptor()
	// challengeevent.DefaultRepeat holds the default value on creation for the repeat field.
	challengeevent.DefaultRepeat = challengeeventDescRepeat.Default.(bool)
	quizanswereventMixin := schema.QuizAnswerEvent{}.Mixin()
	quizanswereventMixinFields0 := quizanswereventMixin[0].Fields()
	_ = quizanswereventMixinFields0
	quizanswereventFields := schema.QuizAnswerEvent{}.Fields()
	_ = quizanswereventFields
	// quizanswereventDescTimestamp is the schema descriptor for timestamp field.
	quizanswereventDescTimestamp := quizanswereventMixinFields0[1].Descriptor()
	// quizanswerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizanswerevent.DefaultTimestamp = quizanswereventDescTimestamp.Default.(func() time.Time)
	// quizanswereventDescSessionID is the schema descriptor for session_id field.
	quizanswereventDescSessionID := quizanswereventFields[0].Descriptor()
	// quizanswerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizanswerevent.SessionIDValidator = quizanswereventDescSessionID.Validators[0].(func(string) error)
	// quizanswereventDescQuestionIndex is the schema descriptor for question_index field.
	quizanswereventDescQuestionIndex := quizanswereventFields[1].Descriptor()
	// quizanswerevent.QuestionIndexValidator is a validator for the "question_index" field. It is called by the builders before save.
	quizanswerevent.QuestionIndexValidator = quizanswereventDescQuestionIndex.Validators[0].(func(int) error)
	// quizanswereventDescOptionIndex is the schema descriptor for option_index field.
	quizanswereventDescOptionIndex := quizanswereventFields[2].Descriptor()
	// quizanswerevent.OptionIndexValidator is a validator for the "option_index" field. It is called by the builders before save.
	quizanswerevent.OptionIndexValidator = quizanswereventDescOptionIndex.Validators[0].(func(int) error)
	// quizanswereventDescOverwrite is the schema descriptor for overwrite field.
	quizanswereventDescOverwrite := quizanswereventFields[3].Descriptor()
	// quizanswerevent.DefaultOverwrite holds the default value on creation for the overwrite field.
	quizanswerevent.DefaultOverwrite = quizanswereventDescOverwrite.Default.(bool)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescPersona is the schema descriptor for persona field.
	sessioneventDescPersona := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultPersona holds the default value on creation for the persona field.
	sessionevent.DefaultPersona = sessioneventDescPersona.Default.(string)
	// sessioneventDescXp is the schema descriptor for xp field.
	sessioneventDescXp := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultXp holds the default value on creation for the xp field.
	sessionevent.DefaultXp = sessioneventDescXp.Default.(int)
	// sessioneventDescCoins is the schema descriptor for coins field.
	sessioneventDescCoins := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCoins holds the default value on creation for the coins field.
	sessionevent.DefaultCoins = sessioneventDescCoins.Default.(int)
	// sessioneventDescChallengesCompleted is the schema descriptor for challenges_completed field.
	sessioneventDescChallengesCompleted := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultChallengesCompleted holds the default value on creation for the challenges_completed field.
	sessionevent.DefaultChallengesCompleted = sessioneventDescChallengesCompleted.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
