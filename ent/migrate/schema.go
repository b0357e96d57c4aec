// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChallengeEventsColumns holds the columns for the "challenge_events" table.
	ChallengeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "challenge_id", Type: field.TypeString},
		{Name: "challenge_title", Type: field.TypeString},
		{Name: "challenge_type", Type: field.TypeString},
		{Name: "xp_awarded", Type: field.TypeInt},
		{Name: "coins_awarded", Type: field.TypeInt},
		{Name: "repeat", Type: field.TypeBool, Default: false},
	}
	// ChallengeEventsTable holds the schema information for the "challenge_events" table.
	ChallengeEventsTable = &schema.Table{
		Name:       "challenge_events",
		Columns:    ChallengeEventsColumns,
		PrimaryKey: []*schema.Column{ChallengeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "challengeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[1]},
			},
			{
				Name:    "challengeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[2]},
			},
			{
				Name:    "challengeevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[3]},
			},
			{
				Name:    "challengeevent_challenge_id",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[4]},
			},
		},
	}
	// QuizAnswerEventsColumns holds the columns for the "quiz_answer_events" table.
	QuizAnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_index", Type: field.TypeInt},
		{Name: "option_index", Type: field.TypeInt},
		{Name: "overwrite", Type: field.TypeBool, Default: false},
	}
	// QuizAnswerEventsTable holds the schema information for the "quiz_answer_events" table.
	QuizAnswerEventsTable = &schema.Table{
		Name:       "quiz_answer_events",
		Columns:    QuizAnswerEventsColumns,
		PrimaryKey: []*schema.Column{QuizAnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizanswerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[1]},
			},
			{
				Name:    "quizanswerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[2]},
			},
			{
				Name:    "quizanswerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[3]},
			},
			{
				Name:    "quizanswerevent_question_index",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "persona", Type: field.TypeString, Default: ""},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "coins", Type: field.TypeInt, Default: 0},
		{Name: "challenges_completed", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChallengeEventsTable,
		QuizAnswerEventsTable,
		SessionEventsTable,
	}
)

func init() {
}
