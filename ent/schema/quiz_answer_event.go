package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAnswerEvent records a single quiz answer selection.
type QuizAnswerEvent struct {
	ent.Schema
}

func (QuizAnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizAnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.Int("question_index").
			NonNegative(),
		field.Int("option_index").
			NonNegative(),
		field.Bool("overwrite").
			Default(false).
			Comment("True when this answer replaced an earlier one"),
	}
}

func (QuizAnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_index"),
	}
}
