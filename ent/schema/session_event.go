package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle (start/end) with end-of-session
// progress totals.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("persona").
			Default("").
			Comment("Assigned persona name (on end only, empty if quiz not finished)"),
		field.Int("xp").
			Default(0).
			Comment("Final XP (on end only)"),
		field.Int("coins").
			Default(0).
			Comment("Final coins (on end only)"),
		field.Int("challenges_completed").
			Default(0).
			Comment("Completion count including repeats (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
