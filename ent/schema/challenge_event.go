package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChallengeEvent records a challenge completion and the reward it granted.
type ChallengeEvent struct {
	ent.Schema
}

func (ChallengeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChallengeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("challenge_id").
			NotEmpty(),
		field.String("challenge_title").
			NotEmpty(),
		field.String("challenge_type").
			NotEmpty().
			Comment("learning or action"),
		field.Int("xp_awarded").
			NonNegative(),
		field.Int("coins_awarded").
			NonNegative(),
		field.Bool("repeat").
			Default(false).
			Comment("True when the same challenge was already completed this session"),
	}
}

func (ChallengeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("challenge_id"),
	}
}
