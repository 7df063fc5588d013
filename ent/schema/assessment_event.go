package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records the outcome of the placement flow for a session.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("skipped or accepted"),
		field.String("placed_title").
			Optional().
			Comment("Title applied by an accepted placement"),
		field.Int("placed_level").
			Default(0),
		field.Int("recommended_module").
			Default(0),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
