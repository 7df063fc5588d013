package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskEvent records one task completion within a session.
type TaskEvent struct {
	ent.Schema
}

func (TaskEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TaskEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Launch this completion belongs to"),
		field.Int("task_id").
			Positive().
			Comment("Catalog id of the completed task"),
		field.String("task_title").
			NotEmpty(),
		field.String("module").
			NotEmpty().
			Comment("Module display name"),
		field.String("kind").
			NotEmpty().
			Comment("quiz or standard"),
		field.Int("xp_awarded"),
		field.String("badge").
			Optional().
			Comment("Badge granted by this completion, empty if none or already held"),
		field.Bool("quiz_all_correct").
			Default(false).
			Comment("For quiz tasks, whether every answer was correct"),
	}
}

func (TaskEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("task_id"),
	}
}
