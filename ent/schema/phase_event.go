package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PhaseEvent records one phase transition within a lesson session.
type PhaseEvent struct {
	ent.Schema
}

func (PhaseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PhaseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("lesson_id").NotEmpty(),
		field.String("phase").NotEmpty(),
	}
}

func (PhaseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id", "phase"),
	}
}
