package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records a lesson session starting or completing.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("lesson_id").NotEmpty(),
		field.String("lesson_title"),
		field.Enum("kind").Values("started", "completed", "restarted", "mastery"),
		field.Int("score").Default(0),
		field.Int("total").Default(0),
		field.Bool("passed").Default(false),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id"),
	}
}
