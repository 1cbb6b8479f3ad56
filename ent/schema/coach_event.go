package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CoachEvent records one AI-coach API request (recap generation).
type CoachEvent struct {
	ent.Schema
}

func (CoachEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CoachEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").NotEmpty(),
		field.String("model"),
		field.String("purpose"),
		field.Int("input_tokens").Default(0),
		field.Int("output_tokens").Default(0),
		field.Int64("latency_ms").Default(0),
		field.Bool("success"),
		field.String("error_message").Optional(),
	}
}

func (CoachEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
	}
}
