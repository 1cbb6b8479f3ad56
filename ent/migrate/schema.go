// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "question_index", Type: field.TypeInt},
		{Name: "answer_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_lesson_id_question_index",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4], AnswerEventsColumns[5]},
			},
		},
	}
	// CoachEventsColumns holds the columns for the "coach_events" table.
	CoachEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// CoachEventsTable holds the schema information for the "coach_events" table.
	CoachEventsTable = &schema.Table{
		Name:       "coach_events",
		Columns:    CoachEventsColumns,
		PrimaryKey: []*schema.Column{CoachEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "coachevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CoachEventsColumns[1]},
			},
			{
				Name:    "coachevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CoachEventsColumns[2]},
			},
			{
				Name:    "coachevent_provider",
				Unique:  false,
				Columns: []*schema.Column{CoachEventsColumns[3]},
			},
		},
	}
	// PhaseEventsColumns holds the columns for the "phase_events" table.
	PhaseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
	}
	// PhaseEventsTable holds the schema information for the "phase_events" table.
	PhaseEventsTable = &schema.Table{
		Name:       "phase_events",
		Columns:    PhaseEventsColumns,
		PrimaryKey: []*schema.Column{PhaseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "phaseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PhaseEventsColumns[1]},
			},
			{
				Name:    "phaseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PhaseEventsColumns[2]},
			},
			{
				Name:    "phaseevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{PhaseEventsColumns[3]},
			},
			{
				Name:    "phaseevent_lesson_id_phase",
				Unique:  false,
				Columns: []*schema.Column{PhaseEventsColumns[4], PhaseEventsColumns[5]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "lesson_title", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"started", "completed", "restarted", "mastery"}},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "total", Type: field.TypeInt, Default: 0},
		{Name: "passed", Type: field.TypeBool, Default: false},
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
				Name:    "sessionevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		CoachEventsTable,
		PhaseEventsTable,
		SessionEventsTable,
	}
)

func init() {
}
