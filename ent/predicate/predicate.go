// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// CoachEvent is the predicate function for coachevent builders.
type CoachEvent func(*sql.Selector)

// PhaseEvent is the predicate function for phaseevent builders.
type PhaseEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
