// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/anirudh/explainly/ent/answerevent"
	"github.com/anirudh/explainly/ent/coachevent"
	"github.com/anirudh/explainly/ent/phaseevent"
	"github.com/anirudh/explainly/ent/schema"
	"github.com/anirudh/explainly/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescLessonID is the schema descriptor for lesson_id field.
	answereventDescLessonID := answereventFields[1].Descriptor()
	// answerevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	answerevent.LessonIDValidator = answereventDescLessonID.Validators[0].(func(string) error)
	// answereventDescQuestionIndex is the schema descriptor for question_index field.
	answereventDescQuestionIndex := answereventFields[2].Descriptor()
	// answerevent.QuestionIndexValidator is a validator for the "question_index" field. It is called by the builders before save.
	answerevent.QuestionIndexValidator = answereventDescQuestionIndex.Validators[0].(func(int) error)
	// answereventDescAnswerID is the schema descriptor for answer_id field.
	answereventDescAnswerID := answereventFields[3].Descriptor()
	// answerevent.AnswerIDValidator is a validator for the "answer_id" field. It is called by the builders before save.
	answerevent.AnswerIDValidator = answereventDescAnswerID.Validators[0].(func(string) error)
	coacheventMixin := schema.CoachEvent{}.Mixin()
	coacheventMixinFields0 := coacheventMixin[0].Fields()
	_ = coacheventMixinFields0
	coacheventFields := schema.CoachEvent{}.Fields()
	_ = coacheventFields
	// coacheventDescTimestamp is the schema descriptor for timestamp field.
	coacheventDescTimestamp := coacheventMixinFields0[1].Descriptor()
	// coachevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	coachevent.DefaultTimestamp = coacheventDescTimestamp.Default.(func() time.Time)
	// coacheventDescProvider is the schema descriptor for provider field.
	coacheventDescProvider := coacheventFields[0].Descriptor()
	// coachevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	coachevent.ProviderValidator = coacheventDescProvider.Validators[0].(func(string) error)
	// coacheventDescInputTokens is the schema descriptor for input_tokens field.
	coacheventDescInputTokens := coacheventFields[3].Descriptor()
	// coachevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	coachevent.DefaultInputTokens = coacheventDescInputTokens.Default.(int)
	// coacheventDescOutputTokens is the schema descriptor for output_tokens field.
	coacheventDescOutputTokens := coacheventFields[4].Descriptor()
	// coachevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	coachevent.DefaultOutputTokens = coacheventDescOutputTokens.Default.(int)
	// coacheventDescLatencyMs is the schema descriptor for latency_ms field.
	coacheventDescLatencyMs := coacheventFields[5].Descriptor()
	// coachevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	coachevent.DefaultLatencyMs = coacheventDescLatencyMs.Default.(int64)
	phaseeventMixin := schema.PhaseEvent{}.Mixin()
	phaseeventMixinFields0 := phaseeventMixin[0].Fields()
	_ = phaseeventMixinFields0
	phaseeventFields := schema.PhaseEvent{}.Fields()
	_ = phaseeventFields
	// phaseeventDescTimestamp is the schema descriptor for timestamp field.
	phaseeventDescTimestamp := phaseeventMixinFields0[1].Descriptor()
	// phaseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	phaseevent.DefaultTimestamp = phaseeventDescTimestamp.Default.(func() time.Time)
	// phaseeventDescSessionID is the schema descriptor for session_id field.
	phaseeventDescSessionID := phaseeventFields[0].Descriptor()
	// phaseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	phaseevent.SessionIDValidator = phaseeventDescSessionID.Validators[0].(func(string) error)
	// phaseeventDescLessonID is the schema descriptor for lesson_id field.
	phaseeventDescLessonID := phaseeventFields[1].Descriptor()
	// phaseevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	phaseevent.LessonIDValidator = phaseeventDescLessonID.Validators[0].(func(string) error)
	// phaseeventDescPhase is the schema descriptor for phase field.
	phaseeventDescPhase := phaseeventFields[2].Descriptor()
	// phaseevent.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	phaseevent.PhaseValidator = phaseeventDescPhase.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescLessonID is the schema descriptor for lesson_id field.
	sessioneventDescLessonID := sessioneventFields[1].Descriptor()
	// sessionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	sessionevent.LessonIDValidator = sessioneventDescLessonID.Validators[0].(func(string) error)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(int)
	// sessioneventDescTotal is the schema descriptor for total field.
	sessioneventDescTotal := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultTotal holds the default value on creation for the total field.
	sessionevent.DefaultTotal = sessioneventDescTotal.Default.(int)
	// sessioneventDescPassed is the schema descriptor for passed field.
	sessioneventDescPassed := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultPassed holds the default value on creation for the passed field.
	sessionevent.DefaultPassed = sessioneventDescPassed.Default.(bool)
}
