// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anirudh/explainly/ent/answerevent"
	"github.com/anirudh/explainly/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *AnswerEventUpdate) SetLessonID(v string) *AnswerEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableLessonID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *AnswerEventUpdate) SetQuestionIndex(v int) *AnswerEventUpdate {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionIndex(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *AnswerEventUpdate) AddQuestionIndex(v int) *AnswerEventUpdate {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetAnswerID sets the "answer_id" field.
func (_u *AnswerEventUpdate) SetAnswerID(v string) *AnswerEventUpdate {
	_u.mutation.SetAnswerID(v)
	return _u
}

// SetNillableAnswerID sets the "answer_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAnswerID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetAnswerID(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := answerevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionIndex(); ok {
		if err := answerevent.QuestionIndexValidator(v); err != nil {
			return &ValidationError{Name: "question_index", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerID(); ok {
		if err := answerevent.AnswerIDValidator(v); err != nil {
			return &ValidationError{Name: "answer_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.answer_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(answerevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(answerevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(answerevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswerID(); ok {
		_spec.SetField(answerevent.FieldAnswerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *AnswerEventUpdateOne) SetLessonID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableLessonID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *AnswerEventUpdateOne) SetQuestionIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionIndex(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *AnswerEventUpdateOne) AddQuestionIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetAnswerID sets the "answer_id" field.
func (_u *AnswerEventUpdateOne) SetAnswerID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetAnswerID(v)
	return _u
}

// SetNillableAnswerID sets the "answer_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAnswerID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAnswerID(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := answerevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionIndex(); ok {
		if err := answerevent.QuestionIndexValidator(v); err != nil {
			return &ValidationError{Name: "question_index", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerID(); ok {
		if err := answerevent.AnswerIDValidator(v); err != nil {
			return &ValidationError{Name: "answer_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.answer_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(answerevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(answerevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(answerevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswerID(); ok {
		_spec.SetField(answerevent.FieldAnswerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
