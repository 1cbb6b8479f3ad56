// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anirudh/explainly/ent/predicate"
	"github.com/anirudh/explainly/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *SessionEventUpdate) SetLessonID(v string) *SessionEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableLessonID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *SessionEventUpdate) SetLessonTitle(v string) *SessionEventUpdate {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableLessonTitle(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *SessionEventUpdate) SetKind(v sessionevent.Kind) *SessionEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableKind(v *sessionevent.Kind) *SessionEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SessionEventUpdate) SetScore(v int) *SessionEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableScore(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SessionEventUpdate) AddScore(v int) *SessionEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *SessionEventUpdate) SetTotal(v int) *SessionEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTotal(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *SessionEventUpdate) AddTotal(v int) *SessionEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *SessionEventUpdate) SetPassed(v bool) *SessionEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillablePassed(v *bool) *SessionEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := sessionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := sessionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(sessionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(sessionevent.FieldLessonTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(sessionevent.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(sessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(sessionevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(sessionevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(sessionevent.FieldPassed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *SessionEventUpdateOne) SetLessonID(v string) *SessionEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableLessonID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *SessionEventUpdateOne) SetLessonTitle(v string) *SessionEventUpdateOne {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableLessonTitle(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *SessionEventUpdateOne) SetKind(v sessionevent.Kind) *SessionEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableKind(v *sessionevent.Kind) *SessionEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SessionEventUpdateOne) SetScore(v int) *SessionEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableScore(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SessionEventUpdateOne) AddScore(v int) *SessionEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *SessionEventUpdateOne) SetTotal(v int) *SessionEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTotal(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *SessionEventUpdateOne) AddTotal(v int) *SessionEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *SessionEventUpdateOne) SetPassed(v bool) *SessionEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillablePassed(v *bool) *SessionEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := sessionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := sessionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(sessionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(sessionevent.FieldLessonTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(sessionevent.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(sessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(sessionevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(sessionevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(sessionevent.FieldPassed, field.TypeBool, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
