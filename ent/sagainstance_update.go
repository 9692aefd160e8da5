// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"workgrid.io/workgrid/ent/predicate"
	"workgrid.io/workgrid/ent/sagainstance"
)

// SagaInstanceUpdate is the builder for updating SagaInstance entities.
type SagaInstanceUpdate struct {
	config
	hooks    []Hook
	mutation *SagaInstanceMutation
}

// Where appends a list predicates to the SagaInstanceUpdate builder.
func (_u *SagaInstanceUpdate) Where(ps ...predicate.SagaInstance) *SagaInstanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SagaInstanceUpdate) SetUpdatedAt(v time.Time) *SagaInstanceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SagaInstanceUpdate) SetStatus(v sagainstance.Status) *SagaInstanceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SagaInstanceUpdate) SetNillableStatus(v *sagainstance.Status) *SagaInstanceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *SagaInstanceUpdate) SetFailureReason(v string) *SagaInstanceUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *SagaInstanceUpdate) SetNillableFailureReason(v *string) *SagaInstanceUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *SagaInstanceUpdate) ClearFailureReason() *SagaInstanceUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *SagaInstanceUpdate) SetFinishedAt(v time.Time) *SagaInstanceUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *SagaInstanceUpdate) SetNillableFinishedAt(v *time.Time) *SagaInstanceUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *SagaInstanceUpdate) ClearFinishedAt() *SagaInstanceUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the SagaInstanceMutation object of the builder.
func (_u *SagaInstanceUpdate) Mutation() *SagaInstanceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SagaInstanceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SagaInstanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SagaInstanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SagaInstanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SagaInstanceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sagainstance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SagaInstanceUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sagainstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SagaInstance.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SagaInstanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sagainstance.Table, sagainstance.Columns, sqlgraph.NewFieldSpec(sagainstance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sagainstance.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sagainstance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(sagainstance.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(sagainstance.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(sagainstance.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(sagainstance.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sagainstance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SagaInstanceUpdateOne is the builder for updating a single SagaInstance entity.
type SagaInstanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SagaInstanceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SagaInstanceUpdateOne) SetUpdatedAt(v time.Time) *SagaInstanceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SagaInstanceUpdateOne) SetStatus(v sagainstance.Status) *SagaInstanceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SagaInstanceUpdateOne) SetNillableStatus(v *sagainstance.Status) *SagaInstanceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *SagaInstanceUpdateOne) SetFailureReason(v string) *SagaInstanceUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *SagaInstanceUpdateOne) SetNillableFailureReason(v *string) *SagaInstanceUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *SagaInstanceUpdateOne) ClearFailureReason() *SagaInstanceUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *SagaInstanceUpdateOne) SetFinishedAt(v time.Time) *SagaInstanceUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *SagaInstanceUpdateOne) SetNillableFinishedAt(v *time.Time) *SagaInstanceUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *SagaInstanceUpdateOne) ClearFinishedAt() *SagaInstanceUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the SagaInstanceMutation object of the builder.
func (_u *SagaInstanceUpdateOne) Mutation() *SagaInstanceMutation {
	return _u.mutation
}

// Where appends a list predicates to the SagaInstanceUpdate builder.
func (_u *SagaInstanceUpdateOne) Where(ps ...predicate.SagaInstance) *SagaInstanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SagaInstanceUpdateOne) Select(field string, fields ...string) *SagaInstanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SagaInstance entity.
func (_u *SagaInstanceUpdateOne) Save(ctx context.Context) (*SagaInstance, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SagaInstanceUpdateOne) SaveX(ctx context.Context) *SagaInstance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SagaInstanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SagaInstanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SagaInstanceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sagainstance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SagaInstanceUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sagainstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SagaInstance.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SagaInstanceUpdateOne) sqlSave(ctx context.Context) (_node *SagaInstance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sagainstance.Table, sagainstance.Columns, sqlgraph.NewFieldSpec(sagainstance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SagaInstance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sagainstance.FieldID)
		for _, f := range fields {
			if !sagainstance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sagainstance.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sagainstance.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sagainstance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(sagainstance.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(sagainstance.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(sagainstance.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(sagainstance.FieldFinishedAt, field.TypeTime)
	}
	_node = &SagaInstance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sagainstance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
