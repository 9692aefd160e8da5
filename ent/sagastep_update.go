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
	"workgrid.io/workgrid/ent/sagastep"
)

// SagaStepUpdate is the builder for updating SagaStep entities.
type SagaStepUpdate struct {
	config
	hooks    []Hook
	mutation *SagaStepMutation
}

// Where appends a list predicates to the SagaStepUpdate builder.
func (_u *SagaStepUpdate) Where(ps ...predicate.SagaStep) *SagaStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SagaStepUpdate) SetUpdatedAt(v time.Time) *SagaStepUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SagaStepUpdate) SetStatus(v sagastep.Status) *SagaStepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SagaStepUpdate) SetNillableStatus(v *sagastep.Status) *SagaStepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SagaStepUpdate) SetCompletedAt(v time.Time) *SagaStepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SagaStepUpdate) SetNillableCompletedAt(v *time.Time) *SagaStepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SagaStepUpdate) ClearCompletedAt() *SagaStepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCompensationPayload sets the "compensation_payload" field.
func (_u *SagaStepUpdate) SetCompensationPayload(v []byte) *SagaStepUpdate {
	_u.mutation.SetCompensationPayload(v)
	return _u
}

// ClearCompensationPayload clears the value of the "compensation_payload" field.
func (_u *SagaStepUpdate) ClearCompensationPayload() *SagaStepUpdate {
	_u.mutation.ClearCompensationPayload()
	return _u
}

// Mutation returns the SagaStepMutation object of the builder.
func (_u *SagaStepUpdate) Mutation() *SagaStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SagaStepUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SagaStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SagaStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SagaStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SagaStepUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sagastep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SagaStepUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sagastep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SagaStep.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SagaStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sagastep.Table, sagastep.Columns, sqlgraph.NewFieldSpec(sagastep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sagastep.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sagastep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sagastep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sagastep.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompensationPayload(); ok {
		_spec.SetField(sagastep.FieldCompensationPayload, field.TypeBytes, value)
	}
	if _u.mutation.CompensationPayloadCleared() {
		_spec.ClearField(sagastep.FieldCompensationPayload, field.TypeBytes)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sagastep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SagaStepUpdateOne is the builder for updating a single SagaStep entity.
type SagaStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SagaStepMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SagaStepUpdateOne) SetUpdatedAt(v time.Time) *SagaStepUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SagaStepUpdateOne) SetStatus(v sagastep.Status) *SagaStepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SagaStepUpdateOne) SetNillableStatus(v *sagastep.Status) *SagaStepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SagaStepUpdateOne) SetCompletedAt(v time.Time) *SagaStepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SagaStepUpdateOne) SetNillableCompletedAt(v *time.Time) *SagaStepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SagaStepUpdateOne) ClearCompletedAt() *SagaStepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCompensationPayload sets the "compensation_payload" field.
func (_u *SagaStepUpdateOne) SetCompensationPayload(v []byte) *SagaStepUpdateOne {
	_u.mutation.SetCompensationPayload(v)
	return _u
}

// ClearCompensationPayload clears the value of the "compensation_payload" field.
func (_u *SagaStepUpdateOne) ClearCompensationPayload() *SagaStepUpdateOne {
	_u.mutation.ClearCompensationPayload()
	return _u
}

// Mutation returns the SagaStepMutation object of the builder.
func (_u *SagaStepUpdateOne) Mutation() *SagaStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the SagaStepUpdate builder.
func (_u *SagaStepUpdateOne) Where(ps ...predicate.SagaStep) *SagaStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SagaStepUpdateOne) Select(field string, fields ...string) *SagaStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SagaStep entity.
func (_u *SagaStepUpdateOne) Save(ctx context.Context) (*SagaStep, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SagaStepUpdateOne) SaveX(ctx context.Context) *SagaStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SagaStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SagaStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SagaStepUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sagastep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SagaStepUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sagastep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SagaStep.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SagaStepUpdateOne) sqlSave(ctx context.Context) (_node *SagaStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sagastep.Table, sagastep.Columns, sqlgraph.NewFieldSpec(sagastep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SagaStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sagastep.FieldID)
		for _, f := range fields {
			if !sagastep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sagastep.FieldID {
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
		_spec.SetField(sagastep.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sagastep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sagastep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sagastep.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompensationPayload(); ok {
		_spec.SetField(sagastep.FieldCompensationPayload, field.TypeBytes, value)
	}
	if _u.mutation.CompensationPayloadCleared() {
		_spec.ClearField(sagastep.FieldCompensationPayload, field.TypeBytes)
	}
	_node = &SagaStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sagastep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
