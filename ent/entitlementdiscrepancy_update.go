// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"workgrid.io/workgrid/ent/entitlementdiscrepancy"
	"workgrid.io/workgrid/ent/predicate"
)

// EntitlementDiscrepancyUpdate is the builder for updating EntitlementDiscrepancy entities.
type EntitlementDiscrepancyUpdate struct {
	config
	hooks    []Hook
	mutation *EntitlementDiscrepancyMutation
}

// Where appends a list predicates to the EntitlementDiscrepancyUpdate builder.
func (_u *EntitlementDiscrepancyUpdate) Where(ps ...predicate.EntitlementDiscrepancy) *EntitlementDiscrepancyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReconciled sets the "reconciled" field.
func (_u *EntitlementDiscrepancyUpdate) SetReconciled(v bool) *EntitlementDiscrepancyUpdate {
	_u.mutation.SetReconciled(v)
	return _u
}

// SetNillableReconciled sets the "reconciled" field if the given value is not nil.
func (_u *EntitlementDiscrepancyUpdate) SetNillableReconciled(v *bool) *EntitlementDiscrepancyUpdate {
	if v != nil {
		_u.SetReconciled(*v)
	}
	return _u
}

// Mutation returns the EntitlementDiscrepancyMutation object of the builder.
func (_u *EntitlementDiscrepancyUpdate) Mutation() *EntitlementDiscrepancyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntitlementDiscrepancyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntitlementDiscrepancyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntitlementDiscrepancyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntitlementDiscrepancyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EntitlementDiscrepancyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(entitlementdiscrepancy.Table, entitlementdiscrepancy.Columns, sqlgraph.NewFieldSpec(entitlementdiscrepancy.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Reconciled(); ok {
		_spec.SetField(entitlementdiscrepancy.FieldReconciled, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitlementdiscrepancy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntitlementDiscrepancyUpdateOne is the builder for updating a single EntitlementDiscrepancy entity.
type EntitlementDiscrepancyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntitlementDiscrepancyMutation
}

// SetReconciled sets the "reconciled" field.
func (_u *EntitlementDiscrepancyUpdateOne) SetReconciled(v bool) *EntitlementDiscrepancyUpdateOne {
	_u.mutation.SetReconciled(v)
	return _u
}

// SetNillableReconciled sets the "reconciled" field if the given value is not nil.
func (_u *EntitlementDiscrepancyUpdateOne) SetNillableReconciled(v *bool) *EntitlementDiscrepancyUpdateOne {
	if v != nil {
		_u.SetReconciled(*v)
	}
	return _u
}

// Mutation returns the EntitlementDiscrepancyMutation object of the builder.
func (_u *EntitlementDiscrepancyUpdateOne) Mutation() *EntitlementDiscrepancyMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntitlementDiscrepancyUpdate builder.
func (_u *EntitlementDiscrepancyUpdateOne) Where(ps ...predicate.EntitlementDiscrepancy) *EntitlementDiscrepancyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntitlementDiscrepancyUpdateOne) Select(field string, fields ...string) *EntitlementDiscrepancyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntitlementDiscrepancy entity.
func (_u *EntitlementDiscrepancyUpdateOne) Save(ctx context.Context) (*EntitlementDiscrepancy, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntitlementDiscrepancyUpdateOne) SaveX(ctx context.Context) *EntitlementDiscrepancy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntitlementDiscrepancyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntitlementDiscrepancyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EntitlementDiscrepancyUpdateOne) sqlSave(ctx context.Context) (_node *EntitlementDiscrepancy, err error) {
	_spec := sqlgraph.NewUpdateSpec(entitlementdiscrepancy.Table, entitlementdiscrepancy.Columns, sqlgraph.NewFieldSpec(entitlementdiscrepancy.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntitlementDiscrepancy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entitlementdiscrepancy.FieldID)
		for _, f := range fields {
			if !entitlementdiscrepancy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entitlementdiscrepancy.FieldID {
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
	if value, ok := _u.mutation.Reconciled(); ok {
		_spec.SetField(entitlementdiscrepancy.FieldReconciled, field.TypeBool, value)
	}
	_node = &EntitlementDiscrepancy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitlementdiscrepancy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
