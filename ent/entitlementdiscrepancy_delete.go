// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"workgrid.io/workgrid/ent/entitlementdiscrepancy"
	"workgrid.io/workgrid/ent/predicate"
)

// EntitlementDiscrepancyDelete is the builder for deleting a EntitlementDiscrepancy entity.
type EntitlementDiscrepancyDelete struct {
	config
	hooks    []Hook
	mutation *EntitlementDiscrepancyMutation
}

// Where appends a list predicates to the EntitlementDiscrepancyDelete builder.
func (_d *EntitlementDiscrepancyDelete) Where(ps ...predicate.EntitlementDiscrepancy) *EntitlementDiscrepancyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EntitlementDiscrepancyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EntitlementDiscrepancyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EntitlementDiscrepancyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(entitlementdiscrepancy.Table, sqlgraph.NewFieldSpec(entitlementdiscrepancy.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EntitlementDiscrepancyDeleteOne is the builder for deleting a single EntitlementDiscrepancy entity.
type EntitlementDiscrepancyDeleteOne struct {
	_d *EntitlementDiscrepancyDelete
}

// Where appends a list predicates to the EntitlementDiscrepancyDelete builder.
func (_d *EntitlementDiscrepancyDeleteOne) Where(ps ...predicate.EntitlementDiscrepancy) *EntitlementDiscrepancyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EntitlementDiscrepancyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{entitlementdiscrepancy.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EntitlementDiscrepancyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
