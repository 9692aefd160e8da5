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
	"workgrid.io/workgrid/ent/membershipentry"
	"workgrid.io/workgrid/ent/predicate"
)

// MembershipEntryUpdate is the builder for updating MembershipEntry entities.
type MembershipEntryUpdate struct {
	config
	hooks    []Hook
	mutation *MembershipEntryMutation
}

// Where appends a list predicates to the MembershipEntryUpdate builder.
func (_u *MembershipEntryUpdate) Where(ps ...predicate.MembershipEntry) *MembershipEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *MembershipEntryUpdate) SetRole(v string) *MembershipEntryUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *MembershipEntryUpdate) SetNillableRole(v *string) *MembershipEntryUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetCachedAt sets the "cached_at" field.
func (_u *MembershipEntryUpdate) SetCachedAt(v time.Time) *MembershipEntryUpdate {
	_u.mutation.SetCachedAt(v)
	return _u
}

// Mutation returns the MembershipEntryMutation object of the builder.
func (_u *MembershipEntryUpdate) Mutation() *MembershipEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MembershipEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MembershipEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MembershipEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MembershipEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MembershipEntryUpdate) defaults() {
	if _, ok := _u.mutation.CachedAt(); !ok {
		v := membershipentry.UpdateDefaultCachedAt()
		_u.mutation.SetCachedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MembershipEntryUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := membershipentry.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "MembershipEntry.role": %w`, err)}
		}
	}
	return nil
}

func (_u *MembershipEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(membershipentry.Table, membershipentry.Columns, sqlgraph.NewFieldSpec(membershipentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(membershipentry.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.CachedAt(); ok {
		_spec.SetField(membershipentry.FieldCachedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{membershipentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MembershipEntryUpdateOne is the builder for updating a single MembershipEntry entity.
type MembershipEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MembershipEntryMutation
}

// SetRole sets the "role" field.
func (_u *MembershipEntryUpdateOne) SetRole(v string) *MembershipEntryUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *MembershipEntryUpdateOne) SetNillableRole(v *string) *MembershipEntryUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetCachedAt sets the "cached_at" field.
func (_u *MembershipEntryUpdateOne) SetCachedAt(v time.Time) *MembershipEntryUpdateOne {
	_u.mutation.SetCachedAt(v)
	return _u
}

// Mutation returns the MembershipEntryMutation object of the builder.
func (_u *MembershipEntryUpdateOne) Mutation() *MembershipEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the MembershipEntryUpdate builder.
func (_u *MembershipEntryUpdateOne) Where(ps ...predicate.MembershipEntry) *MembershipEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MembershipEntryUpdateOne) Select(field string, fields ...string) *MembershipEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MembershipEntry entity.
func (_u *MembershipEntryUpdateOne) Save(ctx context.Context) (*MembershipEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MembershipEntryUpdateOne) SaveX(ctx context.Context) *MembershipEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MembershipEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MembershipEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MembershipEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.CachedAt(); !ok {
		v := membershipentry.UpdateDefaultCachedAt()
		_u.mutation.SetCachedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MembershipEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := membershipentry.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "MembershipEntry.role": %w`, err)}
		}
	}
	return nil
}

func (_u *MembershipEntryUpdateOne) sqlSave(ctx context.Context) (_node *MembershipEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(membershipentry.Table, membershipentry.Columns, sqlgraph.NewFieldSpec(membershipentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MembershipEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, membershipentry.FieldID)
		for _, f := range fields {
			if !membershipentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != membershipentry.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(membershipentry.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.CachedAt(); ok {
		_spec.SetField(membershipentry.FieldCachedAt, field.TypeTime, value)
	}
	_node = &MembershipEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{membershipentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
