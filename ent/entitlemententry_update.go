// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"workgrid.io/workgrid/ent/entitlemententry"
	"workgrid.io/workgrid/ent/predicate"
)

// EntitlementEntryUpdate is the builder for updating EntitlementEntry entities.
type EntitlementEntryUpdate struct {
	config
	hooks    []Hook
	mutation *EntitlementEntryMutation
}

// Where appends a list predicates to the EntitlementEntryUpdate builder.
func (_u *EntitlementEntryUpdate) Where(ps ...predicate.EntitlementEntry) *EntitlementEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMaxProjects sets the "max_projects" field.
func (_u *EntitlementEntryUpdate) SetMaxProjects(v int) *EntitlementEntryUpdate {
	_u.mutation.ResetMaxProjects()
	_u.mutation.SetMaxProjects(v)
	return _u
}

// SetNillableMaxProjects sets the "max_projects" field if the given value is not nil.
func (_u *EntitlementEntryUpdate) SetNillableMaxProjects(v *int) *EntitlementEntryUpdate {
	if v != nil {
		_u.SetMaxProjects(*v)
	}
	return _u
}

// AddMaxProjects adds value to the "max_projects" field.
func (_u *EntitlementEntryUpdate) AddMaxProjects(v int) *EntitlementEntryUpdate {
	_u.mutation.AddMaxProjects(v)
	return _u
}

// SetMaxMembers sets the "max_members" field.
func (_u *EntitlementEntryUpdate) SetMaxMembers(v int) *EntitlementEntryUpdate {
	_u.mutation.ResetMaxMembers()
	_u.mutation.SetMaxMembers(v)
	return _u
}

// SetNillableMaxMembers sets the "max_members" field if the given value is not nil.
func (_u *EntitlementEntryUpdate) SetNillableMaxMembers(v *int) *EntitlementEntryUpdate {
	if v != nil {
		_u.SetMaxMembers(*v)
	}
	return _u
}

// AddMaxMembers adds value to the "max_members" field.
func (_u *EntitlementEntryUpdate) AddMaxMembers(v int) *EntitlementEntryUpdate {
	_u.mutation.AddMaxMembers(v)
	return _u
}

// SetMaxStorageMB sets the "max_storage_mb" field.
func (_u *EntitlementEntryUpdate) SetMaxStorageMB(v int) *EntitlementEntryUpdate {
	_u.mutation.ResetMaxStorageMB()
	_u.mutation.SetMaxStorageMB(v)
	return _u
}

// SetNillableMaxStorageMB sets the "max_storage_mb" field if the given value is not nil.
func (_u *EntitlementEntryUpdate) SetNillableMaxStorageMB(v *int) *EntitlementEntryUpdate {
	if v != nil {
		_u.SetMaxStorageMB(*v)
	}
	return _u
}

// AddMaxStorageMB adds value to the "max_storage_mb" field.
func (_u *EntitlementEntryUpdate) AddMaxStorageMB(v int) *EntitlementEntryUpdate {
	_u.mutation.AddMaxStorageMB(v)
	return _u
}

// SetFeatures sets the "features" field.
func (_u *EntitlementEntryUpdate) SetFeatures(v []string) *EntitlementEntryUpdate {
	_u.mutation.SetFeatures(v)
	return _u
}

// AppendFeatures appends value to the "features" field.
func (_u *EntitlementEntryUpdate) AppendFeatures(v []string) *EntitlementEntryUpdate {
	_u.mutation.AppendFeatures(v)
	return _u
}

// ClearFeatures clears the value of the "features" field.
func (_u *EntitlementEntryUpdate) ClearFeatures() *EntitlementEntryUpdate {
	_u.mutation.ClearFeatures()
	return _u
}

// SetCachedAt sets the "cached_at" field.
func (_u *EntitlementEntryUpdate) SetCachedAt(v time.Time) *EntitlementEntryUpdate {
	_u.mutation.SetCachedAt(v)
	return _u
}

// Mutation returns the EntitlementEntryMutation object of the builder.
func (_u *EntitlementEntryUpdate) Mutation() *EntitlementEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntitlementEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntitlementEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntitlementEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntitlementEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntitlementEntryUpdate) defaults() {
	if _, ok := _u.mutation.CachedAt(); !ok {
		v := entitlemententry.UpdateDefaultCachedAt()
		_u.mutation.SetCachedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntitlementEntryUpdate) check() error {
	if v, ok := _u.mutation.MaxProjects(); ok {
		if err := entitlemententry.MaxProjectsValidator(v); err != nil {
			return &ValidationError{Name: "max_projects", err: fmt.Errorf(`ent: validator failed for field "EntitlementEntry.max_projects": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxMembers(); ok {
		if err := entitlemententry.MaxMembersValidator(v); err != nil {
			return &ValidationError{Name: "max_members", err: fmt.Errorf(`ent: validator failed for field "EntitlementEntry.max_members": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxStorageMB(); ok {
		if err := entitlemententry.MaxStorageMBValidator(v); err != nil {
			return &ValidationError{Name: "max_storage_mb", err: fmt.Errorf(`ent: validator failed for field "EntitlementEntry.max_storage_mb": %w`, err)}
		}
	}
	return nil
}

func (_u *EntitlementEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitlemententry.Table, entitlemententry.Columns, sqlgraph.NewFieldSpec(entitlemententry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MaxProjects(); ok {
		_spec.SetField(entitlemententry.FieldMaxProjects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxProjects(); ok {
		_spec.AddField(entitlemententry.FieldMaxProjects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxMembers(); ok {
		_spec.SetField(entitlemententry.FieldMaxMembers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxMembers(); ok {
		_spec.AddField(entitlemententry.FieldMaxMembers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxStorageMB(); ok {
		_spec.SetField(entitlemententry.FieldMaxStorageMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxStorageMB(); ok {
		_spec.AddField(entitlemententry.FieldMaxStorageMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Features(); ok {
		_spec.SetField(entitlemententry.FieldFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, entitlemententry.FieldFeatures, value)
		})
	}
	if _u.mutation.FeaturesCleared() {
		_spec.ClearField(entitlemententry.FieldFeatures, field.TypeJSON)
	}
	if value, ok := _u.mutation.CachedAt(); ok {
		_spec.SetField(entitlemententry.FieldCachedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitlemententry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntitlementEntryUpdateOne is the builder for updating a single EntitlementEntry entity.
type EntitlementEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntitlementEntryMutation
}

// SetMaxProjects sets the "max_projects" field.
func (_u *EntitlementEntryUpdateOne) SetMaxProjects(v int) *EntitlementEntryUpdateOne {
	_u.mutation.ResetMaxProjects()
	_u.mutation.SetMaxProjects(v)
	return _u
}

// SetNillableMaxProjects sets the "max_projects" field if the given value is not nil.
func (_u *EntitlementEntryUpdateOne) SetNillableMaxProjects(v *int) *EntitlementEntryUpdateOne {
	if v != nil {
		_u.SetMaxProjects(*v)
	}
	return _u
}

// AddMaxProjects adds value to the "max_projects" field.
func (_u *EntitlementEntryUpdateOne) AddMaxProjects(v int) *EntitlementEntryUpdateOne {
	_u.mutation.AddMaxProjects(v)
	return _u
}

// SetMaxMembers sets the "max_members" field.
func (_u *EntitlementEntryUpdateOne) SetMaxMembers(v int) *EntitlementEntryUpdateOne {
	_u.mutation.ResetMaxMembers()
	_u.mutation.SetMaxMembers(v)
	return _u
}

// SetNillableMaxMembers sets the "max_members" field if the given value is not nil.
func (_u *EntitlementEntryUpdateOne) SetNillableMaxMembers(v *int) *EntitlementEntryUpdateOne {
	if v != nil {
		_u.SetMaxMembers(*v)
	}
	return _u
}

// AddMaxMembers adds value to the "max_members" field.
func (_u *EntitlementEntryUpdateOne) AddMaxMembers(v int) *EntitlementEntryUpdateOne {
	_u.mutation.AddMaxMembers(v)
	return _u
}

// SetMaxStorageMB sets the "max_storage_mb" field.
func (_u *EntitlementEntryUpdateOne) SetMaxStorageMB(v int) *EntitlementEntryUpdateOne {
	_u.mutation.ResetMaxStorageMB()
	_u.mutation.SetMaxStorageMB(v)
	return _u
}

// SetNillableMaxStorageMB sets the "max_storage_mb" field if the given value is not nil.
func (_u *EntitlementEntryUpdateOne) SetNillableMaxStorageMB(v *int) *EntitlementEntryUpdateOne {
	if v != nil {
		_u.SetMaxStorageMB(*v)
	}
	return _u
}

// AddMaxStorageMB adds value to the "max_storage_mb" field.
func (_u *EntitlementEntryUpdateOne) AddMaxStorageMB(v int) *EntitlementEntryUpdateOne {
	_u.mutation.AddMaxStorageMB(v)
	return _u
}

// SetFeatures sets the "features" field.
func (_u *EntitlementEntryUpdateOne) SetFeatures(v []string) *EntitlementEntryUpdateOne {
	_u.mutation.SetFeatures(v)
	return _u
}

// AppendFeatures appends value to the "features" field.
func (_u *EntitlementEntryUpdateOne) AppendFeatures(v []string) *EntitlementEntryUpdateOne {
	_u.mutation.AppendFeatures(v)
	return _u
}

// ClearFeatures clears the value of the "features" field.
func (_u *EntitlementEntryUpdateOne) ClearFeatures() *EntitlementEntryUpdateOne {
	_u.mutation.ClearFeatures()
	return _u
}

// SetCachedAt sets the "cached_at" field.
func (_u *EntitlementEntryUpdateOne) SetCachedAt(v time.Time) *EntitlementEntryUpdateOne {
	_u.mutation.SetCachedAt(v)
	return _u
}

// Mutation returns the EntitlementEntryMutation object of the builder.
func (_u *EntitlementEntryUpdateOne) Mutation() *EntitlementEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntitlementEntryUpdate builder.
func (_u *EntitlementEntryUpdateOne) Where(ps ...predicate.EntitlementEntry) *EntitlementEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntitlementEntryUpdateOne) Select(field string, fields ...string) *EntitlementEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntitlementEntry entity.
func (_u *EntitlementEntryUpdateOne) Save(ctx context.Context) (*EntitlementEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntitlementEntryUpdateOne) SaveX(ctx context.Context) *EntitlementEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntitlementEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntitlementEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntitlementEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.CachedAt(); !ok {
		v := entitlemententry.UpdateDefaultCachedAt()
		_u.mutation.SetCachedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntitlementEntryUpdateOne) check() error {
	if v, ok := _u.mutation.MaxProjects(); ok {
		if err := entitlemententry.MaxProjectsValidator(v); err != nil {
			return &ValidationError{Name: "max_projects", err: fmt.Errorf(`ent: validator failed for field "EntitlementEntry.max_projects": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxMembers(); ok {
		if err := entitlemententry.MaxMembersValidator(v); err != nil {
			return &ValidationError{Name: "max_members", err: fmt.Errorf(`ent: validator failed for field "EntitlementEntry.max_members": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxStorageMB(); ok {
		if err := entitlemententry.MaxStorageMBValidator(v); err != nil {
			return &ValidationError{Name: "max_storage_mb", err: fmt.Errorf(`ent: validator failed for field "EntitlementEntry.max_storage_mb": %w`, err)}
		}
	}
	return nil
}

func (_u *EntitlementEntryUpdateOne) sqlSave(ctx context.Context) (_node *EntitlementEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitlemententry.Table, entitlemententry.Columns, sqlgraph.NewFieldSpec(entitlemententry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntitlementEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entitlemententry.FieldID)
		for _, f := range fields {
			if !entitlemententry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entitlemententry.FieldID {
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
	if value, ok := _u.mutation.MaxProjects(); ok {
		_spec.SetField(entitlemententry.FieldMaxProjects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxProjects(); ok {
		_spec.AddField(entitlemententry.FieldMaxProjects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxMembers(); ok {
		_spec.SetField(entitlemententry.FieldMaxMembers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxMembers(); ok {
		_spec.AddField(entitlemententry.FieldMaxMembers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxStorageMB(); ok {
		_spec.SetField(entitlemententry.FieldMaxStorageMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxStorageMB(); ok {
		_spec.AddField(entitlemententry.FieldMaxStorageMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Features(); ok {
		_spec.SetField(entitlemententry.FieldFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, entitlemententry.FieldFeatures, value)
		})
	}
	if _u.mutation.FeaturesCleared() {
		_spec.ClearField(entitlemententry.FieldFeatures, field.TypeJSON)
	}
	if value, ok := _u.mutation.CachedAt(); ok {
		_spec.SetField(entitlemententry.FieldCachedAt, field.TypeTime, value)
	}
	_node = &EntitlementEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitlemententry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
