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
	"workgrid.io/workgrid/ent/entitlemententry"
)

// EntitlementEntryCreate is the builder for creating a EntitlementEntry entity.
type EntitlementEntryCreate struct {
	config
	mutation *EntitlementEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *EntitlementEntryCreate) SetTenantID(v string) *EntitlementEntryCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetMaxProjects sets the "max_projects" field.
func (_c *EntitlementEntryCreate) SetMaxProjects(v int) *EntitlementEntryCreate {
	_c.mutation.SetMaxProjects(v)
	return _c
}

// SetMaxMembers sets the "max_members" field.
func (_c *EntitlementEntryCreate) SetMaxMembers(v int) *EntitlementEntryCreate {
	_c.mutation.SetMaxMembers(v)
	return _c
}

// SetMaxStorageMB sets the "max_storage_mb" field.
func (_c *EntitlementEntryCreate) SetMaxStorageMB(v int) *EntitlementEntryCreate {
	_c.mutation.SetMaxStorageMB(v)
	return _c
}

// SetFeatures sets the "features" field.
func (_c *EntitlementEntryCreate) SetFeatures(v []string) *EntitlementEntryCreate {
	_c.mutation.SetFeatures(v)
	return _c
}

// SetCachedAt sets the "cached_at" field.
func (_c *EntitlementEntryCreate) SetCachedAt(v time.Time) *EntitlementEntryCreate {
	_c.mutation.SetCachedAt(v)
	return _c
}

// SetNillableCachedAt sets the "cached_at" field if the given value is not nil.
func (_c *EntitlementEntryCreate) SetNillableCachedAt(v *time.Time) *EntitlementEntryCreate {
	if v != nil {
		_c.SetCachedAt(*v)
	}
	return _c
}

// Mutation returns the EntitlementEntryMutation object of the builder.
func (_c *EntitlementEntryCreate) Mutation() *EntitlementEntryMutation {
	return _c.mutation
}

// Save creates the EntitlementEntry in the database.
func (_c *EntitlementEntryCreate) Save(ctx context.Context) (*EntitlementEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntitlementEntryCreate) SaveX(ctx context.Context) *EntitlementEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntitlementEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntitlementEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntitlementEntryCreate) defaults() {
	if _, ok := _c.mutation.CachedAt(); !ok {
		v := entitlemententry.DefaultCachedAt()
		_c.mutation.SetCachedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntitlementEntryCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "EntitlementEntry.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := entitlemententry.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "EntitlementEntry.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxProjects(); !ok {
		return &ValidationError{Name: "max_projects", err: errors.New(`ent: missing required field "EntitlementEntry.max_projects"`)}
	}
	if v, ok := _c.mutation.MaxProjects(); ok {
		if err := entitlemententry.MaxProjectsValidator(v); err != nil {
			return &ValidationError{Name: "max_projects", err: fmt.Errorf(`ent: validator failed for field "EntitlementEntry.max_projects": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxMembers(); !ok {
		return &ValidationError{Name: "max_members", err: errors.New(`ent: missing required field "EntitlementEntry.max_members"`)}
	}
	if v, ok := _c.mutation.MaxMembers(); ok {
		if err := entitlemententry.MaxMembersValidator(v); err != nil {
			return &ValidationError{Name: "max_members", err: fmt.Errorf(`ent: validator failed for field "EntitlementEntry.max_members": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxStorageMB(); !ok {
		return &ValidationError{Name: "max_storage_mb", err: errors.New(`ent: missing required field "EntitlementEntry.max_storage_mb"`)}
	}
	if v, ok := _c.mutation.MaxStorageMB(); ok {
		if err := entitlemententry.MaxStorageMBValidator(v); err != nil {
			return &ValidationError{Name: "max_storage_mb", err: fmt.Errorf(`ent: validator failed for field "EntitlementEntry.max_storage_mb": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CachedAt(); !ok {
		return &ValidationError{Name: "cached_at", err: errors.New(`ent: missing required field "EntitlementEntry.cached_at"`)}
	}
	return nil
}

func (_c *EntitlementEntryCreate) sqlSave(ctx context.Context) (*EntitlementEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntitlementEntryCreate) createSpec() (*EntitlementEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &EntitlementEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entitlemententry.Table, sqlgraph.NewFieldSpec(entitlemententry.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(entitlemententry.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.MaxProjects(); ok {
		_spec.SetField(entitlemententry.FieldMaxProjects, field.TypeInt, value)
		_node.MaxProjects = value
	}
	if value, ok := _c.mutation.MaxMembers(); ok {
		_spec.SetField(entitlemententry.FieldMaxMembers, field.TypeInt, value)
		_node.MaxMembers = value
	}
	if value, ok := _c.mutation.MaxStorageMB(); ok {
		_spec.SetField(entitlemententry.FieldMaxStorageMB, field.TypeInt, value)
		_node.MaxStorageMB = value
	}
	if value, ok := _c.mutation.Features(); ok {
		_spec.SetField(entitlemententry.FieldFeatures, field.TypeJSON, value)
		_node.Features = value
	}
	if value, ok := _c.mutation.CachedAt(); ok {
		_spec.SetField(entitlemententry.FieldCachedAt, field.TypeTime, value)
		_node.CachedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntitlementEntry.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntitlementEntryUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *EntitlementEntryCreate) OnConflict(opts ...sql.ConflictOption) *EntitlementEntryUpsertOne {
	_c.conflict = opts
	return &EntitlementEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntitlementEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntitlementEntryCreate) OnConflictColumns(columns ...string) *EntitlementEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntitlementEntryUpsertOne{
		create: _c,
	}
}

type (
	// EntitlementEntryUpsertOne is the builder for "upsert"-ing
	//  one EntitlementEntry node.
	EntitlementEntryUpsertOne struct {
		create *EntitlementEntryCreate
	}

	// EntitlementEntryUpsert is the "OnConflict" setter.
	EntitlementEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetMaxProjects sets the "max_projects" field.
func (u *EntitlementEntryUpsert) SetMaxProjects(v int) *EntitlementEntryUpsert {
	u.Set(entitlemententry.FieldMaxProjects, v)
	return u
}

// UpdateMaxProjects sets the "max_projects" field to the value that was provided on create.
func (u *EntitlementEntryUpsert) UpdateMaxProjects() *EntitlementEntryUpsert {
	u.SetExcluded(entitlemententry.FieldMaxProjects)
	return u
}

// AddMaxProjects adds v to the "max_projects" field.
func (u *EntitlementEntryUpsert) AddMaxProjects(v int) *EntitlementEntryUpsert {
	u.Add(entitlemententry.FieldMaxProjects, v)
	return u
}

// SetMaxMembers sets the "max_members" field.
func (u *EntitlementEntryUpsert) SetMaxMembers(v int) *EntitlementEntryUpsert {
	u.Set(entitlemententry.FieldMaxMembers, v)
	return u
}

// UpdateMaxMembers sets the "max_members" field to the value that was provided on create.
func (u *EntitlementEntryUpsert) UpdateMaxMembers() *EntitlementEntryUpsert {
	u.SetExcluded(entitlemententry.FieldMaxMembers)
	return u
}

// AddMaxMembers adds v to the "max_members" field.
func (u *EntitlementEntryUpsert) AddMaxMembers(v int) *EntitlementEntryUpsert {
	u.Add(entitlemententry.FieldMaxMembers, v)
	return u
}

// SetMaxStorageMB sets the "max_storage_mb" field.
func (u *EntitlementEntryUpsert) SetMaxStorageMB(v int) *EntitlementEntryUpsert {
	u.Set(entitlemententry.FieldMaxStorageMB, v)
	return u
}

// UpdateMaxStorageMB sets the "max_storage_mb" field to the value that was provided on create.
func (u *EntitlementEntryUpsert) UpdateMaxStorageMB() *EntitlementEntryUpsert {
	u.SetExcluded(entitlemententry.FieldMaxStorageMB)
	return u
}

// AddMaxStorageMB adds v to the "max_storage_mb" field.
func (u *EntitlementEntryUpsert) AddMaxStorageMB(v int) *EntitlementEntryUpsert {
	u.Add(entitlemententry.FieldMaxStorageMB, v)
	return u
}

// SetFeatures sets the "features" field.
func (u *EntitlementEntryUpsert) SetFeatures(v []string) *EntitlementEntryUpsert {
	u.Set(entitlemententry.FieldFeatures, v)
	return u
}

// UpdateFeatures sets the "features" field to the value that was provided on create.
func (u *EntitlementEntryUpsert) UpdateFeatures() *EntitlementEntryUpsert {
	u.SetExcluded(entitlemententry.FieldFeatures)
	return u
}

// ClearFeatures clears the value of the "features" field.
func (u *EntitlementEntryUpsert) ClearFeatures() *EntitlementEntryUpsert {
	u.SetNull(entitlemententry.FieldFeatures)
	return u
}

// SetCachedAt sets the "cached_at" field.
func (u *EntitlementEntryUpsert) SetCachedAt(v time.Time) *EntitlementEntryUpsert {
	u.Set(entitlemententry.FieldCachedAt, v)
	return u
}

// UpdateCachedAt sets the "cached_at" field to the value that was provided on create.
func (u *EntitlementEntryUpsert) UpdateCachedAt() *EntitlementEntryUpsert {
	u.SetExcluded(entitlemententry.FieldCachedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.EntitlementEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EntitlementEntryUpsertOne) UpdateNewValues() *EntitlementEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(entitlemententry.FieldTenantID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntitlementEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EntitlementEntryUpsertOne) Ignore() *EntitlementEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntitlementEntryUpsertOne) DoNothing() *EntitlementEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntitlementEntryCreate.OnConflict
// documentation for more info.
func (u *EntitlementEntryUpsertOne) Update(set func(*EntitlementEntryUpsert)) *EntitlementEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntitlementEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetMaxProjects sets the "max_projects" field.
func (u *EntitlementEntryUpsertOne) SetMaxProjects(v int) *EntitlementEntryUpsertOne {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.SetMaxProjects(v)
	})
}

// AddMaxProjects adds v to the "max_projects" field.
func (u *EntitlementEntryUpsertOne) AddMaxProjects(v int) *EntitlementEntryUpsertOne {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.AddMaxProjects(v)
	})
}

// UpdateMaxProjects sets the "max_projects" field to the value that was provided on create.
func (u *EntitlementEntryUpsertOne) UpdateMaxProjects() *EntitlementEntryUpsertOne {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.UpdateMaxProjects()
	})
}

// SetMaxMembers sets the "max_members" field.
func (u *EntitlementEntryUpsertOne) SetMaxMembers(v int) *EntitlementEntryUpsertOne {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.SetMaxMembers(v)
	})
}

// AddMaxMembers adds v to the "max_members" field.
func (u *EntitlementEntryUpsertOne) AddMaxMembers(v int) *EntitlementEntryUpsertOne {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.AddMaxMembers(v)
	})
}

// UpdateMaxMembers sets the "max_members" field to the value that was provided on create.
func (u *EntitlementEntryUpsertOne) UpdateMaxMembers() *EntitlementEntryUpsertOne {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.UpdateMaxMembers()
	})
}

// SetMaxStorageMB sets the "max_storage_mb" field.
func (u *EntitlementEntryUpsertOne) SetMaxStorageMB(v int) *EntitlementEntryUpsertOne {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.SetMaxStorageMB(v)
	})
}

// AddMaxStorageMB adds v to the "max_storage_mb" field.
func (u *EntitlementEntryUpsertOne) AddMaxStorageMB(v int) *EntitlementEntryUpsertOne {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.AddMaxStorageMB(v)
	})
}

// UpdateMaxStorageMB sets the "max_storage_mb" field to the value that was provided on create.
func (u *EntitlementEntryUpsertOne) UpdateMaxStorageMB() *EntitlementEntryUpsertOne {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.UpdateMaxStorageMB()
	})
}

// SetFeatures sets the "features" field.
func (u *EntitlementEntryUpsertOne) SetFeatures(v []string) *EntitlementEntryUpsertOne {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.SetFeatures(v)
	})
}

// UpdateFeatures sets the "features" field to the value that was provided on create.
func (u *EntitlementEntryUpsertOne) UpdateFeatures() *EntitlementEntryUpsertOne {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.UpdateFeatures()
	})
}

// ClearFeatures clears the value of the "features" field.
func (u *EntitlementEntryUpsertOne) ClearFeatures() *EntitlementEntryUpsertOne {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.ClearFeatures()
	})
}

// SetCachedAt sets the "cached_at" field.
func (u *EntitlementEntryUpsertOne) SetCachedAt(v time.Time) *EntitlementEntryUpsertOne {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.SetCachedAt(v)
	})
}

// UpdateCachedAt sets the "cached_at" field to the value that was provided on create.
func (u *EntitlementEntryUpsertOne) UpdateCachedAt() *EntitlementEntryUpsertOne {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.UpdateCachedAt()
	})
}

// Exec executes the query.
func (u *EntitlementEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntitlementEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntitlementEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EntitlementEntryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EntitlementEntryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EntitlementEntryCreateBulk is the builder for creating many EntitlementEntry entities in bulk.
type EntitlementEntryCreateBulk struct {
	config
	err      error
	builders []*EntitlementEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the EntitlementEntry entities in the database.
func (_c *EntitlementEntryCreateBulk) Save(ctx context.Context) ([]*EntitlementEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntitlementEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntitlementEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EntitlementEntryCreateBulk) SaveX(ctx context.Context) []*EntitlementEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntitlementEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntitlementEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntitlementEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntitlementEntryUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *EntitlementEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *EntitlementEntryUpsertBulk {
	_c.conflict = opts
	return &EntitlementEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntitlementEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntitlementEntryCreateBulk) OnConflictColumns(columns ...string) *EntitlementEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntitlementEntryUpsertBulk{
		create: _c,
	}
}

// EntitlementEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of EntitlementEntry nodes.
type EntitlementEntryUpsertBulk struct {
	create *EntitlementEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EntitlementEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EntitlementEntryUpsertBulk) UpdateNewValues() *EntitlementEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(entitlemententry.FieldTenantID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntitlementEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EntitlementEntryUpsertBulk) Ignore() *EntitlementEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntitlementEntryUpsertBulk) DoNothing() *EntitlementEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntitlementEntryCreateBulk.OnConflict
// documentation for more info.
func (u *EntitlementEntryUpsertBulk) Update(set func(*EntitlementEntryUpsert)) *EntitlementEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntitlementEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetMaxProjects sets the "max_projects" field.
func (u *EntitlementEntryUpsertBulk) SetMaxProjects(v int) *EntitlementEntryUpsertBulk {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.SetMaxProjects(v)
	})
}

// AddMaxProjects adds v to the "max_projects" field.
func (u *EntitlementEntryUpsertBulk) AddMaxProjects(v int) *EntitlementEntryUpsertBulk {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.AddMaxProjects(v)
	})
}

// UpdateMaxProjects sets the "max_projects" field to the value that was provided on create.
func (u *EntitlementEntryUpsertBulk) UpdateMaxProjects() *EntitlementEntryUpsertBulk {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.UpdateMaxProjects()
	})
}

// SetMaxMembers sets the "max_members" field.
func (u *EntitlementEntryUpsertBulk) SetMaxMembers(v int) *EntitlementEntryUpsertBulk {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.SetMaxMembers(v)
	})
}

// AddMaxMembers adds v to the "max_members" field.
func (u *EntitlementEntryUpsertBulk) AddMaxMembers(v int) *EntitlementEntryUpsertBulk {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.AddMaxMembers(v)
	})
}

// UpdateMaxMembers sets the "max_members" field to the value that was provided on create.
func (u *EntitlementEntryUpsertBulk) UpdateMaxMembers() *EntitlementEntryUpsertBulk {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.UpdateMaxMembers()
	})
}

// SetMaxStorageMB sets the "max_storage_mb" field.
func (u *EntitlementEntryUpsertBulk) SetMaxStorageMB(v int) *EntitlementEntryUpsertBulk {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.SetMaxStorageMB(v)
	})
}

// AddMaxStorageMB adds v to the "max_storage_mb" field.
func (u *EntitlementEntryUpsertBulk) AddMaxStorageMB(v int) *EntitlementEntryUpsertBulk {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.AddMaxStorageMB(v)
	})
}

// UpdateMaxStorageMB sets the "max_storage_mb" field to the value that was provided on create.
func (u *EntitlementEntryUpsertBulk) UpdateMaxStorageMB() *EntitlementEntryUpsertBulk {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.UpdateMaxStorageMB()
	})
}

// SetFeatures sets the "features" field.
func (u *EntitlementEntryUpsertBulk) SetFeatures(v []string) *EntitlementEntryUpsertBulk {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.SetFeatures(v)
	})
}

// UpdateFeatures sets the "features" field to the value that was provided on create.
func (u *EntitlementEntryUpsertBulk) UpdateFeatures() *EntitlementEntryUpsertBulk {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.UpdateFeatures()
	})
}

// ClearFeatures clears the value of the "features" field.
func (u *EntitlementEntryUpsertBulk) ClearFeatures() *EntitlementEntryUpsertBulk {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.ClearFeatures()
	})
}

// SetCachedAt sets the "cached_at" field.
func (u *EntitlementEntryUpsertBulk) SetCachedAt(v time.Time) *EntitlementEntryUpsertBulk {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.SetCachedAt(v)
	})
}

// UpdateCachedAt sets the "cached_at" field to the value that was provided on create.
func (u *EntitlementEntryUpsertBulk) UpdateCachedAt() *EntitlementEntryUpsertBulk {
	return u.Update(func(s *EntitlementEntryUpsert) {
		s.UpdateCachedAt()
	})
}

// Exec executes the query.
func (u *EntitlementEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EntitlementEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntitlementEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntitlementEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
