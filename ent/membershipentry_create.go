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
)

// MembershipEntryCreate is the builder for creating a MembershipEntry entity.
type MembershipEntryCreate struct {
	config
	mutation *MembershipEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *MembershipEntryCreate) SetTenantID(v string) *MembershipEntryCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MembershipEntryCreate) SetUserID(v string) *MembershipEntryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *MembershipEntryCreate) SetRole(v string) *MembershipEntryCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetCachedAt sets the "cached_at" field.
func (_c *MembershipEntryCreate) SetCachedAt(v time.Time) *MembershipEntryCreate {
	_c.mutation.SetCachedAt(v)
	return _c
}

// SetNillableCachedAt sets the "cached_at" field if the given value is not nil.
func (_c *MembershipEntryCreate) SetNillableCachedAt(v *time.Time) *MembershipEntryCreate {
	if v != nil {
		_c.SetCachedAt(*v)
	}
	return _c
}

// Mutation returns the MembershipEntryMutation object of the builder.
func (_c *MembershipEntryCreate) Mutation() *MembershipEntryMutation {
	return _c.mutation
}

// Save creates the MembershipEntry in the database.
func (_c *MembershipEntryCreate) Save(ctx context.Context) (*MembershipEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MembershipEntryCreate) SaveX(ctx context.Context) *MembershipEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MembershipEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MembershipEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MembershipEntryCreate) defaults() {
	if _, ok := _c.mutation.CachedAt(); !ok {
		v := membershipentry.DefaultCachedAt()
		_c.mutation.SetCachedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MembershipEntryCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "MembershipEntry.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := membershipentry.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "MembershipEntry.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MembershipEntry.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := membershipentry.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MembershipEntry.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "MembershipEntry.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := membershipentry.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "MembershipEntry.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CachedAt(); !ok {
		return &ValidationError{Name: "cached_at", err: errors.New(`ent: missing required field "MembershipEntry.cached_at"`)}
	}
	return nil
}

func (_c *MembershipEntryCreate) sqlSave(ctx context.Context) (*MembershipEntry, error) {
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

func (_c *MembershipEntryCreate) createSpec() (*MembershipEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &MembershipEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(membershipentry.Table, sqlgraph.NewFieldSpec(membershipentry.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(membershipentry.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(membershipentry.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(membershipentry.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.CachedAt(); ok {
		_spec.SetField(membershipentry.FieldCachedAt, field.TypeTime, value)
		_node.CachedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MembershipEntry.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MembershipEntryUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *MembershipEntryCreate) OnConflict(opts ...sql.ConflictOption) *MembershipEntryUpsertOne {
	_c.conflict = opts
	return &MembershipEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MembershipEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MembershipEntryCreate) OnConflictColumns(columns ...string) *MembershipEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MembershipEntryUpsertOne{
		create: _c,
	}
}

type (
	// MembershipEntryUpsertOne is the builder for "upsert"-ing
	//  one MembershipEntry node.
	MembershipEntryUpsertOne struct {
		create *MembershipEntryCreate
	}

	// MembershipEntryUpsert is the "OnConflict" setter.
	MembershipEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetRole sets the "role" field.
func (u *MembershipEntryUpsert) SetRole(v string) *MembershipEntryUpsert {
	u.Set(membershipentry.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *MembershipEntryUpsert) UpdateRole() *MembershipEntryUpsert {
	u.SetExcluded(membershipentry.FieldRole)
	return u
}

// SetCachedAt sets the "cached_at" field.
func (u *MembershipEntryUpsert) SetCachedAt(v time.Time) *MembershipEntryUpsert {
	u.Set(membershipentry.FieldCachedAt, v)
	return u
}

// UpdateCachedAt sets the "cached_at" field to the value that was provided on create.
func (u *MembershipEntryUpsert) UpdateCachedAt() *MembershipEntryUpsert {
	u.SetExcluded(membershipentry.FieldCachedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MembershipEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MembershipEntryUpsertOne) UpdateNewValues() *MembershipEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(membershipentry.FieldTenantID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(membershipentry.FieldUserID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MembershipEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MembershipEntryUpsertOne) Ignore() *MembershipEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MembershipEntryUpsertOne) DoNothing() *MembershipEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MembershipEntryCreate.OnConflict
// documentation for more info.
func (u *MembershipEntryUpsertOne) Update(set func(*MembershipEntryUpsert)) *MembershipEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MembershipEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetRole sets the "role" field.
func (u *MembershipEntryUpsertOne) SetRole(v string) *MembershipEntryUpsertOne {
	return u.Update(func(s *MembershipEntryUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *MembershipEntryUpsertOne) UpdateRole() *MembershipEntryUpsertOne {
	return u.Update(func(s *MembershipEntryUpsert) {
		s.UpdateRole()
	})
}

// SetCachedAt sets the "cached_at" field.
func (u *MembershipEntryUpsertOne) SetCachedAt(v time.Time) *MembershipEntryUpsertOne {
	return u.Update(func(s *MembershipEntryUpsert) {
		s.SetCachedAt(v)
	})
}

// UpdateCachedAt sets the "cached_at" field to the value that was provided on create.
func (u *MembershipEntryUpsertOne) UpdateCachedAt() *MembershipEntryUpsertOne {
	return u.Update(func(s *MembershipEntryUpsert) {
		s.UpdateCachedAt()
	})
}

// Exec executes the query.
func (u *MembershipEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MembershipEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MembershipEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MembershipEntryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MembershipEntryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MembershipEntryCreateBulk is the builder for creating many MembershipEntry entities in bulk.
type MembershipEntryCreateBulk struct {
	config
	err      error
	builders []*MembershipEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the MembershipEntry entities in the database.
func (_c *MembershipEntryCreateBulk) Save(ctx context.Context) ([]*MembershipEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MembershipEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MembershipEntryMutation)
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
func (_c *MembershipEntryCreateBulk) SaveX(ctx context.Context) []*MembershipEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MembershipEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MembershipEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MembershipEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MembershipEntryUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *MembershipEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *MembershipEntryUpsertBulk {
	_c.conflict = opts
	return &MembershipEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MembershipEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MembershipEntryCreateBulk) OnConflictColumns(columns ...string) *MembershipEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MembershipEntryUpsertBulk{
		create: _c,
	}
}

// MembershipEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of MembershipEntry nodes.
type MembershipEntryUpsertBulk struct {
	create *MembershipEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MembershipEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MembershipEntryUpsertBulk) UpdateNewValues() *MembershipEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(membershipentry.FieldTenantID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(membershipentry.FieldUserID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MembershipEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MembershipEntryUpsertBulk) Ignore() *MembershipEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MembershipEntryUpsertBulk) DoNothing() *MembershipEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MembershipEntryCreateBulk.OnConflict
// documentation for more info.
func (u *MembershipEntryUpsertBulk) Update(set func(*MembershipEntryUpsert)) *MembershipEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MembershipEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetRole sets the "role" field.
func (u *MembershipEntryUpsertBulk) SetRole(v string) *MembershipEntryUpsertBulk {
	return u.Update(func(s *MembershipEntryUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *MembershipEntryUpsertBulk) UpdateRole() *MembershipEntryUpsertBulk {
	return u.Update(func(s *MembershipEntryUpsert) {
		s.UpdateRole()
	})
}

// SetCachedAt sets the "cached_at" field.
func (u *MembershipEntryUpsertBulk) SetCachedAt(v time.Time) *MembershipEntryUpsertBulk {
	return u.Update(func(s *MembershipEntryUpsert) {
		s.SetCachedAt(v)
	})
}

// UpdateCachedAt sets the "cached_at" field to the value that was provided on create.
func (u *MembershipEntryUpsertBulk) UpdateCachedAt() *MembershipEntryUpsertBulk {
	return u.Update(func(s *MembershipEntryUpsert) {
		s.UpdateCachedAt()
	})
}

// Exec executes the query.
func (u *MembershipEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MembershipEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MembershipEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MembershipEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
