// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"workgrid.io/workgrid/ent/entitlementdiscrepancy"
)

// EntitlementDiscrepancyCreate is the builder for creating a EntitlementDiscrepancy entity.
type EntitlementDiscrepancyCreate struct {
	config
	mutation *EntitlementDiscrepancyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntitlementDiscrepancyCreate) SetCreatedAt(v time.Time) *EntitlementDiscrepancyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntitlementDiscrepancyCreate) SetNillableCreatedAt(v *time.Time) *EntitlementDiscrepancyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *EntitlementDiscrepancyCreate) SetTenantID(v string) *EntitlementDiscrepancyCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetOperation sets the "operation" field.
func (_c *EntitlementDiscrepancyCreate) SetOperation(v string) *EntitlementDiscrepancyCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetReconciled sets the "reconciled" field.
func (_c *EntitlementDiscrepancyCreate) SetReconciled(v bool) *EntitlementDiscrepancyCreate {
	_c.mutation.SetReconciled(v)
	return _c
}

// SetNillableReconciled sets the "reconciled" field if the given value is not nil.
func (_c *EntitlementDiscrepancyCreate) SetNillableReconciled(v *bool) *EntitlementDiscrepancyCreate {
	if v != nil {
		_c.SetReconciled(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntitlementDiscrepancyCreate) SetID(v string) *EntitlementDiscrepancyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EntitlementDiscrepancyMutation object of the builder.
func (_c *EntitlementDiscrepancyCreate) Mutation() *EntitlementDiscrepancyMutation {
	return _c.mutation
}

// Save creates the EntitlementDiscrepancy in the database.
func (_c *EntitlementDiscrepancyCreate) Save(ctx context.Context) (*EntitlementDiscrepancy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntitlementDiscrepancyCreate) SaveX(ctx context.Context) *EntitlementDiscrepancy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntitlementDiscrepancyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntitlementDiscrepancyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntitlementDiscrepancyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entitlementdiscrepancy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Reconciled(); !ok {
		v := entitlementdiscrepancy.DefaultReconciled
		_c.mutation.SetReconciled(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntitlementDiscrepancyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EntitlementDiscrepancy.created_at"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "EntitlementDiscrepancy.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := entitlementdiscrepancy.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "EntitlementDiscrepancy.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "EntitlementDiscrepancy.operation"`)}
	}
	if v, ok := _c.mutation.Operation(); ok {
		if err := entitlementdiscrepancy.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "EntitlementDiscrepancy.operation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reconciled(); !ok {
		return &ValidationError{Name: "reconciled", err: errors.New(`ent: missing required field "EntitlementDiscrepancy.reconciled"`)}
	}
	return nil
}

func (_c *EntitlementDiscrepancyCreate) sqlSave(ctx context.Context) (*EntitlementDiscrepancy, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected EntitlementDiscrepancy.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntitlementDiscrepancyCreate) createSpec() (*EntitlementDiscrepancy, *sqlgraph.CreateSpec) {
	var (
		_node = &EntitlementDiscrepancy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entitlementdiscrepancy.Table, sqlgraph.NewFieldSpec(entitlementdiscrepancy.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entitlementdiscrepancy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(entitlementdiscrepancy.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(entitlementdiscrepancy.FieldOperation, field.TypeString, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.Reconciled(); ok {
		_spec.SetField(entitlementdiscrepancy.FieldReconciled, field.TypeBool, value)
		_node.Reconciled = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntitlementDiscrepancy.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntitlementDiscrepancyUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EntitlementDiscrepancyCreate) OnConflict(opts ...sql.ConflictOption) *EntitlementDiscrepancyUpsertOne {
	_c.conflict = opts
	return &EntitlementDiscrepancyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntitlementDiscrepancy.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntitlementDiscrepancyCreate) OnConflictColumns(columns ...string) *EntitlementDiscrepancyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntitlementDiscrepancyUpsertOne{
		create: _c,
	}
}

type (
	// EntitlementDiscrepancyUpsertOne is the builder for "upsert"-ing
	//  one EntitlementDiscrepancy node.
	EntitlementDiscrepancyUpsertOne struct {
		create *EntitlementDiscrepancyCreate
	}

	// EntitlementDiscrepancyUpsert is the "OnConflict" setter.
	EntitlementDiscrepancyUpsert struct {
		*sql.UpdateSet
	}
)

// SetReconciled sets the "reconciled" field.
func (u *EntitlementDiscrepancyUpsert) SetReconciled(v bool) *EntitlementDiscrepancyUpsert {
	u.Set(entitlementdiscrepancy.FieldReconciled, v)
	return u
}

// UpdateReconciled sets the "reconciled" field to the value that was provided on create.
func (u *EntitlementDiscrepancyUpsert) UpdateReconciled() *EntitlementDiscrepancyUpsert {
	u.SetExcluded(entitlementdiscrepancy.FieldReconciled)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EntitlementDiscrepancy.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entitlementdiscrepancy.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntitlementDiscrepancyUpsertOne) UpdateNewValues() *EntitlementDiscrepancyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(entitlementdiscrepancy.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(entitlementdiscrepancy.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(entitlementdiscrepancy.FieldTenantID)
		}
		if _, exists := u.create.mutation.Operation(); exists {
			s.SetIgnore(entitlementdiscrepancy.FieldOperation)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntitlementDiscrepancy.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EntitlementDiscrepancyUpsertOne) Ignore() *EntitlementDiscrepancyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntitlementDiscrepancyUpsertOne) DoNothing() *EntitlementDiscrepancyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntitlementDiscrepancyCreate.OnConflict
// documentation for more info.
func (u *EntitlementDiscrepancyUpsertOne) Update(set func(*EntitlementDiscrepancyUpsert)) *EntitlementDiscrepancyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntitlementDiscrepancyUpsert{UpdateSet: update})
	}))
	return u
}

// SetReconciled sets the "reconciled" field.
func (u *EntitlementDiscrepancyUpsertOne) SetReconciled(v bool) *EntitlementDiscrepancyUpsertOne {
	return u.Update(func(s *EntitlementDiscrepancyUpsert) {
		s.SetReconciled(v)
	})
}

// UpdateReconciled sets the "reconciled" field to the value that was provided on create.
func (u *EntitlementDiscrepancyUpsertOne) UpdateReconciled() *EntitlementDiscrepancyUpsertOne {
	return u.Update(func(s *EntitlementDiscrepancyUpsert) {
		s.UpdateReconciled()
	})
}

// Exec executes the query.
func (u *EntitlementDiscrepancyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntitlementDiscrepancyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntitlementDiscrepancyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EntitlementDiscrepancyUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EntitlementDiscrepancyUpsertOne.ID is not supported by MySQL driver. Use EntitlementDiscrepancyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EntitlementDiscrepancyUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EntitlementDiscrepancyCreateBulk is the builder for creating many EntitlementDiscrepancy entities in bulk.
type EntitlementDiscrepancyCreateBulk struct {
	config
	err      error
	builders []*EntitlementDiscrepancyCreate
	conflict []sql.ConflictOption
}

// Save creates the EntitlementDiscrepancy entities in the database.
func (_c *EntitlementDiscrepancyCreateBulk) Save(ctx context.Context) ([]*EntitlementDiscrepancy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntitlementDiscrepancy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntitlementDiscrepancyMutation)
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
func (_c *EntitlementDiscrepancyCreateBulk) SaveX(ctx context.Context) []*EntitlementDiscrepancy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntitlementDiscrepancyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntitlementDiscrepancyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntitlementDiscrepancy.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntitlementDiscrepancyUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EntitlementDiscrepancyCreateBulk) OnConflict(opts ...sql.ConflictOption) *EntitlementDiscrepancyUpsertBulk {
	_c.conflict = opts
	return &EntitlementDiscrepancyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntitlementDiscrepancy.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntitlementDiscrepancyCreateBulk) OnConflictColumns(columns ...string) *EntitlementDiscrepancyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntitlementDiscrepancyUpsertBulk{
		create: _c,
	}
}

// EntitlementDiscrepancyUpsertBulk is the builder for "upsert"-ing
// a bulk of EntitlementDiscrepancy nodes.
type EntitlementDiscrepancyUpsertBulk struct {
	create *EntitlementDiscrepancyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EntitlementDiscrepancy.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entitlementdiscrepancy.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntitlementDiscrepancyUpsertBulk) UpdateNewValues() *EntitlementDiscrepancyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(entitlementdiscrepancy.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(entitlementdiscrepancy.FieldCreatedAt)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(entitlementdiscrepancy.FieldTenantID)
			}
			if _, exists := b.mutation.Operation(); exists {
				s.SetIgnore(entitlementdiscrepancy.FieldOperation)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntitlementDiscrepancy.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EntitlementDiscrepancyUpsertBulk) Ignore() *EntitlementDiscrepancyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntitlementDiscrepancyUpsertBulk) DoNothing() *EntitlementDiscrepancyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntitlementDiscrepancyCreateBulk.OnConflict
// documentation for more info.
func (u *EntitlementDiscrepancyUpsertBulk) Update(set func(*EntitlementDiscrepancyUpsert)) *EntitlementDiscrepancyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntitlementDiscrepancyUpsert{UpdateSet: update})
	}))
	return u
}

// SetReconciled sets the "reconciled" field.
func (u *EntitlementDiscrepancyUpsertBulk) SetReconciled(v bool) *EntitlementDiscrepancyUpsertBulk {
	return u.Update(func(s *EntitlementDiscrepancyUpsert) {
		s.SetReconciled(v)
	})
}

// UpdateReconciled sets the "reconciled" field to the value that was provided on create.
func (u *EntitlementDiscrepancyUpsertBulk) UpdateReconciled() *EntitlementDiscrepancyUpsertBulk {
	return u.Update(func(s *EntitlementDiscrepancyUpsert) {
		s.UpdateReconciled()
	})
}

// Exec executes the query.
func (u *EntitlementDiscrepancyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EntitlementDiscrepancyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntitlementDiscrepancyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntitlementDiscrepancyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
