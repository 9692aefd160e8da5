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
	"workgrid.io/workgrid/ent/sagainstance"
)

// SagaInstanceCreate is the builder for creating a SagaInstance entity.
type SagaInstanceCreate struct {
	config
	mutation *SagaInstanceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SagaInstanceCreate) SetCreatedAt(v time.Time) *SagaInstanceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SagaInstanceCreate) SetNillableCreatedAt(v *time.Time) *SagaInstanceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SagaInstanceCreate) SetUpdatedAt(v time.Time) *SagaInstanceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SagaInstanceCreate) SetNillableUpdatedAt(v *time.Time) *SagaInstanceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSagaType sets the "saga_type" field.
func (_c *SagaInstanceCreate) SetSagaType(v string) *SagaInstanceCreate {
	_c.mutation.SetSagaType(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *SagaInstanceCreate) SetTenantID(v string) *SagaInstanceCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SagaInstanceCreate) SetStatus(v sagainstance.Status) *SagaInstanceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SagaInstanceCreate) SetNillableStatus(v *sagainstance.Status) *SagaInstanceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *SagaInstanceCreate) SetFailureReason(v string) *SagaInstanceCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *SagaInstanceCreate) SetNillableFailureReason(v *string) *SagaInstanceCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *SagaInstanceCreate) SetFinishedAt(v time.Time) *SagaInstanceCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *SagaInstanceCreate) SetNillableFinishedAt(v *time.Time) *SagaInstanceCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SagaInstanceCreate) SetID(v string) *SagaInstanceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SagaInstanceMutation object of the builder.
func (_c *SagaInstanceCreate) Mutation() *SagaInstanceMutation {
	return _c.mutation
}

// Save creates the SagaInstance in the database.
func (_c *SagaInstanceCreate) Save(ctx context.Context) (*SagaInstance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SagaInstanceCreate) SaveX(ctx context.Context) *SagaInstance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SagaInstanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SagaInstanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SagaInstanceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sagainstance.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sagainstance.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := sagainstance.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SagaInstanceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SagaInstance.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SagaInstance.updated_at"`)}
	}
	if _, ok := _c.mutation.SagaType(); !ok {
		return &ValidationError{Name: "saga_type", err: errors.New(`ent: missing required field "SagaInstance.saga_type"`)}
	}
	if v, ok := _c.mutation.SagaType(); ok {
		if err := sagainstance.SagaTypeValidator(v); err != nil {
			return &ValidationError{Name: "saga_type", err: fmt.Errorf(`ent: validator failed for field "SagaInstance.saga_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "SagaInstance.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := sagainstance.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "SagaInstance.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SagaInstance.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sagainstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SagaInstance.status": %w`, err)}
		}
	}
	return nil
}

func (_c *SagaInstanceCreate) sqlSave(ctx context.Context) (*SagaInstance, error) {
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
			return nil, fmt.Errorf("unexpected SagaInstance.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SagaInstanceCreate) createSpec() (*SagaInstance, *sqlgraph.CreateSpec) {
	var (
		_node = &SagaInstance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sagainstance.Table, sqlgraph.NewFieldSpec(sagainstance.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sagainstance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sagainstance.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SagaType(); ok {
		_spec.SetField(sagainstance.FieldSagaType, field.TypeString, value)
		_node.SagaType = value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(sagainstance.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sagainstance.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(sagainstance.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(sagainstance.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SagaInstance.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SagaInstanceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SagaInstanceCreate) OnConflict(opts ...sql.ConflictOption) *SagaInstanceUpsertOne {
	_c.conflict = opts
	return &SagaInstanceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SagaInstance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SagaInstanceCreate) OnConflictColumns(columns ...string) *SagaInstanceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SagaInstanceUpsertOne{
		create: _c,
	}
}

type (
	// SagaInstanceUpsertOne is the builder for "upsert"-ing
	//  one SagaInstance node.
	SagaInstanceUpsertOne struct {
		create *SagaInstanceCreate
	}

	// SagaInstanceUpsert is the "OnConflict" setter.
	SagaInstanceUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SagaInstanceUpsert) SetUpdatedAt(v time.Time) *SagaInstanceUpsert {
	u.Set(sagainstance.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SagaInstanceUpsert) UpdateUpdatedAt() *SagaInstanceUpsert {
	u.SetExcluded(sagainstance.FieldUpdatedAt)
	return u
}

// SetStatus sets the "status" field.
func (u *SagaInstanceUpsert) SetStatus(v sagainstance.Status) *SagaInstanceUpsert {
	u.Set(sagainstance.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SagaInstanceUpsert) UpdateStatus() *SagaInstanceUpsert {
	u.SetExcluded(sagainstance.FieldStatus)
	return u
}

// SetFailureReason sets the "failure_reason" field.
func (u *SagaInstanceUpsert) SetFailureReason(v string) *SagaInstanceUpsert {
	u.Set(sagainstance.FieldFailureReason, v)
	return u
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *SagaInstanceUpsert) UpdateFailureReason() *SagaInstanceUpsert {
	u.SetExcluded(sagainstance.FieldFailureReason)
	return u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *SagaInstanceUpsert) ClearFailureReason() *SagaInstanceUpsert {
	u.SetNull(sagainstance.FieldFailureReason)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *SagaInstanceUpsert) SetFinishedAt(v time.Time) *SagaInstanceUpsert {
	u.Set(sagainstance.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *SagaInstanceUpsert) UpdateFinishedAt() *SagaInstanceUpsert {
	u.SetExcluded(sagainstance.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *SagaInstanceUpsert) ClearFinishedAt() *SagaInstanceUpsert {
	u.SetNull(sagainstance.FieldFinishedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SagaInstance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sagainstance.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SagaInstanceUpsertOne) UpdateNewValues() *SagaInstanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sagainstance.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sagainstance.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SagaType(); exists {
			s.SetIgnore(sagainstance.FieldSagaType)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(sagainstance.FieldTenantID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SagaInstance.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SagaInstanceUpsertOne) Ignore() *SagaInstanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SagaInstanceUpsertOne) DoNothing() *SagaInstanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SagaInstanceCreate.OnConflict
// documentation for more info.
func (u *SagaInstanceUpsertOne) Update(set func(*SagaInstanceUpsert)) *SagaInstanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SagaInstanceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SagaInstanceUpsertOne) SetUpdatedAt(v time.Time) *SagaInstanceUpsertOne {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SagaInstanceUpsertOne) UpdateUpdatedAt() *SagaInstanceUpsertOne {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStatus sets the "status" field.
func (u *SagaInstanceUpsertOne) SetStatus(v sagainstance.Status) *SagaInstanceUpsertOne {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SagaInstanceUpsertOne) UpdateStatus() *SagaInstanceUpsertOne {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.UpdateStatus()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *SagaInstanceUpsertOne) SetFailureReason(v string) *SagaInstanceUpsertOne {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *SagaInstanceUpsertOne) UpdateFailureReason() *SagaInstanceUpsertOne {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *SagaInstanceUpsertOne) ClearFailureReason() *SagaInstanceUpsertOne {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.ClearFailureReason()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *SagaInstanceUpsertOne) SetFinishedAt(v time.Time) *SagaInstanceUpsertOne {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *SagaInstanceUpsertOne) UpdateFinishedAt() *SagaInstanceUpsertOne {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *SagaInstanceUpsertOne) ClearFinishedAt() *SagaInstanceUpsertOne {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *SagaInstanceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SagaInstanceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SagaInstanceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SagaInstanceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SagaInstanceUpsertOne.ID is not supported by MySQL driver. Use SagaInstanceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SagaInstanceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SagaInstanceCreateBulk is the builder for creating many SagaInstance entities in bulk.
type SagaInstanceCreateBulk struct {
	config
	err      error
	builders []*SagaInstanceCreate
	conflict []sql.ConflictOption
}

// Save creates the SagaInstance entities in the database.
func (_c *SagaInstanceCreateBulk) Save(ctx context.Context) ([]*SagaInstance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SagaInstance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SagaInstanceMutation)
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
func (_c *SagaInstanceCreateBulk) SaveX(ctx context.Context) []*SagaInstance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SagaInstanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SagaInstanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SagaInstance.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SagaInstanceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SagaInstanceCreateBulk) OnConflict(opts ...sql.ConflictOption) *SagaInstanceUpsertBulk {
	_c.conflict = opts
	return &SagaInstanceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SagaInstance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SagaInstanceCreateBulk) OnConflictColumns(columns ...string) *SagaInstanceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SagaInstanceUpsertBulk{
		create: _c,
	}
}

// SagaInstanceUpsertBulk is the builder for "upsert"-ing
// a bulk of SagaInstance nodes.
type SagaInstanceUpsertBulk struct {
	create *SagaInstanceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SagaInstance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sagainstance.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SagaInstanceUpsertBulk) UpdateNewValues() *SagaInstanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sagainstance.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sagainstance.FieldCreatedAt)
			}
			if _, exists := b.mutation.SagaType(); exists {
				s.SetIgnore(sagainstance.FieldSagaType)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(sagainstance.FieldTenantID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SagaInstance.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SagaInstanceUpsertBulk) Ignore() *SagaInstanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SagaInstanceUpsertBulk) DoNothing() *SagaInstanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SagaInstanceCreateBulk.OnConflict
// documentation for more info.
func (u *SagaInstanceUpsertBulk) Update(set func(*SagaInstanceUpsert)) *SagaInstanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SagaInstanceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SagaInstanceUpsertBulk) SetUpdatedAt(v time.Time) *SagaInstanceUpsertBulk {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SagaInstanceUpsertBulk) UpdateUpdatedAt() *SagaInstanceUpsertBulk {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStatus sets the "status" field.
func (u *SagaInstanceUpsertBulk) SetStatus(v sagainstance.Status) *SagaInstanceUpsertBulk {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SagaInstanceUpsertBulk) UpdateStatus() *SagaInstanceUpsertBulk {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.UpdateStatus()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *SagaInstanceUpsertBulk) SetFailureReason(v string) *SagaInstanceUpsertBulk {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *SagaInstanceUpsertBulk) UpdateFailureReason() *SagaInstanceUpsertBulk {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *SagaInstanceUpsertBulk) ClearFailureReason() *SagaInstanceUpsertBulk {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.ClearFailureReason()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *SagaInstanceUpsertBulk) SetFinishedAt(v time.Time) *SagaInstanceUpsertBulk {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *SagaInstanceUpsertBulk) UpdateFinishedAt() *SagaInstanceUpsertBulk {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *SagaInstanceUpsertBulk) ClearFinishedAt() *SagaInstanceUpsertBulk {
	return u.Update(func(s *SagaInstanceUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *SagaInstanceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SagaInstanceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SagaInstanceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SagaInstanceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
