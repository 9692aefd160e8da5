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
	"workgrid.io/workgrid/ent/sagastep"
)

// SagaStepCreate is the builder for creating a SagaStep entity.
type SagaStepCreate struct {
	config
	mutation *SagaStepMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SagaStepCreate) SetCreatedAt(v time.Time) *SagaStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SagaStepCreate) SetNillableCreatedAt(v *time.Time) *SagaStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SagaStepCreate) SetUpdatedAt(v time.Time) *SagaStepCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SagaStepCreate) SetNillableUpdatedAt(v *time.Time) *SagaStepCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSagaID sets the "saga_id" field.
func (_c *SagaStepCreate) SetSagaID(v string) *SagaStepCreate {
	_c.mutation.SetSagaID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *SagaStepCreate) SetSeq(v int) *SagaStepCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SagaStepCreate) SetName(v string) *SagaStepCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetParticipant sets the "participant" field.
func (_c *SagaStepCreate) SetParticipant(v string) *SagaStepCreate {
	_c.mutation.SetParticipant(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SagaStepCreate) SetStatus(v sagastep.Status) *SagaStepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SagaStepCreate) SetNillableStatus(v *sagastep.Status) *SagaStepCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SagaStepCreate) SetCompletedAt(v time.Time) *SagaStepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SagaStepCreate) SetNillableCompletedAt(v *time.Time) *SagaStepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCompensationPayload sets the "compensation_payload" field.
func (_c *SagaStepCreate) SetCompensationPayload(v []byte) *SagaStepCreate {
	_c.mutation.SetCompensationPayload(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SagaStepCreate) SetID(v string) *SagaStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SagaStepMutation object of the builder.
func (_c *SagaStepCreate) Mutation() *SagaStepMutation {
	return _c.mutation
}

// Save creates the SagaStep in the database.
func (_c *SagaStepCreate) Save(ctx context.Context) (*SagaStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SagaStepCreate) SaveX(ctx context.Context) *SagaStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SagaStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SagaStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SagaStepCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sagastep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sagastep.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := sagastep.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SagaStepCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SagaStep.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SagaStep.updated_at"`)}
	}
	if _, ok := _c.mutation.SagaID(); !ok {
		return &ValidationError{Name: "saga_id", err: errors.New(`ent: missing required field "SagaStep.saga_id"`)}
	}
	if v, ok := _c.mutation.SagaID(); ok {
		if err := sagastep.SagaIDValidator(v); err != nil {
			return &ValidationError{Name: "saga_id", err: fmt.Errorf(`ent: validator failed for field "SagaStep.saga_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "SagaStep.seq"`)}
	}
	if v, ok := _c.mutation.Seq(); ok {
		if err := sagastep.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "SagaStep.seq": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SagaStep.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := sagastep.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SagaStep.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Participant(); !ok {
		return &ValidationError{Name: "participant", err: errors.New(`ent: missing required field "SagaStep.participant"`)}
	}
	if v, ok := _c.mutation.Participant(); ok {
		if err := sagastep.ParticipantValidator(v); err != nil {
			return &ValidationError{Name: "participant", err: fmt.Errorf(`ent: validator failed for field "SagaStep.participant": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SagaStep.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sagastep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SagaStep.status": %w`, err)}
		}
	}
	return nil
}

func (_c *SagaStepCreate) sqlSave(ctx context.Context) (*SagaStep, error) {
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
			return nil, fmt.Errorf("unexpected SagaStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SagaStepCreate) createSpec() (*SagaStep, *sqlgraph.CreateSpec) {
	var (
		_node = &SagaStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sagastep.Table, sqlgraph.NewFieldSpec(sagastep.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sagastep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sagastep.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SagaID(); ok {
		_spec.SetField(sagastep.FieldSagaID, field.TypeString, value)
		_node.SagaID = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(sagastep.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(sagastep.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Participant(); ok {
		_spec.SetField(sagastep.FieldParticipant, field.TypeString, value)
		_node.Participant = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sagastep.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(sagastep.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CompensationPayload(); ok {
		_spec.SetField(sagastep.FieldCompensationPayload, field.TypeBytes, value)
		_node.CompensationPayload = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SagaStep.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SagaStepUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SagaStepCreate) OnConflict(opts ...sql.ConflictOption) *SagaStepUpsertOne {
	_c.conflict = opts
	return &SagaStepUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SagaStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SagaStepCreate) OnConflictColumns(columns ...string) *SagaStepUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SagaStepUpsertOne{
		create: _c,
	}
}

type (
	// SagaStepUpsertOne is the builder for "upsert"-ing
	//  one SagaStep node.
	SagaStepUpsertOne struct {
		create *SagaStepCreate
	}

	// SagaStepUpsert is the "OnConflict" setter.
	SagaStepUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SagaStepUpsert) SetUpdatedAt(v time.Time) *SagaStepUpsert {
	u.Set(sagastep.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SagaStepUpsert) UpdateUpdatedAt() *SagaStepUpsert {
	u.SetExcluded(sagastep.FieldUpdatedAt)
	return u
}

// SetStatus sets the "status" field.
func (u *SagaStepUpsert) SetStatus(v sagastep.Status) *SagaStepUpsert {
	u.Set(sagastep.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SagaStepUpsert) UpdateStatus() *SagaStepUpsert {
	u.SetExcluded(sagastep.FieldStatus)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *SagaStepUpsert) SetCompletedAt(v time.Time) *SagaStepUpsert {
	u.Set(sagastep.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SagaStepUpsert) UpdateCompletedAt() *SagaStepUpsert {
	u.SetExcluded(sagastep.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SagaStepUpsert) ClearCompletedAt() *SagaStepUpsert {
	u.SetNull(sagastep.FieldCompletedAt)
	return u
}

// SetCompensationPayload sets the "compensation_payload" field.
func (u *SagaStepUpsert) SetCompensationPayload(v []byte) *SagaStepUpsert {
	u.Set(sagastep.FieldCompensationPayload, v)
	return u
}

// UpdateCompensationPayload sets the "compensation_payload" field to the value that was provided on create.
func (u *SagaStepUpsert) UpdateCompensationPayload() *SagaStepUpsert {
	u.SetExcluded(sagastep.FieldCompensationPayload)
	return u
}

// ClearCompensationPayload clears the value of the "compensation_payload" field.
func (u *SagaStepUpsert) ClearCompensationPayload() *SagaStepUpsert {
	u.SetNull(sagastep.FieldCompensationPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SagaStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sagastep.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SagaStepUpsertOne) UpdateNewValues() *SagaStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sagastep.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sagastep.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SagaID(); exists {
			s.SetIgnore(sagastep.FieldSagaID)
		}
		if _, exists := u.create.mutation.Seq(); exists {
			s.SetIgnore(sagastep.FieldSeq)
		}
		if _, exists := u.create.mutation.Name(); exists {
			s.SetIgnore(sagastep.FieldName)
		}
		if _, exists := u.create.mutation.Participant(); exists {
			s.SetIgnore(sagastep.FieldParticipant)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SagaStep.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SagaStepUpsertOne) Ignore() *SagaStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SagaStepUpsertOne) DoNothing() *SagaStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SagaStepCreate.OnConflict
// documentation for more info.
func (u *SagaStepUpsertOne) Update(set func(*SagaStepUpsert)) *SagaStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SagaStepUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SagaStepUpsertOne) SetUpdatedAt(v time.Time) *SagaStepUpsertOne {
	return u.Update(func(s *SagaStepUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SagaStepUpsertOne) UpdateUpdatedAt() *SagaStepUpsertOne {
	return u.Update(func(s *SagaStepUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStatus sets the "status" field.
func (u *SagaStepUpsertOne) SetStatus(v sagastep.Status) *SagaStepUpsertOne {
	return u.Update(func(s *SagaStepUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SagaStepUpsertOne) UpdateStatus() *SagaStepUpsertOne {
	return u.Update(func(s *SagaStepUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SagaStepUpsertOne) SetCompletedAt(v time.Time) *SagaStepUpsertOne {
	return u.Update(func(s *SagaStepUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SagaStepUpsertOne) UpdateCompletedAt() *SagaStepUpsertOne {
	return u.Update(func(s *SagaStepUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SagaStepUpsertOne) ClearCompletedAt() *SagaStepUpsertOne {
	return u.Update(func(s *SagaStepUpsert) {
		s.ClearCompletedAt()
	})
}

// SetCompensationPayload sets the "compensation_payload" field.
func (u *SagaStepUpsertOne) SetCompensationPayload(v []byte) *SagaStepUpsertOne {
	return u.Update(func(s *SagaStepUpsert) {
		s.SetCompensationPayload(v)
	})
}

// UpdateCompensationPayload sets the "compensation_payload" field to the value that was provided on create.
func (u *SagaStepUpsertOne) UpdateCompensationPayload() *SagaStepUpsertOne {
	return u.Update(func(s *SagaStepUpsert) {
		s.UpdateCompensationPayload()
	})
}

// ClearCompensationPayload clears the value of the "compensation_payload" field.
func (u *SagaStepUpsertOne) ClearCompensationPayload() *SagaStepUpsertOne {
	return u.Update(func(s *SagaStepUpsert) {
		s.ClearCompensationPayload()
	})
}

// Exec executes the query.
func (u *SagaStepUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SagaStepCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SagaStepUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SagaStepUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SagaStepUpsertOne.ID is not supported by MySQL driver. Use SagaStepUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SagaStepUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SagaStepCreateBulk is the builder for creating many SagaStep entities in bulk.
type SagaStepCreateBulk struct {
	config
	err      error
	builders []*SagaStepCreate
	conflict []sql.ConflictOption
}

// Save creates the SagaStep entities in the database.
func (_c *SagaStepCreateBulk) Save(ctx context.Context) ([]*SagaStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SagaStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SagaStepMutation)
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
func (_c *SagaStepCreateBulk) SaveX(ctx context.Context) []*SagaStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SagaStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SagaStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SagaStep.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SagaStepUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SagaStepCreateBulk) OnConflict(opts ...sql.ConflictOption) *SagaStepUpsertBulk {
	_c.conflict = opts
	return &SagaStepUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SagaStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SagaStepCreateBulk) OnConflictColumns(columns ...string) *SagaStepUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SagaStepUpsertBulk{
		create: _c,
	}
}

// SagaStepUpsertBulk is the builder for "upsert"-ing
// a bulk of SagaStep nodes.
type SagaStepUpsertBulk struct {
	create *SagaStepCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SagaStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sagastep.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SagaStepUpsertBulk) UpdateNewValues() *SagaStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sagastep.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sagastep.FieldCreatedAt)
			}
			if _, exists := b.mutation.SagaID(); exists {
				s.SetIgnore(sagastep.FieldSagaID)
			}
			if _, exists := b.mutation.Seq(); exists {
				s.SetIgnore(sagastep.FieldSeq)
			}
			if _, exists := b.mutation.Name(); exists {
				s.SetIgnore(sagastep.FieldName)
			}
			if _, exists := b.mutation.Participant(); exists {
				s.SetIgnore(sagastep.FieldParticipant)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SagaStep.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SagaStepUpsertBulk) Ignore() *SagaStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SagaStepUpsertBulk) DoNothing() *SagaStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SagaStepCreateBulk.OnConflict
// documentation for more info.
func (u *SagaStepUpsertBulk) Update(set func(*SagaStepUpsert)) *SagaStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SagaStepUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SagaStepUpsertBulk) SetUpdatedAt(v time.Time) *SagaStepUpsertBulk {
	return u.Update(func(s *SagaStepUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SagaStepUpsertBulk) UpdateUpdatedAt() *SagaStepUpsertBulk {
	return u.Update(func(s *SagaStepUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStatus sets the "status" field.
func (u *SagaStepUpsertBulk) SetStatus(v sagastep.Status) *SagaStepUpsertBulk {
	return u.Update(func(s *SagaStepUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SagaStepUpsertBulk) UpdateStatus() *SagaStepUpsertBulk {
	return u.Update(func(s *SagaStepUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SagaStepUpsertBulk) SetCompletedAt(v time.Time) *SagaStepUpsertBulk {
	return u.Update(func(s *SagaStepUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SagaStepUpsertBulk) UpdateCompletedAt() *SagaStepUpsertBulk {
	return u.Update(func(s *SagaStepUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SagaStepUpsertBulk) ClearCompletedAt() *SagaStepUpsertBulk {
	return u.Update(func(s *SagaStepUpsert) {
		s.ClearCompletedAt()
	})
}

// SetCompensationPayload sets the "compensation_payload" field.
func (u *SagaStepUpsertBulk) SetCompensationPayload(v []byte) *SagaStepUpsertBulk {
	return u.Update(func(s *SagaStepUpsert) {
		s.SetCompensationPayload(v)
	})
}

// UpdateCompensationPayload sets the "compensation_payload" field to the value that was provided on create.
func (u *SagaStepUpsertBulk) UpdateCompensationPayload() *SagaStepUpsertBulk {
	return u.Update(func(s *SagaStepUpsert) {
		s.UpdateCompensationPayload()
	})
}

// ClearCompensationPayload clears the value of the "compensation_payload" field.
func (u *SagaStepUpsertBulk) ClearCompensationPayload() *SagaStepUpsertBulk {
	return u.Update(func(s *SagaStepUpsert) {
		s.ClearCompensationPayload()
	})
}

// Exec executes the query.
func (u *SagaStepUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SagaStepCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SagaStepCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SagaStepUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
