// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"workgrid.io/workgrid/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"workgrid.io/workgrid/ent/auditlog"
	"workgrid.io/workgrid/ent/deadletter"
	"workgrid.io/workgrid/ent/entitlementdiscrepancy"
	"workgrid.io/workgrid/ent/entitlemententry"
	"workgrid.io/workgrid/ent/membershipentry"
	"workgrid.io/workgrid/ent/outboxevent"
	"workgrid.io/workgrid/ent/processedevent"
	"workgrid.io/workgrid/ent/sagainstance"
	"workgrid.io/workgrid/ent/sagastep"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// DeadLetter is the client for interacting with the DeadLetter builders.
	DeadLetter *DeadLetterClient
	// EntitlementDiscrepancy is the client for interacting with the EntitlementDiscrepancy builders.
	EntitlementDiscrepancy *EntitlementDiscrepancyClient
	// EntitlementEntry is the client for interacting with the EntitlementEntry builders.
	EntitlementEntry *EntitlementEntryClient
	// MembershipEntry is the client for interacting with the MembershipEntry builders.
	MembershipEntry *MembershipEntryClient
	// OutboxEvent is the client for interacting with the OutboxEvent builders.
	OutboxEvent *OutboxEventClient
	// ProcessedEvent is the client for interacting with the ProcessedEvent builders.
	ProcessedEvent *ProcessedEventClient
	// SagaInstance is the client for interacting with the SagaInstance builders.
	SagaInstance *SagaInstanceClient
	// SagaStep is the client for interacting with the SagaStep builders.
	SagaStep *SagaStepClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditLog = NewAuditLogClient(c.config)
	c.DeadLetter = NewDeadLetterClient(c.config)
	c.EntitlementDiscrepancy = NewEntitlementDiscrepancyClient(c.config)
	c.EntitlementEntry = NewEntitlementEntryClient(c.config)
	c.MembershipEntry = NewMembershipEntryClient(c.config)
	c.OutboxEvent = NewOutboxEventClient(c.config)
	c.ProcessedEvent = NewProcessedEventClient(c.config)
	c.SagaInstance = NewSagaInstanceClient(c.config)
	c.SagaStep = NewSagaStepClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		AuditLog:               NewAuditLogClient(cfg),
		DeadLetter:             NewDeadLetterClient(cfg),
		EntitlementDiscrepancy: NewEntitlementDiscrepancyClient(cfg),
		EntitlementEntry:       NewEntitlementEntryClient(cfg),
		MembershipEntry:        NewMembershipEntryClient(cfg),
		OutboxEvent:            NewOutboxEventClient(cfg),
		ProcessedEvent:         NewProcessedEventClient(cfg),
		SagaInstance:           NewSagaInstanceClient(cfg),
		SagaStep:               NewSagaStepClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		AuditLog:               NewAuditLogClient(cfg),
		DeadLetter:             NewDeadLetterClient(cfg),
		EntitlementDiscrepancy: NewEntitlementDiscrepancyClient(cfg),
		EntitlementEntry:       NewEntitlementEntryClient(cfg),
		MembershipEntry:        NewMembershipEntryClient(cfg),
		OutboxEvent:            NewOutboxEventClient(cfg),
		ProcessedEvent:         NewProcessedEventClient(cfg),
		SagaInstance:           NewSagaInstanceClient(cfg),
		SagaStep:               NewSagaStepClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditLog.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AuditLog, c.DeadLetter, c.EntitlementDiscrepancy, c.EntitlementEntry,
		c.MembershipEntry, c.OutboxEvent, c.ProcessedEvent, c.SagaInstance, c.SagaStep,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditLog, c.DeadLetter, c.EntitlementDiscrepancy, c.EntitlementEntry,
		c.MembershipEntry, c.OutboxEvent, c.ProcessedEvent, c.SagaInstance, c.SagaStep,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *DeadLetterMutation:
		return c.DeadLetter.mutate(ctx, m)
	case *EntitlementDiscrepancyMutation:
		return c.EntitlementDiscrepancy.mutate(ctx, m)
	case *EntitlementEntryMutation:
		return c.EntitlementEntry.mutate(ctx, m)
	case *MembershipEntryMutation:
		return c.MembershipEntry.mutate(ctx, m)
	case *OutboxEventMutation:
		return c.OutboxEvent.mutate(ctx, m)
	case *ProcessedEventMutation:
		return c.ProcessedEvent.mutate(ctx, m)
	case *SagaInstanceMutation:
		return c.SagaInstance.mutate(ctx, m)
	case *SagaStepMutation:
		return c.SagaStep.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id string) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id string) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id string) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id string) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// DeadLetterClient is a client for the DeadLetter schema.
type DeadLetterClient struct {
	config
}

// NewDeadLetterClient returns a client for the DeadLetter from the given config.
func NewDeadLetterClient(c config) *DeadLetterClient {
	return &DeadLetterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deadletter.Hooks(f(g(h())))`.
func (c *DeadLetterClient) Use(hooks ...Hook) {
	c.hooks.DeadLetter = append(c.hooks.DeadLetter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deadletter.Intercept(f(g(h())))`.
func (c *DeadLetterClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeadLetter = append(c.inters.DeadLetter, interceptors...)
}

// Create returns a builder for creating a DeadLetter entity.
func (c *DeadLetterClient) Create() *DeadLetterCreate {
	mutation := newDeadLetterMutation(c.config, OpCreate)
	return &DeadLetterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeadLetter entities.
func (c *DeadLetterClient) CreateBulk(builders ...*DeadLetterCreate) *DeadLetterCreateBulk {
	return &DeadLetterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeadLetterClient) MapCreateBulk(slice any, setFunc func(*DeadLetterCreate, int)) *DeadLetterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeadLetterCreateBulk{err: fmt.Errorf("calling to DeadLetterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeadLetterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeadLetterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeadLetter.
func (c *DeadLetterClient) Update() *DeadLetterUpdate {
	mutation := newDeadLetterMutation(c.config, OpUpdate)
	return &DeadLetterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeadLetterClient) UpdateOne(_m *DeadLetter) *DeadLetterUpdateOne {
	mutation := newDeadLetterMutation(c.config, OpUpdateOne, withDeadLetter(_m))
	return &DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeadLetterClient) UpdateOneID(id string) *DeadLetterUpdateOne {
	mutation := newDeadLetterMutation(c.config, OpUpdateOne, withDeadLetterID(id))
	return &DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeadLetter.
func (c *DeadLetterClient) Delete() *DeadLetterDelete {
	mutation := newDeadLetterMutation(c.config, OpDelete)
	return &DeadLetterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeadLetterClient) DeleteOne(_m *DeadLetter) *DeadLetterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeadLetterClient) DeleteOneID(id string) *DeadLetterDeleteOne {
	builder := c.Delete().Where(deadletter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeadLetterDeleteOne{builder}
}

// Query returns a query builder for DeadLetter.
func (c *DeadLetterClient) Query() *DeadLetterQuery {
	return &DeadLetterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeadLetter},
		inters: c.Interceptors(),
	}
}

// Get returns a DeadLetter entity by its id.
func (c *DeadLetterClient) Get(ctx context.Context, id string) (*DeadLetter, error) {
	return c.Query().Where(deadletter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeadLetterClient) GetX(ctx context.Context, id string) *DeadLetter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeadLetterClient) Hooks() []Hook {
	return c.hooks.DeadLetter
}

// Interceptors returns the client interceptors.
func (c *DeadLetterClient) Interceptors() []Interceptor {
	return c.inters.DeadLetter
}

func (c *DeadLetterClient) mutate(ctx context.Context, m *DeadLetterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeadLetterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeadLetterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeadLetterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeadLetter mutation op: %q", m.Op())
	}
}

// EntitlementDiscrepancyClient is a client for the EntitlementDiscrepancy schema.
type EntitlementDiscrepancyClient struct {
	config
}

// NewEntitlementDiscrepancyClient returns a client for the EntitlementDiscrepancy from the given config.
func NewEntitlementDiscrepancyClient(c config) *EntitlementDiscrepancyClient {
	return &EntitlementDiscrepancyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entitlementdiscrepancy.Hooks(f(g(h())))`.
func (c *EntitlementDiscrepancyClient) Use(hooks ...Hook) {
	c.hooks.EntitlementDiscrepancy = append(c.hooks.EntitlementDiscrepancy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entitlementdiscrepancy.Intercept(f(g(h())))`.
func (c *EntitlementDiscrepancyClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntitlementDiscrepancy = append(c.inters.EntitlementDiscrepancy, interceptors...)
}

// Create returns a builder for creating a EntitlementDiscrepancy entity.
func (c *EntitlementDiscrepancyClient) Create() *EntitlementDiscrepancyCreate {
	mutation := newEntitlementDiscrepancyMutation(c.config, OpCreate)
	return &EntitlementDiscrepancyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntitlementDiscrepancy entities.
func (c *EntitlementDiscrepancyClient) CreateBulk(builders ...*EntitlementDiscrepancyCreate) *EntitlementDiscrepancyCreateBulk {
	return &EntitlementDiscrepancyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntitlementDiscrepancyClient) MapCreateBulk(slice any, setFunc func(*EntitlementDiscrepancyCreate, int)) *EntitlementDiscrepancyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntitlementDiscrepancyCreateBulk{err: fmt.Errorf("calling to EntitlementDiscrepancyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntitlementDiscrepancyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntitlementDiscrepancyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntitlementDiscrepancy.
func (c *EntitlementDiscrepancyClient) Update() *EntitlementDiscrepancyUpdate {
	mutation := newEntitlementDiscrepancyMutation(c.config, OpUpdate)
	return &EntitlementDiscrepancyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntitlementDiscrepancyClient) UpdateOne(_m *EntitlementDiscrepancy) *EntitlementDiscrepancyUpdateOne {
	mutation := newEntitlementDiscrepancyMutation(c.config, OpUpdateOne, withEntitlementDiscrepancy(_m))
	return &EntitlementDiscrepancyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntitlementDiscrepancyClient) UpdateOneID(id string) *EntitlementDiscrepancyUpdateOne {
	mutation := newEntitlementDiscrepancyMutation(c.config, OpUpdateOne, withEntitlementDiscrepancyID(id))
	return &EntitlementDiscrepancyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntitlementDiscrepancy.
func (c *EntitlementDiscrepancyClient) Delete() *EntitlementDiscrepancyDelete {
	mutation := newEntitlementDiscrepancyMutation(c.config, OpDelete)
	return &EntitlementDiscrepancyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntitlementDiscrepancyClient) DeleteOne(_m *EntitlementDiscrepancy) *EntitlementDiscrepancyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntitlementDiscrepancyClient) DeleteOneID(id string) *EntitlementDiscrepancyDeleteOne {
	builder := c.Delete().Where(entitlementdiscrepancy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntitlementDiscrepancyDeleteOne{builder}
}

// Query returns a query builder for EntitlementDiscrepancy.
func (c *EntitlementDiscrepancyClient) Query() *EntitlementDiscrepancyQuery {
	return &EntitlementDiscrepancyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntitlementDiscrepancy},
		inters: c.Interceptors(),
	}
}

// Get returns a EntitlementDiscrepancy entity by its id.
func (c *EntitlementDiscrepancyClient) Get(ctx context.Context, id string) (*EntitlementDiscrepancy, error) {
	return c.Query().Where(entitlementdiscrepancy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntitlementDiscrepancyClient) GetX(ctx context.Context, id string) *EntitlementDiscrepancy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EntitlementDiscrepancyClient) Hooks() []Hook {
	return c.hooks.EntitlementDiscrepancy
}

// Interceptors returns the client interceptors.
func (c *EntitlementDiscrepancyClient) Interceptors() []Interceptor {
	return c.inters.EntitlementDiscrepancy
}

func (c *EntitlementDiscrepancyClient) mutate(ctx context.Context, m *EntitlementDiscrepancyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntitlementDiscrepancyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntitlementDiscrepancyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntitlementDiscrepancyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntitlementDiscrepancyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntitlementDiscrepancy mutation op: %q", m.Op())
	}
}

// EntitlementEntryClient is a client for the EntitlementEntry schema.
type EntitlementEntryClient struct {
	config
}

// NewEntitlementEntryClient returns a client for the EntitlementEntry from the given config.
func NewEntitlementEntryClient(c config) *EntitlementEntryClient {
	return &EntitlementEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entitlemententry.Hooks(f(g(h())))`.
func (c *EntitlementEntryClient) Use(hooks ...Hook) {
	c.hooks.EntitlementEntry = append(c.hooks.EntitlementEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entitlemententry.Intercept(f(g(h())))`.
func (c *EntitlementEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntitlementEntry = append(c.inters.EntitlementEntry, interceptors...)
}

// Create returns a builder for creating a EntitlementEntry entity.
func (c *EntitlementEntryClient) Create() *EntitlementEntryCreate {
	mutation := newEntitlementEntryMutation(c.config, OpCreate)
	return &EntitlementEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntitlementEntry entities.
func (c *EntitlementEntryClient) CreateBulk(builders ...*EntitlementEntryCreate) *EntitlementEntryCreateBulk {
	return &EntitlementEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntitlementEntryClient) MapCreateBulk(slice any, setFunc func(*EntitlementEntryCreate, int)) *EntitlementEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntitlementEntryCreateBulk{err: fmt.Errorf("calling to EntitlementEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntitlementEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntitlementEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntitlementEntry.
func (c *EntitlementEntryClient) Update() *EntitlementEntryUpdate {
	mutation := newEntitlementEntryMutation(c.config, OpUpdate)
	return &EntitlementEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntitlementEntryClient) UpdateOne(_m *EntitlementEntry) *EntitlementEntryUpdateOne {
	mutation := newEntitlementEntryMutation(c.config, OpUpdateOne, withEntitlementEntry(_m))
	return &EntitlementEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntitlementEntryClient) UpdateOneID(id int) *EntitlementEntryUpdateOne {
	mutation := newEntitlementEntryMutation(c.config, OpUpdateOne, withEntitlementEntryID(id))
	return &EntitlementEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntitlementEntry.
func (c *EntitlementEntryClient) Delete() *EntitlementEntryDelete {
	mutation := newEntitlementEntryMutation(c.config, OpDelete)
	return &EntitlementEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntitlementEntryClient) DeleteOne(_m *EntitlementEntry) *EntitlementEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntitlementEntryClient) DeleteOneID(id int) *EntitlementEntryDeleteOne {
	builder := c.Delete().Where(entitlemententry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntitlementEntryDeleteOne{builder}
}

// Query returns a query builder for EntitlementEntry.
func (c *EntitlementEntryClient) Query() *EntitlementEntryQuery {
	return &EntitlementEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntitlementEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a EntitlementEntry entity by its id.
func (c *EntitlementEntryClient) Get(ctx context.Context, id int) (*EntitlementEntry, error) {
	return c.Query().Where(entitlemententry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntitlementEntryClient) GetX(ctx context.Context, id int) *EntitlementEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EntitlementEntryClient) Hooks() []Hook {
	return c.hooks.EntitlementEntry
}

// Interceptors returns the client interceptors.
func (c *EntitlementEntryClient) Interceptors() []Interceptor {
	return c.inters.EntitlementEntry
}

func (c *EntitlementEntryClient) mutate(ctx context.Context, m *EntitlementEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntitlementEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntitlementEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntitlementEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntitlementEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntitlementEntry mutation op: %q", m.Op())
	}
}

// MembershipEntryClient is a client for the MembershipEntry schema.
type MembershipEntryClient struct {
	config
}

// NewMembershipEntryClient returns a client for the MembershipEntry from the given config.
func NewMembershipEntryClient(c config) *MembershipEntryClient {
	return &MembershipEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `membershipentry.Hooks(f(g(h())))`.
func (c *MembershipEntryClient) Use(hooks ...Hook) {
	c.hooks.MembershipEntry = append(c.hooks.MembershipEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `membershipentry.Intercept(f(g(h())))`.
func (c *MembershipEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.MembershipEntry = append(c.inters.MembershipEntry, interceptors...)
}

// Create returns a builder for creating a MembershipEntry entity.
func (c *MembershipEntryClient) Create() *MembershipEntryCreate {
	mutation := newMembershipEntryMutation(c.config, OpCreate)
	return &MembershipEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MembershipEntry entities.
func (c *MembershipEntryClient) CreateBulk(builders ...*MembershipEntryCreate) *MembershipEntryCreateBulk {
	return &MembershipEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MembershipEntryClient) MapCreateBulk(slice any, setFunc func(*MembershipEntryCreate, int)) *MembershipEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MembershipEntryCreateBulk{err: fmt.Errorf("calling to MembershipEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MembershipEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MembershipEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MembershipEntry.
func (c *MembershipEntryClient) Update() *MembershipEntryUpdate {
	mutation := newMembershipEntryMutation(c.config, OpUpdate)
	return &MembershipEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MembershipEntryClient) UpdateOne(_m *MembershipEntry) *MembershipEntryUpdateOne {
	mutation := newMembershipEntryMutation(c.config, OpUpdateOne, withMembershipEntry(_m))
	return &MembershipEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MembershipEntryClient) UpdateOneID(id int) *MembershipEntryUpdateOne {
	mutation := newMembershipEntryMutation(c.config, OpUpdateOne, withMembershipEntryID(id))
	return &MembershipEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MembershipEntry.
func (c *MembershipEntryClient) Delete() *MembershipEntryDelete {
	mutation := newMembershipEntryMutation(c.config, OpDelete)
	return &MembershipEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MembershipEntryClient) DeleteOne(_m *MembershipEntry) *MembershipEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MembershipEntryClient) DeleteOneID(id int) *MembershipEntryDeleteOne {
	builder := c.Delete().Where(membershipentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MembershipEntryDeleteOne{builder}
}

// Query returns a query builder for MembershipEntry.
func (c *MembershipEntryClient) Query() *MembershipEntryQuery {
	return &MembershipEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMembershipEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a MembershipEntry entity by its id.
func (c *MembershipEntryClient) Get(ctx context.Context, id int) (*MembershipEntry, error) {
	return c.Query().Where(membershipentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MembershipEntryClient) GetX(ctx context.Context, id int) *MembershipEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MembershipEntryClient) Hooks() []Hook {
	return c.hooks.MembershipEntry
}

// Interceptors returns the client interceptors.
func (c *MembershipEntryClient) Interceptors() []Interceptor {
	return c.inters.MembershipEntry
}

func (c *MembershipEntryClient) mutate(ctx context.Context, m *MembershipEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MembershipEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MembershipEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MembershipEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MembershipEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MembershipEntry mutation op: %q", m.Op())
	}
}

// OutboxEventClient is a client for the OutboxEvent schema.
type OutboxEventClient struct {
	config
}

// NewOutboxEventClient returns a client for the OutboxEvent from the given config.
func NewOutboxEventClient(c config) *OutboxEventClient {
	return &OutboxEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outboxevent.Hooks(f(g(h())))`.
func (c *OutboxEventClient) Use(hooks ...Hook) {
	c.hooks.OutboxEvent = append(c.hooks.OutboxEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outboxevent.Intercept(f(g(h())))`.
func (c *OutboxEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutboxEvent = append(c.inters.OutboxEvent, interceptors...)
}

// Create returns a builder for creating a OutboxEvent entity.
func (c *OutboxEventClient) Create() *OutboxEventCreate {
	mutation := newOutboxEventMutation(c.config, OpCreate)
	return &OutboxEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutboxEvent entities.
func (c *OutboxEventClient) CreateBulk(builders ...*OutboxEventCreate) *OutboxEventCreateBulk {
	return &OutboxEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutboxEventClient) MapCreateBulk(slice any, setFunc func(*OutboxEventCreate, int)) *OutboxEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutboxEventCreateBulk{err: fmt.Errorf("calling to OutboxEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutboxEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutboxEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutboxEvent.
func (c *OutboxEventClient) Update() *OutboxEventUpdate {
	mutation := newOutboxEventMutation(c.config, OpUpdate)
	return &OutboxEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutboxEventClient) UpdateOne(_m *OutboxEvent) *OutboxEventUpdateOne {
	mutation := newOutboxEventMutation(c.config, OpUpdateOne, withOutboxEvent(_m))
	return &OutboxEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutboxEventClient) UpdateOneID(id string) *OutboxEventUpdateOne {
	mutation := newOutboxEventMutation(c.config, OpUpdateOne, withOutboxEventID(id))
	return &OutboxEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutboxEvent.
func (c *OutboxEventClient) Delete() *OutboxEventDelete {
	mutation := newOutboxEventMutation(c.config, OpDelete)
	return &OutboxEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutboxEventClient) DeleteOne(_m *OutboxEvent) *OutboxEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutboxEventClient) DeleteOneID(id string) *OutboxEventDeleteOne {
	builder := c.Delete().Where(outboxevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutboxEventDeleteOne{builder}
}

// Query returns a query builder for OutboxEvent.
func (c *OutboxEventClient) Query() *OutboxEventQuery {
	return &OutboxEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutboxEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a OutboxEvent entity by its id.
func (c *OutboxEventClient) Get(ctx context.Context, id string) (*OutboxEvent, error) {
	return c.Query().Where(outboxevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutboxEventClient) GetX(ctx context.Context, id string) *OutboxEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OutboxEventClient) Hooks() []Hook {
	return c.hooks.OutboxEvent
}

// Interceptors returns the client interceptors.
func (c *OutboxEventClient) Interceptors() []Interceptor {
	return c.inters.OutboxEvent
}

func (c *OutboxEventClient) mutate(ctx context.Context, m *OutboxEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutboxEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutboxEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutboxEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutboxEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutboxEvent mutation op: %q", m.Op())
	}
}

// ProcessedEventClient is a client for the ProcessedEvent schema.
type ProcessedEventClient struct {
	config
}

// NewProcessedEventClient returns a client for the ProcessedEvent from the given config.
func NewProcessedEventClient(c config) *ProcessedEventClient {
	return &ProcessedEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processedevent.Hooks(f(g(h())))`.
func (c *ProcessedEventClient) Use(hooks ...Hook) {
	c.hooks.ProcessedEvent = append(c.hooks.ProcessedEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processedevent.Intercept(f(g(h())))`.
func (c *ProcessedEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessedEvent = append(c.inters.ProcessedEvent, interceptors...)
}

// Create returns a builder for creating a ProcessedEvent entity.
func (c *ProcessedEventClient) Create() *ProcessedEventCreate {
	mutation := newProcessedEventMutation(c.config, OpCreate)
	return &ProcessedEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessedEvent entities.
func (c *ProcessedEventClient) CreateBulk(builders ...*ProcessedEventCreate) *ProcessedEventCreateBulk {
	return &ProcessedEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessedEventClient) MapCreateBulk(slice any, setFunc func(*ProcessedEventCreate, int)) *ProcessedEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessedEventCreateBulk{err: fmt.Errorf("calling to ProcessedEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessedEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessedEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessedEvent.
func (c *ProcessedEventClient) Update() *ProcessedEventUpdate {
	mutation := newProcessedEventMutation(c.config, OpUpdate)
	return &ProcessedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessedEventClient) UpdateOne(_m *ProcessedEvent) *ProcessedEventUpdateOne {
	mutation := newProcessedEventMutation(c.config, OpUpdateOne, withProcessedEvent(_m))
	return &ProcessedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessedEventClient) UpdateOneID(id int) *ProcessedEventUpdateOne {
	mutation := newProcessedEventMutation(c.config, OpUpdateOne, withProcessedEventID(id))
	return &ProcessedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessedEvent.
func (c *ProcessedEventClient) Delete() *ProcessedEventDelete {
	mutation := newProcessedEventMutation(c.config, OpDelete)
	return &ProcessedEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessedEventClient) DeleteOne(_m *ProcessedEvent) *ProcessedEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessedEventClient) DeleteOneID(id int) *ProcessedEventDeleteOne {
	builder := c.Delete().Where(processedevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessedEventDeleteOne{builder}
}

// Query returns a query builder for ProcessedEvent.
func (c *ProcessedEventClient) Query() *ProcessedEventQuery {
	return &ProcessedEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessedEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessedEvent entity by its id.
func (c *ProcessedEventClient) Get(ctx context.Context, id int) (*ProcessedEvent, error) {
	return c.Query().Where(processedevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessedEventClient) GetX(ctx context.Context, id int) *ProcessedEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcessedEventClient) Hooks() []Hook {
	return c.hooks.ProcessedEvent
}

// Interceptors returns the client interceptors.
func (c *ProcessedEventClient) Interceptors() []Interceptor {
	return c.inters.ProcessedEvent
}

func (c *ProcessedEventClient) mutate(ctx context.Context, m *ProcessedEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessedEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessedEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessedEvent mutation op: %q", m.Op())
	}
}

// SagaInstanceClient is a client for the SagaInstance schema.
type SagaInstanceClient struct {
	config
}

// NewSagaInstanceClient returns a client for the SagaInstance from the given config.
func NewSagaInstanceClient(c config) *SagaInstanceClient {
	return &SagaInstanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sagainstance.Hooks(f(g(h())))`.
func (c *SagaInstanceClient) Use(hooks ...Hook) {
	c.hooks.SagaInstance = append(c.hooks.SagaInstance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sagainstance.Intercept(f(g(h())))`.
func (c *SagaInstanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.SagaInstance = append(c.inters.SagaInstance, interceptors...)
}

// Create returns a builder for creating a SagaInstance entity.
func (c *SagaInstanceClient) Create() *SagaInstanceCreate {
	mutation := newSagaInstanceMutation(c.config, OpCreate)
	return &SagaInstanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SagaInstance entities.
func (c *SagaInstanceClient) CreateBulk(builders ...*SagaInstanceCreate) *SagaInstanceCreateBulk {
	return &SagaInstanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SagaInstanceClient) MapCreateBulk(slice any, setFunc func(*SagaInstanceCreate, int)) *SagaInstanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SagaInstanceCreateBulk{err: fmt.Errorf("calling to SagaInstanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SagaInstanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SagaInstanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SagaInstance.
func (c *SagaInstanceClient) Update() *SagaInstanceUpdate {
	mutation := newSagaInstanceMutation(c.config, OpUpdate)
	return &SagaInstanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SagaInstanceClient) UpdateOne(_m *SagaInstance) *SagaInstanceUpdateOne {
	mutation := newSagaInstanceMutation(c.config, OpUpdateOne, withSagaInstance(_m))
	return &SagaInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SagaInstanceClient) UpdateOneID(id string) *SagaInstanceUpdateOne {
	mutation := newSagaInstanceMutation(c.config, OpUpdateOne, withSagaInstanceID(id))
	return &SagaInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SagaInstance.
func (c *SagaInstanceClient) Delete() *SagaInstanceDelete {
	mutation := newSagaInstanceMutation(c.config, OpDelete)
	return &SagaInstanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SagaInstanceClient) DeleteOne(_m *SagaInstance) *SagaInstanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SagaInstanceClient) DeleteOneID(id string) *SagaInstanceDeleteOne {
	builder := c.Delete().Where(sagainstance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SagaInstanceDeleteOne{builder}
}

// Query returns a query builder for SagaInstance.
func (c *SagaInstanceClient) Query() *SagaInstanceQuery {
	return &SagaInstanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSagaInstance},
		inters: c.Interceptors(),
	}
}

// Get returns a SagaInstance entity by its id.
func (c *SagaInstanceClient) Get(ctx context.Context, id string) (*SagaInstance, error) {
	return c.Query().Where(sagainstance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SagaInstanceClient) GetX(ctx context.Context, id string) *SagaInstance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SagaInstanceClient) Hooks() []Hook {
	return c.hooks.SagaInstance
}

// Interceptors returns the client interceptors.
func (c *SagaInstanceClient) Interceptors() []Interceptor {
	return c.inters.SagaInstance
}

func (c *SagaInstanceClient) mutate(ctx context.Context, m *SagaInstanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SagaInstanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SagaInstanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SagaInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SagaInstanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SagaInstance mutation op: %q", m.Op())
	}
}

// SagaStepClient is a client for the SagaStep schema.
type SagaStepClient struct {
	config
}

// NewSagaStepClient returns a client for the SagaStep from the given config.
func NewSagaStepClient(c config) *SagaStepClient {
	return &SagaStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sagastep.Hooks(f(g(h())))`.
func (c *SagaStepClient) Use(hooks ...Hook) {
	c.hooks.SagaStep = append(c.hooks.SagaStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sagastep.Intercept(f(g(h())))`.
func (c *SagaStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.SagaStep = append(c.inters.SagaStep, interceptors...)
}

// Create returns a builder for creating a SagaStep entity.
func (c *SagaStepClient) Create() *SagaStepCreate {
	mutation := newSagaStepMutation(c.config, OpCreate)
	return &SagaStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SagaStep entities.
func (c *SagaStepClient) CreateBulk(builders ...*SagaStepCreate) *SagaStepCreateBulk {
	return &SagaStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SagaStepClient) MapCreateBulk(slice any, setFunc func(*SagaStepCreate, int)) *SagaStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SagaStepCreateBulk{err: fmt.Errorf("calling to SagaStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SagaStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SagaStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SagaStep.
func (c *SagaStepClient) Update() *SagaStepUpdate {
	mutation := newSagaStepMutation(c.config, OpUpdate)
	return &SagaStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SagaStepClient) UpdateOne(_m *SagaStep) *SagaStepUpdateOne {
	mutation := newSagaStepMutation(c.config, OpUpdateOne, withSagaStep(_m))
	return &SagaStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SagaStepClient) UpdateOneID(id string) *SagaStepUpdateOne {
	mutation := newSagaStepMutation(c.config, OpUpdateOne, withSagaStepID(id))
	return &SagaStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SagaStep.
func (c *SagaStepClient) Delete() *SagaStepDelete {
	mutation := newSagaStepMutation(c.config, OpDelete)
	return &SagaStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SagaStepClient) DeleteOne(_m *SagaStep) *SagaStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SagaStepClient) DeleteOneID(id string) *SagaStepDeleteOne {
	builder := c.Delete().Where(sagastep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SagaStepDeleteOne{builder}
}

// Query returns a query builder for SagaStep.
func (c *SagaStepClient) Query() *SagaStepQuery {
	return &SagaStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSagaStep},
		inters: c.Interceptors(),
	}
}

// Get returns a SagaStep entity by its id.
func (c *SagaStepClient) Get(ctx context.Context, id string) (*SagaStep, error) {
	return c.Query().Where(sagastep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SagaStepClient) GetX(ctx context.Context, id string) *SagaStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SagaStepClient) Hooks() []Hook {
	return c.hooks.SagaStep
}

// Interceptors returns the client interceptors.
func (c *SagaStepClient) Interceptors() []Interceptor {
	return c.inters.SagaStep
}

func (c *SagaStepClient) mutate(ctx context.Context, m *SagaStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SagaStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SagaStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SagaStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SagaStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SagaStep mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditLog, DeadLetter, EntitlementDiscrepancy, EntitlementEntry, MembershipEntry,
		OutboxEvent, ProcessedEvent, SagaInstance, SagaStep []ent.Hook
	}
	inters struct {
		AuditLog, DeadLetter, EntitlementDiscrepancy, EntitlementEntry, MembershipEntry,
		OutboxEvent, ProcessedEvent, SagaInstance, SagaStep []ent.Interceptor
	}
)
