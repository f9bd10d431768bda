// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/tbruins/stroomadvies/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tbruins/stroomadvies/gen/ent/pricecheck"
	"github.com/tbruins/stroomadvies/gen/ent/profile"
	"github.com/tbruins/stroomadvies/gen/ent/usageestimate"
	"github.com/tbruins/stroomadvies/gen/ent/verifiedusage"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// PriceCheck is the client for interacting with the PriceCheck builders.
	PriceCheck *PriceCheckClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// UsageEstimate is the client for interacting with the UsageEstimate builders.
	UsageEstimate *UsageEstimateClient
	// VerifiedUsage is the client for interacting with the VerifiedUsage builders.
	VerifiedUsage *VerifiedUsageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.PriceCheck = NewPriceCheckClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.UsageEstimate = NewUsageEstimateClient(c.config)
	c.VerifiedUsage = NewVerifiedUsageClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		PriceCheck:    NewPriceCheckClient(cfg),
		Profile:       NewProfileClient(cfg),
		UsageEstimate: NewUsageEstimateClient(cfg),
		VerifiedUsage: NewVerifiedUsageClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		PriceCheck:    NewPriceCheckClient(cfg),
		Profile:       NewProfileClient(cfg),
		UsageEstimate: NewUsageEstimateClient(cfg),
		VerifiedUsage: NewVerifiedUsageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		PriceCheck.
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
	c.PriceCheck.Use(hooks...)
	c.Profile.Use(hooks...)
	c.UsageEstimate.Use(hooks...)
	c.VerifiedUsage.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.PriceCheck.Intercept(interceptors...)
	c.Profile.Intercept(interceptors...)
	c.UsageEstimate.Intercept(interceptors...)
	c.VerifiedUsage.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *PriceCheckMutation:
		return c.PriceCheck.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *UsageEstimateMutation:
		return c.UsageEstimate.mutate(ctx, m)
	case *VerifiedUsageMutation:
		return c.VerifiedUsage.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// PriceCheckClient is a client for the PriceCheck schema.
type PriceCheckClient struct {
	config
}

// NewPriceCheckClient returns a client for the PriceCheck from the given config.
func NewPriceCheckClient(c config) *PriceCheckClient {
	return &PriceCheckClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pricecheck.Hooks(f(g(h())))`.
func (c *PriceCheckClient) Use(hooks ...Hook) {
	c.hooks.PriceCheck = append(c.hooks.PriceCheck, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pricecheck.Intercept(f(g(h())))`.
func (c *PriceCheckClient) Intercept(interceptors ...Interceptor) {
	c.inters.PriceCheck = append(c.inters.PriceCheck, interceptors...)
}

// Create returns a builder for creating a PriceCheck entity.
func (c *PriceCheckClient) Create() *PriceCheckCreate {
	mutation := newPriceCheckMutation(c.config, OpCreate)
	return &PriceCheckCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PriceCheck entities.
func (c *PriceCheckClient) CreateBulk(builders ...*PriceCheckCreate) *PriceCheckCreateBulk {
	return &PriceCheckCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PriceCheckClient) MapCreateBulk(slice any, setFunc func(*PriceCheckCreate, int)) *PriceCheckCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PriceCheckCreateBulk{err: fmt.Errorf("calling to PriceCheckClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PriceCheckCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PriceCheckCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PriceCheck.
func (c *PriceCheckClient) Update() *PriceCheckUpdate {
	mutation := newPriceCheckMutation(c.config, OpUpdate)
	return &PriceCheckUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PriceCheckClient) UpdateOne(_m *PriceCheck) *PriceCheckUpdateOne {
	mutation := newPriceCheckMutation(c.config, OpUpdateOne, withPriceCheck(_m))
	return &PriceCheckUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PriceCheckClient) UpdateOneID(id uuid.UUID) *PriceCheckUpdateOne {
	mutation := newPriceCheckMutation(c.config, OpUpdateOne, withPriceCheckID(id))
	return &PriceCheckUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PriceCheck.
func (c *PriceCheckClient) Delete() *PriceCheckDelete {
	mutation := newPriceCheckMutation(c.config, OpDelete)
	return &PriceCheckDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PriceCheckClient) DeleteOne(_m *PriceCheck) *PriceCheckDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PriceCheckClient) DeleteOneID(id uuid.UUID) *PriceCheckDeleteOne {
	builder := c.Delete().Where(pricecheck.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PriceCheckDeleteOne{builder}
}

// Query returns a query builder for PriceCheck.
func (c *PriceCheckClient) Query() *PriceCheckQuery {
	return &PriceCheckQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePriceCheck},
		inters: c.Interceptors(),
	}
}

// Get returns a PriceCheck entity by its id.
func (c *PriceCheckClient) Get(ctx context.Context, id uuid.UUID) (*PriceCheck, error) {
	return c.Query().Where(pricecheck.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PriceCheckClient) GetX(ctx context.Context, id uuid.UUID) *PriceCheck {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a PriceCheck.
func (c *PriceCheckClient) QueryProfile(_m *PriceCheck) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pricecheck.Table, pricecheck.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pricecheck.ProfileTable, pricecheck.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PriceCheckClient) Hooks() []Hook {
	return c.hooks.PriceCheck
}

// Interceptors returns the client interceptors.
func (c *PriceCheckClient) Interceptors() []Interceptor {
	return c.inters.PriceCheck
}

func (c *PriceCheckClient) mutate(ctx context.Context, m *PriceCheckMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PriceCheckCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PriceCheckUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PriceCheckUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PriceCheckDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PriceCheck mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id uuid.UUID) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id uuid.UUID) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id uuid.UUID) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEstimates queries the estimates edge of a Profile.
func (c *ProfileClient) QueryEstimates(_m *Profile) *UsageEstimateQuery {
	query := (&UsageEstimateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(usageestimate.Table, usageestimate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.EstimatesTable, profile.EstimatesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVerifiedUsage queries the verified_usage edge of a Profile.
func (c *ProfileClient) QueryVerifiedUsage(_m *Profile) *VerifiedUsageQuery {
	query := (&VerifiedUsageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(verifiedusage.Table, verifiedusage.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, profile.VerifiedUsageTable, profile.VerifiedUsageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPriceChecks queries the price_checks edge of a Profile.
func (c *ProfileClient) QueryPriceChecks(_m *Profile) *PriceCheckQuery {
	query := (&PriceCheckClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(pricecheck.Table, pricecheck.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.PriceChecksTable, profile.PriceChecksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// UsageEstimateClient is a client for the UsageEstimate schema.
type UsageEstimateClient struct {
	config
}

// NewUsageEstimateClient returns a client for the UsageEstimate from the given config.
func NewUsageEstimateClient(c config) *UsageEstimateClient {
	return &UsageEstimateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usageestimate.Hooks(f(g(h())))`.
func (c *UsageEstimateClient) Use(hooks ...Hook) {
	c.hooks.UsageEstimate = append(c.hooks.UsageEstimate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usageestimate.Intercept(f(g(h())))`.
func (c *UsageEstimateClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageEstimate = append(c.inters.UsageEstimate, interceptors...)
}

// Create returns a builder for creating a UsageEstimate entity.
func (c *UsageEstimateClient) Create() *UsageEstimateCreate {
	mutation := newUsageEstimateMutation(c.config, OpCreate)
	return &UsageEstimateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageEstimate entities.
func (c *UsageEstimateClient) CreateBulk(builders ...*UsageEstimateCreate) *UsageEstimateCreateBulk {
	return &UsageEstimateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageEstimateClient) MapCreateBulk(slice any, setFunc func(*UsageEstimateCreate, int)) *UsageEstimateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageEstimateCreateBulk{err: fmt.Errorf("calling to UsageEstimateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageEstimateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageEstimateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageEstimate.
func (c *UsageEstimateClient) Update() *UsageEstimateUpdate {
	mutation := newUsageEstimateMutation(c.config, OpUpdate)
	return &UsageEstimateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageEstimateClient) UpdateOne(_m *UsageEstimate) *UsageEstimateUpdateOne {
	mutation := newUsageEstimateMutation(c.config, OpUpdateOne, withUsageEstimate(_m))
	return &UsageEstimateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageEstimateClient) UpdateOneID(id uuid.UUID) *UsageEstimateUpdateOne {
	mutation := newUsageEstimateMutation(c.config, OpUpdateOne, withUsageEstimateID(id))
	return &UsageEstimateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageEstimate.
func (c *UsageEstimateClient) Delete() *UsageEstimateDelete {
	mutation := newUsageEstimateMutation(c.config, OpDelete)
	return &UsageEstimateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageEstimateClient) DeleteOne(_m *UsageEstimate) *UsageEstimateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageEstimateClient) DeleteOneID(id uuid.UUID) *UsageEstimateDeleteOne {
	builder := c.Delete().Where(usageestimate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageEstimateDeleteOne{builder}
}

// Query returns a query builder for UsageEstimate.
func (c *UsageEstimateClient) Query() *UsageEstimateQuery {
	return &UsageEstimateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageEstimate},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageEstimate entity by its id.
func (c *UsageEstimateClient) Get(ctx context.Context, id uuid.UUID) (*UsageEstimate, error) {
	return c.Query().Where(usageestimate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageEstimateClient) GetX(ctx context.Context, id uuid.UUID) *UsageEstimate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a UsageEstimate.
func (c *UsageEstimateClient) QueryProfile(_m *UsageEstimate) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usageestimate.Table, usageestimate.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, usageestimate.ProfileTable, usageestimate.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UsageEstimateClient) Hooks() []Hook {
	return c.hooks.UsageEstimate
}

// Interceptors returns the client interceptors.
func (c *UsageEstimateClient) Interceptors() []Interceptor {
	return c.inters.UsageEstimate
}

func (c *UsageEstimateClient) mutate(ctx context.Context, m *UsageEstimateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageEstimateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageEstimateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageEstimateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageEstimateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageEstimate mutation op: %q", m.Op())
	}
}

// VerifiedUsageClient is a client for the VerifiedUsage schema.
type VerifiedUsageClient struct {
	config
}

// NewVerifiedUsageClient returns a client for the VerifiedUsage from the given config.
func NewVerifiedUsageClient(c config) *VerifiedUsageClient {
	return &VerifiedUsageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verifiedusage.Hooks(f(g(h())))`.
func (c *VerifiedUsageClient) Use(hooks ...Hook) {
	c.hooks.VerifiedUsage = append(c.hooks.VerifiedUsage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verifiedusage.Intercept(f(g(h())))`.
func (c *VerifiedUsageClient) Intercept(interceptors ...Interceptor) {
	c.inters.VerifiedUsage = append(c.inters.VerifiedUsage, interceptors...)
}

// Create returns a builder for creating a VerifiedUsage entity.
func (c *VerifiedUsageClient) Create() *VerifiedUsageCreate {
	mutation := newVerifiedUsageMutation(c.config, OpCreate)
	return &VerifiedUsageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VerifiedUsage entities.
func (c *VerifiedUsageClient) CreateBulk(builders ...*VerifiedUsageCreate) *VerifiedUsageCreateBulk {
	return &VerifiedUsageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerifiedUsageClient) MapCreateBulk(slice any, setFunc func(*VerifiedUsageCreate, int)) *VerifiedUsageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerifiedUsageCreateBulk{err: fmt.Errorf("calling to VerifiedUsageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerifiedUsageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerifiedUsageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VerifiedUsage.
func (c *VerifiedUsageClient) Update() *VerifiedUsageUpdate {
	mutation := newVerifiedUsageMutation(c.config, OpUpdate)
	return &VerifiedUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerifiedUsageClient) UpdateOne(_m *VerifiedUsage) *VerifiedUsageUpdateOne {
	mutation := newVerifiedUsageMutation(c.config, OpUpdateOne, withVerifiedUsage(_m))
	return &VerifiedUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerifiedUsageClient) UpdateOneID(id uuid.UUID) *VerifiedUsageUpdateOne {
	mutation := newVerifiedUsageMutation(c.config, OpUpdateOne, withVerifiedUsageID(id))
	return &VerifiedUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VerifiedUsage.
func (c *VerifiedUsageClient) Delete() *VerifiedUsageDelete {
	mutation := newVerifiedUsageMutation(c.config, OpDelete)
	return &VerifiedUsageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerifiedUsageClient) DeleteOne(_m *VerifiedUsage) *VerifiedUsageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerifiedUsageClient) DeleteOneID(id uuid.UUID) *VerifiedUsageDeleteOne {
	builder := c.Delete().Where(verifiedusage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerifiedUsageDeleteOne{builder}
}

// Query returns a query builder for VerifiedUsage.
func (c *VerifiedUsageClient) Query() *VerifiedUsageQuery {
	return &VerifiedUsageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerifiedUsage},
		inters: c.Interceptors(),
	}
}

// Get returns a VerifiedUsage entity by its id.
func (c *VerifiedUsageClient) Get(ctx context.Context, id uuid.UUID) (*VerifiedUsage, error) {
	return c.Query().Where(verifiedusage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerifiedUsageClient) GetX(ctx context.Context, id uuid.UUID) *VerifiedUsage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a VerifiedUsage.
func (c *VerifiedUsageClient) QueryProfile(_m *VerifiedUsage) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verifiedusage.Table, verifiedusage.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, verifiedusage.ProfileTable, verifiedusage.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VerifiedUsageClient) Hooks() []Hook {
	return c.hooks.VerifiedUsage
}

// Interceptors returns the client interceptors.
func (c *VerifiedUsageClient) Interceptors() []Interceptor {
	return c.inters.VerifiedUsage
}

func (c *VerifiedUsageClient) mutate(ctx context.Context, m *VerifiedUsageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerifiedUsageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerifiedUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerifiedUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerifiedUsageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VerifiedUsage mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		PriceCheck, Profile, UsageEstimate, VerifiedUsage []ent.Hook
	}
	inters struct {
		PriceCheck, Profile, UsageEstimate, VerifiedUsage []ent.Interceptor
	}
)
