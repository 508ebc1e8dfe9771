// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Trevorton27/tokuWebDev-sub003/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/assessmentresponse"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/assessmentsession"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/roadmapitem"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/skillmastery"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AssessmentResponse is the client for interacting with the AssessmentResponse builders.
	AssessmentResponse *AssessmentResponseClient
	// AssessmentSession is the client for interacting with the AssessmentSession builders.
	AssessmentSession *AssessmentSessionClient
	// RoadmapItem is the client for interacting with the RoadmapItem builders.
	RoadmapItem *RoadmapItemClient
	// SkillMastery is the client for interacting with the SkillMastery builders.
	SkillMastery *SkillMasteryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AssessmentResponse = NewAssessmentResponseClient(c.config)
	c.AssessmentSession = NewAssessmentSessionClient(c.config)
	c.RoadmapItem = NewRoadmapItemClient(c.config)
	c.SkillMastery = NewSkillMasteryClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		AssessmentResponse: NewAssessmentResponseClient(cfg),
		AssessmentSession:  NewAssessmentSessionClient(cfg),
		RoadmapItem:        NewRoadmapItemClient(cfg),
		SkillMastery:       NewSkillMasteryClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		AssessmentResponse: NewAssessmentResponseClient(cfg),
		AssessmentSession:  NewAssessmentSessionClient(cfg),
		RoadmapItem:        NewRoadmapItemClient(cfg),
		SkillMastery:       NewSkillMasteryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AssessmentResponse.
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
	c.AssessmentResponse.Use(hooks...)
	c.AssessmentSession.Use(hooks...)
	c.RoadmapItem.Use(hooks...)
	c.SkillMastery.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AssessmentResponse.Intercept(interceptors...)
	c.AssessmentSession.Intercept(interceptors...)
	c.RoadmapItem.Intercept(interceptors...)
	c.SkillMastery.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssessmentResponseMutation:
		return c.AssessmentResponse.mutate(ctx, m)
	case *AssessmentSessionMutation:
		return c.AssessmentSession.mutate(ctx, m)
	case *RoadmapItemMutation:
		return c.RoadmapItem.mutate(ctx, m)
	case *SkillMasteryMutation:
		return c.SkillMastery.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssessmentResponseClient is a client for the AssessmentResponse schema.
type AssessmentResponseClient struct {
	config
}

// NewAssessmentResponseClient returns a client for the AssessmentResponse from the given config.
func NewAssessmentResponseClient(c config) *AssessmentResponseClient {
	return &AssessmentResponseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessmentresponse.Hooks(f(g(h())))`.
func (c *AssessmentResponseClient) Use(hooks ...Hook) {
	c.hooks.AssessmentResponse = append(c.hooks.AssessmentResponse, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessmentresponse.Intercept(f(g(h())))`.
func (c *AssessmentResponseClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssessmentResponse = append(c.inters.AssessmentResponse, interceptors...)
}

// Create returns a builder for creating a AssessmentResponse entity.
func (c *AssessmentResponseClient) Create() *AssessmentResponseCreate {
	mutation := newAssessmentResponseMutation(c.config, OpCreate)
	return &AssessmentResponseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssessmentResponse entities.
func (c *AssessmentResponseClient) CreateBulk(builders ...*AssessmentResponseCreate) *AssessmentResponseCreateBulk {
	return &AssessmentResponseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentResponseClient) MapCreateBulk(slice any, setFunc func(*AssessmentResponseCreate, int)) *AssessmentResponseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentResponseCreateBulk{err: fmt.Errorf("calling to AssessmentResponseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentResponseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentResponseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssessmentResponse.
func (c *AssessmentResponseClient) Update() *AssessmentResponseUpdate {
	mutation := newAssessmentResponseMutation(c.config, OpUpdate)
	return &AssessmentResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentResponseClient) UpdateOne(_m *AssessmentResponse) *AssessmentResponseUpdateOne {
	mutation := newAssessmentResponseMutation(c.config, OpUpdateOne, withAssessmentResponse(_m))
	return &AssessmentResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentResponseClient) UpdateOneID(id int) *AssessmentResponseUpdateOne {
	mutation := newAssessmentResponseMutation(c.config, OpUpdateOne, withAssessmentResponseID(id))
	return &AssessmentResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssessmentResponse.
func (c *AssessmentResponseClient) Delete() *AssessmentResponseDelete {
	mutation := newAssessmentResponseMutation(c.config, OpDelete)
	return &AssessmentResponseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentResponseClient) DeleteOne(_m *AssessmentResponse) *AssessmentResponseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentResponseClient) DeleteOneID(id int) *AssessmentResponseDeleteOne {
	builder := c.Delete().Where(assessmentresponse.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentResponseDeleteOne{builder}
}

// Query returns a query builder for AssessmentResponse.
func (c *AssessmentResponseClient) Query() *AssessmentResponseQuery {
	return &AssessmentResponseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessmentResponse},
		inters: c.Interceptors(),
	}
}

// Get returns a AssessmentResponse entity by its id.
func (c *AssessmentResponseClient) Get(ctx context.Context, id int) (*AssessmentResponse, error) {
	return c.Query().Where(assessmentresponse.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentResponseClient) GetX(ctx context.Context, id int) *AssessmentResponse {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssessmentResponseClient) Hooks() []Hook {
	return c.hooks.AssessmentResponse
}

// Interceptors returns the client interceptors.
func (c *AssessmentResponseClient) Interceptors() []Interceptor {
	return c.inters.AssessmentResponse
}

func (c *AssessmentResponseClient) mutate(ctx context.Context, m *AssessmentResponseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentResponseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentResponseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssessmentResponse mutation op: %q", m.Op())
	}
}

// AssessmentSessionClient is a client for the AssessmentSession schema.
type AssessmentSessionClient struct {
	config
}

// NewAssessmentSessionClient returns a client for the AssessmentSession from the given config.
func NewAssessmentSessionClient(c config) *AssessmentSessionClient {
	return &AssessmentSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessmentsession.Hooks(f(g(h())))`.
func (c *AssessmentSessionClient) Use(hooks ...Hook) {
	c.hooks.AssessmentSession = append(c.hooks.AssessmentSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessmentsession.Intercept(f(g(h())))`.
func (c *AssessmentSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssessmentSession = append(c.inters.AssessmentSession, interceptors...)
}

// Create returns a builder for creating a AssessmentSession entity.
func (c *AssessmentSessionClient) Create() *AssessmentSessionCreate {
	mutation := newAssessmentSessionMutation(c.config, OpCreate)
	return &AssessmentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssessmentSession entities.
func (c *AssessmentSessionClient) CreateBulk(builders ...*AssessmentSessionCreate) *AssessmentSessionCreateBulk {
	return &AssessmentSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentSessionClient) MapCreateBulk(slice any, setFunc func(*AssessmentSessionCreate, int)) *AssessmentSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentSessionCreateBulk{err: fmt.Errorf("calling to AssessmentSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssessmentSession.
func (c *AssessmentSessionClient) Update() *AssessmentSessionUpdate {
	mutation := newAssessmentSessionMutation(c.config, OpUpdate)
	return &AssessmentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentSessionClient) UpdateOne(_m *AssessmentSession) *AssessmentSessionUpdateOne {
	mutation := newAssessmentSessionMutation(c.config, OpUpdateOne, withAssessmentSession(_m))
	return &AssessmentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentSessionClient) UpdateOneID(id int) *AssessmentSessionUpdateOne {
	mutation := newAssessmentSessionMutation(c.config, OpUpdateOne, withAssessmentSessionID(id))
	return &AssessmentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssessmentSession.
func (c *AssessmentSessionClient) Delete() *AssessmentSessionDelete {
	mutation := newAssessmentSessionMutation(c.config, OpDelete)
	return &AssessmentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentSessionClient) DeleteOne(_m *AssessmentSession) *AssessmentSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentSessionClient) DeleteOneID(id int) *AssessmentSessionDeleteOne {
	builder := c.Delete().Where(assessmentsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentSessionDeleteOne{builder}
}

// Query returns a query builder for AssessmentSession.
func (c *AssessmentSessionClient) Query() *AssessmentSessionQuery {
	return &AssessmentSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessmentSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AssessmentSession entity by its id.
func (c *AssessmentSessionClient) Get(ctx context.Context, id int) (*AssessmentSession, error) {
	return c.Query().Where(assessmentsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentSessionClient) GetX(ctx context.Context, id int) *AssessmentSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssessmentSessionClient) Hooks() []Hook {
	return c.hooks.AssessmentSession
}

// Interceptors returns the client interceptors.
func (c *AssessmentSessionClient) Interceptors() []Interceptor {
	return c.inters.AssessmentSession
}

func (c *AssessmentSessionClient) mutate(ctx context.Context, m *AssessmentSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssessmentSession mutation op: %q", m.Op())
	}
}

// RoadmapItemClient is a client for the RoadmapItem schema.
type RoadmapItemClient struct {
	config
}

// NewRoadmapItemClient returns a client for the RoadmapItem from the given config.
func NewRoadmapItemClient(c config) *RoadmapItemClient {
	return &RoadmapItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `roadmapitem.Hooks(f(g(h())))`.
func (c *RoadmapItemClient) Use(hooks ...Hook) {
	c.hooks.RoadmapItem = append(c.hooks.RoadmapItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `roadmapitem.Intercept(f(g(h())))`.
func (c *RoadmapItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.RoadmapItem = append(c.inters.RoadmapItem, interceptors...)
}

// Create returns a builder for creating a RoadmapItem entity.
func (c *RoadmapItemClient) Create() *RoadmapItemCreate {
	mutation := newRoadmapItemMutation(c.config, OpCreate)
	return &RoadmapItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RoadmapItem entities.
func (c *RoadmapItemClient) CreateBulk(builders ...*RoadmapItemCreate) *RoadmapItemCreateBulk {
	return &RoadmapItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoadmapItemClient) MapCreateBulk(slice any, setFunc func(*RoadmapItemCreate, int)) *RoadmapItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoadmapItemCreateBulk{err: fmt.Errorf("calling to RoadmapItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoadmapItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoadmapItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RoadmapItem.
func (c *RoadmapItemClient) Update() *RoadmapItemUpdate {
	mutation := newRoadmapItemMutation(c.config, OpUpdate)
	return &RoadmapItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoadmapItemClient) UpdateOne(_m *RoadmapItem) *RoadmapItemUpdateOne {
	mutation := newRoadmapItemMutation(c.config, OpUpdateOne, withRoadmapItem(_m))
	return &RoadmapItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoadmapItemClient) UpdateOneID(id int) *RoadmapItemUpdateOne {
	mutation := newRoadmapItemMutation(c.config, OpUpdateOne, withRoadmapItemID(id))
	return &RoadmapItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RoadmapItem.
func (c *RoadmapItemClient) Delete() *RoadmapItemDelete {
	mutation := newRoadmapItemMutation(c.config, OpDelete)
	return &RoadmapItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoadmapItemClient) DeleteOne(_m *RoadmapItem) *RoadmapItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoadmapItemClient) DeleteOneID(id int) *RoadmapItemDeleteOne {
	builder := c.Delete().Where(roadmapitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoadmapItemDeleteOne{builder}
}

// Query returns a query builder for RoadmapItem.
func (c *RoadmapItemClient) Query() *RoadmapItemQuery {
	return &RoadmapItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoadmapItem},
		inters: c.Interceptors(),
	}
}

// Get returns a RoadmapItem entity by its id.
func (c *RoadmapItemClient) Get(ctx context.Context, id int) (*RoadmapItem, error) {
	return c.Query().Where(roadmapitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoadmapItemClient) GetX(ctx context.Context, id int) *RoadmapItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RoadmapItemClient) Hooks() []Hook {
	return c.hooks.RoadmapItem
}

// Interceptors returns the client interceptors.
func (c *RoadmapItemClient) Interceptors() []Interceptor {
	return c.inters.RoadmapItem
}

func (c *RoadmapItemClient) mutate(ctx context.Context, m *RoadmapItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoadmapItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoadmapItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoadmapItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoadmapItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RoadmapItem mutation op: %q", m.Op())
	}
}

// SkillMasteryClient is a client for the SkillMastery schema.
type SkillMasteryClient struct {
	config
}

// NewSkillMasteryClient returns a client for the SkillMastery from the given config.
func NewSkillMasteryClient(c config) *SkillMasteryClient {
	return &SkillMasteryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skillmastery.Hooks(f(g(h())))`.
func (c *SkillMasteryClient) Use(hooks ...Hook) {
	c.hooks.SkillMastery = append(c.hooks.SkillMastery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skillmastery.Intercept(f(g(h())))`.
func (c *SkillMasteryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SkillMastery = append(c.inters.SkillMastery, interceptors...)
}

// Create returns a builder for creating a SkillMastery entity.
func (c *SkillMasteryClient) Create() *SkillMasteryCreate {
	mutation := newSkillMasteryMutation(c.config, OpCreate)
	return &SkillMasteryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SkillMastery entities.
func (c *SkillMasteryClient) CreateBulk(builders ...*SkillMasteryCreate) *SkillMasteryCreateBulk {
	return &SkillMasteryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillMasteryClient) MapCreateBulk(slice any, setFunc func(*SkillMasteryCreate, int)) *SkillMasteryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillMasteryCreateBulk{err: fmt.Errorf("calling to SkillMasteryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillMasteryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillMasteryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SkillMastery.
func (c *SkillMasteryClient) Update() *SkillMasteryUpdate {
	mutation := newSkillMasteryMutation(c.config, OpUpdate)
	return &SkillMasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillMasteryClient) UpdateOne(_m *SkillMastery) *SkillMasteryUpdateOne {
	mutation := newSkillMasteryMutation(c.config, OpUpdateOne, withSkillMastery(_m))
	return &SkillMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillMasteryClient) UpdateOneID(id int) *SkillMasteryUpdateOne {
	mutation := newSkillMasteryMutation(c.config, OpUpdateOne, withSkillMasteryID(id))
	return &SkillMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SkillMastery.
func (c *SkillMasteryClient) Delete() *SkillMasteryDelete {
	mutation := newSkillMasteryMutation(c.config, OpDelete)
	return &SkillMasteryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillMasteryClient) DeleteOne(_m *SkillMastery) *SkillMasteryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillMasteryClient) DeleteOneID(id int) *SkillMasteryDeleteOne {
	builder := c.Delete().Where(skillmastery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillMasteryDeleteOne{builder}
}

// Query returns a query builder for SkillMastery.
func (c *SkillMasteryClient) Query() *SkillMasteryQuery {
	return &SkillMasteryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkillMastery},
		inters: c.Interceptors(),
	}
}

// Get returns a SkillMastery entity by its id.
func (c *SkillMasteryClient) Get(ctx context.Context, id int) (*SkillMastery, error) {
	return c.Query().Where(skillmastery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillMasteryClient) GetX(ctx context.Context, id int) *SkillMastery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillMasteryClient) Hooks() []Hook {
	return c.hooks.SkillMastery
}

// Interceptors returns the client interceptors.
func (c *SkillMasteryClient) Interceptors() []Interceptor {
	return c.inters.SkillMastery
}

func (c *SkillMasteryClient) mutate(ctx context.Context, m *SkillMasteryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillMasteryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillMasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillMasteryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SkillMastery mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AssessmentResponse, AssessmentSession, RoadmapItem, SkillMastery []ent.Hook
	}
	inters struct {
		AssessmentResponse, AssessmentSession, RoadmapItem,
		SkillMastery []ent.Interceptor
	}
)
