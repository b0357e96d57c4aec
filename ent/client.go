// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/sproutfi/sprout/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/sproutfi/sprout/ent/challengeevent"
	"github.com/sproutfi/sprout/ent/quizanswerevent"
	"github.com/sproutfi/sprout/ent/sessionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChallengeEvent is the client for interacting with the ChallengeEvent builders.
	ChallengeEvent *ChallengeEventClient
	// QuizAnswerEvent is the client for interacting with the QuizAnswerEvent builders.
	QuizAnswerEvent *QuizAnswerEventClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChallengeEvent = NewChallengeEventClient(c.config)
	c.QuizAnswerEvent = NewQuizAnswerEventClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		ChallengeEvent:  NewChallengeEventClient(cfg),
		QuizAnswerEvent: NewQuizAnswerEventClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		ChallengeEvent:  NewChallengeEventClient(cfg),
		QuizAnswerEvent: NewQuizAnswerEventClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChallengeEvent.
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
	c.ChallengeEvent.Use(hooks...)
	c.QuizAnswerEvent.Use(hooks...)
	c.SessionEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ChallengeEvent.Intercept(interceptors...)
	c.QuizAnswerEvent.Intercept(interceptors...)
	c.SessionEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChallengeEventMutation:
		return c.ChallengeEvent.mutate(ctx, m)
	case *QuizAnswerEventMutation:
		return c.QuizAnswerEvent.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChallengeEventClient is a client for the ChallengeEvent schema.
type ChallengeEventClient struct {
	config
}

// NewChallengeEventClient returns a client for the ChallengeEvent from the given config.
func NewChallengeEventClient(c config) *ChallengeEventClient {
	return &ChallengeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `challengeevent.Hooks(f(g(h())))`.
func (c *ChallengeEventClient) Use(hooks ...Hook) {
	c.hooks.ChallengeEvent = append(c.hooks.ChallengeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `challengeevent.Intercept(f(g(h())))`.
func (c *ChallengeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChallengeEvent = append(c.inters.ChallengeEvent, interceptors...)
}

// Create returns a builder for creating a ChallengeEvent entity.
func (c *ChallengeEventClient) Create() *ChallengeEventCreate {
	mutation := newChallengeEventMutation(c.config, OpCreate)
	return &ChallengeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChallengeEvent entities.
func (c *ChallengeEventClient) CreateBulk(builders ...*ChallengeEventCreate) *ChallengeEventCreateBulk {
	return &ChallengeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChallengeEventClient) MapCreateBulk(slice any, setFunc func(*ChallengeEventCreate, int)) *ChallengeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChallengeEventCreateBulk{err: fmt.Errorf("calling to ChallengeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChallengeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChallengeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChallengeEvent.
func (c *ChallengeEventClient) Update() *ChallengeEventUpdate {
	mutation := newChallengeEventMutation(c.config, OpUpdate)
	return &ChallengeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChallengeEventClient) UpdateOne(_m *ChallengeEvent) *ChallengeEventUpdateOne {
	mutation := newChallengeEventMutation(c.config, OpUpdateOne, withChallengeEvent(_m))
	return &ChallengeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChallengeEventClient) UpdateOneID(id int) *ChallengeEventUpdateOne {
	mutation := newChallengeEventMutation(c.config, OpUpdateOne, withChallengeEventID(id))
	return &ChallengeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChallengeEvent.
func (c *ChallengeEventClient) Delete() *ChallengeEventDelete {
	mutation := newChallengeEventMutation(c.config, OpDelete)
	return &ChallengeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChallengeEventClient) DeleteOne(_m *ChallengeEvent) *ChallengeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChallengeEventClient) DeleteOneID(id int) *ChallengeEventDeleteOne {
	builder := c.Delete().Where(challengeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChallengeEventDeleteOne{builder}
}

// Query returns a query builder for ChallengeEvent.
func (c *ChallengeEventClient) Query() *ChallengeEventQuery {
	return &ChallengeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChallengeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ChallengeEvent entity by its id.
func (c *ChallengeEventClient) Get(ctx context.Context, id int) (*ChallengeEvent, error) {
	return c.Query().Where(challengeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChallengeEventClient) GetX(ctx context.Context, id int) *ChallengeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChallengeEventClient) Hooks() []Hook {
	return c.hooks.ChallengeEvent
}

// Interceptors returns the client interceptors.
func (c *ChallengeEventClient) Interceptors() []Interceptor {
	return c.inters.ChallengeEvent
}

func (c *ChallengeEventClient) mutate(ctx context.Context, m *ChallengeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChallengeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChallengeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChallengeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChallengeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChallengeEvent mutation op: %q", m.Op())
	}
}

// QuizAnswerEventClient is a client for the QuizAnswerEvent schema.
type QuizAnswerEventClient struct {
	config
}

// NewQuizAnswerEventClient returns a client for the QuizAnswerEvent from the given config.
func NewQuizAnswerEventClient(c config) *QuizAnswerEventClient {
	return &QuizAnswerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizanswerevent.Hooks(f(g(h())))`.
func (c *QuizAnswerEventClient) Use(hooks ...Hook) {
	c.hooks.QuizAnswerEvent = append(c.hooks.QuizAnswerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizanswerevent.Intercept(f(g(h())))`.
func (c *QuizAnswerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizAnswerEvent = append(c.inters.QuizAnswerEvent, interceptors...)
}

// Create returns a builder for creating a QuizAnswerEvent entity.
func (c *QuizAnswerEventClient) Create() *QuizAnswerEventCreate {
	mutation := newQuizAnswerEventMutation(c.config, OpCreate)
	return &QuizAnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizAnswerEvent entities.
func (c *QuizAnswerEventClient) CreateBulk(builders ...*QuizAnswerEventCreate) *QuizAnswerEventCreateBulk {
	return &QuizAnswerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizAnswerEventClient) MapCreateBulk(slice any, setFunc func(*QuizAnswerEventCreate, int)) *QuizAnswerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizAnswerEventCreateBulk{err: fmt.Errorf("calling to QuizAnswerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizAnswerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizAnswerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizAnswerEvent.
func (c *QuizAnswerEventClient) Update() *QuizAnswerEventUpdate {
	mutation := newQuizAnswerEventMutation(c.config, OpUpdate)
	return &QuizAnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizAnswerEventClient) UpdateOne(_m *QuizAnswerEvent) *QuizAnswerEventUpdateOne {
	mutation := newQuizAnswerEventMutation(c.config, OpUpdateOne, withQuizAnswerEvent(_m))
	return &QuizAnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizAnswerEventClient) UpdateOneID(id int) *QuizAnswerEventUpdateOne {
	mutation := newQuizAnswerEventMutation(c.config, OpUpdateOne, withQuizAnswerEventID(id))
	return &QuizAnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizAnswerEvent.
func (c *QuizAnswerEventClient) Delete() *QuizAnswerEventDelete {
	mutation := newQuizAnswerEventMutation(c.config, OpDelete)
	return &QuizAnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizAnswerEventClient) DeleteOne(_m *QuizAnswerEvent) *QuizAnswerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizAnswerEventClient) DeleteOneID(id int) *QuizAnswerEventDeleteOne {
	builder := c.Delete().Where(quizanswerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizAnswerEventDeleteOne{builder}
}

// Query returns a query builder for QuizAnswerEvent.
func (c *QuizAnswerEventClient) Query() *QuizAnswerEventQuery {
	return &QuizAnswerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizAnswerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizAnswerEvent entity by its id.
func (c *QuizAnswerEventClient) Get(ctx context.Context, id int) (*QuizAnswerEvent, error) {
	return c.Query().Where(quizanswerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizAnswerEventClient) GetX(ctx context.Context, id int) *QuizAnswerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizAnswerEventClient) Hooks() []Hook {
	return c.hooks.QuizAnswerEvent
}

// Interceptors returns the client interceptors.
func (c *QuizAnswerEventClient) Interceptors() []Interceptor {
	return c.inters.QuizAnswerEvent
}

func (c *QuizAnswerEventClient) mutate(ctx context.Context, m *QuizAnswerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizAnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizAnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizAnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizAnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizAnswerEvent mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChallengeEvent, QuizAnswerEvent, SessionEvent []ent.Hook
	}
	inters struct {
		ChallengeEvent, QuizAnswerEvent, SessionEvent []ent.Interceptor
	}
)
