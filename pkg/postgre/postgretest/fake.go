// Package postgretest provides in-memory sessions, transactions and rows for
// exercising postgre.Pool and the repositories without a database.
package postgretest

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"storefront/pkg/postgre"
)

// Connector dials Conns. Err, when set, fails every dial.
type Connector struct {
	// BeginFunc is copied into every dialed Conn.
	BeginFunc func(ctx context.Context) (pgx.Tx, error)

	mu    sync.Mutex
	err   error
	conns []*Conn
}

// SetErr makes subsequent dials fail with err.
func (f *Connector) SetErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// Connect satisfies postgre.Connector.
func (f *Connector) Connect(ctx context.Context) (postgre.Conn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	c := &Conn{BeginFunc: f.BeginFunc}
	f.conns = append(f.conns, c)
	return c, nil
}

// Dialed returns how many sessions were opened.
func (f *Connector) Dialed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.conns)
}

// Conns returns the dialed sessions in order.
func (f *Connector) Conns() []*Conn {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*Conn(nil), f.conns...)
}

// Conn is an in-memory session.
type Conn struct {
	BeginFunc func(ctx context.Context) (pgx.Tx, error)
	PingErr   error

	mu     sync.Mutex
	closed bool
}

func (c *Conn) Begin(ctx context.Context) (pgx.Tx, error) {
	if c.BeginFunc == nil {
		return &Tx{}, nil
	}
	return c.BeginFunc(ctx)
}

func (c *Conn) Ping(ctx context.Context) error {
	return c.PingErr
}

func (c *Conn) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *Conn) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Kill simulates the server dropping the session.
func (c *Conn) Kill() {
	_ = c.Close(context.Background())
}

// Query is one statement seen by a Tx.
type Query struct {
	SQL  string
	Args []any
}

// Tx is an in-memory transaction. Only Query, Commit and Rollback are
// implemented; the embedded pgx.Tx is nil.
type Tx struct {
	pgx.Tx

	QueryFunc   func(ctx context.Context, sql string, args []any) (pgx.Rows, error)
	CommitErr   error
	RollbackErr error

	mu        sync.Mutex
	queries   []Query
	commits   int
	rollbacks int
}

func (t *Tx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	t.mu.Lock()
	t.queries = append(t.queries, Query{SQL: sql, Args: args})
	fn := t.QueryFunc
	t.mu.Unlock()

	if fn == nil {
		return NewRows(nil), nil
	}
	return fn(ctx, sql, args)
}

func (t *Tx) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.commits++
	return t.CommitErr
}

func (t *Tx) Rollback(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollbacks++
	return t.RollbackErr
}

func (t *Tx) Queries() []Query {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Query(nil), t.queries...)
}

func (t *Tx) Commits() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.commits
}

func (t *Tx) Rollbacks() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rollbacks
}

// Rows is an in-memory result set. Scan assigns values by reflection and fails
// when a value is not assignable to its destination.
type Rows struct {
	pgx.Rows

	cols   []string
	data   [][]any
	err    error
	idx    int
	closed bool
}

// NewRows builds a result set with the given column names and rows.
func NewRows(cols []string, data ...[]any) *Rows {
	return &Rows{cols: cols, data: data}
}

// ErrRows builds an empty result set that reports err after iteration, the way
// pgx surfaces server errors for INSERT ... RETURNING.
func ErrRows(err error) *Rows {
	return &Rows{err: err}
}

func (r *Rows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *Rows) Next() bool {
	if r.closed || r.idx >= len(r.data) {
		r.closed = true
		return false
	}
	r.idx++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	if r.idx == 0 {
		return errors.New("postgretest: Scan called before Next")
	}
	row := r.data[r.idx-1]
	if len(dest) != len(row) {
		return fmt.Errorf("number of field descriptions must equal number of destinations, got %d and %d", len(row), len(dest))
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d)
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("can't scan into dest[%d]: not a pointer", i)
		}
		if row[i] == nil {
			dv.Elem().Set(reflect.Zero(dv.Elem().Type()))
			continue
		}
		v := reflect.ValueOf(row[i])
		if !v.Type().AssignableTo(dv.Elem().Type()) {
			return fmt.Errorf("can't scan into dest[%d]: cannot assign %T to %s", i, row[i], dv.Elem().Type())
		}
		dv.Elem().Set(v)
	}
	return nil
}

func (r *Rows) Values() ([]any, error) {
	if r.idx == 0 {
		return nil, errors.New("postgretest: Values called before Next")
	}
	return r.data[r.idx-1], nil
}

func (r *Rows) RawValues() [][]byte { return nil }

func (r *Rows) Err() error { return r.err }

func (r *Rows) Close() { r.closed = true }

func (r *Rows) Closed() bool { return r.closed }

func (r *Rows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

// UniqueViolation returns the server error for a unique constraint violation.
func UniqueViolation(constraint string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           pgerrcode.UniqueViolation,
		Message:        "duplicate key value violates unique constraint",
		ConstraintName: constraint,
	}
}

// ForeignKeyViolation returns the server error for a foreign key violation.
func ForeignKeyViolation(constraint string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           pgerrcode.ForeignKeyViolation,
		Message:        "insert or update violates foreign key constraint",
		ConstraintName: constraint,
	}
}

// ConnectionFailure returns a server error outside the constraint classes.
func ConnectionFailure() error {
	return &pgconn.PgError{
		Severity: "FATAL",
		Code:     pgerrcode.AdminShutdown,
		Message:  "terminating connection due to administrator command",
	}
}
