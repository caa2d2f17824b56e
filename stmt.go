package sqlq

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

/*
New creates a statement runner on top of an open connection.

The runner takes ownership of conn: the first Query or Update call
closes it along with the prepared statement. Obtain a fresh connection
for every statement you run.

	q, err := sqlq.New(db)
	if err != nil {
		panic(err)
	}

	err = q.Prepare("SELECT name, age FROM users WHERE age > ?").
		BindInt(21).
		Query(ctx).
		Err()

Both *sql.DB and *sql.Conn satisfy Conn. Note that closing a *sql.DB
closes the whole pool, so prefer handing over a dedicated *sql.Conn
when the pool outlives the statement.
*/
func New(conn Conn, opts ...Option) (*Stmt, error) {
	if conn == nil {
		return nil, ErrNilConn
	}
	q := &Stmt{
		conn:   conn,
		argPos: 1,
		logger: NopLogger{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	if q.debug {
		if _, nop := q.logger.(NopLogger); nop {
			q.logger = StdLogger()
		}
	}
	q.start = q.now()
	return q, nil
}

// Option configures a Stmt created by New.
type Option func(*Stmt)

// WithDebug turns on diagnostics: the executed query with a redacted
// argument preview, and a duration line when the runner is closed.
// Output goes to the logger set via WithLogger, or to stdout.
func WithDebug() Option {
	return func(q *Stmt) {
		q.debug = true
	}
}

// WithLogger routes debug output to l.
func WithLogger(l Logger) Option {
	return func(q *Stmt) {
		if l != nil {
			q.logger = l
		}
	}
}

/*
Stmt prepares a statement over a single connection, binds parameters by
position, executes, and walks the buffered result.

Methods returning *Stmt never fail in place. The first error sticks and
turns every later call into a no-op, so a chain can be written without
intermediate checks and inspected once at the end:

	var name sqlq.Column[string]
	var age sqlq.Column[int]

	err := q.Prepare("SELECT name, age FROM users WHERE id = ?").
		BindInt64(42).
		Query(ctx).
		ScanOne(&name, &age)

Query buffers the full result set and releases the connection before it
returns, so rows stay readable for as long as the Stmt is around.

A Stmt is not safe for concurrent use.
*/
type Stmt struct {
	conn   Conn
	stmt   *sql.Stmt
	query  string
	args   []any
	argPos int

	res  *snapshot
	last sql.Result
	row  int

	closed bool
	debug  bool
	logger Logger
	start  time.Time
	now    func() time.Time

	err error
}

// Prepare is PrepareContext with context.Background.
func (q *Stmt) Prepare(query string) *Stmt {
	return q.PrepareContext(context.Background(), query)
}

/*
PrepareContext compiles query on the underlying connection.

Preparing a second time replaces the previous statement and discards
any parameters bound so far. Parameter placeholders use the driver's
positional syntax, ? for SQLite and MySQL.
*/
func (q *Stmt) PrepareContext(ctx context.Context, query string) *Stmt {
	if q.err != nil {
		return q
	}
	if q.closed {
		return q.fail(ErrClosed)
	}
	if strings.TrimSpace(query) == "" {
		return q.fail(ErrEmptyQuery)
	}
	stmt, err := q.conn.PrepareContext(ctx, query)
	if err != nil {
		return q.fail(fmt.Errorf("prepare %q: %w", query, err))
	}
	if q.stmt != nil {
		_ = q.stmt.Close()
	}
	q.stmt = stmt
	q.query = query
	q.args = q.args[:0]
	q.argPos = 1
	return q
}

// String returns the most recently prepared query text.
func (q *Stmt) String() string {
	return q.query
}

// Err returns the first error recorded by the chain, nil if none.
func (q *Stmt) Err() error {
	return q.err
}

// fail records the first error of the chain. Later calls keep it.
func (q *Stmt) fail(err error) *Stmt {
	if q.err == nil {
		q.err = err
	}
	return q
}
