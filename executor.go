package sqlq

import (
	"context"
	"errors"
	"fmt"
)

/*
Query executes the prepared statement and buffers the complete result
set in memory. The prepared statement and the connection are closed
before Query returns, on success and failure alike, so the buffered
rows stay readable without holding database resources.

	q.Prepare("SELECT id, name FROM users WHERE age > ?").
		BindInt(21).
		Query(ctx)

	for q.Next() {
		// ...
	}

The row pointer starts before the first row. Advance it with Next or
Seek, or read directly with ScanOne, ScanAll, Fetch, FetchOne and All.

Executing requires every parameter position up to the highest bound one
to be set; a gap fails with ErrUnboundParameter before the statement
reaches the database.
*/
func (q *Stmt) Query(ctx context.Context) *Stmt {
	defer func() {
		if err := q.Close(); err != nil {
			q.fail(err)
		}
	}()

	if q.err != nil {
		return q
	}
	if q.closed {
		return q.fail(ErrClosed)
	}
	if err := q.ready(); err != nil {
		return q.fail(err)
	}
	q.logExec()

	rows, err := q.stmt.QueryContext(ctx, q.args...)
	if err != nil {
		return q.fail(fmt.Errorf("query: %w", err))
	}
	res, err := newSnapshot(rows)
	if err != nil {
		return q.fail(err)
	}
	q.res = res
	q.row = 0
	return q
}

/*
Update executes the prepared statement and returns the number of rows
it changed. Like Query it closes the statement and the connection
before returning.

	n, err := q.Prepare("DELETE FROM sessions WHERE expires_at < ?").
		BindTime(cutoff).
		Update(ctx)
*/
func (q *Stmt) Update(ctx context.Context) (affected int64, err error) {
	defer func() {
		if cerr := q.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			q.fail(err)
		}
	}()

	if q.err != nil {
		return 0, q.err
	}
	if q.closed {
		return 0, ErrClosed
	}
	if err := q.ready(); err != nil {
		return 0, err
	}
	q.logExec()

	res, err := q.stmt.ExecContext(ctx, q.args...)
	if err != nil {
		return 0, fmt.Errorf("update: %w", err)
	}
	q.last = res
	return res.RowsAffected()
}

// LastInsertID returns the row id generated by the most recent Update.
// Support depends on the driver; SQLite reports the last inserted rowid.
func (q *Stmt) LastInsertID() (int64, error) {
	if q.err != nil {
		return 0, q.err
	}
	if q.last == nil {
		return 0, ErrNoResult
	}
	return q.last.LastInsertId()
}

/*
Close releases the prepared statement and the connection. Query and
Update call it on every path, so an explicit Close is only needed for
a Stmt that never executed. Calling it again is a no-op, and a result
set buffered by Query stays readable after it.

In debug mode Close logs the time from New to Close:

	Query finished in 2.000 seconds - !!
*/
func (q *Stmt) Close() error {
	if q.closed {
		return nil
	}
	q.closed = true

	var stmtErr error
	if q.stmt != nil {
		stmtErr = q.stmt.Close()
		q.stmt = nil
	}
	connErr := q.conn.Close()

	if q.debug {
		q.logger.Printf("%s", durationLine(q.now().Sub(q.start)))
	}
	return errors.Join(stmtErr, connErr)
}

// ready reports whether the statement can be executed.
func (q *Stmt) ready() error {
	if q.stmt == nil {
		return ErrNoStatement
	}
	if pos := firstUnbound(q.args); pos > 0 {
		return fmt.Errorf("%w: position %d", ErrUnboundParameter, pos)
	}
	return nil
}

// logExec reports the query about to run. Argument values are redacted.
func (q *Stmt) logExec() {
	if !q.debug {
		return
	}
	q.logger.Printf("exec: %s args=%s", q.query, formatArgs(q.args))
}
