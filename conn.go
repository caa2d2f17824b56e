package sqlq

import (
	"context"
	"database/sql"
)

// Conn is the slice of a database session a Stmt borrows: it must be able
// to compile a prepared statement and to release the session.
//
// Both *sql.DB and *sql.Conn implement Conn. Pass a *sql.Conn to pin the
// statement to a single session taken from the pool; Close then returns
// the session to the pool. Passing a *sql.DB works the same way, except
// that Close shuts the whole pool down, so reserve it for one-shot
// programs and tests.
type Conn interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	Close() error
}

var (
	_ Conn = (*sql.DB)(nil)
	_ Conn = (*sql.Conn)(nil)
)
