package sqlq

import (
	"fmt"
	"time"
)

/*
BindInt binds an integer parameter at the next free position.

Positions are 1-based and advance with every bind that does not name a
position explicitly, left to right through the statement placeholders:

	q.Prepare("INSERT INTO users (name, age) VALUES (?, ?)").
		BindString("Alice").
		BindInt(30)

Binding requires a prepared statement. Rebinding a position overwrites
the earlier value. A position left unbound at execution time makes
Query and Update fail with ErrUnboundParameter.
*/
func (q *Stmt) BindInt(v int) *Stmt {
	return q.bindNext(int64(v))
}

// BindIntAt binds an integer parameter at the given 1-based position
// without advancing the implicit position.
func (q *Stmt) BindIntAt(pos int, v int) *Stmt {
	return q.bind(pos, int64(v))
}

// BindInt64 binds a 64-bit integer parameter at the next free position.
// The full range survives the round trip.
func (q *Stmt) BindInt64(v int64) *Stmt {
	return q.bindNext(v)
}

// BindInt64At binds a 64-bit integer parameter at the given position.
func (q *Stmt) BindInt64At(pos int, v int64) *Stmt {
	return q.bind(pos, v)
}

// BindFloat64 binds a float parameter at the next free position.
func (q *Stmt) BindFloat64(v float64) *Stmt {
	return q.bindNext(v)
}

// BindFloat64At binds a float parameter at the given position.
func (q *Stmt) BindFloat64At(pos int, v float64) *Stmt {
	return q.bind(pos, v)
}

// BindString binds a text parameter at the next free position.
func (q *Stmt) BindString(v string) *Stmt {
	return q.bindNext(v)
}

// BindStringAt binds a text parameter at the given position.
func (q *Stmt) BindStringAt(pos int, v string) *Stmt {
	return q.bind(pos, v)
}

// BindBool binds a boolean parameter at the next free position.
func (q *Stmt) BindBool(v bool) *Stmt {
	return q.bindNext(v)
}

// BindBoolAt binds a boolean parameter at the given position.
func (q *Stmt) BindBoolAt(pos int, v bool) *Stmt {
	return q.bind(pos, v)
}

// BindTime binds a timestamp parameter at the next free position.
func (q *Stmt) BindTime(v time.Time) *Stmt {
	return q.bindNext(v)
}

// BindTimeAt binds a timestamp parameter at the given position.
func (q *Stmt) BindTimeAt(pos int, v time.Time) *Stmt {
	return q.bind(pos, v)
}

// BindBytes binds a blob parameter at the next free position.
// The slice is copied, so the caller may reuse it right away.
func (q *Stmt) BindBytes(v []byte) *Stmt {
	return q.bindNext(copyBytes(v))
}

// BindBytesAt binds a blob parameter at the given position.
func (q *Stmt) BindBytesAt(pos int, v []byte) *Stmt {
	return q.bind(pos, copyBytes(v))
}

// BindNull binds SQL NULL at the next free position.
func (q *Stmt) BindNull() *Stmt {
	return q.bindNext(nil)
}

// BindNullAt binds SQL NULL at the given position.
func (q *Stmt) BindNullAt(pos int) *Stmt {
	return q.bind(pos, nil)
}

// bindNext binds value at the implicit position and advances it.
func (q *Stmt) bindNext(value any) *Stmt {
	if q.err != nil {
		return q
	}
	pos := q.argPos
	q.argPos++
	return q.bind(pos, value)
}

// bind stores value at a 1-based parameter position.
func (q *Stmt) bind(pos int, value any) *Stmt {
	if q.err != nil {
		return q
	}
	if q.closed {
		return q.fail(ErrClosed)
	}
	if q.stmt == nil {
		return q.fail(ErrNoStatement)
	}
	if pos < 1 {
		return q.fail(fmt.Errorf("%w: %d", ErrBindPosition, pos))
	}
	q.args = ensureArg(q.args, pos)
	q.args[pos-1] = value
	return q
}
