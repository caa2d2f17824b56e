package sqlq

import "errors"

// ErrNilConn is returned by New when no connection is given.
var ErrNilConn = errors.New("sqlq: nil connection")

// ErrEmptyQuery is reported by Prepare when the query string is empty or blank.
var ErrEmptyQuery = errors.New("sqlq: empty query")

// ErrNoStatement is reported by bind and execute calls made before Prepare.
var ErrNoStatement = errors.New("sqlq: no prepared statement")

// ErrNoResult is reported by navigation and fetch calls made before
// Query, and by LastInsertID before Update.
var ErrNoResult = errors.New("sqlq: no result")

// ErrNotOnRow is returned by Scan when the cursor is before the first
// or past the last row.
var ErrNotOnRow = errors.New("sqlq: cursor is not on a row")

// ErrClosed is reported by operations that need the connection after it
// was released by Query, Update or Close.
var ErrClosed = errors.New("sqlq: connection closed")

// ErrBindPosition is reported when a parameter position is less than 1.
var ErrBindPosition = errors.New("sqlq: parameter position out of range")

// ErrUnboundParameter is reported by Query and Update when the bound
// positions leave a gap, e.g. positions 1 and 3 are set but 2 is not.
var ErrUnboundParameter = errors.New("sqlq: parameter not bound")

// ErrRowOutOfRange is reported by Seek when the row number does not
// exist in the result set.
var ErrRowOutOfRange = errors.New("sqlq: row out of range")

// ErrColumnOutOfRange is reported by fetch calls addressing a column
// the result set does not have.
var ErrColumnOutOfRange = errors.New("sqlq: column out of range")

// ErrNullValue is reported when a NULL is read into a destination that
// cannot represent it. Use a Null-aware destination instead.
var ErrNullValue = errors.New("sqlq: NULL value")

// ErrTypeMismatch is reported when a driver value cannot be converted
// to the requested type.
var ErrTypeMismatch = errors.New("sqlq: type mismatch")
