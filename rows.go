package sqlq

import (
	"database/sql"
	"fmt"
)

// snapshot is a result set buffered in full, detached from the
// connection that produced it. Cells hold driver values: int64,
// float64, bool, string, []byte, time.Time or nil.
type snapshot struct {
	cols []string
	rows [][]any
}

// newSnapshot drains rows into memory and closes the cursor. Scanning
// through *any makes database/sql copy blob cells, so the snapshot owns
// all of its data.
func newSnapshot(rows *sql.Rows) (*snapshot, error) {
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	res := &snapshot{cols: cols}

	vec := getScanVec(len(cols))
	defer putScanVec(vec)

	for rows.Next() {
		row := make([]any, len(cols))
		for n := range vec {
			vec[n] = &row[n]
		}
		if err := rows.Scan(vec...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(res.rows)+1, err)
		}
		res.rows = append(res.rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	return res, nil
}

/*
Next advances the row pointer and reports whether it landed on a row.

The pointer starts before the first row, so the usual loop reads every
row once:

	for q.Next() {
		var id sqlq.Column[int64]
		if err := q.Scan(&id); err != nil {
			// ...
		}
	}

Next returns false past the last row and when the chain carries an
error. Calling it before Query records ErrNoResult.
*/
func (q *Stmt) Next() bool {
	if q.err != nil {
		return false
	}
	if q.res == nil {
		q.fail(ErrNoResult)
		return false
	}
	if q.row > len(q.res.rows) {
		return false
	}
	q.row++
	return q.row <= len(q.res.rows)
}

// Seek moves the row pointer to the given 1-based row. A row number
// outside 1..RowCount() records ErrRowOutOfRange and leaves the
// pointer where it was.
func (q *Stmt) Seek(row int) *Stmt {
	if q.err != nil {
		return q
	}
	if q.res == nil {
		return q.fail(ErrNoResult)
	}
	if row < 1 || row > len(q.res.rows) {
		return q.fail(fmt.Errorf("%w: row %d of %d", ErrRowOutOfRange, row, len(q.res.rows)))
	}
	q.row = row
	return q
}

// Rewind moves the row pointer back before the first row, so the next
// Next call lands on row 1.
func (q *Stmt) Rewind() *Stmt {
	if q.err != nil {
		return q
	}
	if q.res == nil {
		return q.fail(ErrNoResult)
	}
	q.row = 0
	return q
}

// RowExists reports whether the buffered result has the given 1-based
// row. It never moves the pointer and never records an error; before
// Query it reports false.
func (q *Stmt) RowExists(row int) bool {
	if q.res == nil {
		return false
	}
	return row >= 1 && row <= len(q.res.rows)
}

// Row returns the current row pointer: 0 before the first row, 1 to
// RowCount() on a row, RowCount()+1 past the end.
func (q *Stmt) Row() int {
	return q.row
}

// RowCount returns the number of buffered rows, 0 before Query.
func (q *Stmt) RowCount() int {
	if q.res == nil {
		return 0
	}
	return len(q.res.rows)
}

// Columns returns the column names of the buffered result in statement
// order, nil before Query.
func (q *Stmt) Columns() []string {
	if q.res == nil {
		return nil
	}
	cols := make([]string, len(q.res.cols))
	copy(cols, q.res.cols)
	return cols
}

// currentRow returns the cells of the row under the pointer.
func (q *Stmt) currentRow() ([]any, error) {
	if q.res == nil {
		return nil, ErrNoResult
	}
	if q.row < 1 || q.row > len(q.res.rows) {
		return nil, ErrNotOnRow
	}
	return q.res.rows[q.row-1], nil
}

// cell returns the value at the 1-based column of the current row.
func (q *Stmt) cell(col int) (any, error) {
	row, err := q.currentRow()
	if err != nil {
		return nil, err
	}
	if col < 1 || col > len(row) {
		return nil, fmt.Errorf("%w: column %d of %d", ErrColumnOutOfRange, col, len(row))
	}
	return row[col-1], nil
}
