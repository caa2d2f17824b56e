package sqlq

import (
	"database/sql"
	"fmt"
)

// ColumnTarget is the write side of Column, accepted by Scan, ScanOne
// and ScanAll. Its methods are unexported; Column is the only
// implementation.
type ColumnTarget interface {
	setValue(src any) error
	addValue(src any) error
	invalidate()
	resetValues()
}

/*
Column is a typed container filled by Scan, ScanOne and ScanAll.

Scan and ScanOne write a single cell into Value; a NULL cell leaves
Value invalid instead of failing. ScanAll appends one cell per row to
Values; there a NULL is an error, since a slice of T cannot hold one.

	var name sqlq.Column[string]
	var age sqlq.Column[int]

	err := q.Prepare("SELECT name, age FROM users").
		Query(ctx).
		ScanAll(&name, &age)

	for n := range name.Values {
		fmt.Println(name.Values[n], age.Values[n])
	}
*/
type Column[T Scalar] struct {
	// Value holds the cell read by the latest Scan or ScanOne.
	Value sql.Null[T]
	// Values collects the column read by the latest ScanAll.
	Values []T
}

func (c *Column[T]) setValue(src any) error {
	if src == nil {
		c.Value = sql.Null[T]{}
		return nil
	}
	v, err := convert[T](src)
	if err != nil {
		return err
	}
	c.Value = sql.Null[T]{V: v, Valid: true}
	return nil
}

func (c *Column[T]) addValue(src any) error {
	v, err := convert[T](src)
	if err != nil {
		return err
	}
	c.Values = append(c.Values, v)
	return nil
}

func (c *Column[T]) invalidate() {
	c.Value = sql.Null[T]{}
}

func (c *Column[T]) resetValues() {
	c.Values = c.Values[:0]
}

/*
Scan reads the row under the pointer into the given destinations, one
per column in statement order. A destination is either a *Column or a
pointer to a value: the Scalar types, their sql.Null counterparts for
nullable columns, or *any for the raw driver value.

	for q.Next() {
		var id int64
		var email sql.Null[string]
		if err := q.Scan(&id, &email); err != nil {
			// ...
		}
	}

Scan requires exactly one destination per result column.
*/
func (q *Stmt) Scan(dest ...any) error {
	if q.err != nil {
		return q.err
	}
	row, err := q.currentRow()
	if err != nil {
		return err
	}
	if len(dest) != len(row) {
		return fmt.Errorf("sqlq: Scan expects %d destinations, got %d", len(row), len(dest))
	}
	for n, d := range dest {
		if t, ok := d.(ColumnTarget); ok {
			err = t.setValue(row[n])
		} else {
			err = assign(d, row[n])
		}
		if err != nil {
			return fmt.Errorf("column %d (%s): %w", n+1, q.res.cols[n], err)
		}
	}
	return nil
}

/*
ScanOne reads the first row into the given columns and leaves the row
pointer on it. Targets map to result columns left to right; trailing
result columns may be left without a target.

An empty result is not a failure: every target is invalidated and
ScanOne returns nil. Check Value.Valid to tell the two apart.

	var total sqlq.Column[int64]

	err := q.Prepare("SELECT SUM(amount) FROM orders WHERE user_id = ?").
		BindInt64(id).
		Query(ctx).
		ScanOne(&total)
*/
func (q *Stmt) ScanOne(cols ...ColumnTarget) error {
	if q.err != nil {
		return q.err
	}
	if q.res == nil {
		return ErrNoResult
	}
	if len(cols) > len(q.res.cols) {
		return fmt.Errorf("%w: %d targets for %d columns", ErrColumnOutOfRange, len(cols), len(q.res.cols))
	}
	if len(q.res.rows) == 0 {
		for _, c := range cols {
			c.invalidate()
		}
		return nil
	}
	q.row = 1
	row := q.res.rows[0]
	for n, c := range cols {
		if err := c.setValue(row[n]); err != nil {
			return fmt.Errorf("column %d (%s): %w", n+1, q.res.cols[n], err)
		}
	}
	return nil
}

/*
ScanAll reads every buffered row in a single pass, appending each cell
to the Values of its column target. Targets map to result columns left
to right. The row pointer ends up past the last row; on an error it
stays on the offending row and the filled Values keep the rows read so
far.
*/
func (q *Stmt) ScanAll(cols ...ColumnTarget) error {
	if q.err != nil {
		return q.err
	}
	if q.res == nil {
		return ErrNoResult
	}
	if len(cols) > len(q.res.cols) {
		return fmt.Errorf("%w: %d targets for %d columns", ErrColumnOutOfRange, len(cols), len(q.res.cols))
	}
	for _, c := range cols {
		c.resetValues()
	}
	for r, row := range q.res.rows {
		q.row = r + 1
		for n, c := range cols {
			if err := c.addValue(row[n]); err != nil {
				return fmt.Errorf("row %d column %d (%s): %w", r+1, n+1, q.res.cols[n], err)
			}
		}
	}
	q.row = len(q.res.rows) + 1
	return nil
}

/*
Fetch reads the given 1-based column of the first row and moves the row
pointer there. An empty result returns an invalid Null and no error; a
NULL cell does the same. Conversion failures and a column outside the
result are errors.

	age, err := sqlq.Fetch[int](q, 2)
	if err != nil {
		// ...
	}
	if age.Valid {
		fmt.Println(age.V)
	}
*/
func Fetch[T Scalar](q *Stmt, col int) (sql.Null[T], error) {
	if q.err != nil {
		return sql.Null[T]{}, q.err
	}
	if q.res == nil {
		return sql.Null[T]{}, ErrNoResult
	}
	if len(q.res.rows) == 0 {
		return sql.Null[T]{}, nil
	}
	q.row = 1
	src, err := q.cell(col)
	if err != nil {
		return sql.Null[T]{}, err
	}
	if src == nil {
		return sql.Null[T]{}, nil
	}
	v, err := convert[T](src)
	if err != nil {
		return sql.Null[T]{}, err
	}
	return sql.Null[T]{V: v, Valid: true}, nil
}

// FetchOne reads the first column of the first row. It is shorthand
// for Fetch with column 1, the common case of single-value queries
// like SELECT COUNT(*).
func FetchOne[T Scalar](q *Stmt) (sql.Null[T], error) {
	return Fetch[T](q, 1)
}

/*
All collects the first column of every remaining row into a slice,
advancing the row pointer as it goes. Called right after Query it reads
the whole column; after a few Next calls it reads the rest. NULL cells
and conversion failures stop the walk, returning the rows read so far
along with the error.

	names, err := sqlq.All[string](
		q.Prepare("SELECT name FROM users ORDER BY name").Query(ctx))
*/
func All[T Scalar](q *Stmt) ([]T, error) {
	if q.err != nil {
		return nil, q.err
	}
	if q.res == nil {
		return nil, ErrNoResult
	}
	var out []T
	for q.Next() {
		src, err := q.cell(1)
		if err != nil {
			return out, err
		}
		v, err := convert[T](src)
		if err != nil {
			return out, fmt.Errorf("row %d: %w", q.row, err)
		}
		out = append(out, v)
	}
	return out, nil
}
