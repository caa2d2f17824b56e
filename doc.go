// Package sqlq runs prepared SQL statements through a fluent chain.
/*

A Stmt wraps one database connection for the lifetime of one statement:
prepare, bind parameters by position, execute, read. Executing buffers
the whole result set and releases the connection, so results can be
navigated and re-read at leisure.

	q, err := sqlq.New(db)
	if err != nil {
		log.Fatal(err)
	}

	var name sqlq.Column[string]
	var age sqlq.Column[int]

	err = q.Prepare("SELECT name, age FROM users WHERE id = ?").
		BindInt64(42).
		Query(ctx).
		ScanOne(&name, &age)

Methods that return *Stmt record the first error and short-circuit the
rest of the chain; Err or any terminal call reports it. Typed reads go
through Column containers or the generic Fetch, FetchOne and All
helpers, all of which convert driver values with explicit overflow and
type checks.
*/
package sqlq
