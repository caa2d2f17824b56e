package sqlq_test

import (
	"context"
	"testing"

	"github.com/ejfirestar/sqlq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryUsers(t *testing.T) *sqlq.Stmt {
	t.Helper()
	q := newStmt(t, testDB(t))
	q.Prepare("SELECT id, name FROM users ORDER BY id").Query(context.Background())
	require.NoError(t, q.Err())
	return q
}

func TestNextWalksAllRows(t *testing.T) {
	q := queryUsers(t)

	assert.Equal(t, 0, q.Row())
	for want := 1; want <= 3; want++ {
		assert.True(t, q.Next())
		assert.Equal(t, want, q.Row())
	}
	assert.False(t, q.Next())
	assert.Equal(t, 4, q.Row())

	// Still past the end, the pointer stays put.
	assert.False(t, q.Next())
	assert.Equal(t, 4, q.Row())
	assert.NoError(t, q.Err())
}

func TestNextBeforeQuery(t *testing.T) {
	q := newStmt(t, testDB(t))

	assert.False(t, q.Next())
	assert.ErrorIs(t, q.Err(), sqlq.ErrNoResult)
}

func TestSeek(t *testing.T) {
	q := queryUsers(t)

	var name string
	var id int64
	require.NoError(t, q.Seek(2).Scan(&id, &name))
	assert.Equal(t, "Bob", name)

	// Seeking back is fine on a buffered result.
	require.NoError(t, q.Seek(1).Scan(&id, &name))
	assert.Equal(t, "Alice", name)
}

func TestSeekOutOfRange(t *testing.T) {
	q := queryUsers(t)
	require.NoError(t, q.Seek(2).Err())

	err := q.Seek(4).Err()
	assert.ErrorIs(t, err, sqlq.ErrRowOutOfRange)
	assert.Equal(t, 2, q.Row())
}

func TestSeekZero(t *testing.T) {
	q := queryUsers(t)

	// Row 0 is the slot before the first row; Rewind is the way there.
	assert.ErrorIs(t, q.Seek(0).Err(), sqlq.ErrRowOutOfRange)
}

func TestRewind(t *testing.T) {
	q := queryUsers(t)

	for q.Next() {
	}
	assert.Equal(t, 4, q.Row())

	q.Rewind()
	require.NoError(t, q.Err())
	assert.Equal(t, 0, q.Row())
	assert.True(t, q.Next())
	assert.Equal(t, 1, q.Row())
}

func TestRowExists(t *testing.T) {
	q := queryUsers(t)
	q.Seek(2)
	require.NoError(t, q.Err())

	assert.False(t, q.RowExists(0))
	assert.True(t, q.RowExists(1))
	assert.True(t, q.RowExists(3))
	assert.False(t, q.RowExists(4))

	// Probing neither moves the pointer nor records an error.
	assert.Equal(t, 2, q.Row())
	assert.NoError(t, q.Err())
}

func TestRowExistsBeforeQuery(t *testing.T) {
	q := newStmt(t, testDB(t))

	assert.False(t, q.RowExists(1))
	assert.NoError(t, q.Err())
}

func TestColumns(t *testing.T) {
	db := testDB(t)
	q := newStmt(t, db)
	assert.Nil(t, q.Columns())

	q.Prepare("SELECT name, age, email FROM users").Query(context.Background())
	require.NoError(t, q.Err())
	assert.Equal(t, []string{"name", "age", "email"}, q.Columns())
	assert.Equal(t, 3, q.RowCount())
}

func TestEmptyResult(t *testing.T) {
	db := testDB(t)
	q := newStmt(t, db)

	q.Prepare("SELECT id FROM users WHERE age > ?").
		BindInt(100).
		Query(context.Background())
	require.NoError(t, q.Err())

	assert.Equal(t, 0, q.RowCount())
	assert.False(t, q.Next())
	assert.Equal(t, []string{"id"}, q.Columns())
	assert.NoError(t, q.Err())
}
