package sqlq

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

type fakeConn struct {
	closed bool
}

func (c *fakeConn) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, errors.New("fakeConn cannot prepare")
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func TestDurationLine(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "Query finished in 0.000 seconds - "},
		{250 * time.Millisecond, "Query finished in 0.250 seconds - "},
		{600 * time.Millisecond, "Query finished in 0.600 seconds - !"},
		{2400 * time.Millisecond, "Query finished in 2.400 seconds - !!"},
		{4500 * time.Millisecond, "Query finished in 4.500 seconds - !!!!!"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, durationLine(c.d), c.d.String())
	}
}

func TestFormatArgs(t *testing.T) {
	when := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	args := []any{
		int64(42),
		"secret",
		[]byte{1, 2, 3},
		nil,
		unbound{},
		true,
		when,
	}
	got := formatArgs(args)
	assert.Equal(t, "[42, redacted(len=6), bytes(len=3), null, <unbound>, true, 2024-03-01T10:00:00Z]", got)
}

func TestCloseLogsDuration(t *testing.T) {
	logger := &recordingLogger{}
	conn := &fakeConn{}
	q, err := New(conn, WithDebug(), WithLogger(logger))
	require.NoError(t, err)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	q.start = start
	q.now = func() time.Time { return start.Add(2400 * time.Millisecond) }

	require.NoError(t, q.Close())
	assert.True(t, conn.closed)
	require.Len(t, logger.lines, 1)
	assert.Equal(t, "Query finished in 2.400 seconds - !!", logger.lines[0])
}

func TestCloseSilentWithoutDebug(t *testing.T) {
	logger := &recordingLogger{}
	q, err := New(&fakeConn{}, WithLogger(logger))
	require.NoError(t, err)

	require.NoError(t, q.Close())
	assert.Empty(t, logger.lines)
}

func TestDebugDefaultsToStdout(t *testing.T) {
	q, err := New(&fakeConn{}, WithDebug())
	require.NoError(t, err)
	defer q.Close()

	_, isNop := q.logger.(NopLogger)
	assert.False(t, isNop)
}
