package sqlq

import (
	"database/sql"
	"testing"
	"time"
)

var (
	benchStr string
	benchInt int
)

func BenchmarkDurationLine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchStr = durationLine(2400 * time.Millisecond)
	}
}

func BenchmarkFormatArgs(b *testing.B) {
	args := []any{int64(42), "some text", []byte{1, 2, 3}, nil, 3.14}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchStr = formatArgs(args)
	}
}

func BenchmarkConvertInt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		n, err := convert[int](int64(i))
		if err != nil {
			b.Fatal(err)
		}
		benchInt = n
	}
}

func BenchmarkConvertTimeText(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t, err := convert[time.Time]("2024-03-01 10:00:00")
		if err != nil {
			b.Fatal(err)
		}
		benchInt = t.Second()
	}
}

func BenchmarkEnsureArg(b *testing.B) {
	for i := 0; i < b.N; i++ {
		args := ensureArg(nil, 8)
		benchInt = len(args)
	}
}

func BenchmarkBindChain(b *testing.B) {
	q := &Stmt{
		stmt:   new(sql.Stmt),
		argPos: 1,
		logger: NopLogger{},
		now:    time.Now,
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.args = q.args[:0]
		q.argPos = 1
		q.BindString("Alice").BindInt(30).BindBool(true)
		if q.err != nil {
			b.Fatal(q.err)
		}
	}
}
