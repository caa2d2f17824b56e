package sqlq

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/valyala/bytebufferpool"
)

// Logger receives the diagnostics a Stmt emits in debug mode: one line
// per execution and one duration line on close. Any Printf-style logger
// fits; see cmd/sqlqsh for a zerolog adapter.
type Logger interface {
	Printf(format string, args ...any)
}

// NopLogger discards all output.
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...any) {}

// StdLogger writes to standard output without prefix or timestamp, so
// the duration line appears exactly as formatted.
func StdLogger() Logger {
	return log.New(os.Stdout, "", 0)
}

/*
durationLine renders the run duration in an eye-catching format for
performance eyeballing:

	Query finished in 2.400 seconds - !!

One exclamation mark per rounded second.
*/
func durationLine(d time.Duration) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	seconds := d.Seconds()
	buf.WriteString("Query finished in ")
	buf.B = strconv.AppendFloat(buf.B, seconds, 'f', 3, 64)
	buf.WriteString(" seconds - ")
	for n := 0; n < int(math.Round(seconds)); n++ {
		buf.WriteByte('!')
	}
	return buf.String()
}

// formatArgs renders a bind-argument preview for debug logs. Text and
// blob values are redacted: queries routinely carry credentials and
// personal data, and a debug log must not.
func formatArgs(args []any) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteByte('[')
	for n, arg := range args {
		if n > 0 {
			buf.WriteString(", ")
		}
		switch v := arg.(type) {
		case nil:
			buf.WriteString("null")
		case unbound:
			buf.WriteString("<unbound>")
		case string:
			fmt.Fprintf(buf, "redacted(len=%d)", len(v))
		case []byte:
			fmt.Fprintf(buf, "bytes(len=%d)", len(v))
		case time.Time:
			buf.WriteString(v.Format(time.RFC3339))
		default:
			fmt.Fprintf(buf, "%v", v)
		}
	}
	buf.WriteByte(']')
	return buf.String()
}
