// Command sqlqsh runs a single SQL statement against a SQLite database
// and prints the result as tab-separated rows.
//
//	sqlqsh -query "SELECT name, age FROM users WHERE age > ?" -p 21
//	sqlqsh -update -query "DELETE FROM sessions WHERE expires_at < ?" -p 2024-03-01T00:00:00Z
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ejfirestar/sqlq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/mattn/go-sqlite3"
)

type paramList []string

func (p *paramList) String() string { return strings.Join(*p, ", ") }

func (p *paramList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

// zerologPrintf adapts a zerolog logger to the sqlq.Logger interface.
type zerologPrintf struct {
	logger *zerolog.Logger
}

func (z zerologPrintf) Printf(format string, args ...any) {
	z.logger.Debug().Msgf(format, args...)
}

func main() {
	var params paramList
	configPath := flag.String("config", "sqlqsh.yaml", "Path to config file. By default checks for 'sqlqsh.yaml' in current directory.")
	query := flag.String("query", "", "SQL statement to run.")
	update := flag.Bool("update", false, "Run the statement as an update and print the affected row count.")
	timeout := flag.Duration("timeout", 30*time.Second, "Statement timeout.")
	flag.Var(&params, "p", "Statement parameter, repeatable, bound in order. A value is bound as int, float, bool or RFC 3339 time, whichever parses first, otherwise as text; 'null' binds NULL.")
	flag.Parse()

	config := GetDefaultConfig()
	if err := config.ReadConfigIfFound(*configPath); err != nil {
		log.Fatal().Err(err).Msg("failed to setup configuration")
	}

	logger := config.Logging.CreateLogger()

	if strings.TrimSpace(*query) == "" {
		logger.Fatal().Msg("no statement given, use -query")
	}

	db, err := sql.Open("sqlite3", config.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", config.Database.Path).Msg("opening database failed")
	}

	opts := []sqlq.Option{sqlq.WithLogger(zerologPrintf{logger})}
	if config.Debug {
		opts = append(opts, sqlq.WithDebug())
	}
	q, err := sqlq.New(db, opts...)
	if err != nil {
		logger.Fatal().Err(err).Msg("creating statement runner failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	q.Prepare(*query)
	for _, raw := range params {
		bindParam(q, raw)
	}

	if *update {
		affected, err := q.Update(ctx)
		if err != nil {
			logger.Fatal().Err(err).Msg("update failed")
		}
		if id, err := q.LastInsertID(); err == nil && id > 0 {
			logger.Debug().Int64("last_insert_id", id).Msg("update done")
		}
		fmt.Println(affected)
		return
	}

	if err := q.Query(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Msg("query failed")
	}
	printRows(q, logger)
}

// bindParam binds a command line value with the tightest type it parses
// as, so numeric comparisons in the statement behave as expected.
func bindParam(q *sqlq.Stmt, raw string) {
	if strings.EqualFold(raw, "null") {
		q.BindNull()
		return
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		q.BindInt64(n)
		return
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		q.BindFloat64(f)
		return
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		q.BindBool(b)
		return
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		q.BindTime(t)
		return
	}
	q.BindString(raw)
}

func printRows(q *sqlq.Stmt, logger *zerolog.Logger) {
	cols := q.Columns()
	fmt.Println(strings.Join(cols, "\t"))

	for q.Next() {
		cells := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for n := range cells {
			ptrs[n] = &cells[n]
		}
		if err := q.Scan(ptrs...); err != nil {
			logger.Fatal().Err(err).Int("row", q.Row()).Msg("reading row failed")
		}
		parts := make([]string, len(cells))
		for n, cell := range cells {
			parts[n] = formatCell(cell)
		}
		fmt.Println(strings.Join(parts, "\t"))
	}
	if err := q.Err(); err != nil {
		logger.Fatal().Err(err).Msg("row iteration failed")
	}
	logger.Debug().Int("rows", q.RowCount()).Msg("query done")
}

func formatCell(cell any) string {
	switch v := cell.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}
