// Package sources reads table rows as nullable cells.
package sources

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/Jordan466/OptionRecords/option"
	"github.com/Jordan466/OptionRecords/options"
	"github.com/Jordan466/OptionRecords/seqs"
	"github.com/Jordan466/OptionRecords/statistics"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

var (
	ErrUnknownTable    = errors.New("unknown table")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrDuplicateColumn = errors.New("column requested more than once")
)

const tableInfoQuery = `SELECT name, type FROM pragma_table_info(?) ORDER BY cid;`

// SQLiteSource reads a table of a SQLite database opened read-only.
type SQLiteSource struct {
	conn     *sqlite.Conn
	path     string
	table    string
	columns  []string
	rowLimit int
	resolved []*statistics.Column
}

type SQLiteOption = options.Option[SQLiteSource]

// WithColumns restricts the scan to the named columns, in that order.
func WithColumns(names ...string) SQLiteOption {
	return func(s *SQLiteSource) {
		s.columns = names
	}
}

// WithRowLimit stops reading after n rows. If set to 0, every row is read.
func WithRowLimit(n int) SQLiteOption {
	return func(s *SQLiteSource) {
		s.rowLimit = n
	}
}

// NewSQLiteSource opens the database at path for reading table.
func NewSQLiteSource(path, table string, opts ...SQLiteOption) (*SQLiteSource, error) {
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadOnly)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	s := &SQLiteSource{
		conn:  conn,
		path:  path,
		table: table,
	}
	options.Apply(s, opts...)
	return s, nil
}

// Name implements nullscan.Source.
func (s *SQLiteSource) Name() string {
	return s.path
}

// Table implements nullscan.Source.
func (s *SQLiteSource) Table() string {
	return s.table
}

// Close closes the database connection.
func (s *SQLiteSource) Close() error {
	return s.conn.Close()
}

// Columns implements nullscan.Source. Every call returns fresh, empty columns.
func (s *SQLiteSource) Columns(ctx context.Context) ([]*statistics.Column, error) {
	s.conn.SetInterrupt(ctx.Done())
	defer s.conn.SetInterrupt(nil)

	var all []*statistics.Column
	err := sqlitex.Execute(s.conn, tableInfoQuery, &sqlitex.ExecOptions{
		Args: []any{s.table},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			all = append(all, statistics.NewColumn(stmt.ColumnText(0), stmt.ColumnText(1)))
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("read columns of %s: %w", s.table, interrupted(ctx, err))
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, s.table)
	}

	if len(s.columns) == 0 {
		s.resolved = all
		return all, nil
	}

	picked := make([]*statistics.Column, 0, len(s.columns))
	for i, name := range s.columns {
		if slices.Contains(s.columns[:i], name) {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateColumn, s.table, name)
		}
		col := seqs.First(slices.Values(all), func(c *statistics.Column) bool { return c.Name == name })
		c, err := option.GetOrError(col, func() error {
			return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, s.table, name)
		})
		if err != nil {
			return nil, err
		}
		picked = append(picked, c)
	}
	s.resolved = picked
	return picked, nil
}

func (s *SQLiteSource) selectQuery() string {
	names := make([]string, len(s.resolved))
	for i, c := range s.resolved {
		names[i] = quoteIdent(c.Name)
	}
	q := fmt.Sprintf("SELECT %s FROM %s", strings.Join(names, ", "), quoteIdent(s.table))
	if s.rowLimit > 0 {
		q += " LIMIT " + strconv.Itoa(s.rowLimit)
	}
	return q + ";"
}

// Rows implements nullscan.Source. It yields the rows of the columns returned
// by the latest call to Columns. Reading is interrupted when ctx is done.
func (s *SQLiteSource) Rows(ctx context.Context) iter.Seq2[statistics.Row, error] {
	return func(yield func(statistics.Row, error) bool) {
		if s.resolved == nil {
			if _, err := s.Columns(ctx); err != nil {
				yield(nil, err)
				return
			}
		}

		s.conn.SetInterrupt(ctx.Done())
		defer s.conn.SetInterrupt(nil)

		stmt, _, err := s.conn.PrepareTransient(s.selectQuery())
		if err != nil {
			yield(nil, interrupted(ctx, err))
			return
		}
		defer stmt.Finalize()

		for {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			hasRow, err := stmt.Step()
			if err != nil {
				yield(nil, interrupted(ctx, err))
				return
			}
			if !hasRow {
				return
			}

			row := make(statistics.Row, stmt.ColumnCount())
			for i := range row {
				row[i] = readCell(stmt, i)
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}

// interrupted reports ctx.Err() in place of the driver error when ctx is done.
func interrupted(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

func readCell(stmt *sqlite.Stmt, col int) option.Option[statistics.Cell] {
	switch stmt.ColumnType(col) {
	case sqlite.TypeNull:
		return option.None[statistics.Cell]()
	case sqlite.TypeInteger:
		v := stmt.ColumnInt64(col)
		return option.Some(statistics.Cell{
			Text:   strconv.FormatInt(v, 10),
			Number: option.Some(float64(v)),
		})
	case sqlite.TypeFloat:
		return option.Some(statistics.Number(stmt.ColumnFloat(col)))
	case sqlite.TypeBlob:
		return option.Some(statistics.Text(fmt.Sprintf("<blob %d bytes>", stmt.ColumnLen(col))))
	default:
		return option.Some(statistics.Text(stmt.ColumnText(col)))
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
