package printers

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Jordan466/OptionRecords/option"
	"github.com/Jordan466/OptionRecords/options"
	"github.com/Jordan466/OptionRecords/statistics"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const (
	eventTypeColumn     = "column"
	eventTypeStatistics = "statistics"
)

const (
	// DefaultTableName is the results table created in the output database.
	DefaultTableName = "nullscan_results"

	dataTableSchema = `CREATE TABLE IF NOT EXISTS %s (
    id INTEGER PRIMARY KEY,
    event_type TEXT NOT NULL, -- column or statistics
    timestamp DATETIME,
    source TEXT,
    table_name TEXT,

    column_name TEXT,
    decl_type TEXT,
    total INTEGER,
    nulls INTEGER,
    null_ratio REAL,
    min REAL,
    max REAL,
    mean REAL,
    sample TEXT,
    longest_null_start INTEGER,
    longest_null_length INTEGER,

    rows_scanned INTEGER,
    column_count INTEGER,
    null_columns INTEGER,
    start_time DATETIME,
    end_time DATETIME,
    total_duration TEXT
	);`

	columnSaveSchema = `INSERT INTO %s (
	event_type,
	timestamp,
	source,
	table_name,
	column_name,
	decl_type,
	total,
	nulls,
	null_ratio,
	min,
	max,
	mean,
	sample,
	longest_null_start,
	longest_null_length) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	statSaveSchema = `INSERT INTO %s (
	event_type,
	timestamp,
	source,
	table_name,
	rows_scanned,
	column_count,
	null_columns,
	start_time,
	end_time,
	total_duration) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
)

// DatabasePrinter stores scan results in a SQLite database.
// Absent statistics are stored as NULL.
type DatabasePrinter struct {
	Conn      *sqlite.Conn
	DbPath    string
	TableName string
	opt       display
}

type DatabasePrinterOption = options.Option[DatabasePrinter]

func (p *DatabasePrinter) displayOptions() *display {
	return &p.opt
}

// WithTableName overrides the results table name.
func WithTableName(name string) DatabasePrinterOption {
	return func(p *DatabasePrinter) {
		p.TableName = name
	}
}

// NewDatabasePrinter opens or creates the database at dbPath and creates the results table.
func NewDatabasePrinter(dbPath string, opts ...DatabasePrinterOption) (*DatabasePrinter, error) {
	p := &DatabasePrinter{
		DbPath:    addDbExtension(dbPath),
		TableName: DefaultTableName,
	}
	options.Apply(p, opts...)

	conn, err := sqlite.OpenConn(p.DbPath, sqlite.OpenCreate, sqlite.OpenReadWrite)
	if err != nil {
		return nil, fmt.Errorf("create database %s: %w", p.DbPath, err)
	}
	p.Conn = conn

	tableSchema := fmt.Sprintf(dataTableSchema, quoteTableName(p.TableName))
	if err := sqlitex.Execute(conn, tableSchema, &sqlitex.ExecOptions{}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create data table: %w", err)
	}

	return p, nil
}

func addDbExtension(filename string) string {
	if strings.HasSuffix(filename, ".db") {
		return filename
	}

	return filename + ".db"
}

func quoteTableName(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// nullable binds present values as themselves and absent ones as NULL.
func nullable[T any](o option.Option[T]) any {
	return option.Match(o,
		func(v T) any { return v },
		func() any { return nil },
	)
}

// PrintStart prints a message indicating where the results are saved.
func (p *DatabasePrinter) PrintStart(r *statistics.Report) {
	fmt.Printf("%s - saving results to: %s\n", startMessage(r), p.DbPath)
}

// PrintColumn saves one column row.
func (p *DatabasePrinter) PrintColumn(r *statistics.Report, c *statistics.Column) {
	shownSample := option.Filter(c.Sample, func(string) bool { return !p.opt.HideSamples })
	nullStart := option.Map(c.LongestNull, func(run statistics.Run) int { return run.Start })
	nullLength := option.Map(c.LongestNull, func(run statistics.Run) int { return run.Length })

	args := []any{
		eventTypeColumn,
		time.Now().Format(time.DateTime),
		r.Source,
		r.Table,
		c.Name,
		c.Type,
		c.Total,
		c.Nulls(),
		nullable(c.NullRatio()),
		nullable(c.Min),
		nullable(c.Max),
		nullable(c.Mean),
		nullable(shownSample),
		nullable(nullStart),
		nullable(nullLength),
	}

	err := sqlitex.Execute(p.Conn, fmt.Sprintf(columnSaveSchema, quoteTableName(p.TableName)), &sqlitex.ExecOptions{Args: args})
	if err != nil {
		p.PrintError("\nError while writing column %q to the database %q\nerr: %s", c.Name, p.DbPath, err)
	}
}

// PrintStatistics saves the scan statistics.
func (p *DatabasePrinter) PrintStatistics(r *statistics.Report) {
	args := []any{
		eventTypeStatistics,
		time.Now().Format(time.DateTime),
		r.Source,
		r.Table,
		r.Rows,
		len(r.Columns),
		r.NullColumns(),
		r.StartTimeFormatted(),
		r.EndTimeFormatted(),
		r.Duration().String(),
	}

	err := sqlitex.Execute(p.Conn, fmt.Sprintf(statSaveSchema, quoteTableName(p.TableName)), &sqlitex.ExecOptions{Args: args})
	if err != nil {
		p.PrintError("\nError while writing stats to the database %q\nerr: %s", p.DbPath, err)
		return
	}

	ColorYellow("\nStatistics for %q have been saved to %q in the table %q\n", r.Table, p.DbPath, p.TableName)
}

// PrintError prints an error message to stderr.
func (p *DatabasePrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, withNewline(format), args...)
}

// Shutdown closes the database connection.
func (p *DatabasePrinter) Shutdown(_ *statistics.Report) {
	if p.Conn != nil {
		p.Conn.Close()
	}
}
