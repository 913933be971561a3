package printers_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Jordan466/OptionRecords/internal/testdata"
	"github.com/Jordan466/OptionRecords/printers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type savedColumn struct {
	name      string
	nulls     int64
	minIsNull bool
	min       float64
	sample    string
	nullStart int64
	hasRun    bool
}

func readColumns(t *testing.T, p *printers.DatabasePrinter) []savedColumn {
	t.Helper()

	var rows []savedColumn
	query := fmt.Sprintf(`SELECT column_name, nulls, min, sample, longest_null_start FROM %q WHERE event_type = 'column' ORDER BY id;`, p.TableName)
	err := sqlitex.Execute(p.Conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rows = append(rows, savedColumn{
				name:      stmt.ColumnText(0),
				nulls:     stmt.ColumnInt64(1),
				minIsNull: stmt.ColumnType(2) == sqlite.TypeNull,
				min:       stmt.ColumnFloat(2),
				sample:    stmt.ColumnText(3),
				nullStart: stmt.ColumnInt64(4),
				hasRun:    stmt.ColumnType(4) != sqlite.TypeNull,
			})
			return nil
		},
	})
	require.NoError(t, err)
	return rows
}

func TestDatabasePrinter(t *testing.T) {
	r := testdata.Report()

	p, err := printers.NewDatabasePrinter(filepath.Join(t.TempDir(), "results"))
	require.NoError(t, err)
	defer p.Shutdown(r)

	assert.Equal(t, printers.DefaultTableName, p.TableName)
	assert.Equal(t, ".db", filepath.Ext(p.DbPath))

	testdata.CaptureOutput(t, func() {
		p.PrintStart(r)
		for _, c := range r.Columns {
			p.PrintColumn(r, c)
		}
		p.PrintStatistics(r)
	})

	columns := readColumns(t, p)
	require.Len(t, columns, 2)

	assert.Equal(t, savedColumn{name: "id", nulls: 0, min: 1, sample: "1"}, columns[0])
	assert.Equal(t, savedColumn{
		name:      "email",
		nulls:     1,
		minIsNull: true,
		sample:    "ada@example.com",
		nullStart: 1,
		hasRun:    true,
	}, columns[1])

	var rowsScanned, nullColumns int64
	err = sqlitex.Execute(p.Conn, fmt.Sprintf(`SELECT rows_scanned, null_columns FROM %q WHERE event_type = 'statistics';`, p.TableName), &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowsScanned = stmt.ColumnInt64(0)
			nullColumns = stmt.ColumnInt64(1)
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), rowsScanned)
	assert.Equal(t, int64(1), nullColumns)
}

func TestDatabasePrinter_WithTableNameAndWithoutSamples(t *testing.T) {
	r := testdata.Report()

	p, err := printers.NewDatabasePrinter(filepath.Join(t.TempDir(), "results.db"),
		printers.WithTableName("scan results"),
		printers.WithoutSamples[printers.DatabasePrinter](),
	)
	require.NoError(t, err)
	defer p.Shutdown(r)

	testdata.CaptureOutput(t, func() {
		p.PrintColumn(r, r.Columns[0])
	})

	columns := readColumns(t, p)
	require.Len(t, columns, 1)
	assert.Empty(t, columns[0].sample, "hidden samples are stored as NULL")
}
