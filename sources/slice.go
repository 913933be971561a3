package sources

import (
	"context"
	"iter"

	"github.com/Jordan466/OptionRecords/statistics"
)

// SliceSource serves rows held in memory.
type SliceSource struct {
	name    string
	table   string
	columns []string
	rows    []statistics.Row
}

// NewSliceSource returns a source over rows with the given column names.
func NewSliceSource(table string, columns []string, rows ...statistics.Row) *SliceSource {
	return &SliceSource{
		name:    "memory",
		table:   table,
		columns: columns,
		rows:    rows,
	}
}

// Name implements nullscan.Source.
func (s *SliceSource) Name() string {
	return s.name
}

// Table implements nullscan.Source.
func (s *SliceSource) Table() string {
	return s.table
}

// Columns implements nullscan.Source.
func (s *SliceSource) Columns(context.Context) ([]*statistics.Column, error) {
	cols := make([]*statistics.Column, len(s.columns))
	for i, name := range s.columns {
		cols[i] = statistics.NewColumn(name, "")
	}
	return cols, nil
}

// Rows implements nullscan.Source. It stops with ctx.Err() once ctx is done.
func (s *SliceSource) Rows(ctx context.Context) iter.Seq2[statistics.Row, error] {
	return func(yield func(statistics.Row, error) bool) {
		for _, row := range s.rows {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}
