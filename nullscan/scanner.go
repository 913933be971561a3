// Package nullscan reports how sparsely populated the columns of a table are.
package nullscan

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/Jordan466/OptionRecords/options"
	"github.com/Jordan466/OptionRecords/printers"
	"github.com/Jordan466/OptionRecords/statistics"
)

// Source provides the columns and rows of one table.
type Source interface {
	// Name identifies where the table lives, e.g. a database path.
	Name() string
	// Table is the name of the table.
	Table() string
	// Columns returns fresh, empty columns in row order.
	Columns(ctx context.Context) ([]*statistics.Column, error)
	// Rows yields the table rows, ending with ctx.Err() if ctx is done first.
	Rows(ctx context.Context) iter.Seq2[statistics.Row, error]
}

// Scanner reads every row of a source and reports per-column statistics.
type Scanner struct {
	source        Source
	printer       Printer
	showNullsOnly bool
	now           func() time.Time
}

type ScannerOption = options.Option[Scanner]

// WithPrinter configures the printer for scan output.
func WithPrinter(printer Printer) ScannerOption {
	return func(s *Scanner) {
		s.printer = printer
	}
}

// WithShowNullsOnly configures the scanner to only print columns that contain NULLs.
func WithShowNullsOnly(show bool) ScannerOption {
	return func(s *Scanner) {
		s.showNullsOnly = show
	}
}

// WithClock replaces time.Now for start and end timestamps.
func WithClock(now func() time.Time) ScannerOption {
	return func(s *Scanner) {
		s.now = now
	}
}

// NewScanner creates a new scanner over the given source with optional configuration.
func NewScanner(src Source, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		source:  src,
		printer: printers.NewColorPrinter(),
		now:     time.Now,
	}
	options.Apply(s, opts...)
	return s
}

// Scan reads the source and prints the result. If ctx is done before every row
// is read, the report covers the rows read so far and the error is nil.
func (s *Scanner) Scan(ctx context.Context) (statistics.Report, error) {
	columns, err := s.source.Columns(ctx)
	if err != nil {
		return statistics.Report{}, err
	}

	report := statistics.NewReport(s.source.Name(), s.source.Table(), columns)
	report.ShowNullsOnly = s.showNullsOnly
	report.StartTime = s.now()
	s.printer.PrintStart(&report)

	for row, err := range s.source.Rows(ctx) {
		if err != nil {
			if isCancellation(ctx, err) {
				break
			}
			report.EndTime = s.now()
			return report, err
		}
		report.Observe(row)
	}

	report.EndTime = s.now()
	for _, c := range report.Visible() {
		s.printer.PrintColumn(&report, c)
	}
	s.printer.PrintStatistics(&report)

	return report, nil
}

func isCancellation(ctx context.Context, err error) bool {
	return ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))
}
