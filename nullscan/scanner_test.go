package nullscan_test

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"testing"
	"time"

	"github.com/Jordan466/OptionRecords/internal/testdata"
	"github.com/Jordan466/OptionRecords/nullscan"
	"github.com/Jordan466/OptionRecords/option"
	"github.com/Jordan466/OptionRecords/sources"
	"github.com/Jordan466/OptionRecords/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPrinter logs every call it receives.
type recordingPrinter struct {
	calls []string
}

func (p *recordingPrinter) PrintStart(r *statistics.Report) {
	p.calls = append(p.calls, "start "+r.Table)
}

func (p *recordingPrinter) PrintColumn(_ *statistics.Report, c *statistics.Column) {
	p.calls = append(p.calls, fmt.Sprintf("column %s %d/%d", c.Name, c.Nulls(), c.Total))
}

func (p *recordingPrinter) PrintStatistics(r *statistics.Report) {
	p.calls = append(p.calls, fmt.Sprintf("statistics %d", r.Rows))
}

func (p *recordingPrinter) PrintError(format string, args ...any) {
	p.calls = append(p.calls, "error "+fmt.Sprintf(format, args...))
}

func (p *recordingPrinter) Shutdown(*statistics.Report) {
	p.calls = append(p.calls, "shutdown")
}

var (
	null = option.None[statistics.Cell]()
	one  = option.Some(statistics.Number(1))
)

func fixedClock() func() time.Time {
	times := []time.Time{testdata.TestTimestamp, testdata.TestTimestamp2}
	return func() time.Time {
		t := times[0]
		if len(times) > 1 {
			times = times[1:]
		}
		return t
	}
}

func TestScan(t *testing.T) {
	src := sources.NewSliceSource("t", []string{"a", "b"},
		statistics.Row{one, null},
		statistics.Row{one, one},
		statistics.Row{one, null},
	)
	p := &recordingPrinter{}

	report, err := nullscan.NewScanner(src, nullscan.WithPrinter(p), nullscan.WithClock(fixedClock())).Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, "memory", report.Source)
	assert.Equal(t, 30*time.Second, report.Duration())
	assert.Equal(t, []string{
		"start t",
		"column a 0/3",
		"column b 2/3",
		"statistics 3",
	}, p.calls)
}

func TestScanShowNullsOnly(t *testing.T) {
	src := sources.NewSliceSource("t", []string{"a", "b"}, statistics.Row{one, null})
	p := &recordingPrinter{}

	_, err := nullscan.NewScanner(src, nullscan.WithPrinter(p), nullscan.WithShowNullsOnly(true)).Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"start t", "column b 1/1", "statistics 1"}, p.calls)
}

// cancellingSource cancels the scan after yielding its first row.
type cancellingSource struct {
	*sources.SliceSource
	cancel context.CancelFunc
}

func (s cancellingSource) Rows(ctx context.Context) iter.Seq2[statistics.Row, error] {
	return func(yield func(statistics.Row, error) bool) {
		first := true
		for row, err := range s.SliceSource.Rows(ctx) {
			if !yield(row, err) {
				return
			}
			if first {
				s.cancel()
				first = false
			}
		}
	}
}

func TestScanCancelledReturnsPartialReport(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := cancellingSource{
		SliceSource: sources.NewSliceSource("t", []string{"a"}, statistics.Row{one}, statistics.Row{null}, statistics.Row{null}),
		cancel:      cancel,
	}
	p := &recordingPrinter{}

	report, err := nullscan.NewScanner(src, nullscan.WithPrinter(p)).Scan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Rows)
	assert.Equal(t, []string{"start t", "column a 0/1", "statistics 1"}, p.calls)
}

// failingSource fails while reading rows.
type failingSource struct {
	*sources.SliceSource
	err error
}

func (s failingSource) Rows(context.Context) iter.Seq2[statistics.Row, error] {
	return func(yield func(statistics.Row, error) bool) {
		yield(nil, s.err)
	}
}

func TestScanSourceError(t *testing.T) {
	boom := errors.New("disk on fire")
	src := failingSource{SliceSource: sources.NewSliceSource("t", []string{"a"}), err: boom}
	p := &recordingPrinter{}

	_, err := nullscan.NewScanner(src, nullscan.WithPrinter(p)).Scan(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"start t"}, p.calls)
}

func TestScanSQLiteFixture(t *testing.T) {
	src, err := sources.NewSQLiteSource(testdata.FixtureDB(t), testdata.TestTable)
	require.NoError(t, err)
	defer src.Close()

	report, err := nullscan.NewScanner(src, nullscan.WithPrinter(&recordingPrinter{})).Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, report.Rows)
	assert.Equal(t, 5, report.NullColumns())

	age := option.MustGet(report.Column("age"))
	assert.Equal(t, option.Some(28.0), age.Min)
	assert.Equal(t, option.Some(36.0), age.Max)
	assert.Equal(t, option.Some(32.0), age.Mean)

	email := option.MustGet(report.Column("email"))
	assert.Equal(t, option.Some(statistics.Run{Start: 1, Length: 2}), email.LongestNull)

	id := option.MustGet(report.Column("id"))
	assert.False(t, id.HasNulls())
	assert.Equal(t, option.Some(2.5), id.Mean)
}

func TestScanRejectsRepeatedColumn(t *testing.T) {
	src, err := sources.NewSQLiteSource(testdata.FixtureDB(t), testdata.TestTable, sources.WithColumns("name", "name"))
	require.NoError(t, err)
	defer src.Close()

	p := &recordingPrinter{}
	_, err = nullscan.NewScanner(src, nullscan.WithPrinter(p)).Scan(context.Background())

	assert.ErrorIs(t, err, sources.ErrDuplicateColumn)
	assert.Empty(t, p.calls, "nothing is printed before the columns are known")
}
