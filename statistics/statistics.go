// Package statistics accumulates per-column NULL statistics over table rows.
package statistics

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/Jordan466/OptionRecords/option"
	"github.com/Jordan466/OptionRecords/seqs"
)

// Cell is a non-NULL value read from a table. Number is set for INTEGER and REAL values.
type Cell struct {
	Text   string
	Number option.Option[float64]
}

// Text returns a cell holding s.
func Text(s string) Cell {
	return Cell{Text: s}
}

// Number returns a cell holding f.
func Number(f float64) Cell {
	return Cell{
		Text:   strconv.FormatFloat(f, 'g', -1, 64),
		Number: option.Some(f),
	}
}

func (c Cell) String() string {
	return c.Text
}

// Row is one table row. NULL cells are None.
type Row []option.Option[Cell]

// Run is a stretch of consecutive rows. Start is the zero-based index of its first row.
type Run struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// Column holds the statistics of a single column.
type Column struct {
	Name string
	Type string

	Total   int
	Present int

	Min    option.Option[float64]
	Max    option.Option[float64]
	Mean   option.Option[float64]
	Sample option.Option[string]

	LongestPresent option.Option[Run]
	LongestNull    option.Option[Run]

	numbers    int
	run        Run
	runPresent bool
}

// NewColumn returns an empty column.
func NewColumn(name, declType string) *Column {
	return &Column{Name: name, Type: declType}
}

// Nulls is the number of NULL cells seen.
func (c *Column) Nulls() int {
	return c.Total - c.Present
}

// HasNulls reports whether at least one NULL cell was seen.
func (c *Column) HasNulls() bool {
	return c.Nulls() > 0
}

// NullRatio is the fraction of NULL cells, or None before any row is observed.
func (c *Column) NullRatio() option.Option[float64] {
	total := option.Filter(option.Some(c.Total), func(n int) bool { return n > 0 })
	return option.Map(total, func(n int) float64 {
		return float64(c.Nulls()) / float64(n)
	})
}

// Observe records the next cell of the column.
func (c *Column) Observe(cell option.Option[Cell]) {
	row := c.Total
	c.Total++
	c.Present += option.Count(cell)

	num := option.Bind(cell, func(x Cell) option.Option[float64] { return x.Number })
	c.Min = extend(c.Min, num, math.Min)
	c.Max = extend(c.Max, num, math.Max)
	c.Mean = extend(c.Mean, num, func(mean, x float64) float64 {
		return mean + (x-mean)/float64(c.numbers+1)
	})
	c.numbers += option.Count(num)

	c.Sample = option.OrElse(c.Sample, option.Map(cell, Cell.String))

	c.track(row, cell.IsSome())
}

// extend combines acc with x when both are present, and otherwise keeps whichever is.
func extend(acc, x option.Option[float64], combine func(float64, float64) float64) option.Option[float64] {
	return option.OrElseWith(option.Map2(acc, x, combine), func() option.Option[float64] {
		return option.OrElse(acc, x)
	})
}

func (c *Column) track(row int, present bool) {
	if row == 0 || present != c.runPresent {
		c.run = Run{Start: row}
		c.runPresent = present
	}
	c.run.Length++

	longest := &c.LongestNull
	if present {
		longest = &c.LongestPresent
	}
	if option.ForAll(*longest, func(r Run) bool { return c.run.Length > r.Length }) {
		*longest = option.Some(c.run)
	}
}

// Report is the result of scanning one table.
type Report struct {
	Source  string
	Table   string
	Columns []*Column
	Rows    int

	StartTime time.Time
	EndTime   time.Time

	// Display options
	ShowNullsOnly bool
}

// NewReport returns an empty report over the named columns.
func NewReport(source, table string, columns []*Column) Report {
	return Report{
		Source:  source,
		Table:   table,
		Columns: columns,
	}
}

// Observe records a row. Missing trailing cells count as NULL.
func (r *Report) Observe(row Row) {
	for i, c := range r.Columns {
		var cell option.Option[Cell]
		if i < len(row) {
			cell = row[i]
		}
		c.Observe(cell)
	}
	r.Rows++
}

// Column finds a column by name.
func (r *Report) Column(name string) option.Option[*Column] {
	return seqs.First(slices.Values(r.Columns), func(c *Column) bool { return c.Name == name })
}

// Visible returns the columns to print, honoring ShowNullsOnly.
func (r *Report) Visible() []*Column {
	if !r.ShowNullsOnly {
		return r.Columns
	}
	withNulls := func(c *Column) option.Option[*Column] {
		return option.Filter(option.Some(c), (*Column).HasNulls)
	}
	return slices.Collect(seqs.Choose(slices.Values(r.Columns), withNulls))
}

// NullColumns counts the columns that contain at least one NULL.
func (r *Report) NullColumns() int {
	n := 0
	for _, c := range r.Columns {
		if c.HasNulls() {
			n++
		}
	}
	return n
}

func (r *Report) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

func (r *Report) StartTimeFormatted() string {
	return r.StartTime.Format(time.DateTime)
}

func (r *Report) EndTimeFormatted() string {
	return r.EndTime.Format(time.DateTime)
}

// FormatNumber renders a statistic, or "-" when it is absent.
func FormatNumber(o option.Option[float64]) string {
	return option.Match(o,
		func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
		func() string { return "-" },
	)
}

// FormatRatio renders a ratio as a percentage, or "-" when it is absent.
func FormatRatio(o option.Option[float64]) string {
	return option.Match(o,
		func(v float64) string { return fmt.Sprintf("%.2f%%", v*100) },
		func() string { return "-" },
	)
}

// FormatRun renders a run as "rows a-b (n)", or "-" when it is absent.
func FormatRun(o option.Option[Run]) string {
	return option.Match(o,
		func(r Run) string { return fmt.Sprintf("rows %d-%d (%d)", r.Start, r.Start+r.Length-1, r.Length) },
		func() string { return "-" },
	)
}

// DurationToString creates a human-readable string for a given duration
func DurationToString(duration time.Duration) string {
	hours := math.Floor(duration.Hours())
	if hours > 0 {
		duration -= time.Duration(hours * float64(time.Hour))
	}

	minutes := math.Floor(duration.Minutes())
	if minutes > 0 {
		duration -= time.Duration(minutes * float64(time.Minute))
	}

	seconds := duration.Seconds()

	switch {
	// Hours
	case hours >= 2:
		return fmt.Sprintf("%.0f hours %.0f minutes %.0f seconds", hours, minutes, seconds)
	case hours == 1 && minutes == 0 && seconds == 0:
		return fmt.Sprintf("%.0f hour", hours)
	case hours == 1:
		return fmt.Sprintf("%.0f hour %.0f minutes %.0f seconds", hours, minutes, seconds)

	// Minutes
	case minutes >= 2:
		return fmt.Sprintf("%.0f minutes %.0f seconds", minutes, seconds)
	case minutes == 1 && seconds == 0:
		return fmt.Sprintf("%.0f minute", minutes)
	case minutes == 1:
		return fmt.Sprintf("%.0f minute %.0f seconds", minutes, seconds)

	// Seconds
	case seconds == 0 || seconds == 1 || seconds >= 1 && seconds < 1.1:
		return fmt.Sprintf("%.0f second", seconds)
	case seconds < 1:
		return fmt.Sprintf("%.1f seconds", seconds)

	default:
		return fmt.Sprintf("%.0f seconds", seconds)
	}
}
