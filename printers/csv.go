package printers

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Jordan466/OptionRecords/options"
	"github.com/Jordan466/OptionRecords/statistics"
)

const (
	colTimestamp      string = "Timestamp"
	colTable          string = "Table"
	colColumn         string = "Column"
	colType           string = "Type"
	colRows           string = "Rows"
	colNulls          string = "Nulls"
	colNullRatio      string = "Null Ratio"
	colMin            string = "Min"
	colMax            string = "Max"
	colMean           string = "Mean"
	colSample         string = "Sample"
	colLongestNull    string = "Longest NULL Run"
	colLongestPresent string = "Longest Present Run"
)

const (
	filePermission os.FileMode = 0644
	fileFlag       int         = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
)

// CSVPrinter writes per-column results and scan statistics to two CSV files.
type CSVPrinter struct {
	ColumnWriter *csv.Writer
	StatsWriter  *csv.Writer
	ColumnFile   *os.File
	StatsFile    *os.File
	opt          display

	headerWritten bool
}

type CSVPrinterOption = options.Option[CSVPrinter]

func (p *CSVPrinter) displayOptions() *display {
	return &p.opt
}

// NewCSVPrinter creates the column and statistics files for filePath.
// The statistics file gets a "_stats.csv" suffix.
func NewCSVPrinter(filePath string, opts ...CSVPrinterOption) (*CSVPrinter, error) {
	columnFilename := addCSVExtension(filePath, false)

	columnFile, err := os.OpenFile(columnFilename, fileFlag, filePermission)
	if err != nil {
		return nil, fmt.Errorf("create column CSV file %s: %w", columnFilename, err)
	}

	statsFilename := addCSVExtension(filePath, true)

	statsFile, err := os.OpenFile(statsFilename, fileFlag, filePermission)
	if err != nil {
		columnFile.Close()
		return nil, fmt.Errorf("create stats CSV file %s: %w", statsFilename, err)
	}

	p := &CSVPrinter{
		ColumnWriter: csv.NewWriter(columnFile),
		StatsWriter:  csv.NewWriter(statsFile),
		ColumnFile:   columnFile,
		StatsFile:    statsFile,
	}
	options.Apply(p, opts...)

	return p, nil
}

func addCSVExtension(filename string, withStatsExt bool) string {
	if withStatsExt {
		// Remove .csv extension if present, then add _stats.csv
		base := strings.TrimSuffix(filename, ".csv")
		return base + "_stats.csv"
	}

	if strings.HasSuffix(filename, ".csv") {
		return filename
	}

	return filename + ".csv"
}

// Done flushes the buffer of writers and closes the column and stats file
func (p *CSVPrinter) Done() {
	if p.ColumnWriter != nil {
		p.ColumnWriter.Flush()
	}

	if p.ColumnFile != nil {
		p.ColumnFile.Close()
	}

	if p.StatsWriter != nil {
		p.StatsWriter.Flush()
	}

	if p.StatsFile != nil {
		p.StatsFile.Close()
	}
}

// Shutdown performs final cleanup for the printer.
func (p *CSVPrinter) Shutdown(_ *statistics.Report) {
	p.Done()
}

func (p *CSVPrinter) writeHeaders() error {
	headers := []string{}

	if p.opt.ShowTimestamp {
		headers = append(headers, colTimestamp)
	}

	headers = append(headers,
		colTable, colColumn, colType, colRows, colNulls, colNullRatio,
		colMin, colMax, colMean, colSample, colLongestNull, colLongestPresent,
	)

	if err := p.ColumnWriter.Write(headers); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}

	if err := p.StatsWriter.Write([]string{"Metric", "Value"}); err != nil {
		return fmt.Errorf("write statistics headers: %w", err)
	}

	p.ColumnWriter.Flush()
	p.StatsWriter.Flush()

	if err := p.ColumnWriter.Error(); err != nil {
		return err
	}
	return p.StatsWriter.Error()
}

// PrintStart writes the headers once and announces where results go.
func (p *CSVPrinter) PrintStart(r *statistics.Report) {
	if !p.headerWritten {
		if err := p.writeHeaders(); err != nil {
			p.PrintError("%v", err)
		}
		p.headerWritten = true
	}

	fmt.Printf("%s - saving the results to: %s\n", startMessage(r), p.ColumnFile.Name())
}

// PrintColumn writes one column record.
func (p *CSVPrinter) PrintColumn(r *statistics.Report, c *statistics.Column) {
	record := []string{}

	if p.opt.ShowTimestamp {
		record = append(record, r.EndTimeFormatted())
	}

	record = append(record,
		r.Table,
		c.Name,
		c.Type,
		strconv.Itoa(c.Total),
		strconv.Itoa(c.Nulls()),
		statistics.FormatRatio(c.NullRatio()),
		statistics.FormatNumber(c.Min),
		statistics.FormatNumber(c.Max),
		statistics.FormatNumber(c.Mean),
		sample(c, p.opt),
		statistics.FormatRun(c.LongestNull),
		statistics.FormatRun(c.LongestPresent),
	)

	if err := p.ColumnWriter.Write(record); err != nil {
		p.PrintError("write column record: %v", err)
	}

	p.ColumnWriter.Flush()
}

// PrintStatistics writes the scan statistics as metric/value pairs.
func (p *CSVPrinter) PrintStatistics(r *statistics.Report) {
	stats := [][]string{
		{"Source", r.Source},
		{"Table", r.Table},
		{"Rows Scanned", strconv.Itoa(r.Rows)},
		{"Columns", strconv.Itoa(len(r.Columns))},
		{"Columns With NULLs", strconv.Itoa(r.NullColumns())},
		{"Start Timestamp", r.StartTimeFormatted()},
		{"End Timestamp", r.EndTimeFormatted()},
		{"Duration", statistics.DurationToString(r.Duration())},
	}

	if err := p.StatsWriter.WriteAll(stats); err != nil {
		p.PrintError("write statistics: %v", err)
	}

	fmt.Printf("Statistics for %s have been saved to %s\n", r.Table, p.StatsFile.Name())
}

// PrintError logs an error message to stderr.
func (p *CSVPrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "CSV Error: "+withNewline(format), args...)
}
