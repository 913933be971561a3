package printers

import (
	"fmt"
	"os"

	"github.com/Jordan466/OptionRecords/options"
	"github.com/Jordan466/OptionRecords/statistics"
)

// PlainPrinter prints scan results as plain text.
type PlainPrinter struct {
	opt display
}

type PlainPrinterOption = options.Option[PlainPrinter]

func (p *PlainPrinter) displayOptions() *display {
	return &p.opt
}

// NewPlainPrinter creates a new PlainPrinter instance.
func NewPlainPrinter(opts ...PlainPrinterOption) *PlainPrinter {
	p := &PlainPrinter{}
	options.Apply(p, opts...)
	return p
}

// PrintStart prints the table and database being scanned.
func (p *PlainPrinter) PrintStart(r *statistics.Report) {
	fmt.Printf("%s%s\n", prefix(p.opt, r.StartTimeFormatted()), startMessage(r))
}

// PrintColumn prints the statistics of one column.
func (p *PlainPrinter) PrintColumn(r *statistics.Report, c *statistics.Column) {
	fmt.Printf("%s%s\n", prefix(p.opt, r.EndTimeFormatted()), columnMessage(c, p.opt))
}

// PrintStatistics prints the summary of a scan.
func (p *PlainPrinter) PrintStatistics(r *statistics.Report) {
	fmt.Println()
	for _, line := range statisticsLines(r) {
		fmt.Println(line)
	}
}

// PrintError prints an error message to stderr.
func (p *PlainPrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, withNewline(format), args...)
}

// Shutdown implements nullscan.Printer. There is nothing to release.
func (p *PlainPrinter) Shutdown(_ *statistics.Report) {}
