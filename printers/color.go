package printers

import (
	"fmt"
	"os"

	"github.com/Jordan466/OptionRecords/options"
	"github.com/Jordan466/OptionRecords/statistics"
	"github.com/gookit/color"
)

// Color functions used when printing information
var (
	ColorCyan        = color.Cyan.Printf
	ColorLightCyan   = color.LightCyan.Printf
	ColorGreen       = color.Green.Printf
	ColorLightGreen  = color.LightGreen.Printf
	ColorYellow      = color.Yellow.Printf
	ColorLightYellow = color.LightYellow.Printf
	ColorRed         = color.Red.Printf
	ColorLightBlue   = color.FgLightBlue.Printf
)

// ColorPrinter prints scan results to the terminal in color.
// Columns without NULLs are green, columns with NULLs are yellow.
type ColorPrinter struct {
	opt display
}

type ColorPrinterOption = options.Option[ColorPrinter]

func (p *ColorPrinter) displayOptions() *display {
	return &p.opt
}

// NewColorPrinter creates a new ColorPrinter instance.
func NewColorPrinter(opts ...ColorPrinterOption) *ColorPrinter {
	p := &ColorPrinter{}
	options.Apply(p, opts...)
	return p
}

// PrintStart prints the table and database being scanned.
func (p *ColorPrinter) PrintStart(r *statistics.Report) {
	ColorLightCyan("%s%s\n", prefix(p.opt, r.StartTimeFormatted()), startMessage(r))
}

// PrintColumn prints the statistics of one column.
func (p *ColorPrinter) PrintColumn(r *statistics.Report, c *statistics.Column) {
	printf := ColorLightGreen
	if c.HasNulls() {
		printf = ColorYellow
	}
	printf("%s%s\n", prefix(p.opt, r.EndTimeFormatted()), columnMessage(c, p.opt))
}

// PrintStatistics prints the summary of a scan.
func (p *ColorPrinter) PrintStatistics(r *statistics.Report) {
	lines := statisticsLines(r)

	ColorYellow("\n%s\n", lines[0])
	if r.NullColumns() > 0 {
		ColorRed("%s\n", lines[1])
	} else {
		ColorGreen("%s\n", lines[1])
	}
	for _, line := range lines[2:] {
		ColorLightBlue("%s\n", line)
	}
}

// PrintError prints an error message in red to stderr.
func (p *ColorPrinter) PrintError(format string, args ...any) {
	fmt.Fprint(os.Stderr, color.Red.Sprintf(withNewline(format), args...))
}

// Shutdown implements nullscan.Printer. There is nothing to release.
func (p *ColorPrinter) Shutdown(_ *statistics.Report) {}
