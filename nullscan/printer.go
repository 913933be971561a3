package nullscan

import (
	"fmt"

	"github.com/Jordan466/OptionRecords/options"
	"github.com/Jordan466/OptionRecords/printers"
	"github.com/Jordan466/OptionRecords/statistics"
)

var (
	_ Printer = (*printers.ColorPrinter)(nil)
	_ Printer = (*printers.JSONPrinter)(nil)
	_ Printer = (*printers.CSVPrinter)(nil)
	_ Printer = (*printers.DatabasePrinter)(nil)
	_ Printer = (*printers.PlainPrinter)(nil)
)

// Printer defines a set of methods that any printer implementation must provide.
// Printers are responsible for outputting information, but should not modify data or perform calculations.
type Printer interface {
	// PrintStart prints the first message of a scan, naming the table and database.
	PrintStart(r *statistics.Report)

	// PrintColumn should print the statistics of one column.
	// It is called once per visible column after all rows are read.
	PrintColumn(r *statistics.Report, c *statistics.Column)

	// PrintStatistics should print the summary of a scan.
	PrintStatistics(r *statistics.Report)

	// PrintError should print an error message.
	// Printer should also apply \n to the given string, if needed.
	PrintError(format string, args ...any)

	// Shutdown releases whatever the printer holds open. The printer is not used afterwards.
	Shutdown(r *statistics.Report)
}

// NewPrinter creates and returns an appropriate printer based on configuration
func NewPrinter(cfg PrinterConfig) (Printer, error) {
	if cfg.PrettyJSON && !cfg.OutputJSON {
		return nil, fmt.Errorf("--pretty has no effect without the -j flag")
	}

	switch {
	case cfg.OutputJSON:
		opts := display(cfg, printers.WithTimestamp[printers.JSONPrinter](), printers.WithoutSamples[printers.JSONPrinter]())
		if cfg.PrettyJSON {
			opts = append(opts, printers.WithPrettyJSON())
		}
		return printers.NewJSONPrinter(opts...), nil

	case cfg.OutputDBPath != "":
		return printers.NewDatabasePrinter(cfg.OutputDBPath,
			display(cfg, printers.WithTimestamp[printers.DatabasePrinter](), printers.WithoutSamples[printers.DatabasePrinter]())...)

	case cfg.OutputCSVPath != "":
		return printers.NewCSVPrinter(cfg.OutputCSVPath,
			display(cfg, printers.WithTimestamp[printers.CSVPrinter](), printers.WithoutSamples[printers.CSVPrinter]())...)

	case cfg.NoColor:
		return printers.NewPlainPrinter(
			display(cfg, printers.WithTimestamp[printers.PlainPrinter](), printers.WithoutSamples[printers.PlainPrinter]())...), nil

	default:
		return printers.NewColorPrinter(
			display(cfg, printers.WithTimestamp[printers.ColorPrinter](), printers.WithoutSamples[printers.ColorPrinter]())...), nil
	}
}

// display selects the shared display options enabled in cfg.
func display[T any](cfg PrinterConfig, timestamp, withoutSamples options.Option[T]) []options.Option[T] {
	var opts []options.Option[T]
	if cfg.WithTimestamp {
		opts = append(opts, timestamp)
	}
	if cfg.HideSamples {
		opts = append(opts, withoutSamples)
	}
	return opts
}

// PrinterConfig holds all configuration options for Printer creation
type PrinterConfig struct {
	OutputJSON    bool
	PrettyJSON    bool
	NoColor       bool
	WithTimestamp bool
	HideSamples   bool
	OutputDBPath  string
	OutputCSVPath string
}
