package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/Jordan466/OptionRecords/nullscan"
	"github.com/Jordan466/OptionRecords/option"
	"github.com/Jordan466/OptionRecords/seqs"
)

var (
	// ErrUsageRequested indicates usage help was requested
	ErrUsageRequested = errors.New("usage requested")

	// ErrVersionRequested indicates version display was requested
	ErrVersionRequested = errors.New("version requested")

	// ErrUpdateCheckRequested indicates update check was requested
	ErrUpdateCheckRequested = errors.New("update check requested")
)

// Config contains all configuration needed to run a scan.
type Config struct {
	// Target configuration
	Database string
	Table    string
	Columns  []string

	// Scan control
	RowLimit      int
	ShowNullsOnly bool
	Watch         bool

	// Output options
	PrinterConfig nullscan.PrinterConfig
}

type flags struct {
	columns       *string
	rowLimit      *uint
	showNullsOnly *bool
	showTimestamp *bool
	hideSamples   *bool
	outputJSON    *bool
	prettyJSON    *bool
	noColor       *bool
	saveToCSV     *string
	saveToDB      *string
	watch         *bool
	showVer       *bool
	checkUpdates  *bool
}

// newFlagSet declares every command-line flag on a fresh flag set.
func newFlagSet() (*flag.FlagSet, flags) {
	fs := flag.NewFlagSet("nullscan", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		// no-op, usage is printed by PrintUsage
	}

	f := flags{
		columns: fs.String("columns",
			"",
			"comma separated list of columns to scan. By default, every column is scanned."),
		rowLimit: fs.Uint("c",
			0,
			"stop after <n> rows. By default, no limit will be applied."),
		showNullsOnly: fs.Bool("nulls-only", false, "only print columns that contain NULLs."),
		showTimestamp: fs.Bool("D", false, "show timestamp in the output."),
		hideSamples:   fs.Bool("no-samples", false, "do not print sample values."),
		outputJSON:    fs.Bool("j", false, "output in JSON format."),
		prettyJSON: fs.Bool("pretty",
			false,
			"use indentation when using json output format. No effect without the '-j' flag."),
		noColor: fs.Bool("no-color", false, "do not colorize output."),
		saveToCSV: fs.String("csv",
			"",
			"path and file name to store output to a CSV file. The stats will be saved with the same name and `_stats` suffix."),
		saveToDB: fs.String("db", "", "path and file name to store output to a sqlite3 database."),
		watch: fs.Bool("w",
			false,
			"watch the database file and its -wal file and scan again every time they are written, until interrupted."),
		showVer:      fs.Bool("v", false, "show version and exit."),
		checkUpdates: fs.Bool("u", false, "check for updates and exit."),
	}

	return fs, f
}

// valueFlags take a separate argument when not written as -name=value.
var valueFlags = []string{"columns", "c", "csv", "db"}

// permuteArgs moves flags in front of positional arguments, since flag parsing
// stops just before the first non-flag argument.
// see: https://pkg.go.dev/flag
func permuteArgs(args []string) error {
	var flagArgs []string
	var nonFlagArgs []string

	for i := 0; i < len(args); i++ {
		v := args[i]
		if len(v) < 2 || v[0] != '-' {
			nonFlagArgs = append(nonFlagArgs, v)
			continue
		}

		optionName := strings.TrimPrefix(v[1:], "-")
		if !slices.Contains(valueFlags, optionName) {
			flagArgs = append(flagArgs, v)
			continue
		}

		// out of index
		if len(args) <= i+1 {
			return ErrUsageRequested
		}
		// the next flag has come
		optionVal := args[i+1]
		if strings.HasPrefix(optionVal, "-") {
			return ErrUsageRequested
		}
		flagArgs = append(flagArgs, args[i:i+2]...)
		i++
	}
	permutedArgs := slices.Concat(flagArgs, nonFlagArgs)

	// replace args in place
	copy(args, permutedArgs)

	return nil
}

// splitColumns turns "a, b,,c" into [a b c].
func splitColumns(list string) []string {
	nonEmpty := func(name string) option.Option[string] {
		return option.Filter(option.Some(strings.TrimSpace(name)), func(s string) bool { return s != "" })
	}
	return slices.Collect(seqs.Choose(slices.Values(strings.Split(list, ",")), nonEmpty))
}

// ParseArgs parses command-line arguments, without the program name. Returns
// ErrUsageRequested, ErrVersionRequested, or ErrUpdateCheckRequested for
// special control flow.
func ParseArgs(args []string) (Config, error) {
	args = slices.Clone(args)
	if err := permuteArgs(args); err != nil {
		return Config{}, err
	}

	fs, f := newFlagSet()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, ErrUsageRequested
		}
		return Config{}, fmt.Errorf("%w: %v", ErrUsageRequested, err)
	}

	if *f.showVer {
		return Config{}, ErrVersionRequested
	}

	if *f.checkUpdates {
		return Config{}, ErrUpdateCheckRequested
	}

	positional := fs.Args()
	if len(positional) != 2 {
		return Config{}, ErrUsageRequested
	}

	config := Config{
		Database:      positional[0],
		Table:         positional[1],
		Columns:       splitColumns(*f.columns),
		RowLimit:      int(*f.rowLimit),
		ShowNullsOnly: *f.showNullsOnly,
		Watch:         *f.watch,
		PrinterConfig: nullscan.PrinterConfig{
			OutputJSON:    *f.outputJSON,
			PrettyJSON:    *f.prettyJSON,
			NoColor:       *f.noColor,
			WithTimestamp: *f.showTimestamp,
			HideSamples:   *f.hideSamples,
			OutputDBPath:  *f.saveToDB,
			OutputCSVPath: *f.saveToCSV,
		},
	}

	if config.PrinterConfig.PrettyJSON && !config.PrinterConfig.OutputJSON {
		return Config{}, fmt.Errorf("%w: -pretty has no effect without the -j flag", ErrUsageRequested)
	}

	return config, nil
}

// ProcessUserInput parses the arguments the program was started with.
func ProcessUserInput() (Config, error) {
	return ParseArgs(os.Args[1:])
}
