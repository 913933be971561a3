// Package app wires command-line input, sources and printers into the nullscan tool.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jordan466/OptionRecords/nullscan"
	"github.com/Jordan466/OptionRecords/sources"
	"github.com/Jordan466/OptionRecords/statistics"
	"github.com/google/go-github/v45/github"
	"golang.org/x/term"
)

const updateCheckTimeout = 10 * time.Second

// Run executes the nullscan application and returns an exit code
func Run() int {
	config, err := ProcessUserInput()
	if err != nil {
		return handleError(err, nil)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		config.PrinterConfig.NoColor = true
	}

	printer, err := nullscan.NewPrinter(config.PrinterConfig)
	if err != nil {
		return handleError(err, nil)
	}

	ctx := setupSignalHandler(context.Background())

	scan := func(ctx context.Context) (statistics.Report, error) {
		return scanOnce(ctx, config, printer)
	}

	var report statistics.Report
	if config.Watch {
		report, err = watch(ctx, config.Database, scan)
	} else {
		report, err = scan(ctx)
	}

	code := handleError(err, printer)
	printer.Shutdown(&report)

	return code
}

// scanOnce opens the database, scans the configured table and closes it again.
func scanOnce(ctx context.Context, config Config, printer nullscan.Printer) (statistics.Report, error) {
	src, err := sources.NewSQLiteSource(config.Database, config.Table,
		sources.WithColumns(config.Columns...),
		sources.WithRowLimit(config.RowLimit),
	)
	if err != nil {
		return statistics.Report{}, err
	}
	defer src.Close()

	scanner := nullscan.NewScanner(src,
		nullscan.WithPrinter(printer),
		nullscan.WithShowNullsOnly(config.ShowNullsOnly),
	)

	return scanner.Scan(ctx)
}

func setupSignalHandler(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}

func handleError(err error, printer nullscan.Printer) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, ErrUsageRequested) {
		if err != ErrUsageRequested {
			printError(err, printer)
		}
		PrintUsage()
		return 1
	}

	if errors.Is(err, ErrVersionRequested) {
		PrintVersion()
		return 0
	}

	if errors.Is(err, ErrUpdateCheckRequested) {
		ctx, cancel := context.WithTimeout(context.Background(), updateCheckTimeout)
		defer cancel()

		msg, checkErr := CheckForUpdates(ctx, github.NewClient(nil))
		if checkErr != nil {
			printError(checkErr, printer)
			return 1
		}
		fmt.Println(msg)
		return 0
	}

	printError(err, printer)
	return 1
}

func printError(err error, printer nullscan.Printer) {
	if printer != nil {
		printer.PrintError("%v", err)
		return
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
