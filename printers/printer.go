// Package printers contains the logic for printing information
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/Jordan466/OptionRecords/option"
	"github.com/Jordan466/OptionRecords/statistics"
)

func ptr[T any](v T) *T {
	return &v
}

// declType renders a declared column type as " (TYPE)", or nothing when undeclared.
func declType(c *statistics.Column) string {
	typ := option.Filter(option.Some(c.Type), func(s string) bool { return s != "" })
	return option.DefaultValue(option.Map(typ, func(s string) string { return " (" + s + ")" }), "")
}

// sample renders the sample value, or "-" when it is hidden or absent.
func sample(c *statistics.Column, d display) string {
	shown := option.Filter(c.Sample, func(string) bool { return !d.HideSamples })
	return option.Match(shown,
		func(s string) string { return fmt.Sprintf("%q", s) },
		func() string { return "-" },
	)
}

// prefix returns the timestamp followed by a space when timestamps are enabled.
func prefix(d display, timestamp string) string {
	if !d.ShowTimestamp {
		return ""
	}
	return timestamp + " "
}

func startMessage(r *statistics.Report) string {
	return fmt.Sprintf("Scanning %s in %s (%d columns)", r.Table, r.Source, len(r.Columns))
}

func columnMessage(c *statistics.Column, d display) string {
	return fmt.Sprintf("%s%s: %d of %d NULL (%s) min=%s max=%s mean=%s sample=%s longest NULL run=%s",
		c.Name,
		declType(c),
		c.Nulls(),
		c.Total,
		statistics.FormatRatio(c.NullRatio()),
		statistics.FormatNumber(c.Min),
		statistics.FormatNumber(c.Max),
		statistics.FormatNumber(c.Mean),
		sample(c, d),
		statistics.FormatRun(c.LongestNull),
	)
}

func statisticsLines(r *statistics.Report) []string {
	return []string{
		fmt.Sprintf("--- %s nullscan statistics ---", r.Table),
		fmt.Sprintf("%d rows scanned, %d of %d columns contain NULLs", r.Rows, r.NullColumns(), len(r.Columns)),
		fmt.Sprintf("scan started at:  %s", r.StartTimeFormatted()),
		fmt.Sprintf("scan ended at:    %s", r.EndTimeFormatted()),
		fmt.Sprintf("duration (HH:MM:SS): %s", durationClock(r)),
	}
}

func durationClock(r *statistics.Report) string {
	d := r.Duration().Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func withNewline(format string) string {
	if strings.HasSuffix(format, "\n") {
		return format
	}
	return format + "\n"
}
