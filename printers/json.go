package printers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Jordan466/OptionRecords/option"
	"github.com/Jordan466/OptionRecords/options"
	"github.com/Jordan466/OptionRecords/statistics"
)

// JSONEventType names the kind of a JSON event.
type JSONEventType string

const (
	startEvent      JSONEventType = "start"
	columnEvent     JSONEventType = "column"
	statisticsEvent JSONEventType = "statistics"
	errorEvent      JSONEventType = "error"
)

// JSONData contains all possible fields for JSON output.
// Absent statistics are pointers left nil, so they are omitted.
type JSONData struct {
	Type      JSONEventType `json:"type"`
	Message   string        `json:"message"`
	Timestamp string        `json:"timestamp,omitempty"`

	Source string `json:"source,omitempty"`
	Table  string `json:"table,omitempty"`

	Column            string          `json:"column,omitempty"`
	DeclType          string          `json:"declType,omitempty"`
	Total             *int            `json:"total,omitempty"`
	Nulls             *int            `json:"nulls,omitempty"`
	NullRatio         *float64        `json:"nullRatio,omitempty"`
	Min               *float64        `json:"min,omitempty"`
	Max               *float64        `json:"max,omitempty"`
	Mean              *float64        `json:"mean,omitempty"`
	Sample            *string         `json:"sample,omitempty"`
	LongestNullRun    *statistics.Run `json:"longestNullRun,omitempty"`
	LongestPresentRun *statistics.Run `json:"longestPresentRun,omitempty"`

	Rows           *int    `json:"rows,omitempty"`
	Columns        *int    `json:"columns,omitempty"`
	NullColumns    *int    `json:"nullColumns,omitempty"`
	StartTimestamp string  `json:"startTimestamp,omitempty"`
	EndTimestamp   string  `json:"endTimestamp,omitempty"`
	TotalDuration  float64 `json:"totalDuration,omitempty"` // TotalDuration is the length of the scan in seconds.
}

// JSONPrinter prints every event as a JSON object.
type JSONPrinter struct {
	opt    display
	pretty bool
}

type JSONPrinterOption = options.Option[JSONPrinter]

func (p *JSONPrinter) displayOptions() *display {
	return &p.opt
}

// WithPrettyJSON indents the JSON output.
func WithPrettyJSON() JSONPrinterOption {
	return func(p *JSONPrinter) {
		p.pretty = true
	}
}

// NewJSONPrinter creates a new JSONPrinter instance.
func NewJSONPrinter(opts ...JSONPrinterOption) *JSONPrinter {
	p := &JSONPrinter{}
	options.Apply(p, opts...)
	return p
}

func (p *JSONPrinter) print(data JSONData) {
	encoder := json.NewEncoder(os.Stdout)
	if p.pretty {
		encoder.SetIndent("", "\t")
	}
	encoder.Encode(data)
}

func (p *JSONPrinter) timestamp(t string) string {
	if !p.opt.ShowTimestamp {
		return ""
	}
	return t
}

// PrintStart prints the start event.
func (p *JSONPrinter) PrintStart(r *statistics.Report) {
	p.print(JSONData{
		Type:      startEvent,
		Message:   startMessage(r),
		Timestamp: p.timestamp(r.StartTimeFormatted()),
		Source:    r.Source,
		Table:     r.Table,
		Columns:   ptr(len(r.Columns)),
	})
}

// PrintColumn prints a column event.
func (p *JSONPrinter) PrintColumn(r *statistics.Report, c *statistics.Column) {
	shownSample := option.Filter(c.Sample, func(string) bool { return !p.opt.HideSamples })

	p.print(JSONData{
		Type:              columnEvent,
		Message:           columnMessage(c, p.opt),
		Timestamp:         p.timestamp(r.EndTimeFormatted()),
		Table:             r.Table,
		Column:            c.Name,
		DeclType:          c.Type,
		Total:             ptr(c.Total),
		Nulls:             ptr(c.Nulls()),
		NullRatio:         option.ToNullable(c.NullRatio()),
		Min:               option.ToNullable(c.Min),
		Max:               option.ToNullable(c.Max),
		Mean:              option.ToNullable(c.Mean),
		Sample:            option.ToNullable(shownSample),
		LongestNullRun:    option.ToNullable(c.LongestNull),
		LongestPresentRun: option.ToNullable(c.LongestPresent),
	})
}

// PrintStatistics prints the statistics event.
func (p *JSONPrinter) PrintStatistics(r *statistics.Report) {
	p.print(JSONData{
		Type:           statisticsEvent,
		Message:        fmt.Sprintf("statistics for %s in %s", r.Table, r.Source),
		Source:         r.Source,
		Table:          r.Table,
		Rows:           ptr(r.Rows),
		Columns:        ptr(len(r.Columns)),
		NullColumns:    ptr(r.NullColumns()),
		StartTimestamp: r.StartTimeFormatted(),
		EndTimestamp:   r.EndTimeFormatted(),
		TotalDuration:  r.Duration().Seconds(),
	})
}

// PrintError prints an error event.
func (p *JSONPrinter) PrintError(format string, args ...any) {
	p.print(JSONData{
		Type:    errorEvent,
		Message: fmt.Sprintf(format, args...),
	})
}

// Shutdown implements nullscan.Printer. There is nothing to release.
func (p *JSONPrinter) Shutdown(_ *statistics.Report) {}
