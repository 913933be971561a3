// Package testdata provides shared test helpers and fixtures.
package testdata

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Jordan466/OptionRecords/option"
	"github.com/Jordan466/OptionRecords/printers"
	"github.com/Jordan466/OptionRecords/statistics"
	"github.com/gookit/color"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Common test fixture values
const (
	TestTable = "people"
)

var (
	TestTimestamp  = time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC)
	TestTimestamp2 = time.Date(2024, 1, 15, 10, 31, 15, 0, time.UTC)
)

// fixtureScript creates the people table. Its NULL layout:
//
//	id      no NULLs
//	name    row 3
//	email   rows 1-2
//	age     rows 1 and 3
//	score   rows 2-3
//	avatar  rows 0-1 and 3
const fixtureScript = `
CREATE TABLE people (
	id INTEGER PRIMARY KEY,
	name TEXT,
	email TEXT,
	age INTEGER,
	score REAL,
	avatar BLOB
);
INSERT INTO people VALUES (1, 'Ada', 'ada@example.com', 36, 9.5, NULL);
INSERT INTO people VALUES (2, 'Grace', NULL, NULL, 7.25, NULL);
INSERT INTO people VALUES (3, 'Linus', NULL, 28, NULL, x'00ff');
INSERT INTO people VALUES (4, NULL, 'anon@example.com', NULL, NULL, NULL);
`

// FixtureDB writes the people database into a temporary directory and returns its path.
func FixtureDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.db")
	conn, err := sqlite.OpenConn(path, sqlite.OpenCreate, sqlite.OpenReadWrite)
	if err != nil {
		t.Fatalf("create fixture database: %v", err)
	}
	defer conn.Close()

	if err := sqlitex.ExecuteScript(conn, fixtureScript, nil); err != nil {
		t.Fatalf("populate fixture database: %v", err)
	}
	return path
}

// Report returns a finished report with one complete and one sparse column.
func Report() *statistics.Report {
	id := statistics.NewColumn("id", "INTEGER")
	email := statistics.NewColumn("email", "TEXT")

	r := statistics.NewReport("fixture.db", TestTable, []*statistics.Column{id, email})
	r.Observe(statistics.Row{option.Some(statistics.Number(1)), option.Some(statistics.Text("ada@example.com"))})
	r.Observe(statistics.Row{option.Some(statistics.Number(2)), option.None[statistics.Cell]()})
	r.StartTime = TestTimestamp
	r.EndTime = TestTimestamp2
	return &r
}

// ToPtr returns a pointer to v.
func ToPtr[T any](v T) *T {
	return &v
}

// CaptureOutput captures stdout during function execution and returns it as a string.
// Output of the color package is captured too, since it keeps its own writer.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	color.SetOutput(w)

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	w.Close()
	output := <-done
	os.Stdout = oldStdout
	color.SetOutput(oldStdout)

	return output
}

// CaptureJSONOutput captures stdout and decodes the stream of JSON events written to it.
func CaptureJSONOutput(t *testing.T, fn func()) []printers.JSONData {
	t.Helper()

	output := CaptureOutput(t, fn)

	var events []printers.JSONData
	dec := json.NewDecoder(strings.NewReader(output))
	for dec.More() {
		var data printers.JSONData
		if err := dec.Decode(&data); err != nil {
			t.Fatalf("parse JSON: %v\nOutput: %s", err, output)
		}
		events = append(events, data)
	}

	return events
}
