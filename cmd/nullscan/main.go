// Package main enables nullscan to execute as a CLI tool
package main

import (
	"os"

	"github.com/Jordan466/OptionRecords/internal/app"
)

func main() {
	os.Exit(app.Run())
}
