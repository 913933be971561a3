package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/Jordan466/OptionRecords/statistics"
	"github.com/fsnotify/fsnotify"
)

// rescanDelay coalesces the bursts of writes a single transaction produces.
const rescanDelay = 200 * time.Millisecond

type scanFunc func(ctx context.Context) (statistics.Report, error)

// watched lists the files whose writes change the database at path: the file
// itself and, in WAL mode, its write-ahead log.
func watched(path string) []string {
	path = filepath.Clean(path)
	return []string{path, path + "-wal"}
}

// watch runs scan once and again after every write to the database at path,
// until ctx is done. It returns the last report.
func watch(ctx context.Context, path string, scan scanFunc) (statistics.Report, error) {
	if _, err := os.Stat(path); err != nil {
		return statistics.Report{}, fmt.Errorf("watch %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return statistics.Report{}, fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// The directory is watched since the -wal file comes and goes.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return statistics.Report{}, fmt.Errorf("watch %s: %w", path, err)
	}
	files := watched(path)

	report, err := scan(ctx)
	if err != nil {
		return report, err
	}

	timer := time.NewTimer(rescanDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return report, nil

		case event, ok := <-watcher.Events:
			if !ok {
				return report, nil
			}
			if event.Op&fsnotify.Write != 0 && slices.Contains(files, filepath.Clean(event.Name)) {
				timer.Reset(rescanDelay)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return report, nil
			}
			return report, fmt.Errorf("watch %s: %w", path, err)

		case <-timer.C:
			report, err = scan(ctx)
			if err != nil {
				return report, err
			}
		}
	}
}
