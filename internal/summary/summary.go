// Package summary renders end-of-run reports: counts, the largest-files
// ranking, and the skipped-items listing.
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"treecat/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults shows the end results of a run.
func DisplayResults(logger Logger, fileCount int, totalBytes int64, duration time.Duration, quiet bool) {
	if quiet {
		return
	}
	logger.Info("Emitted %d file(s), %s total.", fileCount, humanize.Bytes(uint64(totalBytes)))
	logger.Info("Run complete in %v.", duration.Round(time.Millisecond))
}

// DisplayLargestFiles prints the size-descending ranking produced by the
// stats-only pass.
func DisplayLargestFiles(w io.Writer, files []walker.FileSize) {
	if len(files) == 0 {
		return
	}
	fmt.Fprintf(w, "--- Largest Files (%d) ---\n", len(files))
	for i, f := range files {
		fmt.Fprintf(w, "%2d. %10s  %s\n", i+1, humanize.Bytes(uint64(f.Size)), f.Path)
	}
}

// DisplaySkippedItems formats and prints information about skipped entries.
func DisplaySkippedItems(logger Logger, skippedItems []walker.SkippedItem, output io.Writer, quiet bool) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		infoLog("No items were skipped.")
		return
	}

	// Sort for consistent output
	sorted := make([]walker.SkippedItem, len(skippedItems))
	copy(sorted, skippedItems)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})
	for _, item := range sorted {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR "
		}
		fmt.Fprintf(output, "Skipped %s: %-50s [%s]\n", typeStr, item.Path, item.Reason)
	}
	infoLog("--- End Skipped Items ---")
}
