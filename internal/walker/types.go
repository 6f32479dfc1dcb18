// Package walker performs the deterministic depth-first traversal that drives
// a run: it feeds the filter policy, guards against symlink cycles, and hands
// every kept file to an emit callback in a stable order.
package walker

import (
	"time"
)

// FileRecord describes one kept file, or an inline failure encountered while
// trying to process an entry. Records are derived per run and never persisted.
type FileRecord struct {
	// Path is the slash-separated path relative to the walk root.
	Path    string
	AbsPath string
	Size    int64
	ModTime time.Time

	// Content is the raw file content. It is nil when content reads are
	// disabled, when the file was truncated, or when the read failed.
	Content   []byte
	Truncated bool

	// Err is set for per-entry failures (unreadable directory or file, stat
	// failure). The walk continues; the emitter renders an inline notice.
	Err error
}

// EmitFunc receives each kept file (and inline failure) in traversal order.
type EmitFunc func(rec FileRecord)

// FileSize is one entry of the largest-files ranking.
type FileSize struct {
	Size int64
	Path string
}

// SkippedReason clarifies why an entry was not processed.
type SkippedReason string

const (
	ReasonSkippedStatError SkippedReason = "Skipped (Stat Error)"
	ReasonSkippedDirError  SkippedReason = "Skipped (Directory Read Error)"
	ReasonSkippedReadError SkippedReason = "Skipped (Read Error)"
	ReasonSkippedRevisit   SkippedReason = "Skipped (Already Visited)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}
