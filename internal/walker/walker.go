package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"treecat/internal/filter"
)

// Fatal preconditions. Everything else the walk encounters is recoverable.
var (
	ErrRootNotFound      = errors.New("walker: root directory not found")
	ErrRootNotADirectory = errors.New("walker: root path is not a directory")
)

// Walker traverses one directory tree. It is single-use per Walk call but a
// Walker may be walked repeatedly; each call starts with a fresh visited set.
type Walker struct {
	root   string
	policy *filter.Policy
	opts   Options

	visited map[string]struct{}
	skipped []SkippedItem
	stats   ProgressStats
}

// New creates a Walker rooted at root.
func New(root string, policy *filter.Policy, opts ...Option) *Walker {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Walker{root: root, policy: policy, opts: options}
}

// Walk traverses the tree depth-first and calls emit for every kept file, in
// a deterministic order: within each directory all subdirectories come first,
// then all files, each group sorted by name. Per-entry failures are emitted
// as records with Err set; only a bad root aborts the walk.
func (w *Walker) Walk(emit EmitFunc) error {
	absRoot, err := filepath.Abs(w.root)
	if err != nil {
		return fmt.Errorf("walker: resolving root %q: %w", w.root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, absRoot)
		}
		return fmt.Errorf("walker: cannot access root %q: %w", absRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotADirectory, absRoot)
	}

	w.visited = make(map[string]struct{})
	w.skipped = w.skipped[:0]
	w.stats = ProgressStats{}

	if canon, err := filepath.EvalSymlinks(absRoot); err == nil {
		w.visited[canon] = struct{}{}
	}

	w.walkDir(absRoot, absRoot, emit)
	return nil
}

// Skipped returns the entries the last Walk declined, with reasons.
func (w *Walker) Skipped() []SkippedItem {
	return w.skipped
}

type dirEntry struct {
	name  string
	abs   string
	isDir bool
	info  fs.FileInfo
}

func (w *Walker) walkDir(root, dir string, emit EmitFunc) {
	// Rules must be in place before any child of dir is evaluated.
	w.policy.EnterDirectory(dir)

	names, err := os.ReadDir(dir)
	if err != nil {
		rel := w.relPath(root, dir)
		w.opts.Logger.Warn("walker: cannot read directory %q: %v", rel, err)
		w.track(rel, ReasonSkippedDirError, true)
		emit(FileRecord{Path: rel, AbsPath: dir, Err: err})
		return
	}

	entries := make([]dirEntry, 0, len(names))
	for _, de := range names {
		abs := filepath.Join(dir, de.Name())
		// Stat follows symlinks so a link to a directory is classified,
		// sorted, and traversed as a directory.
		info, err := os.Stat(abs)
		if err != nil {
			rel := w.relPath(root, abs)
			w.opts.Logger.Warn("walker: cannot stat %q: %v", rel, err)
			w.track(rel, ReasonSkippedStatError, false)
			emit(FileRecord{Path: rel, AbsPath: abs, Err: err})
			continue
		}
		entries = append(entries, dirEntry{name: de.Name(), abs: abs, isDir: info.IsDir(), info: info})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir != entries[j].isDir {
			return entries[i].isDir
		}
		return entries[i].name < entries[j].name
	})

	for _, e := range entries {
		canon, err := filepath.EvalSymlinks(e.abs)
		if err != nil {
			canon = e.abs
		}
		if _, seen := w.visited[canon]; seen {
			// Symlink cycle or a second route to the same target.
			w.opts.Logger.Debug("walker: already visited %q, skipping", e.abs)
			w.track(w.relPath(root, e.abs), ReasonSkippedRevisit, e.isDir)
			continue
		}
		w.visited[canon] = struct{}{}

		if skip, reason := w.policy.Evaluate(e.abs, e.isDir); skip {
			w.track(w.relPath(root, e.abs), SkippedReason(reason), e.isDir)
			w.stats.Skipped++
			continue
		}

		if e.isDir {
			w.stats.Dirs++
			w.walkDir(root, e.abs, emit)
			continue
		}
		w.processFile(root, e, emit)
	}
}

func (w *Walker) processFile(root string, e dirEntry, emit EmitFunc) {
	rel := w.relPath(root, e.abs)
	rec := FileRecord{
		Path:    rel,
		AbsPath: e.abs,
		Size:    e.info.Size(),
		ModTime: e.info.ModTime(),
	}

	w.stats.Files++
	if w.opts.ProgressFn != nil {
		stats := w.stats
		stats.CurrentPath = rel
		w.opts.ProgressFn(stats)
	}

	if !w.opts.ReadContent {
		emit(rec)
		return
	}
	if rec.Size > w.opts.MaxContentBytes {
		rec.Truncated = true
		emit(rec)
		return
	}

	content, err := os.ReadFile(e.abs)
	if err != nil {
		w.opts.Logger.Warn("walker: cannot read %q: %v", rel, err)
		w.track(rel, ReasonSkippedReadError, false)
		rec.Err = err
	} else {
		rec.Content = content
	}
	emit(rec)
}

func (w *Walker) relPath(root, abs string) string {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return abs
	}
	return filepath.ToSlash(rel)
}

func (w *Walker) track(path string, reason SkippedReason, isDir bool) {
	w.skipped = append(w.skipped, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// LargestFiles ranks the kept files of an independent, stats-only walk by
// size, descending, ties in first-encountered order. It reuses the caller's
// policy but never reads file content.
func LargestFiles(root string, policy *filter.Policy, n int, opts ...Option) ([]FileSize, error) {
	lw := New(root, policy, append(opts, WithContentReads(false))...)

	var files []FileSize
	err := lw.Walk(func(rec FileRecord) {
		if rec.Err != nil {
			return
		}
		files = append(files, FileSize{Size: rec.Size, Path: rec.Path})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Size > files[j].Size
	})
	if n > 0 && len(files) > n {
		files = files[:n]
	}
	return files, nil
}
