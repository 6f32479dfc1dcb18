package walker

import (
	"treecat/internal/utils"
)

// MaxContentBytes is the default content size cap. Files larger than this are
// emitted with Truncated set instead of their content.
const MaxContentBytes = 1 << 20

// ProgressStats holds counters reported to a progress callback.
type ProgressStats struct {
	Files       int64
	Dirs        int64
	Skipped     int64
	CurrentPath string
}

// ProgressCallback receives progress updates as the walk advances.
type ProgressCallback func(stats ProgressStats)

// Options configures a Walker.
type Options struct {
	Logger          utils.Logger
	ReadContent     bool
	MaxContentBytes int64
	ProgressFn      ProgressCallback
}

func defaultOptions() Options {
	return Options{
		Logger:          utils.NoopLogger{},
		ReadContent:     true,
		MaxContentBytes: MaxContentBytes,
	}
}

// Option is a functional option for configuring a Walker.
type Option func(*Options)

// WithLogger sets a custom logger for the walker.
func WithLogger(logger utils.Logger) Option {
	return func(opts *Options) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithContentReads enables or disables reading file content. The list output
// format disables reads since it only needs paths and stats.
func WithContentReads(enabled bool) Option {
	return func(opts *Options) {
		opts.ReadContent = enabled
	}
}

// WithMaxContentBytes overrides the content size cap.
func WithMaxContentBytes(n int64) Option {
	return func(opts *Options) {
		if n > 0 {
			opts.MaxContentBytes = n
		}
	}
}

// WithProgress adds a progress callback function.
func WithProgress(fn ProgressCallback) Option {
	return func(opts *Options) {
		opts.ProgressFn = fn
	}
}
