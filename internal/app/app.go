// Package app wires configuration, the filter policy, the walker and the
// emitter into one run: walk the tree, materialize the whole artifact in
// memory, then write it out once.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"

	"treecat/internal/config"
	"treecat/internal/emit"
	"treecat/internal/filter"
	"treecat/internal/gitignore"
	"treecat/internal/language"
	"treecat/internal/logger"
	"treecat/internal/summary"
	"treecat/internal/walker"
)

// App encapsulates the main application functionality
type App struct {
	cfg *config.Config
	log *logger.Logger
}

// New creates a new App instance
func New(cfg *config.Config) *App {
	color.NoColor = !cfg.UseColors

	log := logger.New(os.Stderr, cfg.LogLevel, cfg.UseColors)
	if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{cfg: cfg, log: log}
}

// Run executes one full scan and returns an error only for the fatal cases:
// a bad root, an invalid format selector, or a failed final write.
func (a *App) Run() error {
	startTime := time.Now()

	format, err := emit.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}

	absRoot, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		return fmt.Errorf("app: invalid root directory %q: %w", a.cfg.RootDir, err)
	}

	langs := language.Default()
	if a.cfg.LanguageFile != "" {
		custom, err := language.Load(a.cfg.LanguageFile)
		if err != nil {
			a.log.Warn("Could not load language definitions, using built-ins: %v", err)
		} else {
			langs = custom
		}
	}

	fcfg, err := a.cfg.FilterConfig(a.log)
	if err != nil {
		return err
	}

	store := gitignore.NewStore(a.log)
	policy := filter.New(absRoot, fcfg, store, a.log)
	renderer := emit.NewRenderer(format, langs)

	w := walker.New(absRoot, policy,
		walker.WithLogger(a.log),
		walker.WithContentReads(format.ReadsContent()),
	)

	a.log.Debug("Scanning %s (format: %s)", absRoot, format)

	var artifact strings.Builder
	var fileCount int
	var totalBytes int64
	err = w.Walk(func(rec walker.FileRecord) {
		artifact.WriteString(renderer.Render(rec))
		if rec.Err == nil {
			fileCount++
			totalBytes += rec.Size
		}
	})
	if err != nil {
		return err
	}

	if err := a.writeArtifact(artifact.String()); err != nil {
		return err
	}

	summary.DisplayResults(a.log, fileCount, totalBytes, time.Since(startTime), a.cfg.Quiet)

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, w.Skipped(), os.Stderr, a.cfg.Quiet)
	}

	if a.cfg.TopFiles > 0 {
		largest, err := walker.LargestFiles(absRoot, policy, a.cfg.TopFiles, walker.WithLogger(a.log))
		if err != nil {
			a.log.Warn("Largest-files pass failed: %v", err)
		} else {
			summary.DisplayLargestFiles(os.Stderr, largest)
		}
	}
	return nil
}

// writeArtifact persists the fully rendered text in a single write.
func (a *App) writeArtifact(text string) error {
	switch {
	case a.cfg.OutputFile != "":
		if err := os.WriteFile(a.cfg.OutputFile, []byte(text), 0o644); err != nil {
			return fmt.Errorf("app: writing output file: %w", err)
		}
		if !a.cfg.Quiet {
			a.log.Info("Output saved to %s", a.cfg.OutputFile)
		}
	case a.cfg.Clipboard:
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("app: copying to clipboard: %w", err)
		}
		if !a.cfg.Quiet {
			a.log.Info("Output copied to clipboard.")
		}
	default:
		fmt.Print(text)
	}
	return nil
}
