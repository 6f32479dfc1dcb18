// Package filter decides, for each path a traversal encounters, whether it is
// kept or skipped. It combines the static allow/deny configuration with the
// ignore rules accumulated from the path's ancestor directories.
package filter

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"treecat/internal/gitignore"
	"treecat/internal/utils"
)

// Reason says why a path was skipped.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonOutputFile       Reason = "Skipped (Output Self-Exclusion)"
	ReasonIgnoreRule       Reason = "Ignored (Gitignore Rule)"
	ReasonDirectoryName    Reason = "Skipped (Directory Name)"
	ReasonDirectoryPattern Reason = "Skipped (Directory Pattern)"
	ReasonFilename         Reason = "Skipped (Filename)"
	ReasonFilenamePattern  Reason = "Skipped (Filename Pattern)"
	ReasonDotfile          Reason = "Skipped (Dotfile)"
	ReasonExtension        Reason = "Filtered (Extension Mismatch)"
)

// Config is the static part of the policy: set membership and pattern lists.
// It is built once per run and never mutated afterwards.
//
// Set keys are stored lowercase where matching is case-insensitive
// (AllowedFilenames, SkipFilenames). AllowedExtensions keys keep their dot.
type Config struct {
	AllowedExtensions     map[string]struct{}
	AllowedFilenames      map[string]struct{}
	SkipDirectories       map[string]struct{}
	SkipDirectoryPatterns []*regexp.Regexp
	SkipFilenames         map[string]struct{}
	SkipPatterns          []*regexp.Regexp

	// OutputPath is the symlink-resolved absolute path of the run's output
	// artifact, excluded so the tool never includes its own output.
	// Empty when the output does not go to a file.
	OutputPath string
}

// Policy answers skip/keep for paths under one root. The only state that
// changes during a run is the lazily populated rule store, which the walker
// feeds via EnterDirectory.
type Policy struct {
	root  string
	cfg   *Config
	store *gitignore.Store
	log   utils.Logger
}

// New creates a Policy for the given absolute root directory.
func New(root string, cfg *Config, store *gitignore.Store, log utils.Logger) *Policy {
	if log == nil {
		log = utils.NoopLogger{}
	}
	return &Policy{root: root, cfg: cfg, store: store, log: log}
}

// EnterDirectory loads dir's ignore rules. The walker calls this when it
// enters a directory, before any of that directory's children are evaluated,
// so a directory's rules scope strictly downward.
func (p *Policy) EnterDirectory(dir string) {
	p.store.Load(dir)
}

// ShouldSkip reports whether absPath is excluded from the walk.
func (p *Policy) ShouldSkip(absPath string, isDir bool) bool {
	skip, _ := p.Evaluate(absPath, isDir)
	return skip
}

// Evaluate is ShouldSkip plus the reason for the decision.
func (p *Policy) Evaluate(absPath string, isDir bool) (bool, Reason) {
	if p.cfg.OutputPath != "" && p.isOutputFile(absPath) {
		return true, ReasonOutputFile
	}

	ignored, reincludable := p.ignoredByRules(absPath, isDir)
	if ignored && !(isDir && reincludable) {
		return true, ReasonIgnoreRule
	}

	base := filepath.Base(absPath)
	if isDir {
		if _, ok := p.cfg.SkipDirectories[base]; ok {
			return true, ReasonDirectoryName
		}
		for _, re := range p.cfg.SkipDirectoryPatterns {
			if re.MatchString(base) {
				return true, ReasonDirectoryPattern
			}
		}
		return false, ReasonNone
	}

	lower := strings.ToLower(base)
	if _, ok := p.cfg.SkipFilenames[lower]; ok {
		return true, ReasonFilename
	}
	for _, re := range p.cfg.SkipPatterns {
		if re.MatchString(base) {
			return true, ReasonFilenamePattern
		}
	}

	_, nameAllowed := p.cfg.AllowedFilenames[lower]
	if strings.HasPrefix(base, ".") && !nameAllowed {
		return true, ReasonDotfile
	}
	if !nameAllowed {
		ext := strings.ToLower(filepath.Ext(base))
		if _, ok := p.cfg.AllowedExtensions[ext]; !ok {
			return true, ReasonExtension
		}
	}
	return false, ReasonNone
}

// isOutputFile compares the candidate against the configured output artifact
// by resolved path, so the output is excluded even when reached via a link.
func (p *Policy) isOutputFile(absPath string) bool {
	if absPath == p.cfg.OutputPath {
		return true
	}
	resolved, err := filepath.EvalSymlinks(absPath)
	return err == nil && resolved == p.cfg.OutputPath
}

// ignoredByRules evaluates the accumulated ignore rules of every ancestor of
// absPath, from the root down to the immediate parent. Every matching rule
// updates the verdict, so within one file later rules override earlier ones,
// and a nearer directory's matching rule overrides any farther ancestor's.
//
// reincludable is set for directories when some in-scope negated rule could
// match a path beneath them: such directories must still be descended even
// when the verdict says ignored, otherwise a negation like !build/keep.txt
// could never take effect.
func (p *Policy) ignoredByRules(absPath string, isDir bool) (ignored, reincludable bool) {
	rel, err := filepath.Rel(p.root, absPath)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return false, false
	}

	segs := strings.Split(filepath.ToSlash(rel), "/")
	dir := p.root
	for i := 0; i < len(segs); i++ {
		relToDir := path.Join(segs[i:]...)
		for _, rule := range p.store.RulesFor(dir) {
			if rule.Match(relToDir, isDir) {
				ignored = !rule.Negated
			}
			if isDir && rule.Negated && couldReincludeUnder(rule.Pattern, relToDir) {
				reincludable = true
			}
		}
		dir = filepath.Join(dir, segs[i])
	}
	return ignored, reincludable
}

// couldReincludeUnder conservatively reports whether a negated pattern might
// match some path under the directory relDir (relative to the rule's owner).
// False negatives would silently drop re-included files, so the test errs
// toward descending.
func couldReincludeUnder(pattern, relDir string) bool {
	p := strings.Trim(strings.TrimPrefix(pattern, "/"), "/")
	if p == "" {
		return false
	}
	if !strings.Contains(p, "/") {
		// Basename pattern: can match at any depth.
		return true
	}
	if strings.HasPrefix(p, relDir+"/") {
		return true
	}
	// A wildcard in the leading segments may expand across relDir.
	head := p
	if len(relDir) < len(head) {
		head = head[:len(relDir)]
	}
	return strings.ContainsAny(head, "*?")
}
