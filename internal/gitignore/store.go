package gitignore

import (
	"os"
	"path/filepath"
	"strings"

	"treecat/internal/utils"
)

// Rule is one parsed line from an ignore file. Rules are immutable once
// parsed and keep the order they appeared in.
type Rule struct {
	Pattern string
	Negated bool

	match Matcher
}

// Match reports whether rel (slash-separated, relative to the directory that
// owns the rule) matches this rule's pattern.
func (r Rule) Match(rel string, isDir bool) bool {
	return r.match(rel, isDir)
}

// ParseRules compiles gitignore-style content into an ordered rule list.
// Blank lines and "#" comments are dropped; a leading "!" becomes the
// Negated flag.
func ParseRules(content string) []Rule {
	var rules []Rule
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		negated := strings.HasPrefix(line, "!")
		pattern := strings.TrimPrefix(line, "!")
		if pattern == "" {
			continue
		}
		rules = append(rules, Rule{
			Pattern: pattern,
			Negated: negated,
			match:   Compile(pattern),
		})
	}
	return rules
}

// Store holds ignore rules keyed by the absolute path of the directory that
// defines them. It is populated lazily as a traversal descends and is owned
// by a single run: entries are never evicted, and concurrent runs should each
// use their own Store.
type Store struct {
	rules  map[string][]Rule
	loaded map[string]bool
	log    utils.Logger
}

// NewStore creates an empty Store.
func NewStore(log utils.Logger) *Store {
	if log == nil {
		log = utils.NoopLogger{}
	}
	return &Store{
		rules:  make(map[string][]Rule),
		loaded: make(map[string]bool),
		log:    log,
	}
}

// Load reads dir's .gitignore, if present, and records its rules under dir.
// It is idempotent: each directory is read at most once per Store lifetime.
// A missing or unreadable .gitignore simply means no rules.
func (s *Store) Load(dir string) {
	if s.loaded[dir] {
		return
	}
	s.loaded[dir] = true

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return
	}
	rules := ParseRules(string(data))
	if len(rules) > 0 {
		s.rules[dir] = rules
		s.log.Debug("gitignore: loaded %d rule(s) from %s", len(rules), dir)
	}
}

// RulesFor returns the ordered rules defined in dir, or nil if none were
// loaded for it.
func (s *Store) RulesFor(dir string) []Rule {
	return s.rules[dir]
}
