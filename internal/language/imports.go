package language

import (
	"regexp"
	"strings"
)

// Per-language import line patterns. Single-line heuristics only; Go's
// block imports get dedicated handling below.
var importPatterns = map[string][]*regexp.Regexp{
	"Go": {
		regexp.MustCompile(`^\s*import\s+(?:\w+\s+)?"([^"]+)"`),
	},
	"Python": {
		regexp.MustCompile(`^\s*import\s+([\w.]+)`),
		regexp.MustCompile(`^\s*from\s+([\w.]+)\s+import\b`),
	},
	"JavaScript": {
		regexp.MustCompile(`^\s*import\b.*?from\s+['"]([^'"]+)['"]`),
		regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`),
	},
	"TypeScript": {
		regexp.MustCompile(`^\s*import\b.*?from\s+['"]([^'"]+)['"]`),
		regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`),
	},
	"Ruby": {
		regexp.MustCompile(`^\s*require(?:_relative)?\s+['"]([^'"]+)['"]`),
	},
	"Rust": {
		regexp.MustCompile(`^\s*use\s+([\w:]+)`),
	},
	"Java": {
		regexp.MustCompile(`^\s*import\s+(?:static\s+)?([\w.]+)\s*;`),
	},
	"Kotlin": {
		regexp.MustCompile(`^\s*import\s+([\w.]+)`),
	},
	"C": {
		regexp.MustCompile(`^\s*#include\s+[<"]([^>"]+)[>"]`),
	},
	"C++": {
		regexp.MustCompile(`^\s*#include\s+[<"]([^>"]+)[>"]`),
	},
	"PHP": {
		regexp.MustCompile(`^\s*use\s+([\w\\]+)\s*;`),
	},
}

// goImportBlock matches lines inside a parenthesized Go import block.
var goImportQuoted = regexp.MustCompile(`^\s*(?:\w+\s+)?"([^"]+)"\s*$`)

// Imports extracts the imported module names from content for the given
// detected language. Best-effort: an empty result means nothing recognized.
func Imports(lang string, content string) []string {
	patterns := importPatterns[lang]
	if patterns == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(name string) {
		if name == "" {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	inGoBlock := false
	for _, line := range strings.Split(content, "\n") {
		if lang == "Go" {
			trimmed := strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(trimmed, "import ("):
				inGoBlock = true
				continue
			case inGoBlock && trimmed == ")":
				inGoBlock = false
				continue
			case inGoBlock:
				if m := goImportQuoted.FindStringSubmatch(line); m != nil {
					add(m[1])
				}
				continue
			}
		}
		for _, re := range patterns {
			if m := re.FindStringSubmatch(line); m != nil {
				add(m[1])
				break
			}
		}
	}
	return out
}
