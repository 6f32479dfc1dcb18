// Package gitignore implements a small interpreter for .gitignore-style
// ignore rules: a pattern compiler and a per-directory rule store.
//
// The dialect is deliberately narrower than git's: no character classes
// ("[...]"), no backslash escapes, and a pattern that matches a directory
// implicitly matches everything beneath it. Patterns that fail to compile
// match nothing rather than aborting the caller.
package gitignore

import (
	"regexp"
	"strings"
)

// Matcher tests a slash-separated path, relative to the directory that owns
// the rule, against one compiled pattern. isDir reports whether the candidate
// is a directory.
type Matcher func(relPath string, isDir bool) bool

func neverMatch(string, bool) bool { return false }

// Compile translates one ignore pattern into a Matcher.
//
// Recognized syntax:
//   - a trailing "/" restricts the exact match to directories
//   - "**" matches across any number of path segments
//   - "*" matches within a single segment
//   - "?" matches one character within a segment
//   - a leading "/" anchors the pattern to the owning directory; without it
//     the pattern may match at any depth below
//
// The matcher also matches any path beneath a matched directory, so an
// ignored directory's entire subtree is ignored. A malformed pattern yields a
// matcher that matches nothing.
func Compile(pattern string) Matcher {
	dirOnly := strings.HasSuffix(pattern, "/")
	p := strings.TrimSuffix(pattern, "/")
	anchored := strings.HasPrefix(p, "/")
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return neverMatch
	}

	core := translate(p)

	prefix := "^(.*/)?"
	if anchored {
		prefix = "^"
	}
	exact, errExact := regexp.Compile(prefix + core + "$")
	subtree, errSub := regexp.Compile(prefix + core + "/.+$")
	if errExact != nil || errSub != nil {
		return neverMatch
	}

	return func(rel string, isDir bool) bool {
		// A deeper path under a matched directory always matches, even for
		// directory-only patterns: the file build/x lives under build/.
		if subtree.MatchString(rel) {
			return true
		}
		if exact.MatchString(rel) {
			return !dirOnly || isDir
		}
		return false
	}
}

// translate converts the literal pattern text into a regular expression body,
// escaping regex metacharacters before reinterpreting the wildcard tokens.
func translate(p string) string {
	var b strings.Builder
	for i := 0; i < len(p); {
		switch {
		case strings.HasPrefix(p[i:], "**"):
			b.WriteString(".*")
			i += 2
		case p[i] == '*':
			b.WriteString("[^/]*")
			i++
		case p[i] == '?':
			b.WriteString("[^/]")
			i++
		default:
			b.WriteString(regexp.QuoteMeta(string(p[i])))
			i++
		}
	}
	return b.String()
}
