package emit

import (
	"regexp"
	"strings"
)

var horizontalWS = regexp.MustCompile(`[ \t]+`)

// Minify compacts file content for the minify format: runs of horizontal
// whitespace collapse to a single space, per-line trailing whitespace is
// removed, runs of two or more blank lines collapse to exactly one, and the
// whole result is trimmed at both ends.
func Minify(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		line = horizontalWS.ReplaceAllString(line, " ")
		line = strings.TrimRight(line, " ")
		if line == "" {
			if prevBlank {
				continue
			}
			prevBlank = true
		} else {
			prevBlank = false
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
