package gitignore

import (
	"testing"
)

func TestCompileStarExtension(t *testing.T) {
	m := Compile("*.log")

	tests := []struct {
		path string
		want bool
	}{
		{"debug.log", true},
		{"error.log", true},
		{"app.txt", false},
		{"src/debug.log", true},
		{"deeply/nested/path/trace.log", true},
		{"log", false},
	}
	for _, tc := range tests {
		if got := m(tc.path, false); got != tc.want {
			t.Errorf("match(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestCompileExactFilename(t *testing.T) {
	m := Compile("Thumbs.db")

	if !m("Thumbs.db", false) {
		t.Error("should match Thumbs.db at the root")
	}
	if !m("subdir/Thumbs.db", false) {
		t.Error("should match in a subdirectory")
	}
	if m("thumbs.db", false) {
		t.Error("should be case sensitive")
	}
	if m("xThumbs.db", false) {
		t.Error("the dot must not act as a wildcard")
	}
}

func TestCompileDirectoryOnly(t *testing.T) {
	m := Compile("build/")

	if !m("build", true) {
		t.Error("should match the build directory")
	}
	if m("build", false) {
		t.Error("must not match a plain file named build")
	}
	if !m("build/out.txt", false) {
		t.Error("files under a matched directory are implicitly matched")
	}
	if !m("build/sub/deep.txt", false) {
		t.Error("the whole subtree is implicitly matched")
	}
	if !m("nested/build", true) {
		t.Error("unanchored pattern should match at any depth")
	}
}

func TestCompileAnchored(t *testing.T) {
	m := Compile("/docs")

	tests := []struct {
		path  string
		isDir bool
		want  bool
	}{
		{"docs", true, true},
		{"docs", false, true},
		{"docs/guide.md", false, true},
		{"src/docs", true, false},
		{"src/docs/guide.md", false, false},
	}
	for _, tc := range tests {
		if got := m(tc.path, tc.isDir); got != tc.want {
			t.Errorf("match(%q, isDir=%v) = %v, want %v", tc.path, tc.isDir, got, tc.want)
		}
	}
}

func TestCompileDoubleStar(t *testing.T) {
	m := Compile("doc/**")

	if !m("doc/a.txt", false) {
		t.Error("** should match one segment")
	}
	if !m("doc/a/b/c.txt", false) {
		t.Error("** should match across segments")
	}
	if m("other/a.txt", false) {
		t.Error("literal prefix must still match")
	}
}

func TestCompileQuestionMark(t *testing.T) {
	m := Compile("?.txt")

	if !m("a.txt", false) {
		t.Error("? should match a single character")
	}
	if m("ab.txt", false) {
		t.Error("? must not match two characters")
	}
	if m("a/b.txt", false) {
		t.Error("? must not match the path separator; a/b.txt basename is b.txt")
	}
	if !m("dir/a.txt", false) {
		t.Error("unanchored pattern should match the basename at depth")
	}
}

func TestCompileStarWithinSegment(t *testing.T) {
	m := Compile("temp*")

	if !m("temp", true) || !m("temporary", false) {
		t.Error("* should match within a segment")
	}
	if m("temp/x", true) && !m("temp", true) {
		t.Error("unexpected")
	}
	// temp/x matches only via the implicit subtree rule, not via *.
	if !m("temp/x", false) {
		t.Error("subtree under a matched directory should match")
	}
}

func TestCompileMetacharactersLiteral(t *testing.T) {
	m := Compile("file(1).txt")

	if !m("file(1).txt", false) {
		t.Error("parentheses should be literal")
	}
	if m("file1.txt", false) {
		t.Error("parentheses must not be dropped")
	}

	m = Compile("a+b.txt")
	if !m("a+b.txt", false) {
		t.Error("plus should be literal")
	}
	if m("aab.txt", false) {
		t.Error("plus must not act as a regex quantifier")
	}
}

func TestCompileSlashPatternUnanchored(t *testing.T) {
	// Only a LEADING slash anchors; an interior slash does not.
	m := Compile("a/b")

	if !m("a/b", false) {
		t.Error("should match at the root")
	}
	if !m("x/a/b", false) {
		t.Error("should match at depth without a leading slash")
	}
}

func TestCompileDegeneratePatterns(t *testing.T) {
	for _, pattern := range []string{"", "/"} {
		m := Compile(pattern)
		if m("anything", false) || m("anything", true) {
			t.Errorf("pattern %q should match nothing", pattern)
		}
	}
}
