package emit

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treecat/internal/language"
	"treecat/internal/walker"
)

var testModTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)

func record(path, content string) walker.FileRecord {
	return walker.FileRecord{
		Path:    path,
		Size:    int64(len(content)),
		ModTime: testModTime,
		Content: []byte(content),
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"list", "normal", "verbose", "minify"} {
		f, err := ParseFormat(valid)
		require.NoError(t, err)
		assert.Equal(t, Format(valid), f)
	}
	_, err := ParseFormat("json")
	assert.Error(t, err)
}

func TestFormatReadsContent(t *testing.T) {
	assert.False(t, FormatList.ReadsContent())
	assert.True(t, FormatNormal.ReadsContent())
	assert.True(t, FormatVerbose.ReadsContent())
	assert.True(t, FormatMinify.ReadsContent())
}

func TestRenderList(t *testing.T) {
	r := NewRenderer(FormatList, nil)
	assert.Equal(t, "src/main.go\n", r.Render(record("src/main.go", "ignored")))
}

func TestRenderNormal(t *testing.T) {
	r := NewRenderer(FormatNormal, nil)
	got := r.Render(record("src/main.go", "package main\n"))

	assert.True(t, strings.HasPrefix(got, banner+"\nFILE: src/main.go\n"+banner+"\n"))
	assert.Contains(t, got, "package main")
	assert.True(t, strings.HasSuffix(got, "\n\n"))
}

func TestRenderVerboseMetadata(t *testing.T) {
	content := "package main\n\nimport (\n\t\"fmt\"\n\t\"os\"\n)\n"
	r := NewRenderer(FormatVerbose, language.Default())
	got := r.Render(record("src/main.go", content))

	assert.Contains(t, got, "Size: 38 B\n")
	assert.Contains(t, got, "Language: Go\n")
	assert.Contains(t, got, "Type: programming\n")
	assert.Contains(t, got, "Lines: 6\n")
	assert.Contains(t, got, "Imports: fmt, os\n")
	assert.Contains(t, got, "Modified: 2026-03-14 09:26:53\n")
}

func TestRenderVerboseUnknownLanguage(t *testing.T) {
	r := NewRenderer(FormatVerbose, language.Default())
	got := r.Render(record("data.xyzzy", "abc\n"))

	assert.NotContains(t, got, "Language:")
	assert.NotContains(t, got, "Type:")
	assert.Contains(t, got, "Lines: 1\n")
}

func TestRenderMinify(t *testing.T) {
	r := NewRenderer(FormatMinify, nil)
	got := r.Render(record("a.txt", "a\n\n\n\nb   \t  \nc\n"))

	assert.Equal(t, "--- a.txt ---\na\n\nb\nc\n\n", got)
}

func TestRenderTruncated(t *testing.T) {
	rec := walker.FileRecord{Path: "huge.bin.txt", Size: walker.MaxContentBytes + 1, ModTime: testModTime, Truncated: true}
	for _, f := range []Format{FormatNormal, FormatVerbose, FormatMinify} {
		got := NewRenderer(f, nil).Render(rec)
		assert.Contains(t, got, truncationNotice, "format %s", f)
	}
}

func TestRenderInlineError(t *testing.T) {
	rec := walker.FileRecord{Path: "broken.txt", Err: errors.New("permission denied")}
	for _, f := range []Format{FormatList, FormatNormal, FormatVerbose, FormatMinify} {
		got := NewRenderer(f, nil).Render(rec)
		assert.Contains(t, got, "broken.txt", "format %s", f)
		assert.Contains(t, got, "permission denied", "format %s", f)
	}
}

func TestMinify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"contract sample", "a\n\n\n\nb   \t  \nc\n", "a\n\nb\nc"},
		{"already minimal", "a\nb", "a\nb"},
		{"interior runs collapse", "x  =   1\ty", "x = 1 y"},
		{"single blank preserved", "a\n\nb", "a\n\nb"},
		{"leading and trailing trimmed", "\n\n  a  \n\n\n", "a"},
		{"empty", "", ""},
		{"only whitespace", " \t \n\t\n ", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Minify(tc.in))
		})
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1 << 20, "1.00 MB"},
		{5 * (1 << 30), "5.00 GB"},
		{3 * (1 << 40), "3.00 TB"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, HumanSize(tc.n))
	}
}

func TestLineCount(t *testing.T) {
	assert.Equal(t, 0, lineCount(nil))
	assert.Equal(t, 1, lineCount([]byte("no newline")))
	assert.Equal(t, 1, lineCount([]byte("one\n")))
	assert.Equal(t, 3, lineCount([]byte("a\nb\nc\n")))
	assert.Equal(t, 3, lineCount([]byte("a\nb\nc")))
}
