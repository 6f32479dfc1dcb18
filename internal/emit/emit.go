// Package emit renders kept files into text fragments in one of the four
// output formats. A Renderer is selected once per run; fragments are
// concatenated by the caller into the final artifact.
package emit

import (
	"fmt"
	"strings"

	"treecat/internal/language"
	"treecat/internal/walker"
)

// Format selects how kept files are rendered.
type Format string

const (
	FormatList    Format = "list"    // paths only, no content reads
	FormatNormal  Format = "normal"  // banner, path, raw content
	FormatVerbose Format = "verbose" // normal plus a metadata block
	FormatMinify  Format = "minify"  // whitespace-minified content
)

// ParseFormat validates a format selector.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatList, FormatNormal, FormatVerbose, FormatMinify:
		return Format(s), nil
	}
	return "", fmt.Errorf("emit: unknown output format %q (want list, normal, verbose or minify)", s)
}

// ReadsContent reports whether the format needs file content at all.
func (f Format) ReadsContent() bool {
	return f != FormatList
}

const (
	banner           = "=================================================="
	minifySeparator  = "---"
	truncationNotice = "[Content omitted: file exceeds the 1 MiB limit]"
)

// Renderer renders FileRecords for one run.
type Renderer struct {
	format Format
	langs  *language.Index
}

// NewRenderer creates a Renderer. langs may be nil to disable language
// metadata in verbose output.
func NewRenderer(format Format, langs *language.Index) *Renderer {
	return &Renderer{format: format, langs: langs}
}

// Render returns the text fragment for one record. Records with Err render
// as an inline notice in every format so a failed entry is visible in the
// artifact without aborting the run.
func (r *Renderer) Render(rec walker.FileRecord) string {
	if rec.Err != nil {
		return fmt.Sprintf("[Error processing %s: %v]\n\n", rec.Path, rec.Err)
	}

	switch r.format {
	case FormatList:
		return rec.Path + "\n"
	case FormatNormal:
		return banner + "\n" +
			"FILE: " + rec.Path + "\n" +
			banner + "\n" +
			r.body(rec) + "\n\n"
	case FormatVerbose:
		return banner + "\n" +
			"FILE: " + rec.Path + "\n" +
			banner + "\n" +
			r.metadata(rec) +
			r.body(rec) + "\n\n"
	case FormatMinify:
		body := r.body(rec)
		if !rec.Truncated {
			body = Minify(body)
		}
		return minifySeparator + " " + rec.Path + " " + minifySeparator + "\n" +
			body + "\n\n"
	}
	return ""
}

func (r *Renderer) body(rec walker.FileRecord) string {
	if rec.Truncated {
		return truncationNotice
	}
	return strings.TrimRight(string(rec.Content), "\n")
}

// metadata renders the verbose block between the banner and the content.
func (r *Renderer) metadata(rec walker.FileRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Size: %s\n", HumanSize(rec.Size))

	lang, kind, known := "", "", false
	if r.langs != nil {
		lang, kind, known = r.langs.Detect(rec.Path)
	}
	if known {
		fmt.Fprintf(&b, "Language: %s\n", lang)
		fmt.Fprintf(&b, "Type: %s\n", kind)
	}
	if rec.Content != nil {
		fmt.Fprintf(&b, "Lines: %d\n", lineCount(rec.Content))
		if known {
			if imports := language.Imports(lang, string(rec.Content)); len(imports) > 0 {
				fmt.Fprintf(&b, "Imports: %s\n", strings.Join(imports, ", "))
			}
		}
	}
	fmt.Fprintf(&b, "Modified: %s\n", rec.ModTime.Format("2006-01-02 15:04:05"))
	b.WriteString("\n")
	return b.String()
}

func lineCount(content []byte) int {
	if len(content) == 0 {
		return 0
	}
	n := strings.Count(string(content), "\n")
	if content[len(content)-1] != '\n' {
		n++
	}
	return n
}

// HumanSize formats a byte count as B/KB/MB/GB/TB with two decimal places.
func HumanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	value := float64(n)
	for _, suffix := range []string{"KB", "MB", "GB", "TB"} {
		value /= unit
		if value < unit || suffix == "TB" {
			return fmt.Sprintf("%.2f %s", value, suffix)
		}
	}
	return fmt.Sprintf("%d B", n)
}
