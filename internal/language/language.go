// Package language provides best-effort language and import detection for
// the verbose output's metadata block. Detection is heuristic metadata, not
// part of the selection contract: an unknown file is still emitted.
package language

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yml
var defaultDefinitions []byte

// Info holds details about one language, mirroring the definition file.
type Info struct {
	Type       string   `yaml:"type"` // programming, data, markup, prose
	Extensions []string `yaml:"extensions"`
	Filenames  []string `yaml:"filenames"`
}

// Index maps paths to languages via extension and exact-filename lookups.
type Index struct {
	langs  map[string]Info
	byExt  map[string]string
	byName map[string]string
}

// Default returns an Index built from the embedded definitions.
func Default() *Index {
	ix, err := parse(defaultDefinitions)
	if err != nil {
		// The embedded file is part of the build; a parse failure here is a
		// packaging bug, not a runtime condition.
		panic(fmt.Sprintf("language: embedded definitions invalid: %v", err))
	}
	return ix
}

// Load builds an Index from a user-supplied YAML definition file.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("language: reading %s: %w", path, err)
	}
	ix, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("language: parsing %s: %w", path, err)
	}
	return ix, nil
}

func parse(data []byte) (*Index, error) {
	var langs map[string]Info
	if err := yaml.Unmarshal(data, &langs); err != nil {
		return nil, err
	}

	ix := &Index{
		langs:  langs,
		byExt:  make(map[string]string),
		byName: make(map[string]string),
	}
	for name, info := range langs {
		for _, ext := range info.Extensions {
			ext = strings.ToLower(ext)
			if _, taken := ix.byExt[ext]; !taken {
				ix.byExt[ext] = name
			}
		}
		for _, fname := range info.Filenames {
			fname = strings.ToLower(fname)
			if _, taken := ix.byName[fname]; !taken {
				ix.byName[fname] = name
			}
		}
	}
	return ix, nil
}

// Detect returns the language name and classification for a path. An exact
// filename match wins over the extension.
func (ix *Index) Detect(path string) (name, kind string, ok bool) {
	if ix == nil {
		return "", "", false
	}
	base := strings.ToLower(filepath.Base(path))
	if lang, found := ix.byName[base]; found {
		return lang, ix.langs[lang].Type, true
	}
	if ext := strings.ToLower(filepath.Ext(base)); ext != "" {
		if lang, found := ix.byExt[ext]; found {
			return lang, ix.langs[lang].Type, true
		}
	}
	return "", "", false
}
