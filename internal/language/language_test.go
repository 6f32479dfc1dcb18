package language

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectByExtension(t *testing.T) {
	ix := Default()

	tests := []struct {
		path string
		lang string
		kind string
	}{
		{"main.go", "Go", "programming"},
		{"src/app.py", "Python", "programming"},
		{"web/index.html", "HTML", "markup"},
		{"conf/app.yaml", "YAML", "data"},
		{"README.md", "Markdown", "prose"},
		{"Parser.CPP", "C++", "programming"},
	}
	for _, tc := range tests {
		lang, kind, ok := ix.Detect(tc.path)
		require.True(t, ok, "path %q", tc.path)
		assert.Equal(t, tc.lang, lang, "path %q", tc.path)
		assert.Equal(t, tc.kind, kind, "path %q", tc.path)
	}
}

func TestDetectByFilename(t *testing.T) {
	ix := Default()

	lang, kind, ok := ix.Detect("project/Makefile")
	require.True(t, ok)
	assert.Equal(t, "Makefile", lang)
	assert.Equal(t, "programming", kind)

	lang, _, ok = ix.Detect("go.mod")
	require.True(t, ok)
	assert.Equal(t, "Go", lang)

	lang, _, ok = ix.Detect(".gitignore")
	require.True(t, ok)
	assert.Equal(t, "Git Config", lang)
}

func TestDetectFilenameWinsOverExtension(t *testing.T) {
	ix := Default()

	// CMakeLists.txt would resolve to Text by extension; the exact filename
	// match takes precedence.
	lang, _, ok := ix.Detect("lib/CMakeLists.txt")
	require.True(t, ok)
	assert.Equal(t, "CMake", lang)
}

func TestDetectUnknown(t *testing.T) {
	ix := Default()

	_, _, ok := ix.Detect("binary.xyzzy")
	assert.False(t, ok)

	_, _, ok = ix.Detect("no_extension")
	assert.False(t, ok)
}

func TestDetectNilIndex(t *testing.T) {
	var ix *Index
	_, _, ok := ix.Detect("main.go")
	assert.False(t, ok)
}

func TestLoadOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "langs.yml")
	require.NoError(t, os.WriteFile(path, []byte("Zig:\n  type: programming\n  extensions: [\".zig\"]\n"), 0o644))

	ix, err := Load(path)
	require.NoError(t, err)

	lang, kind, ok := ix.Detect("build.zig")
	require.True(t, ok)
	assert.Equal(t, "Zig", lang)
	assert.Equal(t, "programming", kind)

	// A user file replaces the built-in definitions entirely.
	_, _, ok = ix.Detect("main.go")
	assert.False(t, ok)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - not a mapping\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestImportsGoBlock(t *testing.T) {
	content := `package main

import (
	"fmt"
	"os"
	stdlog "log"
)

import "strings"
`
	got := Imports("Go", content)
	assert.Equal(t, []string{"fmt", "os", "log", "strings"}, got)
}

func TestImportsPython(t *testing.T) {
	content := `import os
import sys
from pathlib import Path
from os import getcwd
`
	got := Imports("Python", content)
	// Duplicates collapse; first occurrence keeps its position.
	assert.Equal(t, []string{"os", "sys", "pathlib"}, got)
}

func TestImportsJavaScript(t *testing.T) {
	content := `import { readFile } from 'node:fs';
const path = require("path");
`
	got := Imports("JavaScript", content)
	assert.Equal(t, []string{"node:fs", "path"}, got)
}

func TestImportsUnknownLanguage(t *testing.T) {
	assert.Nil(t, Imports("Brainfuck", "+++"))
}
