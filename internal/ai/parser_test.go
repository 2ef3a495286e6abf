package ai

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emitDocument builds a synthetic LLM response in the instructed format.
func emitDocument(files map[string]string) string {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var b strings.Builder
	for _, p := range paths {
		fmt.Fprintf(&b, "FILE: %s\n```\n%s\n```\n\n", p, files[p])
	}
	return b.String()
}

func TestParseFilesRoundTrip(t *testing.T) {
	fileSet := map[string]string{
		"index.html":             "<!DOCTYPE html>\n<html>\n  <body>hello</body>\n</html>",
		"css/style.css":          "body {\n    margin: 0;\n}",
		"js/script.js":           "console.log('loaded');",
		"backend/server.js":      "const express = require('express');",
		"backend/models/User.js": "const mongoose = require('mongoose');",
	}

	got := ParseFiles(emitDocument(fileSet))
	assert.Equal(t, fileSet, got)
}

func TestParseFilesMarkedUpOutput(t *testing.T) {
	raw := strings.Join([]string{
		"Here is your website:",
		"",
		"FILE: `index.html`",
		"```html",
		"<h1>Title</h1>",
		"```",
		"Some commentary between files that must be ignored.",
		"FILE: style.css",
		"```css",
		"h1 { color: red; }",
		"```",
	}, "\n")

	got := ParseFiles(raw)
	require.Len(t, got, 2)
	// Backticks around the path are stripped.
	assert.Equal(t, "<h1>Title</h1>", got["index.html"])
	assert.Equal(t, "h1 { color: red; }", got["style.css"])
}

func TestParseFilesPreservesInternalWhitespace(t *testing.T) {
	raw := "FILE: script.js\n```javascript\nfunction f() {\n\n    return 1;\n}\n```\n"
	got := ParseFiles(raw)
	assert.Equal(t, "function f() {\n\n    return 1;\n}", got["script.js"])
}

func TestParseFilesLastFileFlushedWithoutClosingFence(t *testing.T) {
	// Truncated output: the final fence is missing but buffered content must
	// still be flushed at end of input.
	raw := "FILE: index.html\n```html\n<p>truncated"
	got := ParseFiles(raw)
	assert.Equal(t, "<p>truncated", got["index.html"])
}

func TestParseFilesContentOutsideFencesIgnored(t *testing.T) {
	raw := strings.Join([]string{
		"FILE: index.html",
		"this line is outside any code block",
		"```html",
		"<p>inside</p>",
		"```",
	}, "\n")
	got := ParseFiles(raw)
	assert.Equal(t, "<p>inside</p>", got["index.html"])
}

func TestParseFilesFallbackThreeBlocks(t *testing.T) {
	raw := strings.Join([]string{
		"Sure! Here's the site:",
		"```html",
		"<h1>Home</h1>",
		"```",
		"```css",
		"h1 { font-size: 2rem; }",
		"```",
		"```javascript",
		"document.title = 'Home';",
		"```",
	}, "\n")

	got := ParseFiles(raw)
	require.Len(t, got, 3)
	assert.Equal(t, "<h1>Home</h1>", got["index.html"])
	assert.Equal(t, "h1 { font-size: 2rem; }", got["style.css"])
	assert.Equal(t, "document.title = 'Home';", got["script.js"])
}

func TestParseFilesFallbackDiscardsExtraBlocks(t *testing.T) {
	raw := "```html\na\n```\n```css\nb\n```\n```js\nc\n```\n```json\nd\n```\n"
	got := ParseFiles(raw)
	require.Len(t, got, 3)
	assert.NotContains(t, got, "package.json")
}

func TestParseFilesFailure(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty input", ""},
		{"prose only", "I could not generate the website you asked for."},
		{"two blocks only", "```html\na\n```\n```css\nb\n```\n"},
		{"marker with no content", "FILE: index.html\nno code block follows"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ParseFiles(tt.raw))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	assert.False(t, shouldRetry(nil))
	assert.False(t, shouldRetry(fmt.Errorf("invalid api key")))
	assert.True(t, shouldRetry(fmt.Errorf("429 rate limit exceeded")))
	assert.True(t, shouldRetry(fmt.Errorf("Post \"x\": context deadline exceeded")))
	assert.True(t, shouldRetry(fmt.Errorf("502 Bad Gateway")))
}
