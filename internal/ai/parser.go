package ai

import (
	"regexp"
	"strings"
)

// fencedBlockRe matches fenced code blocks for the fallback parse.
var fencedBlockRe = regexp.MustCompile("(?s)```(?:html|css|javascript|js|json)?\n(.*?)```")

// ParseFiles extracts a path -> content mapping from raw LLM output. The
// model is instructed to emit "FILE: <path>" headers followed by fenced code
// blocks, but output does not always follow instructions, so parsing runs in
// two stages:
//
//  1. A line-oriented scan of FILE: markers and code fences. Fence lines
//     toggle block state and are never part of content; lines inside a block
//     are buffered verbatim for the current file.
//  2. If that yields nothing, all fenced blocks are extracted positionally
//     and the first three assigned to index.html, style.css and script.js.
//     This is a heuristic guess that assumes the canonical 3-file vanilla
//     layout; for any other manifest missing its FILE: markers it will
//     mis-assign content. Known limitation.
//
// An empty result means parsing failed; callers report that as an error.
func ParseFiles(raw string) map[string]string {
	files := make(map[string]string)

	var currentFile string
	var content []string
	inCodeBlock := false

	flush := func() {
		if currentFile != "" && len(content) > 0 {
			files[currentFile] = strings.TrimSpace(strings.Join(content, "\n"))
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.Contains(line, "FILE:"):
			flush()
			name := strings.SplitN(line, "FILE:", 2)[1]
			// Strip markdown backticks and surrounding whitespace.
			currentFile = strings.TrimSpace(strings.ReplaceAll(name, "`", ""))
			content = nil
			inCodeBlock = false

		case strings.HasPrefix(strings.TrimSpace(line), "```"):
			// Opening and closing fence lines are not content.
			inCodeBlock = !inCodeBlock

		case inCodeBlock && currentFile != "":
			content = append(content, line)
		}
	}
	flush()

	if len(files) == 0 {
		return parseFallback(raw)
	}
	return files
}

// parseFallback assigns the first three fenced blocks, in order, to the
// standard vanilla file names. Fewer than three blocks means failure.
func parseFallback(raw string) map[string]string {
	matches := fencedBlockRe.FindAllStringSubmatch(raw, -1)
	if len(matches) < 3 {
		return map[string]string{}
	}
	return map[string]string{
		"index.html": strings.TrimSpace(matches[0][1]),
		"style.css":  strings.TrimSpace(matches[1][1]),
		"script.js":  strings.TrimSpace(matches[2][1]),
	}
}
