package tui

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// readClipboard returns the system clipboard as plain text.
func readClipboard() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// cleanPaste reduces clipboard content to text a box can hold: RTF and HTML
// markup is stripped, line endings become '\n' and tabs become spaces.
func cleanPaste(text string) string {
	switch {
	case isRTF(text):
		text = stripRTF(text)
	case isHTML(text):
		text = stripHTML(text)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t':
			b.WriteRune(' ')
		case r == '\n' || r >= 32:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isRTF(text string) bool {
	return strings.HasPrefix(text, "{\\rtf")
}

func isHTML(text string) bool {
	t := strings.TrimSpace(text)
	return strings.HasPrefix(t, "<") &&
		(strings.Contains(t, "<html") || strings.Contains(t, "<body") || strings.Contains(t, "<div") || strings.Contains(t, "<p"))
}

// rtfDestinations open groups whose contents are never document text.
var rtfDestinations = []string{`\*`, `\fonttbl`, `\colortbl`, `\stylesheet`, `\info`}

// stripRTF drops braces, destination groups, control words and their
// delimiting space, keeping escaped literals and turning \par and \line
// into newlines.
func stripRTF(text string) string {
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '{' && isDestination(runes[i+1:]):
			i = groupEnd(runes, i)
			continue
		case r == '{' || r == '}':
			continue
		case r != '\\':
			if r != '\n' && r != '\r' {
				b.WriteRune(r)
			}
			continue
		}
		if i+1 >= len(runes) {
			break
		}
		next := runes[i+1]
		if next == '\\' || next == '{' || next == '}' {
			b.WriteRune(next)
			i++
			continue
		}
		if !isLetter(next) {
			i++
			continue
		}
		start := i + 1
		for i+1 < len(runes) && isLetter(runes[i+1]) {
			i++
		}
		word := string(runes[start : i+1])
		for i+1 < len(runes) && (runes[i+1] == '-' || runes[i+1] >= '0' && runes[i+1] <= '9') {
			i++
		}
		if i+1 < len(runes) && runes[i+1] == ' ' {
			i++
		}
		if word == "par" || word == "line" {
			b.WriteRune('\n')
		}
	}
	return strings.Trim(b.String(), "\n")
}

// isDestination reports whether rest, the text after an opening brace,
// starts with a destination control word.
func isDestination(rest []rune) bool {
	for _, d := range rtfDestinations {
		n := len(d)
		if len(rest) < n || string(rest[:n]) != d {
			continue
		}
		if d == `\*` || len(rest) == n || !isLetter(rest[n]) {
			return true
		}
	}
	return false
}

// groupEnd returns the index of the brace closing the group opened at
// start, or the last index when the group is unterminated.
func groupEnd(runes []rune, start int) int {
	depth := 0
	for i := start; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(runes) - 1
}

func stripHTML(html string) string {
	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
		"&quot;", "\"",
		"&#39;", "'",
		"&nbsp;", " ",
	).Replace(strings.TrimSpace(b.String()))
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
