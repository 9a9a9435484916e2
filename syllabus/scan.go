package syllabus

import (
	"regexp"
	"strings"
)

var (
	lineBreak      = regexp.MustCompile(`\r\n|[\n\r\f\v]`)
	topicSeparator = regexp.MustCompile(`[.,](?:\s+|$)`)
	newlines       = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
)

// splitLines splits text at line boundaries. A trailing line break does not
// produce an empty last line.
func splitLines(text string) []string {
	lines := lineBreak.Split(text, -1)
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// captureUntil returns the text between the first occurrence of label and the
// first occurrence of sentinel after it. An empty sentinel captures to the end
// of text. Both markers must be present for a capture.
func captureUntil(text, label, sentinel string) (string, bool) {
	start := strings.Index(text, label)
	if start < 0 {
		return "", false
	}
	rest := text[start+len(label):]
	if sentinel == "" {
		return rest, true
	}
	end := strings.Index(rest, sentinel)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// collapseLines trims s and turns every line break into a single space.
func collapseLines(s string) string {
	return newlines.Replace(strings.TrimSpace(s))
}

// splitTopics splits s at '.' or ',' followed by whitespace or end of text.
func splitTopics(s string) []string {
	out := []string{}
	for _, part := range topicSeparator.Split(s, -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// splitTrim splits s on sep, trims every piece and drops empty ones.
func splitTrim(s, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
