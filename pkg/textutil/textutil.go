// Package textutil provides the small text-shaping helpers used by help
// rendering.
package textutil

import "strings"

// Wrap breaks text into lines of at most width characters, splitting on word
// boundaries. A single word longer than width gets its own line.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	var (
		lines   []string
		current []string
		length  int
	)
	for _, word := range words {
		if length+len(word)+1 > width && len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = []string{word}
			length = len(word)
			continue
		}
		current = append(current, word)
		if length == 0 {
			length = len(word)
		} else {
			length += len(word) + 1
		}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// Lines splits text on embedded line breaks. Returns nil for empty text.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
