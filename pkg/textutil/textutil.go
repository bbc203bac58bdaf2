// Package textutil bounds and aligns text for fixed-width console columns.
//
// Lengths are measured in runes. A rune is never split, but combining
// sequences and wide characters are not treated specially.
package textutil

import (
	"strings"
	"unicode/utf8"
)

const (
	// Ellipsis marks a value that was cut by Shorten.
	Ellipsis = "..."
	// MinShortenLength is the smallest maxLength Shorten honors; smaller values are clamped.
	MinShortenLength = len(Ellipsis)
)

// Shorten returns text unchanged when it fits in maxLength runes. Otherwise
// it keeps the first maxLength-3 runes and appends Ellipsis, so the result
// is exactly maxLength runes long.
func Shorten(text string, maxLength int) string {
	if maxLength < MinShortenLength {
		maxLength = MinShortenLength
	}
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}

	keep := maxLength - MinShortenLength
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if keep == 0 {
			break
		}
		b.WriteRune(r)
		keep--
	}
	b.WriteString(Ellipsis)
	return b.String()
}

// PadRight left-justifies text in a field of width runes, filling with
// spaces. Text already at least width runes long is returned as is.
func PadRight(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	return text + strings.Repeat(" ", width-n)
}

// Fit shortens text to width and then pads it to exactly width runes.
func Fit(text string, width int) string {
	return PadRight(Shorten(text, width), width)
}
