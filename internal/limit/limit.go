// Package limit enforces the character budget of the text input.
//
// Characters are runes, matching what the user sees in the input box.
package limit

import "unicode/utf8"

// Remaining is how many characters may still be typed. It goes negative
// once text is over max.
func Remaining(text string, max int) int {
	return max - utf8.RuneCountInString(text)
}

// Exceeds reports whether text holds more than max characters.
func Exceeds(text string, max int) bool {
	return Remaining(text, max) < 0
}

// Clip returns the longest prefix of text that holds at most max characters.
// It scans bytes and never copies.
func Clip(text string, max int) string {
	if max <= 0 {
		return ""
	}
	n := 0
	for i := 0; i < len(text); i++ {
		if text[i]&0xC0 == 0x80 { // continuation byte
			continue
		}
		if n == max {
			return text[:i]
		}
		n++
	}
	return text
}
