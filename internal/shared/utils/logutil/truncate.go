package logutil

import "unicode/utf8"

// TruncateForLog shortens s to at most maxRunes runes, appending "..." when
// anything was cut. Used for free text such as user input and model output.
func TruncateForLog(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return "..."
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxRunes]) + "..."
}
