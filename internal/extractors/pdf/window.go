package pdf

import (
	"strings"
	"unicode"
)

// collapseWhitespace replaces every run of whitespace (including embedded
// line breaks) with a single space and trims the ends.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// window applies the extraction heuristic that biases PDF output toward the
// substantive description: if the trigger phrase occurs (case-insensitive),
// keep windowChars characters starting at the match; otherwise keep the
// first maxWords words. The input must already be whitespace-collapsed.
func window(text, phrase string, windowChars, maxWords int) string {
	if idx := indexFold(text, phrase); idx >= 0 {
		runes := []rune(text)
		end := idx + windowChars
		if end > len(runes) {
			end = len(runes)
		}
		return string(runes[idx:end])
	}
	return firstWords(text, maxWords)
}

// firstWords returns at most n whitespace-separated words of text.
func firstWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// indexFold returns the rune index of the first case-insensitive occurrence
// of phrase in text, or -1. Folding per rune keeps offsets aligned, which
// strings.ToLower does not guarantee for the whole string.
func indexFold(text, phrase string) int {
	if phrase == "" {
		return -1
	}
	haystack := foldRunes(text)
	needle := foldRunes(phrase)
	if len(needle) > len(haystack) {
		return -1
	}

	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func foldRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}
