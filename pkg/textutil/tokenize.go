// Package textutil provides sentence and word segmentation for prose analysis.
package textutil

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"
)

// Sentences splits text into sentences using Unicode UAX #29 segmentation.
// Trailing whitespace is trimmed from each sentence and whitespace-only
// segments are dropped, so an empty or blank input yields no sentences.
func Sentences(text string) []string {
	var result []string
	tokens := sentences.FromString(text)
	for tokens.Next() {
		s := strings.TrimSpace(tokens.Value())
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}

// Words splits text into word tokens using UAX #29 segmentation, keeping
// only tokens that contain at least one letter or digit. Punctuation and
// whitespace segments are dropped.
func Words(text string) []string {
	var result []string
	tokens := words.FromString(text)
	for tokens.Next() {
		w := tokens.Value()
		if containsAlphanumeric(w) {
			result = append(result, w)
		}
	}
	return result
}

func containsAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
