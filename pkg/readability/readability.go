// Package readability computes standard readability indices and a reading
// time estimate from raw text.
package readability

import (
	"math"
	"strings"
	"unicode"

	"github.com/writewise/writewise/pkg/textutil"
)

// MillisecondsPerChar is the reading speed constant used for the reading
// time estimate.
const MillisecondsPerChar = 14.69

// Metrics contains the readability measurements for a text.
type Metrics struct {
	FleschReadingEase         float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade        float64 `json:"flesch_kincaid_grade"`
	GunningFog                float64 `json:"gunning_fog"`
	SMOGIndex                 float64 `json:"smog_index"`
	AutomatedReadabilityIndex float64 `json:"automated_readability_index"`
	ColemanLiauIndex          float64 `json:"coleman_liau_index"`
	DifficultWords            int     `json:"difficult_words"`
	ReadingTimeMinutes        float64 `json:"reading_time_minutes"`
}

// stats holds the raw counts every formula is derived from.
type stats struct {
	words          int
	sentences      int
	syllables      int
	letters        int
	difficultWords int
}

// Compute calculates all readability metrics for the given text. Empty or
// degenerate input yields zero metrics rather than an error.
func Compute(text string) Metrics {
	s := gather(text)

	m := Metrics{
		DifficultWords:     s.difficultWords,
		ReadingTimeMinutes: readingTime(text),
	}

	if s.words == 0 || s.sentences == 0 {
		return m
	}

	awl := float64(s.words) / float64(s.sentences)
	asw := float64(s.syllables) / float64(s.words)

	m.FleschReadingEase = 206.835 - 1.015*awl - 84.6*asw
	m.FleschKincaidGrade = 0.39*awl + 11.8*asw - 15.59
	m.GunningFog = 0.4 * (awl + 100*float64(s.difficultWords)/float64(s.words))
	m.SMOGIndex = 1.043*math.Sqrt(float64(s.difficultWords)*(30.0/float64(s.sentences))) + 3.1291
	m.AutomatedReadabilityIndex = 4.71*(float64(s.letters)/float64(s.words)) + 0.5*awl - 21.43
	m.ColemanLiauIndex = 0.0588*(float64(s.letters)/float64(s.words)*100) -
		0.296*(float64(s.sentences)/float64(s.words)*100) - 15.8

	return m
}

func gather(text string) stats {
	var s stats
	s.sentences = len(textutil.Sentences(text))

	for _, word := range textutil.Words(text) {
		s.words++
		syl := SyllableCount(word)
		s.syllables += syl
		if syl >= 3 {
			s.difficultWords++
		}
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				s.letters++
			}
		}
	}
	return s
}

// SyllableCount estimates the number of syllables in a word by counting
// vowel groups, discounting a trailing silent 'e' and crediting a
// consonant+"le" ending. Every word counts as at least one syllable.
func SyllableCount(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}))
	if word == "" {
		return 0
	}

	groups := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			groups++
		}
		prevVowel = isVowel
	}

	if strings.HasSuffix(word, "e") {
		groups--
	}
	if strings.HasSuffix(word, "le") && len(word) > 2 &&
		!strings.ContainsRune("aeiouy", rune(word[len(word)-3])) {
		groups++
	}

	if groups < 1 {
		groups = 1
	}
	return groups
}

// readingTime estimates reading time in minutes at MillisecondsPerChar
// per character of the original text.
func readingTime(text string) float64 {
	return float64(len([]rune(text))) * MillisecondsPerChar / 1000.0 / 60.0
}
