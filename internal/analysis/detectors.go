package analysis

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/writewise/writewise/pkg/textutil"
)

// Passive voice is detected heuristically: a be-verb followed by a word
// ending in -ed, -en, or -wn (thrown, known, shown). Other irregular past
// participles are missed and adjectives like "is excited" are false
// positives; that tradeoff keeps the detector a plain pattern match.
var passivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\s+\w+en\b`),
	regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\s+\w+wn\b`),
}

// wordyPhrase maps a verbose phrase to its concise replacement.
type wordyPhrase struct {
	pattern     *regexp.Regexp
	replacement string
}

var wordyPhrases = []wordyPhrase{
	{regexp.MustCompile(`(?i)\bat this point in time\b`), "now"},
	{regexp.MustCompile(`(?i)\bdue to the fact that\b`), "because"},
	{regexp.MustCompile(`(?i)\bin order to\b`), "to"},
	{regexp.MustCompile(`(?i)\bfor the purpose of\b`), "to"},
	{regexp.MustCompile(`(?i)\bin the event that\b`), "if"},
	{regexp.MustCompile(`(?i)\bwith regard to\b`), "about"},
	{regexp.MustCompile(`(?i)\bin spite of the fact that\b`), "although"},
	{regexp.MustCompile(`(?i)\ba number of\b`), "many"},
	{regexp.MustCompile(`(?i)\bprior to\b`), "before"},
}

// maxSentenceWords is the word count above which a sentence is flagged
// as too long.
const maxSentenceWords = 30

// wordToken matches a single word for repeated-word detection.
var wordToken = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Doubled words that are usually intentional emphasis.
var allowedRepetitions = map[string]bool{
	"very": true,
	"far":  true,
	"long": true,
	"many": true,
}

// DetectStyle runs all style detectors over text and concatenates their
// findings in a fixed order: passive voice, wordiness, sentence length,
// repetition. Detectors are independent and may report overlapping spans.
func DetectStyle(text string) []StyleFinding {
	findings := DetectPassiveVoice(text)
	findings = append(findings, DetectWordyPhrases(text)...)
	findings = append(findings, DetectLongSentences(text)...)
	findings = append(findings, DetectRepeatedWords(text)...)
	return findings
}

// DetectPassiveVoice flags likely passive constructions.
func DetectPassiveVoice(text string) []StyleFinding {
	var findings []StyleFinding
	for _, pattern := range passivePatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			findings = append(findings, StyleFinding{
				Message:    "Consider using active voice for more direct writing",
				Category:   CategoryPassiveVoice,
				Offset:     loc[0],
				Length:     loc[1] - loc[0],
				Original:   text[loc[0]:loc[1]],
				Suggestion: "Consider rewriting in active voice",
			})
		}
	}
	return findings
}

// DetectWordyPhrases flags verbose phrases that have a shorter equivalent.
func DetectWordyPhrases(text string) []StyleFinding {
	var findings []StyleFinding
	for _, wp := range wordyPhrases {
		for _, loc := range wp.pattern.FindAllStringIndex(text, -1) {
			findings = append(findings, StyleFinding{
				Message:    fmt.Sprintf("Consider simplifying to '%s'", wp.replacement),
				Category:   CategoryWordiness,
				Offset:     loc[0],
				Length:     loc[1] - loc[0],
				Original:   text[loc[0]:loc[1]],
				Suggestion: wp.replacement,
			})
		}
	}
	return findings
}

// DetectLongSentences flags sentences longer than maxSentenceWords words.
// Each sentence is re-located by searching forward from a cursor that
// advances by the sentence's length; when the same sentence text recurs
// verbatim the reported offset may point at an earlier occurrence.
func DetectLongSentences(text string) []StyleFinding {
	var findings []StyleFinding
	cursor := 0
	for _, sentence := range textutil.Sentences(text) {
		wordCount := len(strings.Fields(sentence))
		if wordCount > maxSentenceWords {
			offset := cursor
			if idx := strings.Index(text[cursor:], sentence); idx >= 0 {
				offset = cursor + idx
			}
			findings = append(findings, StyleFinding{
				Message: fmt.Sprintf("This sentence has %d words. Consider breaking it into shorter sentences for better readability.",
					wordCount),
				Category:   CategorySentenceLength,
				Offset:     offset,
				Length:     len(sentence),
				Original:   truncate(sentence, 50),
				Suggestion: "Break into shorter sentences",
			})
		}
		cursor += len(sentence)
	}
	return findings
}

// DetectRepeatedWords flags a word immediately repeated across whitespace,
// case-insensitively. Common emphatic doublings ("very very") are allowed.
func DetectRepeatedWords(text string) []StyleFinding {
	var findings []StyleFinding
	tokens := wordToken.FindAllStringIndex(text, -1)

	for i := 0; i+1 < len(tokens); i++ {
		first, second := tokens[i], tokens[i+1]
		gap := text[first[1]:second[0]]
		if gap == "" || !isWhitespace(gap) {
			continue
		}

		a := text[first[0]:first[1]]
		b := text[second[0]:second[1]]
		if !strings.EqualFold(a, b) {
			continue
		}
		if allowedRepetitions[strings.ToLower(a)] {
			continue
		}

		pair := text[first[0]:second[1]]
		findings = append(findings, StyleFinding{
			Message:    fmt.Sprintf("Possible unintentional word repetition: '%s'", pair),
			Category:   CategoryRepetition,
			Offset:     first[0],
			Length:     second[1] - first[0],
			Original:   pair,
			Suggestion: a,
		})
		i++ // the second token is consumed by this finding
	}
	return findings
}

func isWhitespace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// truncate shortens s to limit runes, appending an ellipsis marker when
// anything was cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
