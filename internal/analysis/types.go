// Package analysis implements the prose analysis core: style detection,
// grammar finding aggregation, readability, and quality scoring.
package analysis

import (
	"github.com/writewise/writewise/pkg/readability"
)

// Grammar finding severities, derived from the grammar service category.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Style finding categories.
const (
	CategoryPassiveVoice   = "passive_voice"
	CategoryWordiness      = "wordiness"
	CategorySentenceLength = "sentence_length"
	CategoryRepetition     = "repetition"
)

// GrammarFinding is a grammar or spelling problem located in the text.
type GrammarFinding struct {
	Message     string   `json:"message"`
	RuleID      string   `json:"rule_id"`
	Category    string   `json:"category"`
	Offset      int      `json:"offset"`
	Length      int      `json:"length"`
	Context     string   `json:"context"`
	Suggestions []string `json:"suggestions"`
	Severity    string   `json:"severity"`
}

// StyleFinding is a style weakness located in the text.
type StyleFinding struct {
	Message    string `json:"message"`
	Category   string `json:"category"`
	Offset     int    `json:"offset"`
	Length     int    `json:"length"`
	Original   string `json:"original"`
	Suggestion string `json:"suggestion"`
}

// Result is the complete analysis of one text.
type Result struct {
	OriginalText    string              `json:"original_text"`
	GrammarFindings []GrammarFinding    `json:"grammar_issues"`
	StyleFindings   []StyleFinding      `json:"style_suggestions"`
	Readability     readability.Metrics `json:"readability"`
	WordCount       int                 `json:"word_count"`
	SentenceCount   int                 `json:"sentence_count"`
	CharacterCount  int                 `json:"character_count"`
	Score           float64             `json:"score"`
}
