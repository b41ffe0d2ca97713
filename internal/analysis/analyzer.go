package analysis

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/writewise/writewise/internal/grammar"
	"github.com/writewise/writewise/pkg/logging"
	"github.com/writewise/writewise/pkg/readability"
	"github.com/writewise/writewise/pkg/textutil"
)

// contextWindow is how many characters of surrounding text are attached
// to each grammar finding.
const contextWindow = 20

// maxSuggestions caps the replacement suggestions kept per finding.
const maxSuggestions = 3

// Analyzer aggregates grammar checking, style detection, readability, and
// quality scoring into a single analysis. It holds no state besides the
// grammar checker handle; concurrent use is safe whenever the underlying
// checker is safe for concurrent use.
type Analyzer struct {
	checker grammar.Checker
	log     zerolog.Logger
}

// New creates an Analyzer using the given grammar checker. The caller
// owns the checker's lifecycle and must close it when done.
func New(checker grammar.Checker) *Analyzer {
	return &Analyzer{
		checker: checker,
		log:     logging.GetLogger("analysis"),
	}
}

// Analyze performs a complete analysis of text. Any input is accepted,
// including empty strings; rejecting blank input is the caller's concern.
// A grammar capability failure aborts the analysis, since the score would
// be meaningless without grammar findings.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*Result, error) {
	matches, err := a.checker.Check(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("grammar check: %w", err)
	}

	grammarFindings := make([]GrammarFinding, 0, len(matches))
	for _, m := range matches {
		grammarFindings = append(grammarFindings, newGrammarFinding(text, m))
	}

	styleFindings := DetectStyle(text)
	metrics := readability.Compute(text)

	result := &Result{
		OriginalText:    text,
		GrammarFindings: grammarFindings,
		StyleFindings:   styleFindings,
		Readability:     metrics,
		WordCount:       len(strings.Fields(text)),
		SentenceCount:   len(textutil.Sentences(text)),
		CharacterCount:  utf8.RuneCountInString(text),
		Score:           Score(grammarFindings, styleFindings, metrics),
	}

	a.log.Debug().
		Int("characters", result.CharacterCount).
		Int("grammar_findings", len(grammarFindings)).
		Int("style_findings", len(styleFindings)).
		Float64("score", result.Score).
		Msg("Analysis completed")

	return result, nil
}

// CorrectText returns text with the grammar service's suggested
// replacements applied. It is a pass-through: one check call, then the
// capability's own correction function.
func (a *Analyzer) CorrectText(ctx context.Context, text string) (string, error) {
	matches, err := a.checker.Check(ctx, text)
	if err != nil {
		return "", fmt.Errorf("grammar check: %w", err)
	}
	return grammar.Correct(text, matches), nil
}

// newGrammarFinding maps a raw grammar match onto a finding, deriving
// severity from the category, clipping the context window to the text
// bounds, and keeping at most maxSuggestions replacements.
func newGrammarFinding(text string, m grammar.Match) GrammarFinding {
	severity := SeverityWarning
	if m.Category == "GRAMMAR" || m.Category == "TYPOS" {
		severity = SeverityError
	}

	suggestions := m.Replacements
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	return GrammarFinding{
		Message:     m.Message,
		RuleID:      m.RuleID,
		Category:    m.Category,
		Offset:      m.Offset,
		Length:      m.Length,
		Context:     contextAround(text, m.Offset, m.Length),
		Suggestions: suggestions,
		Severity:    severity,
	}
}

// contextAround returns the text surrounding [offset, offset+length) with
// contextWindow characters on each side, clipped to the text bounds.
// Offsets are rune positions, as reported by the grammar service.
func contextAround(text string, offset, length int) string {
	runes := []rune(text)

	start := offset - contextWindow
	if start < 0 {
		start = 0
	}
	end := offset + length + contextWindow
	if end > len(runes) {
		end = len(runes)
	}
	if start > len(runes) || start > end {
		return ""
	}
	return string(runes[start:end])
}
