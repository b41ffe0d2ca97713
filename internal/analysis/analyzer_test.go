package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writewise/writewise/internal/grammar"
)

// stubChecker returns canned matches, or an error, without any I/O.
type stubChecker struct {
	matches []grammar.Match
	err     error
	closed  int
}

func (s *stubChecker) Check(ctx context.Context, text string) ([]grammar.Match, error) {
	return s.matches, s.err
}

func (s *stubChecker) Close() error {
	s.closed++
	return nil
}

func TestAnalyzeBasicCounts(t *testing.T) {
	a := New(&stubChecker{})
	text := "The cat sat on the mat. The dog barked loudly."

	result, err := a.Analyze(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, text, result.OriginalText)
	assert.Equal(t, 10, result.WordCount)
	assert.Equal(t, 2, result.SentenceCount)
	assert.Equal(t, len(text), result.CharacterCount)
}

func TestAnalyzeEmptyText(t *testing.T) {
	a := New(&stubChecker{})

	result, err := a.Analyze(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "", result.OriginalText)
	assert.Zero(t, result.WordCount)
	assert.Zero(t, result.SentenceCount)
	assert.Zero(t, result.CharacterCount)
	assert.Empty(t, result.GrammarFindings)
	assert.Empty(t, result.StyleFindings)
}

func TestAnalyzeUnicodeCharacterCount(t *testing.T) {
	a := New(&stubChecker{})

	result, err := a.Analyze(context.Background(), "héllo 世界")
	require.NoError(t, err)

	// Code points, not bytes.
	assert.Equal(t, 8, result.CharacterCount)
}

func TestAnalyzeMapsGrammarMatches(t *testing.T) {
	text := "I has a apple and I like it very much indeed."
	checker := &stubChecker{matches: []grammar.Match{
		{
			Message:      "Did you mean 'have'?",
			RuleID:       "HAS_HAVE",
			Category:     "GRAMMAR",
			Offset:       2,
			Length:       3,
			Replacements: []string{"have", "had", "having", "haveth"},
		},
		{
			Message:      "Consider a different word.",
			RuleID:       "STYLE_HINT",
			Category:     "STYLE",
			Offset:       8,
			Length:       5,
			Replacements: nil,
		},
	}}

	a := New(checker)
	result, err := a.Analyze(context.Background(), text)
	require.NoError(t, err)
	require.Len(t, result.GrammarFindings, 2)

	first := result.GrammarFindings[0]
	assert.Equal(t, SeverityError, first.Severity)
	assert.Equal(t, "HAS_HAVE", first.RuleID)
	assert.Len(t, first.Suggestions, 3, "suggestions are capped at three")
	assert.Equal(t, []string{"have", "had", "having"}, first.Suggestions)
	// Window is clipped at the start of the text.
	assert.Equal(t, text[:2+3+20], first.Context)

	second := result.GrammarFindings[1]
	assert.Equal(t, SeverityWarning, second.Severity)
	assert.Empty(t, second.Suggestions)
}

func TestAnalyzeContextWindowClippedAtEnd(t *testing.T) {
	text := "short tail"
	checker := &stubChecker{matches: []grammar.Match{
		{Message: "m", Category: "TYPOS", Offset: 6, Length: 4},
	}}

	a := New(checker)
	result, err := a.Analyze(context.Background(), text)
	require.NoError(t, err)
	require.Len(t, result.GrammarFindings, 1)

	assert.Equal(t, text, result.GrammarFindings[0].Context)
	assert.Equal(t, SeverityError, result.GrammarFindings[0].Severity)
}

func TestAnalyzeCheckerFailureIsFatal(t *testing.T) {
	sentinel := errors.New("server down")
	a := New(&stubChecker{err: sentinel})

	_, err := a.Analyze(context.Background(), "any text")
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}

func TestAnalyzeDeterministic(t *testing.T) {
	checker := &stubChecker{matches: []grammar.Match{
		{Message: "m", Category: "TYPOS", Offset: 0, Length: 3, Replacements: []string{"The"}},
	}}
	a := New(checker)
	text := "Teh ball was thrown. At this point in time the the game ended."

	first, err := a.Analyze(context.Background(), text)
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyzeScoreWithinBounds(t *testing.T) {
	a := New(&stubChecker{})
	for _, text := range []string{
		"",
		"ok",
		"The the cat was chased. In order to win, run far far away.",
		"One enormous uninterrupted paragraph of exceedingly complicated terminology.",
	} {
		result, err := a.Analyze(context.Background(), text)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Score, 0.0)
		assert.LessOrEqual(t, result.Score, 100.0)
	}
}

func TestCorrectTextAppliesReplacements(t *testing.T) {
	checker := &stubChecker{matches: []grammar.Match{
		{Offset: 0, Length: 3, Replacements: []string{"The"}},
	}}
	a := New(checker)

	corrected, err := a.CorrectText(context.Background(), "Teh cat")
	require.NoError(t, err)
	assert.Equal(t, "The cat", corrected)
}

func TestCorrectTextCheckerFailure(t *testing.T) {
	a := New(&stubChecker{err: errors.New("down")})

	_, err := a.CorrectText(context.Background(), "text")
	assert.Error(t, err)
}
