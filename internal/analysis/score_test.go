package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/writewise/writewise/pkg/readability"
)

func grammarErrors(n int) []GrammarFinding {
	findings := make([]GrammarFinding, n)
	for i := range findings {
		findings[i] = GrammarFinding{Severity: SeverityError}
	}
	return findings
}

func styleFindings(n int) []StyleFinding {
	return make([]StyleFinding, n)
}

func TestScorePerfectText(t *testing.T) {
	score := Score(nil, nil, readability.Metrics{FleschReadingEase: 65})
	assert.Equal(t, 100.0, score)
}

func TestScoreFormulaScenario(t *testing.T) {
	// 1 error finding, 2 style findings, reading ease 65:
	// 100 - 2.0 - 0.6 - 0 = 97.4
	score := Score(grammarErrors(1), styleFindings(2), readability.Metrics{FleschReadingEase: 65})
	assert.InDelta(t, 97.4, score, 1e-9)
}

func TestScoreWarningPenalty(t *testing.T) {
	warnings := []GrammarFinding{{Severity: SeverityWarning}}
	score := Score(warnings, nil, readability.Metrics{FleschReadingEase: 65})
	assert.InDelta(t, 99.5, score, 1e-9)
}

func TestScoreReadabilityAdjustments(t *testing.T) {
	difficult := Score(nil, nil, readability.Metrics{FleschReadingEase: 20})
	assert.InDelta(t, 95.0, difficult, 1e-9)

	simple := Score(nil, nil, readability.Metrics{FleschReadingEase: 95})
	assert.InDelta(t, 98.0, simple, 1e-9)

	boundary := Score(nil, nil, readability.Metrics{FleschReadingEase: 30})
	assert.InDelta(t, 100.0, boundary, 1e-9)

	upperBoundary := Score(nil, nil, readability.Metrics{FleschReadingEase: 90})
	assert.InDelta(t, 100.0, upperBoundary, 1e-9)
}

func TestScoreMonotonicInGrammarErrors(t *testing.T) {
	metrics := readability.Metrics{FleschReadingEase: 65}
	style := styleFindings(3)

	prev := Score(grammarErrors(0), style, metrics)
	for n := 1; n <= 10; n++ {
		cur := Score(grammarErrors(n), style, metrics)
		assert.InDelta(t, prev-2.0, cur, 1e-9, "adding one error should cost exactly 2.0")
		prev = cur
	}
}

func TestScoreClampedToZero(t *testing.T) {
	score := Score(grammarErrors(60), nil, readability.Metrics{FleschReadingEase: 10})
	assert.Equal(t, 0.0, score)
}

func TestScoreNeverOutOfRange(t *testing.T) {
	for errors := 0; errors <= 80; errors += 20 {
		for style := 0; style <= 400; style += 100 {
			for _, ease := range []float64{-50, 0, 45, 65, 95, 150} {
				score := Score(grammarErrors(errors), styleFindings(style), readability.Metrics{FleschReadingEase: ease})
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, 100.0)
			}
		}
	}
}
