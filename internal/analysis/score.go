package analysis

import (
	"github.com/writewise/writewise/pkg/readability"
)

// Scoring constants. These are the contract that keeps scores comparable
// across deployments; do not tune them casually.
const (
	errorPenalty     = 2.0
	warningPenalty   = 0.5
	stylePenalty     = 0.3
	tooDifficultEase = 30.0
	tooSimpleEase    = 90.0
)

// Score computes the overall quality score in [0, 100] from grammar
// findings, style findings, and readability metrics. Deterministic, no I/O.
func Score(grammar []GrammarFinding, style []StyleFinding, metrics readability.Metrics) float64 {
	score := 100.0

	for _, f := range grammar {
		if f.Severity == SeverityError {
			score -= errorPenalty
		} else {
			score -= warningPenalty
		}
	}

	score -= float64(len(style)) * stylePenalty

	if metrics.FleschReadingEase < tooDifficultEase {
		score -= 5.0
	} else if metrics.FleschReadingEase > tooSimpleEase {
		score -= 2.0
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
