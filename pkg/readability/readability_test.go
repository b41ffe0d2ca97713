package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyllableCount(t *testing.T) {
	cases := map[string]int{
		"cat":        1,
		"table":      2,
		"beautiful":  3,
		"university": 5,
		"the":        1,
		"strength":   1,
	}
	for word, want := range cases {
		assert.Equal(t, want, SyllableCount(word), "word %q", word)
	}
}

func TestComputeEmptyText(t *testing.T) {
	m := Compute("")

	assert.Zero(t, m.FleschReadingEase)
	assert.Zero(t, m.FleschKincaidGrade)
	assert.Zero(t, m.GunningFog)
	assert.Zero(t, m.SMOGIndex)
	assert.Zero(t, m.DifficultWords)
	assert.Zero(t, m.ReadingTimeMinutes)
}

func TestComputeSimpleText(t *testing.T) {
	m := Compute("The cat sat on the mat. The dog ran to the park.")

	// Short common words read easily.
	assert.Greater(t, m.FleschReadingEase, 80.0)
	assert.Less(t, m.FleschKincaidGrade, 5.0)
	assert.Zero(t, m.DifficultWords)
}

func TestComputeDifficultWords(t *testing.T) {
	m := Compute("The university administration contemplated extraordinary recommendations.")

	assert.GreaterOrEqual(t, m.DifficultWords, 3)
}

func TestReadingTimeScalesWithLength(t *testing.T) {
	short := Compute("Short text.")
	long := Compute("A much longer text that has many more characters in it than the short one does.")

	assert.Greater(t, long.ReadingTimeMinutes, short.ReadingTimeMinutes)

	// 14.69 ms per character, converted to minutes.
	text := "abcd"
	m := Compute(text)
	assert.InDelta(t, 4*14.69/1000.0/60.0, m.ReadingTimeMinutes, 1e-9)
}
