package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentencesBasic(t *testing.T) {
	text := "The cat sat on the mat. The dog barked! Did anyone notice?"
	sents := Sentences(text)

	assert.Len(t, sents, 3)
	assert.Equal(t, "The cat sat on the mat.", sents[0])
	assert.Equal(t, "The dog barked!", sents[1])
	assert.Equal(t, "Did anyone notice?", sents[2])
}

func TestSentencesEmpty(t *testing.T) {
	assert.Empty(t, Sentences(""))
	assert.Empty(t, Sentences("   \n\t  "))
}

func TestSentencesSingleWithoutTerminator(t *testing.T) {
	sents := Sentences("no punctuation here")
	assert.Len(t, sents, 1)
	assert.Equal(t, "no punctuation here", sents[0])
}

func TestWordsFiltersPunctuation(t *testing.T) {
	w := Words("Hello, world! It's 2024.")

	assert.Contains(t, w, "Hello")
	assert.Contains(t, w, "world")
	assert.Contains(t, w, "2024")
	assert.NotContains(t, w, ",")
	assert.NotContains(t, w, "!")
}

func TestWordsEmpty(t *testing.T) {
	assert.Empty(t, Words(""))
	assert.Empty(t, Words("... !!! ---"))
}
