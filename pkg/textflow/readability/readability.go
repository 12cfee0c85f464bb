// Package readability scores text complexity with the Flesch reading-ease
// test. Scores range from 0 (hardest) to 100 (easiest); texts without
// syllables score 100.
package readability

import (
	"strings"

	"github.com/cognicore/textflow/pkg/textflow/token"
)

// FleschReadingEase computes the reading-ease score of text.
func FleschReadingEase(text string) float64 {
	words := token.Words(text)
	sents := token.Sentences(text)

	syllables := 0
	for _, w := range words {
		syllables += Syllables(w.Text)
	}
	if syllables == 0 {
		return 100
	}

	nWords := float64(len(words))
	nSents := float64(len(sents))
	if nSents == 0 {
		nSents = 1
	}

	return 206.835 - 1.015*(nWords/nSents) - 84.6*(float64(syllables)/nWords)
}

// Syllables estimates the syllable count of a word by counting vowel
// groups, with a silent-e correction. Every word with a vowel has at
// least one syllable.
func Syllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'é', 'è', 'à', 'ù', 'ö', 'ü', 'ä':
		return true
	}
	return false
}
