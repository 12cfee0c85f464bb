package token

import (
	"strings"
	"unicode"
)

// Word is a word token together with its byte offset in the source text.
type Word struct {
	Text   string
	Offset int
}

// Words splits text into word tokens, preserving byte offsets.
// A word is a run of letters and digits; hyphens and apostrophes are kept
// when they join two word characters ("machine-learning", "don't").
// Punctuation-only runs are not words.
func Words(text string) []Word {
	var words []Word
	runes := []rune(text)
	offsets := byteOffsets(text, runes)

	i := 0
	for i < len(runes) {
		if !isWordRune(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) {
			r := runes[i]
			if isWordRune(r) {
				i++
				continue
			}
			// Joiner between two word characters stays inside the word.
			if (r == '-' || r == '\'' || r == '’') && i+1 < len(runes) && isWordRune(runes[i+1]) {
				i++
				continue
			}
			break
		}
		words = append(words, Word{
			Text:   string(runes[start:i]),
			Offset: offsets[start],
		})
	}

	return words
}

// Terms lowercases the word tokens of text. This is the normalized form
// used by co-occurrence analysis and similarity hashing.
func Terms(text string) []string {
	words := Words(text)
	terms := make([]string, len(words))
	for i, w := range words {
		terms[i] = strings.ToLower(w.Text)
	}
	return terms
}

// Normalizer filters and canonicalizes terms. It removes stopwords,
// drops purely numeric tokens, and optionally maps variants to a
// canonical form via a synonym table.
type Normalizer struct {
	stopwords map[string]struct{}
	synonyms  map[string]string
}

// NewNormalizer creates a Normalizer with the given stopword list.
func NewNormalizer(stopwords []string) *Normalizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Normalizer{stopwords: stops, synonyms: make(map[string]string)}
}

// AddStopword adds a word to the stopword list.
func (n *Normalizer) AddStopword(word string) {
	n.stopwords[strings.ToLower(word)] = struct{}{}
}

// RemoveStopword removes a word from the stopword list.
func (n *Normalizer) RemoveStopword(word string) {
	delete(n.stopwords, strings.ToLower(word))
}

// AddSynonym maps a variant to its canonical form.
func (n *Normalizer) AddSynonym(variant, canonical string) {
	n.synonyms[strings.ToLower(variant)] = strings.ToLower(canonical)
}

// Normalize filters and canonicalizes a term list. Terms of length one,
// purely numeric terms, and stopwords are dropped.
func (n *Normalizer) Normalize(terms []string) []string {
	var out []string
	for _, t := range terms {
		t = strings.Trim(strings.ToLower(t), "-")
		if len(t) <= 1 || isNumericOnly(t) {
			continue
		}
		if canon, ok := n.synonyms[t]; ok {
			t = canon
		}
		if _, stop := n.stopwords[t]; stop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// isNumericOnly reports whether the term contains only digits and hyphens.
// Mixed tokens like "gpt-4" and "utf-8" are kept.
func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// byteOffsets maps each rune index to its byte offset in the original string.
func byteOffsets(text string, runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		offsets[i] = off
		off += len(string(r))
	}
	offsets[len(runes)] = len(text)
	return offsets
}
