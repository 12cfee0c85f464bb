package token

import (
	"strings"
	"unicode"
)

// Sentence is a sentence span together with its byte offset in the source text.
type Sentence struct {
	Text   string
	Offset int
}

// Common abbreviations that do not terminate a sentence.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	"vs": {}, "etc": {}, "e.g": {}, "i.e": {}, "st": {}, "no": {}, "vol": {},
}

// Sentences splits text into sentences. A sentence ends at '.', '!' or '?'
// when the terminator is followed by whitespace and an upper-case letter,
// a digit, or the end of the text. Trailing quote characters stay attached
// to the sentence they close.
func Sentences(text string) []Sentence {
	var sents []Sentence
	runes := []rune(text)
	offsets := byteOffsets(text, runes)

	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Consume runs like "..." or "?!".
		end := i
		for end+1 < len(runes) && isTerminator(runes[end+1]) {
			end++
		}
		// Closing quotes belong to this sentence.
		for end+1 < len(runes) && isClosingQuote(runes[end+1]) {
			end++
		}
		if r == '.' && end == i && isAbbreviation(runes, i) {
			continue
		}
		if !sentenceBoundary(runes, end) {
			i = end
			continue
		}
		raw := strings.TrimSpace(string(runes[start : end+1]))
		if raw != "" {
			sents = append(sents, Sentence{Text: raw, Offset: offsets[start+leadingSpace(runes[start:end+1])]})
		}
		i = end
		start = end + 1
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sents = append(sents, Sentence{Text: tail, Offset: offsets[start+leadingSpace(runes[start:])]})
	}

	return sents
}

// sentenceBoundary reports whether the terminator at index i is followed by
// whitespace and the start of a new sentence, or by the end of the text.
func sentenceBoundary(runes []rune, i int) bool {
	j := i + 1
	if j >= len(runes) {
		return true
	}
	if !unicode.IsSpace(runes[j]) {
		return false
	}
	for j < len(runes) && unicode.IsSpace(runes[j]) {
		j++
	}
	if j >= len(runes) {
		return true
	}
	r := runes[j]
	return unicode.IsUpper(r) || unicode.IsDigit(r) || isOpeningQuote(r)
}

// isAbbreviation reports whether the '.' at index i ends a known abbreviation.
func isAbbreviation(runes []rune, i int) bool {
	j := i - 1
	for j >= 0 && (unicode.IsLetter(runes[j]) || runes[j] == '.') {
		j--
	}
	word := strings.ToLower(strings.TrimSuffix(string(runes[j+1:i]), "."))
	_, ok := abbreviations[word]
	return ok
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isClosingQuote(r rune) bool {
	return r == '"' || r == '\'' || r == '”' || r == '’' || r == ')' || r == ']'
}

func isOpeningQuote(r rune) bool {
	return r == '"' || r == '\'' || r == '“' || r == '‘' || r == '(' || r == '['
}

func leadingSpace(runes []rune) int {
	n := 0
	for n < len(runes) && unicode.IsSpace(runes[n]) {
		n++
	}
	return n
}
