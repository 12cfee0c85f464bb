// Package entity extracts named-entity candidates from text. It is a
// heuristic extractor: capitalized spans that do not open a sentence are
// treated as names. It stands in for a model-backed recognizer behind the
// same contract.
package entity

import (
	"strings"
	"unicode"

	"github.com/cognicore/textflow/pkg/textflow/token"
)

// Entity is a recognized named-entity span.
type Entity struct {
	Text  string
	Label string
}

// Entity labels.
const (
	LabelOrg  = "ORG"
	LabelMisc = "MISC"
)

// Extract returns the distinct named-entity candidates of text, in order
// of first appearance. A candidate is a maximal run of capitalized words
// that does not start a sentence; all-caps words are labeled ORG.
func Extract(text string) []Entity {
	sentenceStarts := make(map[int]struct{})
	for _, s := range token.Sentences(text) {
		sentenceStarts[s.Offset] = struct{}{}
	}

	words := token.Words(text)
	var entities []Entity
	seen := make(map[string]struct{})

	i := 0
	for i < len(words) {
		w := words[i]
		_, opensSentence := sentenceStarts[w.Offset]
		if opensSentence || w.Text == "I" || !isCapitalized(w.Text) {
			i++
			continue
		}
		// Extend over adjacent capitalized words ("New York Times").
		j := i
		for j+1 < len(words) && isCapitalized(words[j+1].Text) && adjacent(words[j], words[j+1]) {
			j++
		}
		parts := make([]string, 0, j-i+1)
		for k := i; k <= j; k++ {
			parts = append(parts, words[k].Text)
		}
		span := strings.Join(parts, " ")
		if _, dup := seen[span]; !dup {
			seen[span] = struct{}{}
			entities = append(entities, Entity{Text: span, Label: label(span)})
		}
		i = j + 1
	}

	return entities
}

func isCapitalized(word string) bool {
	r := []rune(word)
	if len(r) == 0 || !unicode.IsUpper(r[0]) {
		return false
	}
	// Require at least one letter after the capital, or an acronym.
	return len(r) > 1 || unicode.IsLetter(r[0])
}

// adjacent reports whether b directly follows a, separated by whitespace only.
func adjacent(a, b token.Word) bool {
	gap := b.Offset - (a.Offset + len(a.Text))
	return gap >= 1 && gap <= 2
}

func label(span string) string {
	if span == strings.ToUpper(span) && len(span) > 1 {
		return LabelOrg
	}
	return LabelMisc
}
