// Package sentiment scores text polarity and subjectivity from per-language
// word lexicons. It ships small built-in lexicons for English and Dutch;
// additional languages are supplied by loading lexicons at runtime.
package sentiment

import (
	"fmt"
	"strings"

	"github.com/cognicore/textflow/pkg/textflow/internalerr"
	"github.com/cognicore/textflow/pkg/textflow/langid"
)

// Entry is the sentiment weight of a single word.
type Entry struct {
	// Polarity ranges from -1 (negative) to 1 (positive).
	Polarity float64
	// Subjectivity ranges from 0 (objective) to 1 (subjective).
	Subjectivity float64
}

// Lexicon maps lowercased words to their sentiment weights.
type Lexicon map[string]Entry

// Score is the aggregated sentiment of a text.
type Score struct {
	Polarity     float64
	Subjectivity float64
}

// Analyzer scores texts against per-language lexicons.
type Analyzer struct {
	lexicons  map[string]Lexicon
	negations map[string]map[string]struct{}
}

// NewAnalyzer creates an Analyzer with the built-in lexicons loaded.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		lexicons: map[string]Lexicon{
			"en": builtinEnglish,
			"nl": builtinDutch,
		},
		negations: map[string]map[string]struct{}{
			"en": wordSet("not", "no", "never", "neither", "nor", "n't"),
			"nl": wordSet("niet", "geen", "nooit", "noch"),
		},
	}
}

// AddLexicon installs or replaces the lexicon for a language.
func (a *Analyzer) AddLexicon(lang string, lex Lexicon) {
	a.lexicons[langid.Canonical(lang)] = lex
}

// Languages returns the language codes the analyzer has lexicons for.
func (a *Analyzer) Languages() []string {
	langs := make([]string, 0, len(a.lexicons))
	for l := range a.lexicons {
		langs = append(langs, l)
	}
	return langs
}

// Analyze scores the given word sequence for a language. Words preceded by
// a negation word have their polarity inverted. When no lexicon exists for
// the language, the error matches internalerr.ErrMissingResource.
func (a *Analyzer) Analyze(lang string, words []string) (Score, error) {
	lang = langid.Canonical(lang)
	lex, ok := a.lexicons[lang]
	if !ok {
		return Score{}, fmt.Errorf("%w: no sentiment lexicon for language %q", internalerr.ErrMissingResource, lang)
	}
	negs := a.negations[lang]

	var polarity, subjectivity float64
	matched := 0
	negated := false

	for _, w := range words {
		w = strings.ToLower(w)
		if _, neg := negs[w]; neg {
			negated = true
			continue
		}
		entry, hit := lex[w]
		if !hit {
			// Negation scopes over the next scored word only, but
			// survives unscored words in between ("not very good").
			continue
		}
		p := entry.Polarity
		if negated {
			p = -p
			negated = false
		}
		polarity += p
		subjectivity += entry.Subjectivity
		matched++
	}

	if matched == 0 {
		return Score{}, nil
	}
	return Score{
		Polarity:     polarity / float64(matched),
		Subjectivity: subjectivity / float64(matched),
	}, nil
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
