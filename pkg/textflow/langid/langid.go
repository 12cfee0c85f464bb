// Package langid detects the language of a text from function-word
// frequencies. Detection is intentionally lightweight: it covers the
// languages the built-in operations ship resources for and reports a
// reliability flag so callers can fall back to a hint language.
package langid

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/cognicore/textflow/pkg/textflow/token"
)

// Unknown is the code reported when no language can be determined.
const Unknown = "un"

// Detection is the outcome of a language detection.
type Detection struct {
	// Code is the ISO 639-1 code of the best guess, or Unknown.
	Code string
	// Reliable is true when the best guess clearly beats the runner-up.
	Reliable bool
}

// Detect guesses the language of text. The hint language breaks ties and
// wins outright on very short inputs where the evidence is thin.
func Detect(text, hint string) Detection {
	hint = Canonical(hint)
	terms := token.Terms(text)
	if len(terms) == 0 {
		return Detection{Code: Unknown, Reliable: false}
	}

	scores := make(map[string]int, len(profiles))
	for _, t := range terms {
		for code, words := range profiles {
			if _, ok := words[t]; ok {
				scores[code]++
			}
		}
	}

	best, second := "", ""
	for code := range profiles {
		if best == "" || scores[code] > scores[best] {
			best, second = code, best
		} else if second == "" || scores[code] > scores[second] {
			second = code
		}
	}

	if scores[best] == 0 {
		// No function-word evidence at all. Fall back to the hint for
		// short fragments; longer texts stay undetermined.
		if hint != "" && len(terms) <= 3 {
			return Detection{Code: hint, Reliable: true}
		}
		return Detection{Code: Unknown, Reliable: false}
	}

	// A hit count close to the runner-up is not a reliable call.
	reliable := scores[best] >= 2 && scores[best] >= 2*scores[second]
	if !reliable && hint != "" {
		if _, ok := profiles[hint]; ok && scores[hint] == scores[best] {
			return Detection{Code: hint, Reliable: true}
		}
	}

	return Detection{Code: best, Reliable: reliable}
}

// Canonical reduces a language identifier ("en", "en-US", "nld") to its
// ISO 639-1 base code. Unparseable identifiers are returned lowercased.
func Canonical(code string) string {
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}
	base, _ := tag.Base()
	return base.String()
}

// FunctionWords returns the function-word list for a language, or nil for
// an unsupported code. Callers use it as a default stopword list.
func FunctionWords(code string) []string {
	set, ok := profiles[Canonical(code)]
	if !ok {
		return nil
	}
	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	return words
}

// Supported lists the language codes Detect can identify.
func Supported() []string {
	codes := make([]string, 0, len(profiles))
	for code := range profiles {
		codes = append(codes, code)
	}
	return codes
}
