// Package doc provides the Doc type: an immutable piece of raw text plus
// a lazily populated cache of derived properties. Every derived property
// is computed at most once per Doc; a failed computation leaves no cache
// entry, so the next access retries cleanly.
package doc

import (
	"github.com/oklog/ulid/v2"

	"github.com/cognicore/textflow/pkg/textflow/entity"
	"github.com/cognicore/textflow/pkg/textflow/langid"
	"github.com/cognicore/textflow/pkg/textflow/readability"
	"github.com/cognicore/textflow/pkg/textflow/simhash"
	"github.com/cognicore/textflow/pkg/textflow/textclean"
	"github.com/cognicore/textflow/pkg/textflow/token"
)

// Cache keys of the built-in derived properties. Operations use these
// keys so that direct accessor calls and pipeline runs share one cache
// slot per property.
const (
	PropClean      = "clean"
	PropLanguage   = "language"
	PropWords      = "words"
	PropSents      = "sents"
	PropEntities   = "entities"
	PropComplexity = "complexity"
	PropSimHash    = "simhash"
	PropSentiment  = "sentiment"
	PropEmbedding  = "embedding"
	PropKeyTerms   = "keyterms"
)

// Doc is an immutable raw text with a private memoization table.
// A Doc is owned by a single goroutine; the cache is not internally
// locked. Share computed values, not the Doc itself.
type Doc struct {
	id           string
	raw          string
	hintLanguage string

	// providedLanguage is set when the caller already knows the language;
	// detection is skipped entirely in that case.
	providedLanguage string

	cache map[string]any
}

// Option configures a Doc at construction time.
type Option func(*Doc)

// WithLanguage fixes the document language, skipping detection.
func WithLanguage(lang string) Option {
	return func(d *Doc) { d.providedLanguage = langid.Canonical(lang) }
}

// WithHintLanguage sets the language detection falls back to on thin
// evidence. Defaults to "en".
func WithHintLanguage(lang string) Option {
	return func(d *Doc) { d.hintLanguage = langid.Canonical(lang) }
}

// WithID overrides the generated document ID.
func WithID(id string) Option {
	return func(d *Doc) { d.id = id }
}

// New creates a Doc from raw text.
func New(raw string, opts ...Option) *Doc {
	d := &Doc{
		raw:          raw,
		hintLanguage: "en",
		cache:        make(map[string]any),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.id == "" {
		d.id = ulid.Make().String()
	}
	return d
}

// ID returns the document identifier.
func (d *Doc) ID() string { return d.id }

// Raw returns the original, unedited text.
func (d *Doc) Raw() string { return d.raw }

// HintLanguage returns the configured hint language.
func (d *Doc) HintLanguage() string { return d.hintLanguage }

// GetOrCompute returns the cached value for name, computing and caching
// it on first access. If fn fails nothing is cached and the error is
// returned; a later access recomputes.
func (d *Doc) GetOrCompute(name string, fn func(*Doc) (any, error)) (any, error) {
	if v, ok := d.cache[name]; ok {
		return v, nil
	}
	v, err := fn(d)
	if err != nil {
		return nil, err
	}
	d.cache[name] = v
	return v, nil
}

// Cached returns the cached value for name without computing anything.
func (d *Doc) Cached(name string) (any, bool) {
	v, ok := d.cache[name]
	return v, ok
}

// compute is GetOrCompute for properties whose computation cannot fail.
func (d *Doc) compute(name string, fn func() any) any {
	if v, ok := d.cache[name]; ok {
		return v
	}
	v := fn()
	d.cache[name] = v
	return v
}

// Clean returns the cleaned text: markup stripped, punctuation and
// whitespace normalized.
func (d *Doc) Clean() string {
	return d.compute(PropClean, func() any {
		return textclean.Clean(d.raw, textclean.DefaultOptions())
	}).(string)
}

// Language returns the provided or detected 2-letter language code.
// Undetectable text reports langid.Unknown.
func (d *Doc) Language() string {
	if d.providedLanguage != "" {
		return d.providedLanguage
	}
	return d.detect().Code
}

// IsDetectedLanguage reports whether the language comes from detection
// rather than from the caller.
func (d *Doc) IsDetectedLanguage() bool {
	return d.providedLanguage == ""
}

// IsReliableLanguage is true when the language was provided, or was
// detected with a clear margin.
func (d *Doc) IsReliableLanguage() bool {
	if d.providedLanguage != "" {
		return true
	}
	return d.detect().Reliable
}

func (d *Doc) detect() langid.Detection {
	return d.compute(PropLanguage, func() any {
		return langid.Detect(d.Clean(), d.hintLanguage)
	}).(langid.Detection)
}

// Words returns the word tokens of the cleaned text with byte offsets.
func (d *Doc) Words() []token.Word {
	return d.compute(PropWords, func() any {
		return token.Words(d.Clean())
	}).([]token.Word)
}

// NWords returns the number of words in the cleaned text.
func (d *Doc) NWords() int { return len(d.Words()) }

// Sents returns the sentences of the cleaned text with byte offsets.
func (d *Doc) Sents() []token.Sentence {
	return d.compute(PropSents, func() any {
		return token.Sentences(d.Clean())
	}).([]token.Sentence)
}

// NSents returns the number of sentences in the cleaned text.
func (d *Doc) NSents() int { return len(d.Sents()) }

// Entities returns the named-entity candidates of the cleaned text.
func (d *Doc) Entities() []entity.Entity {
	return d.compute(PropEntities, func() any {
		return entity.Extract(d.Clean())
	}).([]entity.Entity)
}

// Complexity returns the Flesch reading-ease score of the cleaned text.
func (d *Doc) Complexity() float64 {
	return d.compute(PropComplexity, func() any {
		return readability.FleschReadingEase(d.Clean())
	}).(float64)
}

// SimHash returns the 64-bit similarity hash of the cleaned text's terms.
func (d *Doc) SimHash() uint64 {
	return d.compute(PropSimHash, func() any {
		return simhash.Hash(token.Terms(d.Clean()))
	}).(uint64)
}
