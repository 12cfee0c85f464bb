// Package ops wires the built-in text operations into a pipeline
// registry. Each operation adapts one collaborator package (cleaning,
// language detection, tokenization, sentiment, embeddings, ...) to the
// pipeline calling contract and caches its result on the document.
package ops

import (
	"context"
	"fmt"
	"strings"

	"github.com/cognicore/textflow/pkg/textflow/doc"
	"github.com/cognicore/textflow/pkg/textflow/embed"
	"github.com/cognicore/textflow/pkg/textflow/internalerr"
	"github.com/cognicore/textflow/pkg/textflow/keyterms"
	"github.com/cognicore/textflow/pkg/textflow/langid"
	"github.com/cognicore/textflow/pkg/textflow/pipeline"
	"github.com/cognicore/textflow/pkg/textflow/resource"
	"github.com/cognicore/textflow/pkg/textflow/sentiment"
	"github.com/cognicore/textflow/pkg/textflow/textclean"
	"github.com/cognicore/textflow/pkg/textflow/token"
)

// Built-in operation names.
const (
	OpRaw        = "Raw"
	OpCleanText  = "CleanText"
	OpLanguage   = "Language"
	OpWords      = "Words"
	OpNWords     = "NWords"
	OpSents      = "Sents"
	OpNSents     = "NSents"
	OpEntities   = "Entities"
	OpComplexity = "Complexity"
	OpSimHash    = "SimHash"
	OpSentiment  = "Sentiment"
	OpEmbedding  = "Embedding"
	OpKeyTerms   = "KeyTerms"
)

// Config carries the shared collaborators the built-ins depend on.
type Config struct {
	// Sentiment scores texts; defaults to the built-in lexicons.
	Sentiment *sentiment.Analyzer
	// Vectors is the word-vector store backing the Embedding operation.
	// Leaving it nil makes Embedding fail with a missing-resource error.
	Vectors resource.Store
	// EmbeddingModel is the default model name for Embedding.
	EmbeddingModel string
}

// NewRegistry returns a registry seeded with every built-in operation.
func NewRegistry(cfg Config) *pipeline.Registry {
	if cfg.Sentiment == nil {
		cfg.Sentiment = sentiment.NewAnalyzer()
	}

	r := pipeline.NewRegistry()
	r.Register(OpRaw, Raw)
	r.Register(OpCleanText, CleanText)
	r.Register(OpLanguage, Language)
	r.Register(OpWords, Words)
	r.Register(OpNWords, NWords)
	r.Register(OpSents, Sents)
	r.Register(OpNSents, NSents)
	r.Register(OpEntities, Entities)
	r.Register(OpComplexity, Complexity)
	r.Register(OpSimHash, SimHash)
	r.Register(OpSentiment, Sentiment(cfg.Sentiment))
	r.Register(OpEmbedding, Embedding(cfg.Vectors, cfg.EmbeddingModel))
	r.Register(OpKeyTerms, KeyTerms)
	return r
}

// Raw returns the original, unedited text.
func Raw(_ context.Context, d *doc.Doc, _ *pipeline.RunContext, _ pipeline.Settings, _ pipeline.Args) (any, error) {
	return d.Raw(), nil
}

// CleanText returns the cleaned text. Settings may disable individual
// passes: remove_html, clean_dots, clean_quotes, clean_whitespace.
func CleanText(_ context.Context, d *doc.Doc, _ *pipeline.RunContext, settings pipeline.Settings, _ pipeline.Args) (any, error) {
	if len(settings) == 0 {
		return d.Clean(), nil
	}
	opts := textclean.Options{
		RemoveHTML:      settings.Bool("remove_html", true),
		CleanDots:       settings.Bool("clean_dots", true),
		CleanQuotes:     settings.Bool("clean_quotes", true),
		CleanWhitespace: settings.Bool("clean_whitespace", true),
	}
	// Non-default cleaning is settings-specific and bypasses the
	// document's property cache.
	return textclean.Clean(d.Raw(), opts), nil
}

// Language returns the provided or detected 2-letter language code.
func Language(_ context.Context, d *doc.Doc, _ *pipeline.RunContext, _ pipeline.Settings, _ pipeline.Args) (any, error) {
	return d.Language(), nil
}

// Words returns the word tokens of the cleaned text.
func Words(_ context.Context, d *doc.Doc, _ *pipeline.RunContext, _ pipeline.Settings, _ pipeline.Args) (any, error) {
	return d.Words(), nil
}

// NWords returns the word count of the cleaned text.
func NWords(_ context.Context, d *doc.Doc, _ *pipeline.RunContext, _ pipeline.Settings, _ pipeline.Args) (any, error) {
	return d.NWords(), nil
}

// Sents returns the sentences of the cleaned text.
func Sents(_ context.Context, d *doc.Doc, _ *pipeline.RunContext, _ pipeline.Settings, _ pipeline.Args) (any, error) {
	return d.Sents(), nil
}

// NSents returns the sentence count of the cleaned text.
func NSents(_ context.Context, d *doc.Doc, _ *pipeline.RunContext, _ pipeline.Settings, _ pipeline.Args) (any, error) {
	return d.NSents(), nil
}

// Entities returns the named-entity candidates of the cleaned text.
func Entities(_ context.Context, d *doc.Doc, _ *pipeline.RunContext, _ pipeline.Settings, _ pipeline.Args) (any, error) {
	return d.Entities(), nil
}

// Complexity returns the Flesch reading-ease score of the cleaned text.
func Complexity(_ context.Context, d *doc.Doc, _ *pipeline.RunContext, _ pipeline.Settings, _ pipeline.Args) (any, error) {
	return d.Complexity(), nil
}

// SimHash returns the 64-bit similarity hash of the cleaned text.
func SimHash(_ context.Context, d *doc.Doc, _ *pipeline.RunContext, _ pipeline.Settings, _ pipeline.Args) (any, error) {
	return d.SimHash(), nil
}

// Sentiment builds the sentiment operation over an analyzer. The language
// defaults to the document's (hint language when detection is unreliable)
// and can be forced with the "language" setting. A language without a
// lexicon is a missing resource, not a failure of the text.
func Sentiment(analyzer *sentiment.Analyzer) pipeline.Func {
	return func(_ context.Context, d *doc.Doc, _ *pipeline.RunContext, settings pipeline.Settings, _ pipeline.Args) (any, error) {
		lang := settings.String("language", "")
		if lang == "" {
			lang = d.Language()
			if !d.IsReliableLanguage() {
				lang = d.HintLanguage()
			}
		}
		lang = langid.Canonical(lang)

		key := doc.PropSentiment + "/" + lang
		return d.GetOrCompute(key, func(d *doc.Doc) (any, error) {
			words := make([]string, 0, len(d.Words()))
			for _, w := range d.Words() {
				words = append(words, strings.ToLower(w.Text))
			}
			return analyzer.Analyze(lang, words)
		})
	}
}

// Embedding builds the embedding operation over a vector store. The model
// defaults to defaultModel and can be overridden with the "model"
// setting. An unconfigured store or unloaded model is a missing resource.
func Embedding(store resource.Store, defaultModel string) pipeline.Func {
	return func(ctx context.Context, d *doc.Doc, _ *pipeline.RunContext, settings pipeline.Settings, _ pipeline.Args) (any, error) {
		model := settings.String("model", defaultModel)
		if store == nil {
			return nil, fmt.Errorf("%w: no vector store configured", internalerr.ErrMissingResource)
		}
		if model == "" {
			return nil, fmt.Errorf("%w: no embedding model configured", internalerr.ErrMissingResource)
		}

		key := doc.PropEmbedding + "/" + model
		return d.GetOrCompute(key, func(d *doc.Doc) (any, error) {
			terms := token.Terms(d.Clean())
			return embed.New(store, model).Embed(ctx, terms)
		})
	}
}

// KeyTerms returns the strongest term collocations of the document,
// using sentences as the co-occurrence unit and the detected language's
// function words as stopwords. Settings: "k" (default 10) and
// "min_support" (default 2).
func KeyTerms(_ context.Context, d *doc.Doc, _ *pipeline.RunContext, settings pipeline.Settings, _ pipeline.Args) (any, error) {
	k := settings.Int("k", 10)
	minSupport := int64(settings.Int("min_support", 2))

	key := fmt.Sprintf("%s/%d/%d", doc.PropKeyTerms, k, minSupport)
	return d.GetOrCompute(key, func(d *doc.Doc) (any, error) {
		norm := token.NewNormalizer(langid.FunctionWords(d.Language()))
		sents := d.Sents()
		perSentence := make([][]string, 0, len(sents))
		for _, s := range sents {
			perSentence = append(perSentence, norm.Normalize(token.Terms(s.Text)))
		}
		return keyterms.Extract(perSentence, k, minSupport), nil
	})
}
