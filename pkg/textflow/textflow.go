// Package textflow turns raw text into derived properties (cleaned text,
// language, word and sentence counts, entities, sentiment, embeddings,
// similarity hashes) through named, composable pipeline operations.
//
// The usual entry point is New:
//
//	pipe := textflow.New(textflow.Steps("CleanText", "NWords"), textflow.Options{})
//	res, err := pipe.Run(ctx, "Sample text! <!DOCTYPE>")
//
// Custom operations register by name and slot into the same mechanism as
// the built-ins:
//
//	pipe.RegisterOperation("Shout", shoutFn)
//	pipe.Append(pipeline.Step{Op: "Shout"})
package textflow

import (
	"context"

	"github.com/cognicore/textflow/pkg/textflow/ops"
	"github.com/cognicore/textflow/pkg/textflow/pipeline"
	"github.com/cognicore/textflow/pkg/textflow/resource"
	"github.com/cognicore/textflow/pkg/textflow/sentiment"
)

// Options configures a pipeline built by New.
type Options struct {
	// Language fixes the document language; empty means detect.
	Language string
	// HintLanguage seeds detection; defaults to "en".
	HintLanguage string
	// Registry overrides the default operation set. When nil, a fresh
	// registry with every built-in is created, so RegisterOperation
	// calls stay local to this pipeline.
	Registry *pipeline.Registry
	// Sentiment overrides the sentiment analyzer the built-ins use.
	Sentiment *sentiment.Analyzer
	// Vectors is the word-vector store for the Embedding operation.
	Vectors resource.Store
	// EmbeddingModel is the default model name for Embedding.
	EmbeddingModel string
}

// New creates a pipeline over the built-in operation set.
func New(steps []pipeline.Step, opts Options) *pipeline.Pipeline {
	reg := opts.Registry
	if reg == nil {
		reg = ops.NewRegistry(ops.Config{
			Sentiment:      opts.Sentiment,
			Vectors:        opts.Vectors,
			EmbeddingModel: opts.EmbeddingModel,
		})
	}
	p := pipeline.New(reg, steps...)
	p.Language = opts.Language
	p.HintLanguage = opts.HintLanguage
	return p
}

// Steps builds a step list from bare operation names.
func Steps(names ...string) []pipeline.Step {
	return pipeline.Named(names...)
}

// Analyze is the one-shot convenience: it builds a default pipeline over
// the named operations and runs it on text.
func Analyze(ctx context.Context, text string, names ...string) (*pipeline.Result, error) {
	return New(Steps(names...), Options{}).Run(ctx, text)
}
