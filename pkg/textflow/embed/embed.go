// Package embed builds document embeddings as the mean of per-word
// vectors looked up in a resource.Store.
package embed

import (
	"context"

	"github.com/cognicore/textflow/pkg/textflow/resource"
)

// Embedder turns word sequences into a single document vector.
type Embedder struct {
	store resource.Store
	model string
}

// New creates an Embedder over a store and model name.
func New(store resource.Store, model string) *Embedder {
	return &Embedder{store: store, model: model}
}

// Model returns the model name this embedder queries.
func (e *Embedder) Model() string { return e.model }

// Embed averages the vectors of the given words. Out-of-vocabulary words
// are skipped; if no word is in vocabulary the zero vector of the model's
// width is returned. A missing model surfaces as a missing-resource error.
func (e *Embedder) Embed(ctx context.Context, words []string) ([]float32, error) {
	ok, err := e.store.HasModel(ctx, e.model)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, resource.MissingModel(e.model)
	}

	dim, err := e.store.Dimensions(ctx, e.model)
	if err != nil {
		return nil, err
	}

	sum := make([]float32, dim)
	matched := 0
	for _, w := range words {
		vec, hit, err := e.store.WordVector(ctx, e.model, w)
		if err != nil {
			return nil, err
		}
		if !hit || len(vec) != dim {
			continue
		}
		for i, v := range vec {
			sum[i] += v
		}
		matched++
	}

	if matched > 0 {
		inv := 1 / float32(matched)
		for i := range sum {
			sum[i] *= inv
		}
	}
	return sum, nil
}
