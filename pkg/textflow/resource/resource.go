// Package resource defines process-wide storage for the heavy assets the
// built-in operations depend on: word-vector models and sentiment
// lexicons. Stores load once and are reused across pipeline runs; they are
// owned by the caller, never by a document or a pipeline.
package resource

import (
	"context"
	"fmt"

	"github.com/cognicore/textflow/pkg/textflow/internalerr"
)

// Store is the model storage interface.
type Store interface {
	Close() error

	// HasModel reports whether a word-vector model is present.
	HasModel(ctx context.Context, model string) (bool, error)
	// PutVector stores a word vector under a model name.
	PutVector(ctx context.Context, model, word string, vec []float32) error
	// WordVector returns the vector for a word, or false if the word is
	// not in the model's vocabulary.
	WordVector(ctx context.Context, model, word string) ([]float32, bool, error)
	// Dimensions returns the vector width of a model.
	Dimensions(ctx context.Context, model string) (int, error)
}

// MissingModel builds the canonical error for an absent model. It matches
// internalerr.ErrMissingResource so callers can distinguish a missing
// model from a programming error.
func MissingModel(model string) error {
	return fmt.Errorf("%w: word-vector model %q is not loaded", internalerr.ErrMissingResource, model)
}
