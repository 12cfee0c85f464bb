// Package pipeline runs named operations against a document in declared
// order. Operations are resolved from a Registry, invoked with the
// document and a run-scoped context, and their results accumulate into an
// ordered result mapping. The document memoizes each operation's derived
// property, so re-running a pipeline (or another pipeline) over the same
// document never recomputes what is already known.
package pipeline

import (
	"context"
	"fmt"

	"github.com/cognicore/textflow/pkg/textflow/doc"
)

// Step is one scheduled use of an operation. The optional Label aliases
// the step in the run context and result mapping; when two steps use the
// same operation, give them distinct labels so both results survive.
type Step struct {
	// Op is the registry name of the operation to run.
	Op string
	// Label optionally overrides the result key; defaults to Op.
	Label string
	// Settings is the per-step configuration handed to the operation.
	Settings Settings
}

// Key returns the key this step's result is stored under.
func (s Step) Key() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Op
}

// Pipeline is an ordered sequence of steps over a shared registry. A
// Pipeline is built once and reused across many inputs; it only changes
// through explicit RegisterOperation and Append calls, never by running.
type Pipeline struct {
	// Language fixes the document language for every run; empty means
	// detect per document.
	Language string
	// HintLanguage seeds detection when Language is unset.
	HintLanguage string

	steps    []Step
	registry *Registry
}

// New creates a Pipeline over registry with the given steps. The registry
// must not be nil; it is used as-is, so registrations through the
// pipeline are visible to every other holder of the same registry.
func New(registry *Registry, steps ...Step) *Pipeline {
	return &Pipeline{
		steps:    steps,
		registry: registry,
	}
}

// Named builds steps from bare operation names.
func Named(names ...string) []Step {
	steps := make([]Step, len(names))
	for i, name := range names {
		steps[i] = Step{Op: name}
	}
	return steps
}

// Steps returns the pipeline's step sequence.
func (p *Pipeline) Steps() []Step {
	return p.steps
}

// Append adds steps to the end of the pipeline; the next Run picks them
// up without any further wiring.
func (p *Pipeline) Append(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// RegisterOperation registers (or overrides) an operation in the
// pipeline's registry.
func (p *Pipeline) RegisterOperation(name string, fn Func) {
	p.registry.Register(name, fn)
}

// Registry returns the pipeline's registry.
func (p *Pipeline) Registry() *Registry {
	return p.registry
}

// Run constructs a Doc from raw text and runs the pipeline over it.
// Optional extra arguments are forwarded to every operation.
func (p *Pipeline) Run(ctx context.Context, text string, extra ...Args) (*Result, error) {
	opts := []doc.Option{doc.WithHintLanguage(p.hintOrDefault())}
	if p.Language != "" {
		opts = append(opts, doc.WithLanguage(p.Language))
	}
	return p.RunDoc(ctx, doc.New(text, opts...), extra...)
}

// RunDoc executes every step in declared order against d. Each step's
// result is stored in the run context and the result mapping under the
// step key; the document's own cache is keyed by the operation's derived
// property, so repeated operations short-circuit to the cached value.
//
// The run either completes fully or fails with the first error: an
// unresolvable step name aborts before any further execution, and any
// operation error propagates unchanged with no partial result.
func (p *Pipeline) RunDoc(ctx context.Context, d *doc.Doc, extra ...Args) (*Result, error) {
	var args Args
	if len(extra) > 0 {
		args = extra[0]
	}

	run := NewRunContext()
	result := newResult(len(p.steps))

	for _, step := range p.steps {
		fn, err := p.registry.Resolve(step.Op)
		if err != nil {
			return nil, err
		}

		value, err := fn(ctx, d, run, step.Settings, args)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", step.Key(), err)
		}

		run.Set(step.Key(), value)
		result.set(step.Key(), value)
	}

	return result, nil
}

func (p *Pipeline) hintOrDefault() string {
	if p.HintLanguage != "" {
		return p.HintLanguage
	}
	return "en"
}
