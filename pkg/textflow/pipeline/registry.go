package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/textflow/pkg/textflow/doc"
	"github.com/cognicore/textflow/pkg/textflow/internalerr"
)

// Settings is the optional per-step configuration passed to an operation.
type Settings map[string]any

// Args is the open-ended bag of extra named arguments a run can forward
// to every operation. Operations ignore keys they do not understand.
type Args map[string]any

// Func is the single calling contract every operation satisfies: it
// receives the document, the run context, the step settings and the extra
// arguments, and returns any value. run, settings and extra may be nil.
type Func func(ctx context.Context, d *doc.Doc, run *RunContext, settings Settings, extra Args) (any, error)

// Registry maps operation names to their implementations. Names are
// case-sensitive. A Registry may be shared across pipelines; Register is
// a configuration-time call and must not race with Resolve.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Func
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Func)}
}

// Register inserts or overwrites the operation under name. Overwriting is
// always permitted, including for built-ins.
func (r *Registry) Register(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[name] = fn
}

// Resolve returns the operation registered under name. An absent name is
// a configuration error matching internalerr.ErrUnknownOperation.
func (r *Registry) Resolve(name string) (Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", internalerr.ErrUnknownOperation, name)
	}
	return fn, nil
}

// Names returns the sorted names of all registered operations.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy of the registry. Pipelines clone a shared default
// so caller registrations stay local.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ops := make(map[string]Func, len(r.ops))
	for name, fn := range r.ops {
		ops[name] = fn
	}
	return &Registry{ops: ops}
}
