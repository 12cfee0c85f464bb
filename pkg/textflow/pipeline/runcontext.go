package pipeline

// RunContext is the mutable state shared across the steps of one pipeline
// invocation. It is created empty when a run starts, receives each step's
// result under the step key as steps execute, and is discarded when the
// run completes. A RunContext is owned by exactly one run and is not
// internally locked.
type RunContext struct {
	values map[string]any
}

// NewRunContext creates an empty run context.
func NewRunContext() *RunContext {
	return &RunContext{values: make(map[string]any)}
}

// Get returns the value stored under key, if any. Steps use it to read
// the results of earlier steps.
func (rc *RunContext) Get(key string) (any, bool) {
	v, ok := rc.values[key]
	return v, ok
}

// Set stores a value under key. The engine calls it after every step;
// operations may also publish intermediate state for later steps.
func (rc *RunContext) Set(key string, value any) {
	rc.values[key] = value
}

// Len returns the number of stored entries.
func (rc *RunContext) Len() int {
	return len(rc.values)
}
