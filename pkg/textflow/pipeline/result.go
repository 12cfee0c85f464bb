package pipeline

import (
	"bytes"
	"encoding/json"
)

// Result is the ordered mapping a run produces: one entry per step, keyed
// by step key, in declaration order.
type Result struct {
	keys   []string
	values map[string]any
}

func newResult(capacity int) *Result {
	return &Result{
		keys:   make([]string, 0, capacity),
		values: make(map[string]any, capacity),
	}
}

func (r *Result) set(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key.
func (r *Result) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the step keys in declaration order.
func (r *Result) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of entries.
func (r *Result) Len() int {
	return len(r.keys)
}

// Map returns the entries as a plain map, losing order.
func (r *Result) Map() map[string]any {
	m := make(map[string]any, len(r.values))
	for k, v := range r.values {
		m[k] = v
	}
	return m
}

// MarshalJSON encodes the result as a JSON object with keys in
// declaration order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
