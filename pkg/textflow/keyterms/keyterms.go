// Package keyterms surfaces the strongest term collocations of a single
// text. Sentences act as the co-occurrence unit; pairs are ranked by
// normalized pointwise mutual information.
package keyterms

import (
	"math"
	"sort"
)

// Collocation is a term pair with its association strength.
type Collocation struct {
	A, B    string
	NPMI    float64
	Support int64
}

// Counter maintains sentence-level co-occurrence counts.
type Counter struct {
	n   int64
	nx  map[string]int64
	nxy map[pair]int64
}

type pair struct {
	a, b string
}

// NewCounter creates an empty co-occurrence counter.
func NewCounter() *Counter {
	return &Counter{
		nx:  make(map[string]int64),
		nxy: make(map[pair]int64),
	}
}

// Add records one sentence's distinct terms.
func (c *Counter) Add(terms []string) {
	c.n++

	uniq := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		uniq = append(uniq, t)
	}
	sort.Strings(uniq)

	for _, t := range uniq {
		c.nx[t]++
	}
	for i := 0; i < len(uniq); i++ {
		for j := i + 1; j < len(uniq); j++ {
			c.nxy[pair{uniq[i], uniq[j]}]++
		}
	}
}

// pmi computes smoothed pointwise mutual information for a pair.
//
//	PMI(a,b) = log((N_ab + ε) * N / ((N_a + ε)(N_b + ε)))
func (c *Counter) pmi(nAB, nA, nB int64) float64 {
	const epsilon = 1.0
	if c.n == 0 {
		return 0
	}
	num := (float64(nAB) + epsilon) * float64(c.n)
	den := (float64(nA) + epsilon) * (float64(nB) + epsilon)
	return math.Log(num / den)
}

// npmi normalizes PMI into the range [-1, 1].
func (c *Counter) npmi(nAB, nA, nB int64) float64 {
	if c.n == 0 || nAB == 0 {
		return 0
	}
	pAB := (float64(nAB) + 1.0) / float64(c.n)
	logPAB := math.Log(pAB)
	if logPAB == 0 {
		return 0
	}
	return c.pmi(nAB, nA, nB) / -logPAB
}

// Top returns the k strongest collocations with at least minSupport
// co-occurrences, strongest first. Ties break lexicographically so the
// result is deterministic.
func (c *Counter) Top(k int, minSupport int64) []Collocation {
	cols := make([]Collocation, 0, len(c.nxy))
	for p, nAB := range c.nxy {
		if nAB < minSupport {
			continue
		}
		cols = append(cols, Collocation{
			A:       p.a,
			B:       p.b,
			NPMI:    c.npmi(nAB, c.nx[p.a], c.nx[p.b]),
			Support: nAB,
		})
	}

	sort.Slice(cols, func(i, j int) bool {
		if cols[i].NPMI != cols[j].NPMI {
			return cols[i].NPMI > cols[j].NPMI
		}
		if cols[i].A != cols[j].A {
			return cols[i].A < cols[j].A
		}
		return cols[i].B < cols[j].B
	})

	if k > 0 && len(cols) > k {
		cols = cols[:k]
	}
	return cols
}

// Extract is the one-shot form: it counts every sentence's terms and
// returns the top collocations.
func Extract(sentences [][]string, k int, minSupport int64) []Collocation {
	c := NewCounter()
	for _, terms := range sentences {
		c.Add(terms)
	}
	return c.Top(k, minSupport)
}
