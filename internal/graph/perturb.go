package graph

import (
	"fmt"
	"math/rand"
)

// Source supplies uniform random values in [0, 1). *rand.Rand satisfies it,
// so tests can seed the sequence.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded random source. The same seed produces the same
// perturbation outcome for the same input graph.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Perturb returns a new graph derived from g by removing each existing edge
// with probability pRemove and adding each absent node pair with probability
// pAdd. Each candidate non-edge gets exactly one Bernoulli trial. The input
// graph is never modified.
//
// With pRemove = 0 and pAdd = 0 the output edge set equals the input edge set.
func Perturb(g *Graph, pRemove, pAdd float64, src Source) (*Graph, error) {
	if pRemove < 0 || pRemove > 1 {
		return nil, fmt.Errorf("perturb: remove probability %v out of range [0, 1]", pRemove)
	}
	if pAdd < 0 || pAdd > 1 {
		return nil, fmt.Errorf("perturb: add probability %v out of range [0, 1]", pAdd)
	}

	out := New()
	nodes := g.Nodes()
	for _, name := range nodes {
		out.AddNode(name)
	}

	// Edges and nodes are visited in sorted order so a seeded source gives a
	// reproducible result.
	for _, e := range g.Edges() {
		if pRemove > 0 && src.Float64() < pRemove {
			continue
		}
		out.AddEdge(e.A, e.B)
	}

	if pAdd > 0 {
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				if g.HasEdge(nodes[i], nodes[j]) {
					continue
				}
				if src.Float64() < pAdd {
					out.AddEdge(nodes[i], nodes[j])
				}
			}
		}
	}

	return out, nil
}
