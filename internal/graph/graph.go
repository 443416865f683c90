// Package graph provides the undirected patient link graph and its edge
// perturbation transform.
package graph

import "sort"

// Edge is an undirected edge between two named nodes, stored with the
// endpoints in lexical order so (a, b) and (b, a) are the same edge.
type Edge struct {
	A string
	B string
}

// Graph is an undirected graph over named nodes.
type Graph struct {
	nodes map[string]bool
	edges map[Edge]bool
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]bool),
		edges: make(map[Edge]bool),
	}
}

// AddNode adds a node to the graph. Adding an existing node is a no-op.
func (g *Graph) AddNode(name string) {
	g.nodes[name] = true
}

// AddEdge adds an undirected edge, creating the endpoints if needed.
// Self-loops are ignored.
func (g *Graph) AddEdge(a, b string) {
	if a == b {
		return
	}
	g.nodes[a] = true
	g.nodes[b] = true
	g.edges[normalizeEdge(a, b)] = true
}

// RemoveEdge removes an undirected edge if present.
func (g *Graph) RemoveEdge(a, b string) {
	delete(g.edges, normalizeEdge(a, b))
}

// HasEdge reports whether the edge exists, in either orientation.
func (g *Graph) HasEdge(a, b string) bool {
	return g.edges[normalizeEdge(a, b)]
}

// HasNode reports whether the node exists.
func (g *Graph) HasNode(name string) bool {
	return g.nodes[name]
}

// Nodes returns all node names in lexical order.
func (g *Graph) Nodes() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Edges returns all edges in lexical order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
	return edges
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Clone returns a structurally independent copy of the graph.
func (g *Graph) Clone() *Graph {
	out := New()
	for name := range g.nodes {
		out.nodes[name] = true
	}
	for e := range g.edges {
		out.edges[e] = true
	}
	return out
}

// Equal reports whether two graphs have identical node and edge sets.
func (g *Graph) Equal(other *Graph) bool {
	if len(g.nodes) != len(other.nodes) || len(g.edges) != len(other.edges) {
		return false
	}
	for name := range g.nodes {
		if !other.nodes[name] {
			return false
		}
	}
	for e := range g.edges {
		if !other.edges[e] {
			return false
		}
	}
	return true
}

func normalizeEdge(a, b string) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}
