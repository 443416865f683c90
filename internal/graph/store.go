package graph

import (
	"fmt"

	"github.com/dbsmedya/goanonym/internal/dataset"
)

// FromDataset builds a graph from an edge-list dataset with one edge per row.
func FromDataset(ds *dataset.Dataset, columnA, columnB string) (*Graph, error) {
	if !ds.HasColumn(columnA) {
		return nil, fmt.Errorf("column %q not found in edge dataset", columnA)
	}
	if !ds.HasColumn(columnB) {
		return nil, fmt.Errorf("column %q not found in edge dataset", columnB)
	}

	g := New()
	for i, row := range ds.Rows {
		a, okA := dataset.ToString(row[columnA])
		b, okB := dataset.ToString(row[columnB])
		if !okA || !okB {
			return nil, fmt.Errorf("row %d: edge endpoint is null", i)
		}
		g.AddEdge(a, b)
	}

	return g, nil
}

// ToDataset renders the graph as an edge-list dataset, one edge per row in
// lexical order.
func ToDataset(g *Graph, columnA, columnB string) *dataset.Dataset {
	ds := dataset.New(columnA, columnB)
	for _, e := range g.Edges() {
		ds.Append(dataset.Record{columnA: e.A, columnB: e.B})
	}
	return ds
}
