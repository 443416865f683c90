package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/goanonym/internal/dataset"
)

func TestFromDataset(t *testing.T) {
	ds := dataset.New("node_a", "node_b")
	ds.Append(dataset.Record{"node_a": "p01", "node_b": "p02"})
	ds.Append(dataset.Record{"node_a": "p03", "node_b": "p01"})

	g, err := FromDataset(ds, "node_a", "node_b")
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("p01", "p03"))
}

func TestFromDataset_NullEndpoint(t *testing.T) {
	ds := dataset.New("node_a", "node_b")
	ds.Append(dataset.Record{"node_a": "p01", "node_b": nil})

	_, err := FromDataset(ds, "node_a", "node_b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "null")
}

func TestFromDataset_MissingColumn(t *testing.T) {
	ds := dataset.New("node_a")

	_, err := FromDataset(ds, "node_a", "node_b")
	assert.Error(t, err)
}

func TestToDataset_RoundTrip(t *testing.T) {
	g := New()
	g.AddEdge("p02", "p01")
	g.AddEdge("p01", "p03")

	ds := ToDataset(g, "node_a", "node_b")
	assert.Equal(t, []string{"node_a", "node_b"}, ds.Columns)
	require.Equal(t, 2, ds.Len())

	// Rows come out in lexical edge order with normalized endpoints.
	assert.Equal(t, dataset.Record{"node_a": "p01", "node_b": "p02"}, ds.Rows[0])
	assert.Equal(t, dataset.Record{"node_a": "p01", "node_b": "p03"}, ds.Rows[1])

	back, err := FromDataset(ds, "node_a", "node_b")
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}
