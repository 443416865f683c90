package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/goanonym/internal/dataset"
)

func init() {
	// Keep ANSI escape codes out of the rendered output under test.
	color.Disable()
}

func sampleDataset() *dataset.Dataset {
	ds := dataset.New("id", "name", "medical_expense")
	ds.Append(dataset.Record{"id": int64(1), "name": "Alice Morgan", "medical_expense": 337.38})
	ds.Append(dataset.Record{"id": int64(2), "name": "Bruno Keller", "medical_expense": 270.66})
	ds.Append(dataset.Record{"id": int64(3), "name": "Carla Jensen", "medical_expense": 408.03})
	return ds
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, sampleDataset(), 0))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Header, separator, three data rows.
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "medical_expense")
	assert.Contains(t, lines[1], "---")
	assert.Contains(t, lines[2], "Alice Morgan")
	assert.Contains(t, lines[4], "408.03")

	// All rendered lines align to the same display width.
	for _, line := range lines[1:] {
		assert.Equal(t, len(lines[0]), len(line))
	}
}

func TestRenderTable_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, sampleDataset(), 2))

	out := buf.String()
	assert.Contains(t, out, "Bruno Keller")
	assert.NotContains(t, out, "Carla Jensen")
	assert.Contains(t, out, "(2 of 3 rows)")
}

func TestRenderTable_NullCell(t *testing.T) {
	ds := dataset.New("id", "diagnosis")
	ds.Append(dataset.Record{"id": int64(1), "diagnosis": nil})

	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, ds, 0))

	assert.Contains(t, buf.String(), "NULL")
}

func TestRenderTable_EmptyDataset(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, &dataset.Dataset{}, 0))

	assert.Equal(t, "(empty dataset)\n", buf.String())
}
