package anonymize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/goanonym/internal/dataset"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		width    float64
		expected float64
	}{
		{"age bucket width 5", 37, 5, 35},
		{"exact bucket boundary", 35, 5, 35},
		{"income bucket width 10000", 52000, 10000, 50000},
		{"zero value", 0, 5, 0},
		{"negative value floors down", -3, 5, -5},
		{"fractional value", 4.9, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Bucket(tt.value, tt.width))
		})
	}
}

func TestGeneralize(t *testing.T) {
	ds := dataset.New("id", "age", "income")
	ds.Append(dataset.Record{"id": int64(1), "age": int64(37), "income": 52000.00})
	ds.Append(dataset.Record{"id": int64(2), "age": int64(46), "income": 61500.00})
	ds.Append(dataset.Record{"id": int64(3), "age": int64(34), "income": 48200.00})

	err := Generalize(ds, map[string]float64{"age": 5, "income": 10000})
	require.NoError(t, err)

	assert.Equal(t, 35.0, ds.Rows[0]["age"])
	assert.Equal(t, 50000.0, ds.Rows[0]["income"])
	assert.Equal(t, 45.0, ds.Rows[1]["age"])
	assert.Equal(t, 60000.0, ds.Rows[1]["income"])
	assert.Equal(t, 30.0, ds.Rows[2]["age"])
	assert.Equal(t, 40000.0, ds.Rows[2]["income"])
}

func TestGeneralize_InvalidWidth(t *testing.T) {
	ds := dataset.New("age")
	ds.Append(dataset.Record{"age": int64(30)})

	err := Generalize(ds, map[string]float64{"age": 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestGeneralize_NonNumericColumn(t *testing.T) {
	ds := dataset.New("age")
	ds.Append(dataset.Record{"age": "unknown"})

	err := Generalize(ds, map[string]float64{"age": 5})
	assert.Error(t, err)
}

func TestVerifyKAnonymity_Pass(t *testing.T) {
	ds := dataset.New("age", "income")
	// Two groups of size 2 each.
	ds.Append(dataset.Record{"age": 35.0, "income": 50000.0})
	ds.Append(dataset.Record{"age": 35.0, "income": 50000.0})
	ds.Append(dataset.Record{"age": 40.0, "income": 60000.0})
	ds.Append(dataset.Record{"age": 40.0, "income": 60000.0})

	report, err := VerifyKAnonymity(ds, []string{"age", "income"}, 2)
	require.NoError(t, err)

	assert.True(t, report.Pass)
	assert.Equal(t, 2, report.Groups)
	assert.Empty(t, report.Violations)
}

func TestVerifyKAnonymity_Fail(t *testing.T) {
	ds := dataset.New("age", "income")
	ds.Append(dataset.Record{"age": 35.0, "income": 50000.0})
	ds.Append(dataset.Record{"age": 35.0, "income": 50000.0})
	// Singleton group below k=2.
	ds.Append(dataset.Record{"age": 45.0, "income": 70000.0})

	report, err := VerifyKAnonymity(ds, []string{"age", "income"}, 2)
	require.NoError(t, err)

	assert.False(t, report.Pass)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, "age=45, income=70000", report.Violations[0].Key)
	assert.Equal(t, 1, report.Violations[0].Size)
}

func TestVerifyKAnonymity_DoesNotMutate(t *testing.T) {
	ds := dataset.New("age")
	ds.Append(dataset.Record{"age": 35.0})
	before := ds.Clone()

	_, err := VerifyKAnonymity(ds, []string{"age"}, 3)
	require.NoError(t, err)

	assert.Equal(t, before.Rows, ds.Rows)
	assert.Equal(t, before.Columns, ds.Columns)
}

func TestVerifyKAnonymity_Errors(t *testing.T) {
	ds := dataset.New("age")
	ds.Append(dataset.Record{"age": 35.0})

	_, err := VerifyKAnonymity(ds, []string{"age"}, 0)
	assert.Error(t, err)

	_, err = VerifyKAnonymity(ds, []string{"zipcode"}, 2)
	assert.Error(t, err)

	_, err = VerifyKAnonymity(ds, nil, 2)
	assert.Error(t, err)
}
