package anonymize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/goanonym/internal/dataset"
)

func TestVerifyLDiversity_Pass(t *testing.T) {
	ds := dataset.New("age", "diagnosis")
	ds.Append(dataset.Record{"age": 35.0, "diagnosis": "Diabetes"})
	ds.Append(dataset.Record{"age": 35.0, "diagnosis": "Asthma"})
	ds.Append(dataset.Record{"age": 40.0, "diagnosis": "Migraine"})
	ds.Append(dataset.Record{"age": 40.0, "diagnosis": "Hypertension"})

	report, err := VerifyLDiversity(ds, []string{"age"}, "diagnosis", 2)
	require.NoError(t, err)

	assert.True(t, report.Pass)
	assert.Equal(t, 2, report.Groups)
	assert.Empty(t, report.Violations)
}

func TestVerifyLDiversity_Fail(t *testing.T) {
	ds := dataset.New("age", "diagnosis")
	ds.Append(dataset.Record{"age": 35.0, "diagnosis": "Diabetes"})
	ds.Append(dataset.Record{"age": 35.0, "diagnosis": "Asthma"})
	// Group with a single distinct sensitive value fails l=2.
	ds.Append(dataset.Record{"age": 40.0, "diagnosis": "Diabetes"})
	ds.Append(dataset.Record{"age": 40.0, "diagnosis": "Diabetes"})

	report, err := VerifyLDiversity(ds, []string{"age"}, "diagnosis", 2)
	require.NoError(t, err)

	assert.False(t, report.Pass)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, "age=40", report.Violations[0].Key)
	assert.Equal(t, 1, report.Violations[0].Distinct)
}

func TestVerifyLDiversity_GroupOrderDeterministic(t *testing.T) {
	ds := dataset.New("age", "diagnosis")
	ds.Append(dataset.Record{"age": 50.0, "diagnosis": "Diabetes"})
	ds.Append(dataset.Record{"age": 30.0, "diagnosis": "Asthma"})
	ds.Append(dataset.Record{"age": 40.0, "diagnosis": "Migraine"})

	report, err := VerifyLDiversity(ds, []string{"age"}, "diagnosis", 2)
	require.NoError(t, err)

	// Violations follow first appearance order in the dataset.
	require.Len(t, report.Violations, 3)
	assert.Equal(t, "age=50", report.Violations[0].Key)
	assert.Equal(t, "age=30", report.Violations[1].Key)
	assert.Equal(t, "age=40", report.Violations[2].Key)
}

func TestVerifyLDiversity_Errors(t *testing.T) {
	ds := dataset.New("age", "diagnosis")
	ds.Append(dataset.Record{"age": 35.0, "diagnosis": "Diabetes"})

	_, err := VerifyLDiversity(ds, []string{"age"}, "diagnosis", 0)
	assert.Error(t, err)

	_, err = VerifyLDiversity(ds, []string{"age"}, "missing", 2)
	assert.Error(t, err)

	_, err = VerifyLDiversity(ds, []string{"zipcode"}, "diagnosis", 2)
	assert.Error(t, err)
}
