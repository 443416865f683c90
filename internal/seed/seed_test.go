package seed

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/goanonym/internal/config"
	"github.com/dbsmedya/goanonym/internal/dataset"
)

func TestSamplePatients(t *testing.T) {
	ds := SamplePatients()

	assert.Equal(t, PatientColumns, ds.Columns)
	require.Equal(t, 10, ds.Len())

	assert.Equal(t, "Alice Morgan", ds.Rows[0]["name"])
	assert.Equal(t, 337.38, ds.Rows[0]["medical_expense"])
	assert.Equal(t, 270.66, ds.Rows[1]["medical_expense"])
	assert.Equal(t, 408.03, ds.Rows[2]["medical_expense"])

	// Identity pairs are unique across the corpus.
	seen := make(map[string]bool)
	for _, row := range ds.Rows {
		key := fmt.Sprintf("%v|%v", row["name"], row["birth_date"])
		assert.False(t, seen[key], "duplicate identity %s", key)
		seen[key] = true
	}
}

func TestSyntheticPatients(t *testing.T) {
	ds := SyntheticPatients(150)
	require.Equal(t, 150, ds.Len())

	seen := make(map[string]bool)
	for i, row := range ds.Rows {
		key := fmt.Sprintf("%v|%v", row["name"], row["birth_date"])
		assert.False(t, seen[key], "row %d duplicates identity %s", i, key)
		seen[key] = true

		_, ok := dataset.ToFloat64(row["medical_expense"])
		assert.True(t, ok, "row %d expense not numeric", i)
	}

	// Deterministic between calls.
	again := SyntheticPatients(150)
	assert.Equal(t, ds.Rows[42], again.Rows[42])
}

func TestSampleEdges(t *testing.T) {
	ds := SampleEdges()

	assert.Equal(t, []string{"node_a", "node_b"}, ds.Columns)
	require.Equal(t, 10, ds.Len())

	seen := make(map[string]bool)
	for _, row := range ds.Rows {
		key := fmt.Sprintf("%v-%v", row["node_a"], row["node_b"])
		assert.False(t, seen[key], "duplicate edge %s", key)
		seen[key] = true
		assert.NotEqual(t, row["node_a"], row["node_b"])
	}
}

func TestPatientTableDDL(t *testing.T) {
	ddl, err := PatientTableDDL("patients")
	require.NoError(t, err)

	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS `patients`")
	assert.Contains(t, ddl, "medical_expense DECIMAL(10,2)")
	assert.Contains(t, ddl, "PRIMARY KEY (id)")

	_, err = PatientTableDDL("patients; DROP TABLE x")
	assert.Error(t, err)
}

func TestEdgeTableDDL(t *testing.T) {
	ddl, err := EdgeTableDDL("patient_links")
	require.NoError(t, err)

	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS `patient_links`")
	assert.Contains(t, ddl, "PRIMARY KEY (node_a, node_b)")

	_, err = EdgeTableDDL("bad`table")
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := dataset.NewStore(db, nil)
	require.NoError(t, err)

	mock.ExpectExec("DROP TABLE IF EXISTS `patients`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DROP TABLE IF EXISTS `patient_links`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS `patients`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS `patient_links`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO `patients`").
		WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectExec("INSERT INTO `patient_links`").
		WillReturnResult(sqlmock.NewResult(0, 10))

	seeder := NewSeeder(store, nil)
	result, err := seeder.Seed(context.Background(), &config.DatasetConfig{
		Table:     "patients",
		KeyColumn: "id",
		EdgeTable: "patient_links",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), result.PatientRows)
	assert.Equal(t, int64(10), result.EdgeRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_CreateFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := dataset.NewStore(db, nil)
	require.NoError(t, err)

	mock.ExpectExec("DROP TABLE IF EXISTS `patients`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DROP TABLE IF EXISTS `patient_links`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS `patients`").
		WillReturnError(fmt.Errorf("permission denied"))

	seeder := NewSeeder(store, nil)
	_, err = seeder.Seed(context.Background(), &config.DatasetConfig{
		Table:     "patients",
		KeyColumn: "id",
		EdgeTable: "patient_links",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create patient table")
}
