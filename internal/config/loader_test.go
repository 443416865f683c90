package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "goanonym.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, `
store:
  host: localhost
  user: root
  password: secret
  database: anonymization

dataset:
  table: patients
  edge_table: patient_links

transforms:
  expense_suppress:
    type: suppress
    column: medical_expense
    threshold: 300
  expense_perturb:
    type: perturb
    column: medical_expense
    magnitude: 25
    floor: 0.01

logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Store.Host)
	assert.Equal(t, 3306, cfg.Store.Port) // default preserved
	assert.Equal(t, "secret", cfg.Store.Password)
	assert.Equal(t, "patients", cfg.Dataset.Table)
	assert.Equal(t, "id", cfg.Dataset.KeyColumn) // default preserved
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format) // default preserved

	require.Len(t, cfg.Transforms, 2)
	assert.Equal(t, "suppress", cfg.Transforms["expense_suppress"].Type)
	assert.Equal(t, 300.0, cfg.Transforms["expense_suppress"].Threshold)
	assert.Equal(t, 25.0, cfg.Transforms["expense_perturb"].Magnitude)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/goanonym.yaml")
	assert.Error(t, err)
}

func TestLoad_EnvVarSubstitution(t *testing.T) {
	t.Setenv("GOANONYM_TEST_PASSWORD", "from-env")
	t.Setenv("GOANONYM_TEST_HOST", "db.internal")

	path := writeTempConfig(t, `
store:
  host: ${GOANONYM_TEST_HOST}
  user: root
  password: ${GOANONYM_TEST_PASSWORD}
  database: anonymization
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Store.Host)
	assert.Equal(t, "from-env", cfg.Store.Password)
}

func TestLoad_EnvVarMissingKeepsLiteral(t *testing.T) {
	path := writeTempConfig(t, `
store:
  host: localhost
  user: root
  password: ${GOANONYM_DEFINITELY_UNSET_VAR}
  database: anonymization
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "${GOANONYM_DEFINITELY_UNSET_VAR}", cfg.Store.Password)
}

func TestGetTransform(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transforms = map[string]TransformConfig{
		"expense_suppress": {Type: "suppress", Column: "medical_expense", Threshold: 300},
	}

	tc, err := cfg.GetTransform("expense_suppress")
	require.NoError(t, err)
	assert.Equal(t, "suppress", tc.Type)

	_, err = cfg.GetTransform("unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListTransforms(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transforms = map[string]TransformConfig{
		"zeta":  {Type: "suppress"},
		"alpha": {Type: "perturb"},
		"mid":   {Type: "generalize"},
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, cfg.ListTransforms())
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()

	cfg.ApplyOverrides("debug", "")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	cfg.ApplyOverrides("", "text")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestSentinelValue(t *testing.T) {
	tc := &TransformConfig{}
	assert.Equal(t, float64(DefaultSentinel), tc.SentinelValue())

	zero := 0.0
	tc.Sentinel = &zero
	assert.Equal(t, 0.0, tc.SentinelValue())
}

func TestTargetColumnOr(t *testing.T) {
	tc := &TransformConfig{}
	assert.Equal(t, "medical_expense_noisy", tc.TargetColumnOr("medical_expense_noisy"))

	tc.TargetColumn = "expense_out"
	assert.Equal(t, "expense_out", tc.TargetColumnOr("medical_expense_noisy"))
}
