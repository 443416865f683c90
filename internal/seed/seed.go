// Package seed provisions the backing store schema and loads the synthetic
// patient corpus. All data here is literal, synthetic, and safe to publish.
package seed

import (
	"context"
	"fmt"

	"github.com/dbsmedya/goanonym/internal/config"
	"github.com/dbsmedya/goanonym/internal/dataset"
	"github.com/dbsmedya/goanonym/internal/logger"
	"github.com/dbsmedya/goanonym/internal/sqlutil"
)

// Seeder provisions tables and inserts the sample corpus.
type Seeder struct {
	store *dataset.Store
	log   *logger.Logger
}

// NewSeeder creates a seeder over an open store.
func NewSeeder(store *dataset.Store, log *logger.Logger) *Seeder {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Seeder{store: store, log: log}
}

// Result reports how many rows were seeded.
type Result struct {
	PatientRows int64
	EdgeRows    int64
}

// Seed drops and recreates the patient and edge tables, then bulk-inserts the
// sample corpus. Each insert is a single multi-row statement.
func (s *Seeder) Seed(ctx context.Context, cfg *config.DatasetConfig) (*Result, error) {
	patientDDL, err := PatientTableDDL(cfg.Table)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	edgeDDL, err := EdgeTableDDL(cfg.EdgeTable)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	if err := s.store.DropTable(ctx, cfg.Table); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	if err := s.store.DropTable(ctx, cfg.EdgeTable); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	if err := s.store.Exec(ctx, patientDDL); err != nil {
		return nil, fmt.Errorf("seed: create patient table: %w", err)
	}
	if err := s.store.Exec(ctx, edgeDDL); err != nil {
		return nil, fmt.Errorf("seed: create edge table: %w", err)
	}

	result := &Result{}

	result.PatientRows, err = s.store.BulkInsert(ctx, cfg.Table, SamplePatients())
	if err != nil {
		return nil, fmt.Errorf("seed: insert patients: %w", err)
	}

	result.EdgeRows, err = s.store.BulkInsert(ctx, cfg.EdgeTable, SampleEdges())
	if err != nil {
		return nil, fmt.Errorf("seed: insert edges: %w", err)
	}

	s.log.Infow("Seed complete",
		"patients", result.PatientRows,
		"edges", result.EdgeRows,
	)

	return result, nil
}

// PatientTableDDL returns the CREATE TABLE statement for the patient table.
func PatientTableDDL(table string) (string, error) {
	quoted, err := sqlutil.QuoteIdentifierSafe(table)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
  id BIGINT NOT NULL,
  name VARCHAR(255) NOT NULL,
  birth_date DATE NOT NULL,
  country VARCHAR(64) NOT NULL,
  diagnosis VARCHAR(64) NOT NULL,
  age BIGINT NOT NULL,
  income DECIMAL(10,2) NOT NULL,
  medical_expense DECIMAL(10,2) NOT NULL,
  PRIMARY KEY (id)
)`, quoted), nil
}

// EdgeTableDDL returns the CREATE TABLE statement for the edge table.
func EdgeTableDDL(table string) (string, error) {
	quoted, err := sqlutil.QuoteIdentifierSafe(table)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
  node_a VARCHAR(64) NOT NULL,
  node_b VARCHAR(64) NOT NULL,
  PRIMARY KEY (node_a, node_b)
)`, quoted), nil
}
