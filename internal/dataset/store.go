package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dbsmedya/goanonym/internal/logger"
	"github.com/dbsmedya/goanonym/internal/sqlutil"
)

// Store reads and writes datasets against the MySQL backing store.
// It is used sequentially; at most one statement is in flight at a time.
type Store struct {
	db  *sql.DB
	log *logger.Logger
}

// NewStore creates a store bound to an open database handle.
func NewStore(db *sql.DB, log *logger.Logger) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &Store{db: db, log: log}, nil
}

// ReadTable reads the full table into an in-memory Dataset.
// Row order follows the table's primary key.
func (s *Store) ReadTable(ctx context.Context, table, keyColumn string) (*Dataset, error) {
	quotedTable, err := sqlutil.QuoteIdentifierSafe(table)
	if err != nil {
		return nil, fmt.Errorf("invalid table name: %w", err)
	}
	quotedKey, err := sqlutil.QuoteIdentifierSafe(keyColumn)
	if err != nil {
		return nil, fmt.Errorf("invalid key column: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY %s ASC", quotedTable, quotedKey)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get column names: %w", err)
	}

	ds := New(columns...)

	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("read interrupted: %w", err)
		}

		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		record := make(Record, len(columns))
		for i, col := range columns {
			record[col] = normalizeValue(values[i])
		}
		ds.Append(record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	s.log.Debugw("Read table into dataset", "table", table, "rows", ds.Len())

	return ds, nil
}

// BulkInsert writes all dataset rows as a single multi-row INSERT statement.
// One statement keeps a batch from being half-applied if the store is
// interrupted; the store's own transactional guarantees cover the rest.
func (s *Store) BulkInsert(ctx context.Context, table string, ds *Dataset) (int64, error) {
	if ds.Len() == 0 {
		return 0, nil
	}

	quotedTable, err := sqlutil.QuoteIdentifierSafe(table)
	if err != nil {
		return 0, fmt.Errorf("invalid table name: %w", err)
	}

	quotedCols := make([]string, len(ds.Columns))
	for i, col := range ds.Columns {
		qc, err := sqlutil.QuoteIdentifierSafe(col)
		if err != nil {
			return 0, fmt.Errorf("invalid column name: %w", err)
		}
		quotedCols[i] = qc
	}

	rowPlaceholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(ds.Columns)), ", ") + ")"
	placeholders := make([]string, ds.Len())
	args := make([]interface{}, 0, ds.Len()*len(ds.Columns))
	for i, row := range ds.Rows {
		placeholders[i] = rowPlaceholder
		for _, col := range ds.Columns {
			args = append(args, row[col])
		}
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		quotedTable,
		strings.Join(quotedCols, ", "),
		strings.Join(placeholders, ", "),
	)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("bulk insert into %s failed: %w", table, err)
	}

	affected, _ := result.RowsAffected()
	s.log.Debugw("Bulk insert complete", "table", table, "rows", affected)

	return affected, nil
}

// UpdateColumn writes one column back for all dataset rows as a single
// statement, keyed on the primary key. MySQL counts 2 affected rows per
// updated key, so the returned count is the number of dataset rows written.
func (s *Store) UpdateColumn(ctx context.Context, table, keyColumn, column string, ds *Dataset) (int64, error) {
	if ds.Len() == 0 {
		return 0, nil
	}

	quotedTable, err := sqlutil.QuoteIdentifierSafe(table)
	if err != nil {
		return 0, fmt.Errorf("invalid table name: %w", err)
	}
	quotedKey, err := sqlutil.QuoteIdentifierSafe(keyColumn)
	if err != nil {
		return 0, fmt.Errorf("invalid key column: %w", err)
	}
	quotedCol, err := sqlutil.QuoteIdentifierSafe(column)
	if err != nil {
		return 0, fmt.Errorf("invalid column name: %w", err)
	}

	placeholders := make([]string, ds.Len())
	args := make([]interface{}, 0, ds.Len()*2)
	for i, row := range ds.Rows {
		placeholders[i] = "(?, ?)"
		args = append(args, row[keyColumn], row[column])
	}

	query := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES %s ON DUPLICATE KEY UPDATE %s = VALUES(%s)",
		quotedTable,
		quotedKey,
		quotedCol,
		strings.Join(placeholders, ", "),
		quotedCol,
		quotedCol,
	)

	_, err = s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("bulk update of %s.%s failed: %w", table, column, err)
	}

	s.log.Debugw("Bulk column update complete", "table", table, "column", column, "rows", ds.Len())

	return int64(ds.Len()), nil
}

// AddColumn adds a column to the table schema. columnType must be one of the
// types in allowedColumnTypes; anything else is rejected before it reaches
// the statement text.
func (s *Store) AddColumn(ctx context.Context, table, column, columnType string) error {
	quotedTable, err := sqlutil.QuoteIdentifierSafe(table)
	if err != nil {
		return fmt.Errorf("invalid table name: %w", err)
	}
	quotedCol, err := sqlutil.QuoteIdentifierSafe(column)
	if err != nil {
		return fmt.Errorf("invalid column name: %w", err)
	}
	if !allowedColumnTypes[columnType] {
		return fmt.Errorf("column type %q is not allowed", columnType)
	}

	query := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", quotedTable, quotedCol, columnType)
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to add column %s.%s: %w", table, column, err)
	}
	return nil
}

// DropColumn removes a column from the table schema.
func (s *Store) DropColumn(ctx context.Context, table, column string) error {
	quotedTable, err := sqlutil.QuoteIdentifierSafe(table)
	if err != nil {
		return fmt.Errorf("invalid table name: %w", err)
	}
	quotedCol, err := sqlutil.QuoteIdentifierSafe(column)
	if err != nil {
		return fmt.Errorf("invalid column name: %w", err)
	}

	query := fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", quotedTable, quotedCol)
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to drop column %s.%s: %w", table, column, err)
	}
	return nil
}

// DropTable removes a table if it exists.
func (s *Store) DropTable(ctx context.Context, table string) error {
	quotedTable, err := sqlutil.QuoteIdentifierSafe(table)
	if err != nil {
		return fmt.Errorf("invalid table name: %w", err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quotedTable)
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table, err)
	}
	return nil
}

// Exec runs a raw DDL statement. Callers pass statement text assembled from
// validated identifiers only.
func (s *Store) Exec(ctx context.Context, query string) error {
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("statement failed: %w", err)
	}
	return nil
}

// allowedColumnTypes is the allow-list for AddColumn.
var allowedColumnTypes = map[string]bool{
	"DECIMAL(10,2)": true,
	"VARCHAR(64)":   true,
	"VARCHAR(255)":  true,
	"BIGINT":        true,
	"DOUBLE":        true,
}

// normalizeValue maps driver values to the types transforms work with.
// The MySQL driver returns []byte for text and decimal columns.
func normalizeValue(v interface{}) interface{} {
	switch n := v.(type) {
	case []byte:
		return string(n)
	case time.Time:
		return n.Format("2006-01-02")
	default:
		return v
	}
}
