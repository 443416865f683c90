package anonymize

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dbsmedya/goanonym/internal/dataset"
)

// TokenLength is the fixed length of a pseudonym token (hex-encoded SHA-256).
const TokenLength = 64

// ErrMissingIdentity is returned when a record lacks the name or birth date
// needed to derive its pseudonym. There is no canonical substitution; the
// caller gets a descriptive error instead.
var ErrMissingIdentity = errors.New("missing identifying value")

// Token derives a fixed-length opaque token from a (name, birth date) pair.
// The same input always yields the same token. The token is a keyless one-way
// hash and is not reversible.
func Token(name, birthDate string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: name is empty", ErrMissingIdentity)
	}
	if birthDate == "" {
		return "", fmt.Errorf("%w: birth date is empty", ErrMissingIdentity)
	}

	sum := sha256.Sum256([]byte(name + "|" + birthDate))
	return hex.EncodeToString(sum[:]), nil
}

// Pseudonymize adds a token column derived from the name and birth date
// columns of every record. When dropOriginals is set, the identifying columns
// are removed afterwards; retaining them alongside the token is a policy
// choice left to the caller.
func Pseudonymize(ds *dataset.Dataset, nameColumn, dateColumn, tokenColumn string, dropOriginals bool) error {
	if !ds.HasColumn(nameColumn) {
		return fmt.Errorf("column %q not found in dataset", nameColumn)
	}
	if !ds.HasColumn(dateColumn) {
		return fmt.Errorf("column %q not found in dataset", dateColumn)
	}

	ds.AddColumn(tokenColumn)

	for i, row := range ds.Rows {
		name, _ := dataset.ToString(row[nameColumn])
		date, _ := dataset.ToString(row[dateColumn])

		token, err := Token(name, date)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		row[tokenColumn] = token
	}

	if dropOriginals {
		ds.DropColumn(nameColumn)
		ds.DropColumn(dateColumn)
	}

	return nil
}
