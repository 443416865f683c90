package anonymize

import (
	"fmt"

	"github.com/dbsmedya/goanonym/internal/dataset"
)

// Suppress replaces value with sentinel when it exceeds threshold.
// The comparison is strictly greater-than: a value equal to the threshold
// passes through unchanged. Total for all real inputs.
func Suppress(value, threshold, sentinel float64) float64 {
	if value > threshold {
		return sentinel
	}
	return value
}

// SuppressColumn applies Suppress to every value of a numeric column in
// place. Returns the number of values replaced by the sentinel.
func SuppressColumn(ds *dataset.Dataset, column string, threshold, sentinel float64) (int, error) {
	values, err := ds.Float64Column(column)
	if err != nil {
		return 0, fmt.Errorf("suppress: %w", err)
	}

	suppressed := 0
	for i, v := range values {
		out := Suppress(v, threshold, sentinel)
		if out != v {
			suppressed++
		}
		ds.Rows[i][column] = out
	}

	return suppressed, nil
}
