// Package anonymize implements the privacy-preserving transformations applied
// to the patient dataset: pseudonymization, suppression, numeric perturbation,
// k-anonymity generalization, and the k-anonymity / l-diversity predicates.
//
// Transformations are column-local and row-independent, except the group
// predicates, which operate on row groups keyed by quantized
// quasi-identifiers. Threshold violations found by the predicates are results
// returned to the caller, never errors.
package anonymize

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/goanonym/internal/dataset"
)

// Bucket generalizes a value to the lower bound of its bucket:
// floor(value / width) * width.
func Bucket(value, width float64) float64 {
	return math.Floor(value/width) * width
}

// Generalize replaces each quasi-identifier value with its bucket lower
// bound, in place. The original precise values are gone afterwards; groups of
// records sharing identical bucketed quasi-identifiers form an anonymity set.
// Generalize only transforms; VerifyKAnonymity checks the group sizes.
func Generalize(ds *dataset.Dataset, widths map[string]float64) error {
	columns := make([]string, 0, len(widths))
	for col := range widths {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	for _, col := range columns {
		width := widths[col]
		if width <= 0 {
			return fmt.Errorf("generalize: bucket width for %q must be positive, got %v", col, width)
		}

		values, err := ds.Float64Column(col)
		if err != nil {
			return fmt.Errorf("generalize: %w", err)
		}
		for i, v := range values {
			ds.Rows[i][col] = Bucket(v, width)
		}
	}

	return nil
}

// KAnonymityReport is the result of a k-anonymity check. Violations are
// reported, not thrown: a failing dataset is a legitimate predicate outcome.
type KAnonymityReport struct {
	K          int
	Pass       bool
	Groups     int
	Violations []GroupViolation
}

// GroupViolation names an anonymity set smaller than k.
type GroupViolation struct {
	Key  string
	Size int
}

// VerifyKAnonymity checks that every group of records sharing identical
// quasi-identifier values has at least k members. It is a pure predicate over
// an already-generalized dataset; it does not mutate anything.
func VerifyKAnonymity(ds *dataset.Dataset, quasiIdentifiers []string, k int) (*KAnonymityReport, error) {
	if k < 1 {
		return nil, fmt.Errorf("verify k-anonymity: k must be at least 1, got %d", k)
	}

	groups, err := groupByQuasiIdentifiers(ds, quasiIdentifiers)
	if err != nil {
		return nil, fmt.Errorf("verify k-anonymity: %w", err)
	}

	report := &KAnonymityReport{
		K:      k,
		Pass:   true,
		Groups: groups.Len(),
	}

	for el := groups.Front(); el != nil; el = el.Next() {
		if len(el.Value) < k {
			report.Pass = false
			report.Violations = append(report.Violations, GroupViolation{
				Key:  el.Key,
				Size: len(el.Value),
			})
		}
	}

	return report, nil
}

// groupByQuasiIdentifiers partitions row indexes into equivalence classes
// keyed by the stringified quasi-identifier values. Group order follows first
// appearance in the dataset, so reports are deterministic.
func groupByQuasiIdentifiers(ds *dataset.Dataset, quasiIdentifiers []string) (*orderedmap.OrderedMap[string, []int], error) {
	if len(quasiIdentifiers) == 0 {
		return nil, fmt.Errorf("no quasi-identifier columns given")
	}
	for _, col := range quasiIdentifiers {
		if !ds.HasColumn(col) {
			return nil, fmt.Errorf("column %q not found in dataset", col)
		}
	}

	groups := orderedmap.NewOrderedMap[string, []int]()
	for i, row := range ds.Rows {
		key := groupKey(row, quasiIdentifiers)
		members, _ := groups.Get(key)
		groups.Set(key, append(members, i))
	}

	return groups, nil
}

// groupKey builds the equivalence class identifier for a row.
func groupKey(row dataset.Record, quasiIdentifiers []string) string {
	parts := make([]string, len(quasiIdentifiers))
	for i, col := range quasiIdentifiers {
		parts[i] = fmt.Sprintf("%s=%v", col, row[col])
	}
	return strings.Join(parts, ", ")
}
