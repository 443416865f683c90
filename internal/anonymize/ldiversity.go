package anonymize

import (
	"fmt"

	"github.com/dbsmedya/goanonym/internal/dataset"
)

// LDiversityReport is the result of an l-diversity check.
type LDiversityReport struct {
	L          int
	Pass       bool
	Groups     int
	Violations []DiversityViolation
}

// DiversityViolation names a group whose sensitive attribute carries fewer
// than l distinct values, with the observed distinct count for diagnosis.
type DiversityViolation struct {
	Key      string
	Distinct int
}

// VerifyLDiversity checks that within every group keyed by the bucketed
// quasi-identifiers, the sensitive column holds at least l distinct values.
// Pure predicate; the dataset is not mutated.
func VerifyLDiversity(ds *dataset.Dataset, quasiIdentifiers []string, sensitiveColumn string, l int) (*LDiversityReport, error) {
	if l < 1 {
		return nil, fmt.Errorf("verify l-diversity: l must be at least 1, got %d", l)
	}
	if !ds.HasColumn(sensitiveColumn) {
		return nil, fmt.Errorf("verify l-diversity: column %q not found in dataset", sensitiveColumn)
	}

	groups, err := groupByQuasiIdentifiers(ds, quasiIdentifiers)
	if err != nil {
		return nil, fmt.Errorf("verify l-diversity: %w", err)
	}

	report := &LDiversityReport{
		L:      l,
		Pass:   true,
		Groups: groups.Len(),
	}

	for el := groups.Front(); el != nil; el = el.Next() {
		distinct := make(map[string]struct{})
		for _, idx := range el.Value {
			v, _ := dataset.ToString(ds.Rows[idx][sensitiveColumn])
			distinct[v] = struct{}{}
		}

		if len(distinct) < l {
			report.Pass = false
			report.Violations = append(report.Violations, DiversityViolation{
				Key:      el.Key,
				Distinct: len(distinct),
			})
		}
	}

	return report, nil
}
