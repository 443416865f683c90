package dataset

import (
	"fmt"
	"strconv"
	"time"
)

// ToFloat64 converts an interface{} to float64.
// Supports the integer and float types the MySQL driver produces, plus
// []byte/string decimal columns.
func ToFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case []byte:
		f, err := strconv.ParseFloat(string(n), 64)
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// ToInt64 converts an interface{} to int64.
func ToInt64(v interface{}) (int64, bool) {
	switch i := v.(type) {
	case int64:
		return i, true
	case int:
		return int64(i), true
	case int32:
		return int64(i), true
	case uint64:
		return int64(i), true
	case []byte:
		n, err := strconv.ParseInt(string(i), 10, 64)
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(i, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// ToString converts an interface{} to its string form.
// Returns false for nil.
func ToString(v interface{}) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", false
	case string:
		return s, true
	case []byte:
		return string(s), true
	case time.Time:
		return s.Format("2006-01-02"), true
	default:
		return fmt.Sprintf("%v", s), true
	}
}
