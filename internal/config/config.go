// Package config provides configuration structures and loading for GoAnonym.
package config

// Config represents the complete application configuration.
type Config struct {
	Store      DatabaseConfig             `yaml:"store" mapstructure:"store"`
	Dataset    DatasetConfig              `yaml:"dataset" mapstructure:"dataset"`
	Transforms map[string]TransformConfig `yaml:"transforms" mapstructure:"transforms"`
	Logging    LoggingConfig              `yaml:"logging" mapstructure:"logging"`
}

// DatabaseConfig represents the MySQL backing store connection configuration.
type DatabaseConfig struct {
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Database           string `yaml:"database" mapstructure:"database"`
	TLS                string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// DatasetConfig identifies the tables holding the synthetic patient corpus.
type DatasetConfig struct {
	Table     string `yaml:"table" mapstructure:"table"`           // patient record table
	KeyColumn string `yaml:"key_column" mapstructure:"key_column"` // primary key column (defaults to "id")
	EdgeTable string `yaml:"edge_table" mapstructure:"edge_table"` // social graph edge table
}

// TransformConfig represents a named anonymization transform definition.
// Fields are interpreted according to Type; unrelated fields are ignored.
type TransformConfig struct {
	Type string `yaml:"type" mapstructure:"type"` // pseudonymize, suppress, perturb, generalize, perturb_graph

	// pseudonymize
	NameColumn    string `yaml:"name_column,omitempty" mapstructure:"name_column"`
	DateColumn    string `yaml:"date_column,omitempty" mapstructure:"date_column"`
	TokenColumn   string `yaml:"token_column,omitempty" mapstructure:"token_column"`
	DropOriginals bool   `yaml:"drop_originals,omitempty" mapstructure:"drop_originals"`

	// suppress and perturb
	Column       string   `yaml:"column,omitempty" mapstructure:"column"`
	Threshold    float64  `yaml:"threshold,omitempty" mapstructure:"threshold"`
	Sentinel     *float64 `yaml:"sentinel,omitempty" mapstructure:"sentinel"`
	Magnitude    float64  `yaml:"magnitude,omitempty" mapstructure:"magnitude"`
	Floor        float64  `yaml:"floor,omitempty" mapstructure:"floor"`
	TargetColumn string   `yaml:"target_column,omitempty" mapstructure:"target_column"`

	// generalize and the k-anonymity / l-diversity checks
	Buckets         map[string]float64 `yaml:"buckets,omitempty" mapstructure:"buckets"`
	K               int                `yaml:"k,omitempty" mapstructure:"k"`
	L               int                `yaml:"l,omitempty" mapstructure:"l"`
	SensitiveColumn string             `yaml:"sensitive_column,omitempty" mapstructure:"sensitive_column"`

	// perturb_graph
	RemoveProbability float64 `yaml:"remove_probability,omitempty" mapstructure:"remove_probability"`
	AddProbability    float64 `yaml:"add_probability,omitempty" mapstructure:"add_probability"`
	TargetTable       string  `yaml:"target_table,omitempty" mapstructure:"target_table"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultSentinel is the suppression replacement value when none is configured.
const DefaultSentinel = -1

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Store: DatabaseConfig{
			Port:               3306,
			TLS:                "preferred",
			MaxConnections:     10,
			MaxIdleConnections: 5,
		},
		Dataset: DatasetConfig{
			Table:     "patients",
			KeyColumn: "id",
			EdgeTable: "patient_links",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// SentinelValue returns the configured suppression sentinel, falling back to
// DefaultSentinel when unset. Zero is a valid configured sentinel.
func (tc *TransformConfig) SentinelValue() float64 {
	if tc.Sentinel == nil {
		return DefaultSentinel
	}
	return *tc.Sentinel
}

// TargetColumnOr returns the configured derived column name, falling back to
// the given default when unset.
func (tc *TransformConfig) TargetColumnOr(fallback string) string {
	if tc.TargetColumn == "" {
		return fallback
	}
	return tc.TargetColumn
}
