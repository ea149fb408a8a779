// Package config provides configuration management for the planimport CLI.
package config

// Defaults for the importer configuration.
const (
	// DefaultDatabase is the destination store path when none is given.
	DefaultDatabase = "produtos_bling.db"

	// DefaultTable is the destination table name.
	DefaultTable = "produtos_bling"

	// DefaultStoreType selects the destination store adapter.
	DefaultStoreType = "sqlite"

	// DefaultOutput is the output format mode for rendering commands.
	DefaultOutput = "auto"
)

// Config holds the resolved CLI configuration.
type Config struct {
	// Database is the destination store path (file stores) or database
	// name (network stores).
	Database string `koanf:"database"`

	// Table is the destination table name.
	Table string `koanf:"table"`

	// Type selects the destination store adapter.
	Type string `koanf:"type"`

	// Encoding selects the source character encoding for CSV files.
	Encoding string `koanf:"encoding"`

	// Host, Port, User, Password and Schema configure network stores.
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Schema   string `koanf:"schema"`

	// Verbose enables debug logging to stderr.
	Verbose bool `koanf:"verbose"`

	// Output is the rendering format: auto, table, csv, md or json.
	Output string `koanf:"output"`
}
