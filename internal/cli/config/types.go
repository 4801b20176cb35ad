// Package config provides configuration management for the onomast CLI.
//
// Configuration is layered: defaults, then an optional onomast.yaml
// file, then ONOMAST_* environment variables, then explicitly set CLI
// flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// LanguagePath points at the language spec file used by generation
	// commands.
	LanguagePath string `koanf:"language"`

	// StatePath is the SQLite ledger recording generation runs and the
	// names they produced.
	StatePath string `koanf:"state_path"`

	// Seed fixes the random source. Zero derives a seed from the clock.
	Seed uint64 `koanf:"seed"`

	// Pool is the default name pool when a command takes none.
	Pool string `koanf:"pool"`

	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`

	// NoLedger disables run recording.
	NoLedger bool `koanf:"no_ledger"`

	// ProjectRoot is the directory relative paths resolve against.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultLanguageFile = "language.yaml"
	DefaultStateFile    = ".onomast/ledger.db"
	DefaultOutput       = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
