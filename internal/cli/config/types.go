// Package config loads CLI configuration for tacticsheet. Values come
// from, in rising precedence: built-in defaults, a tacticsheet.yaml config
// file, TACTICSHEET_* environment variables, and command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Input is the coding export to convert.
	Input string `koanf:"input"`
	// Out is the workbook path to write.
	Out string `koanf:"out"`
	// Sheet names the single output sheet.
	Sheet string `koanf:"sheet"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
	// OutputFormat selects the render mode for terminal output.
	OutputFormat string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultOut    = "tactics_overview.xlsx"
	DefaultSheet  = "Tactics"
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
