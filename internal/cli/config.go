package cli

import "fmt"

const (
	DefaultDir    = "."
	DefaultOutput = "loop.md"
)

// Config holds all configuration for a findloops run.
type Config struct {
	Dir    string // directory to scan
	Output string // Markdown report path
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("no directory specified")
	}
	if c.Output == "" {
		return fmt.Errorf("no output file specified")
	}
	return nil
}
