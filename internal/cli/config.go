package cli

import "os"

// Config holds CLI configuration
type Config struct {
	// ServerURL is the base URL of the ledger server
	ServerURL string
	// Output is the output format: text or json
	Output string
	// Verbose enables verbose output
	Verbose bool
}

// DefaultConfig returns CLI defaults, honoring environment variables
func DefaultConfig() *Config {
	cfg := &Config{
		ServerURL: "http://localhost:8080",
		Output:    "text",
	}

	if v := os.Getenv("POKERNIGHT_SERVER"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("POKERNIGHT_OUTPUT"); v != "" {
		cfg.Output = v
	}

	return cfg
}
