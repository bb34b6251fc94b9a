// Package cliconfig holds the small set of knobs shared by every
// gocube-solve subcommand: the search bounds Solver.java used
// (maxDepth 21, 10s timeout) and the solve-history database path.
package cliconfig

import "time"

// Config is the set of CLI-wide settings. Default() supplies the
// values the subcommands use as their flag defaults.
type Config struct {
	MaxDepth int
	Timeout  time.Duration
	DBPath   string
	Verify   bool
}

// Default returns the out-of-the-box configuration.
func Default() Config {
	return Config{
		MaxDepth: 21,
		Timeout:  10 * time.Second,
		Verify:   true,
	}
}
