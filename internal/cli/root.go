// Package cli implements the gocube-solve command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var dbPath string

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocube-solve",
	Short: "Kociemba two-phase Rubik's cube solver",
	Long: `gocube-solve finds a short move sequence that solves a scrambled
Rubik's cube, using Kociemba's two-phase algorithm. Scrambles are given
as 54 facelet colors; solutions come back as a quarter-turn sequence.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Solve history database path (default: ~/.gocube-solve/history.db)")
}

func getDBPath() string {
	return dbPath
}
