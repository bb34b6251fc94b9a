package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	cube "github.com/jrwhitlock/gocube-solve"
	"github.com/jrwhitlock/gocube-solve/internal/cliconfig"
	"github.com/jrwhitlock/gocube-solve/internal/facelet"
	"github.com/jrwhitlock/gocube-solve/internal/search"
	"github.com/jrwhitlock/gocube-solve/internal/storage"
	"github.com/jrwhitlock/gocube-solve/internal/verify"
)

var defaultConfig = cliconfig.Default()

var (
	maxDepth int
	timeout  time.Duration
	noVerify bool
	noRecord bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <input> <output>",
	Short: "Solve a scramble given as a 54-facelet grid",
	Long: `solve reads a 9-line facelet grid from input, searches for a
solution with Kociemba's two-phase algorithm, and writes the solution
(or an Error N token) to output.`,
	Args: cobra.ExactArgs(2),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&maxDepth, "max-depth", defaultConfig.MaxDepth, "Maximum solution length in face turns (a half turn counts as one)")
	solveCmd.Flags().DurationVar(&timeout, "timeout", defaultConfig.Timeout, "Search time budget")
	solveCmd.Flags().BoolVar(&noVerify, "no-verify", !defaultConfig.Verify, "Skip the replay verification pass")
	solveCmd.Flags().BoolVar(&noRecord, "no-record", false, "Don't save this solve to history")
}

func runSolve(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	lines, err := splitNineLines(string(raw))
	if err != nil {
		return writeErrorToken(outputPath, 1)
	}

	fc, err := facelet.Parse(lines)
	if err != nil {
		return writeErrorToken(outputPath, 1)
	}

	cc, err := fc.ToCubieCube()
	if err != nil {
		return writeErrorToken(outputPath, 1)
	}

	started := time.Now()
	moves, solveErr := search.Solve(cc, maxDepth, timeout)
	elapsed := time.Since(started)

	if solveErr != nil {
		var se *search.SolveError
		code := 7
		if errors.As(solveErr, &se) {
			code = int(se.Code)
		}
		recordSolve(lines, nil, &code, elapsed)
		return writeErrorToken(outputPath, code)
	}

	if !noVerify {
		if err := verify.Solution(fc, moves); err != nil {
			recordSolve(lines, nil, intPtr(7), elapsed)
			return writeErrorToken(outputPath, 7)
		}
	}

	solution := cube.EncodeSolution(moves)
	if err := os.WriteFile(outputPath, []byte(solution+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	recordSolve(lines, &solution, nil, elapsed)
	fmt.Printf("Solved in %d moves (%s)\n", len(moves), elapsed.Round(time.Millisecond))
	return nil
}

func intPtr(v int) *int { return &v }

func writeErrorToken(outputPath string, code int) error {
	return os.WriteFile(outputPath, []byte(fmt.Sprintf("Error %d\n", code)), 0644)
}

func splitNineLines(s string) ([9]string, error) {
	var lines [9]string
	raw := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	var trimmed []string
	for _, l := range raw {
		if strings.TrimSpace(l) == "" && len(trimmed) >= 9 {
			continue
		}
		trimmed = append(trimmed, l)
	}
	if len(trimmed) < 9 {
		return lines, fmt.Errorf("expected 9 lines, got %d", len(trimmed))
	}
	for i := 0; i < 9; i++ {
		lines[i] = trimmed[i]
	}
	return lines, nil
}

func recordSolve(lines [9]string, solution *string, errorCode *int, elapsed time.Duration) {
	if noRecord {
		return
	}
	db, err := openDB()
	if err != nil {
		return
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	var moveCount *int
	if solution != nil {
		n := len([]rune(*solution))
		moveCount = &n
	}
	scramble := strings.Join(lines[:], "\n")
	_, _ = repo.Record(storage.Solve{
		Scramble:  scramble,
		Solution:  solution,
		ErrorCode: errorCode,
		MaxDepth:  maxDepth,
		TimeoutMs: timeout.Milliseconds(),
		ElapsedMs: elapsed.Milliseconds(),
		MoveCount: moveCount,
	})
}
