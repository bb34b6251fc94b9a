package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	cube "github.com/jrwhitlock/gocube-solve"
	"github.com/jrwhitlock/gocube-solve/internal/facelet"
	"github.com/jrwhitlock/gocube-solve/internal/storage"
	"github.com/jrwhitlock/gocube-solve/internal/tui"
)

var replayLast bool

var replayCmd = &cobra.Command{
	Use:   "replay [solve-id]",
	Short: "Step through a recorded solve's solution move-by-move",
	Long: `replay loads a scramble and solution from solve history and opens
an interactive terminal visualizer for stepping through the solution one
quarter-turn at a time.`,
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayLast, "last", false, "Replay the most recent solve")
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)

	var id string
	switch {
	case replayLast:
		solves, err := repo.List(1)
		if err != nil {
			return err
		}
		if len(solves) == 0 {
			return fmt.Errorf("no solves found")
		}
		id = solves[0].SolveID
	case len(args) > 0:
		id = args[0]
	default:
		return fmt.Errorf("provide a solve ID or use --last")
	}

	s, err := repo.Get(id)
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("solve not found: %s", id)
	}
	if s.Solution == nil {
		return fmt.Errorf("solve %s has no recorded solution (error %v)", id, errCodeOrNil(s.ErrorCode))
	}

	lines, err := splitNineLines(s.Scramble)
	if err != nil {
		return fmt.Errorf("stored scramble is malformed: %w", err)
	}
	fc, err := facelet.Parse(lines)
	if err != nil {
		return fmt.Errorf("stored scramble is malformed: %w", err)
	}

	moves, err := cube.DecodeSolution(*s.Solution)
	if err != nil {
		return fmt.Errorf("stored solution is malformed: %w", err)
	}

	model := tui.New(cube.FromFacelet(fc), moves)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}

func errCodeOrNil(code *int) string {
	if code == nil {
		return "none"
	}
	return strings.TrimSpace(fmt.Sprintf("%d", *code))
}
