package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jrwhitlock/gocube-solve/internal/storage"
)

var (
	historyLimit int
	historyLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded solve history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [solve-id]",
	Short: "Show a recorded solve's scramble and solution",
	RunE:  runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")
	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&historyLast, "last", false, "Show the most recent solve")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %-6s  %-5s  %s\n", "ID", "When", "Moves", "ms", "Status")
	for _, s := range solves {
		moves := "-"
		if s.MoveCount != nil {
			moves = fmt.Sprintf("%d", *s.MoveCount)
		}
		status := "ok"
		if s.ErrorCode != nil {
			status = fmt.Sprintf("Error %d", *s.ErrorCode)
		}
		fmt.Printf("%-36s  %-20s  %-6s  %-5d  %s\n",
			s.SolveID, s.CreatedAt.Format(time.RFC3339), moves, s.ElapsedMs, status)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)

	var id string
	switch {
	case historyLast:
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

	fmt.Printf("ID:       %s\n", s.SolveID)
	fmt.Printf("When:     %s\n", s.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Scramble:\n%s\n", s.Scramble)
	if s.Solution != nil {
		fmt.Printf("Solution: %s\n", *s.Solution)
	}
	if s.ErrorCode != nil {
		fmt.Printf("Status:   Error %d\n", *s.ErrorCode)
	}
	fmt.Printf("Elapsed:  %dms\n", s.ElapsedMs)
	return nil
}

func openDB() (*storage.DB, error) {
	path := getDBPath()
	if path == "" {
		return storage.OpenDefault()
	}
	return storage.Open(path)
}
