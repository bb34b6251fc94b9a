package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	cube "github.com/jrwhitlock/gocube-solve"
	"github.com/jrwhitlock/gocube-solve/internal/search"
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Connect to a GoCube, snapshot its state, and solve it",
	Long: `live connects to the first GoCube found over Bluetooth, takes a
one-shot snapshot of whatever state the cube is tracked to be in, and
runs the same two-phase search as solve. It does not stay connected
to feed incremental moves back into the search.`,
	RunE: runLive,
}

func init() {
	rootCmd.AddCommand(liveCmd)
}

func runLive(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	gc, err := cube.ConnectFirst(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer gc.Close()

	fmt.Printf("Connected to %s\n", gc.DeviceName())

	if gc.IsSolved() {
		fmt.Println("Already solved")
		return nil
	}

	fc := gc.Snapshot()
	cc, err := fc.ToCubieCube()
	if err != nil {
		return fmt.Errorf("tracked state is not a legal cube: %w", err)
	}

	moves, err := search.Solve(cc, maxDepth, timeout)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	fmt.Println(cube.EncodeSolution(moves))
	return nil
}
