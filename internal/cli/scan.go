package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	cube "github.com/jrwhitlock/gocube-solve"
	"github.com/jrwhitlock/gocube-solve/internal/cliconfig"
)

var scanTimeout time.Duration

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for nearby GoCube devices over Bluetooth",
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", cliconfig.Default().Timeout, "Scan duration")
}

func runScan(cmd *cobra.Command, args []string) error {
	fmt.Println("Scanning for GoCube devices...")

	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	devices, err := cube.Scan(ctx, scanTimeout)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(devices) == 0 {
		fmt.Println("No GoCube devices found")
		return nil
	}

	fmt.Printf("Found %d device(s):\n", len(devices))
	for _, d := range devices {
		fmt.Printf("  - %s (UUID: %s, RSSI: %d)\n", d.Name, d.UUID, d.RSSI)
	}
	return nil
}
