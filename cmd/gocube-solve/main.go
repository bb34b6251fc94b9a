// Command gocube-solve solves scrambled Rubik's cubes with Kociemba's
// two-phase algorithm.
package main

import (
	"github.com/jrwhitlock/gocube-solve/internal/cli"
)

func main() {
	cli.Execute()
}
