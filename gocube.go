// Package cube provides a Go library for solving a 3x3 Rubik's cube
// with Kociemba's two-phase algorithm, plus a naive 54-sticker model
// used for scramble input, solution replay, and optionally driving a
// solve from a GoCube smart cube over Bluetooth Low Energy.
//
// # Quick Start
//
// Solve a scramble given as 54 facelet colors and print the solution
// as face letters, one letter per clockwise quarter turn ("RRR" for R'):
//
//	fc, err := facelet.Parse(lines)
//	c, err := fc.ToCubieCube()
//	moves, err := search.Solve(c, 21, 10*time.Second)
//	fmt.Println(cube.EncodeSolution(moves))
//
// # Standalone Cube Simulation
//
// The Cube type replays a solution against the original scramble
// without touching the coordinate search at all, which is what the
// replay verifier and the terminal visualizer use it for:
//
//	c := cube.NewCube()
//	c.ApplyMoves(cube.ParseMoves("F B2 L' D"))
//	fmt.Println("Solved:", c.IsSolved())
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	cube.R      // Right clockwise
//	cube.RPrime // Right counter-clockwise
//	cube.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
package cube
