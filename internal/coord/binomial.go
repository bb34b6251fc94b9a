// Package coord implements the invertible cubie<->integer coordinate
// maps used by the two-phase search: twist, flip, parity, the slice
// edge coordinate FRtoBR, the corner coordinate URFtoDLF, and the
// phase-2 edge coordinates URtoUL/UBtoDF/URtoDF.
//
// Packing follows the combinatorial number system: each coordinate is
// binomialRank*factorialRankSize + lehmerCode, as described at
// http://kociemba.org/cube.htm.
package coord

// Binomial returns C(n, k), the number of k-subsets of an n-set.
func Binomial(n, k int) int {
	if n < k {
		return 0
	}
	if k > n/2 {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - i + 1) / i
	}
	return result
}
