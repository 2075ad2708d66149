// Package random provides seeded random number generator construction.
package random

import (
	"fmt"
	"math/rand"
	"os"
	"time"
)

// NewSeeded creates a seeded random number generator.
// If seed is 0, uses current time and prints the seed for reproducibility
// when verbose is set.
func NewSeeded(seed int64, verbose bool) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
		if verbose {
			fmt.Fprintf(os.Stderr, "Using seed: %d\n", seed)
		}
	}
	return rand.New(rand.NewSource(seed))
}
