package obstruction_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/guardpatrol/grid"
	"github.com/katalvlaran/guardpatrol/obstruction"
)

// BenchmarkSearch measures the trail-restricted search on a 130×130 map
// with 1, 4 and GOMAXPROCS workers.
func BenchmarkSearch(b *testing.B) {
	const n = 130
	rng := rand.New(rand.NewSource(42))
	lines := make([]string, n)
	for r := range lines {
		row := make([]byte, n)
		for c := range row {
			switch {
			case r == n-1 && c == n/2:
				row[c] = '^'
			case rng.Intn(50) == 0:
				row[c] = '#'
			default:
				row[c] = '.'
			}
		}
		lines[r] = string(row)
	}
	g, err := grid.FromLines(lines)
	if err != nil {
		b.Fatalf("setup FromLines failed: %v", err)
	}
	if _, err := obstruction.Search(g); err != nil {
		b.Skipf("seed traps the guard: %v", err)
	}

	for _, w := range []int{1, 4, 0} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = obstruction.Search(g, obstruction.WithWorkers(w))
			}
		})
	}
}
