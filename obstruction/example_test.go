// File: obstruction/example_test.go
package obstruction_test

import (
	"fmt"

	"github.com/katalvlaran/guardpatrol/grid"
	"github.com/katalvlaran/guardpatrol/obstruction"
)

// ExampleSearch lists every square where one extra wall traps the guard.
func ExampleSearch() {
	g, _ := grid.ParseString(sample)
	res, err := obstruction.Search(g, obstruction.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("tested:", res.Candidates, "loops:", res.Count())
	fmt.Println(res.Loops)

	// Output:
	// tested: 40 loops: 6
	// [(6,3) (7,6) (7,7) (8,1) (8,3) (9,7)]
}
