package solver_test

import (
	"fmt"

	"github.com/rdmiranda/minilog/parser"
	"github.com/rdmiranda/minilog/solver"
)

func Example() {
	program, _ := parser.Program(`
        % len(List, N) relates a list to its length.
        len([], 0).
        len([H|T], N) :-
            len(T, M),
            is(N, plus(M, 1)).
    `)
	goal, _ := parser.Query("?- len([a, b, c], N).")

	it := solver.Traverse(solver.ReportTree(program, goal), solver.DepthFirst)
	for it.Next() {
		fmt.Println(it.Solution().Bindings)
	}
	// Output: N = 3
}
