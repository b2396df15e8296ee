// Package solver answers queries against a logic program by SLD-resolution
// with backtracking.
//
// Resolution builds a search tree whose leaves are solutions or dead ends.
// The tree is expanded on demand, so programs with infinite search spaces
// (e.g. open-ended list generation) still answer in finite time for any
// finite number of requested solutions.
package solver

import (
	"sync"

	"github.com/rdmiranda/minilog/logic"
	"github.com/rdmiranda/minilog/parser"
)

// reportFunctor marks the synthetic goal appended to every query. Reaching
// it means every user goal was proven; its args carry the query's free
// variables and whatever they were resolved to.
const reportFunctor = "_report"

// Solver holds a program database and answers queries against it.
type Solver struct {
	// Strategy is the traversal order for solutions. Defaults to DepthFirst.
	Strategy Strategy

	program *logic.Program
}

// New returns a solver for the given program.
func New(program *logic.Program) *Solver {
	return &Solver{program: program}
}

// NewFromSource parses text as a program and returns a solver for it.
func NewFromSource(text string) (*Solver, error) {
	program, err := parser.Program(text)
	if err != nil {
		return nil, err
	}
	return New(program), nil
}

// Consult parses text as a program and appends its clauses and functions to
// the database.
func (s *Solver) Consult(text string) error {
	program, err := parser.Program(text)
	if err != nil {
		return err
	}
	s.program.Clauses = append(s.program.Clauses, program.Clauses...)
	s.program.Functions = append(s.program.Functions, program.Functions...)
	return nil
}

// Result is a single answer from a query stream.
type Result struct {
	Solution map[logic.Var]logic.Term
	Err      error
}

// Query resolves the conjunction of terms and streams its solutions in the
// solver's strategy order. The channel is closed when the search space is
// exhausted, a fatal error is reported, or the cancel function is called.
// Cancelling interrupts the search itself, so even a fruitless infinite
// search winds down. The caller must call cancel if it stops consuming the
// stream early.
func (s *Solver) Query(terms ...logic.Term) (<-chan Result, func()) {
	it := Traverse(ReportTree(s.program, terms), s.Strategy)
	stream := make(chan Result)
	done := make(chan struct{})
	it.Interrupt(done)
	go func() {
		defer close(stream)
		for it.Next() {
			solution := make(map[logic.Var]logic.Term, len(it.Solution().Bindings))
			for _, b := range it.Solution().Bindings {
				solution[b.Var] = b.Term
			}
			select {
			case stream <- Result{Solution: solution}:
			case <-done:
				return
			}
		}
		if err := it.Err(); err != nil {
			select {
			case stream <- Result{Err: err}:
			case <-done:
			}
		}
	}()
	var once sync.Once
	return stream, func() { once.Do(func() { close(done) }) }
}

// ReportTree builds the lazy search tree for a query. The goal is extended
// with a report marker wrapping each free variable of the query, such that
// the bindings accumulated on a successful path can be read off the marker
// when resolution reaches it.
func ReportTree(p *logic.Program, goal []logic.Term) Tree {
	r := &resolver{program: p}
	return r.resolve(append(goalCopy(goal), reportMarker(goal)))
}

// reportMarker wraps each free variable of the goal as '='(name, X), where
// the name is a 0-ary comp that substitution never rewrites. The live
// variable on the right accumulates the path's bindings.
func reportMarker(goal []logic.Term) *logic.Comp {
	xs := logic.Vars(goal...)
	args := make([]logic.Term, len(xs))
	for i, x := range xs {
		args[i] = logic.NewComp("=", logic.NewAtom(x.Name), x)
	}
	return logic.NewComp(reportFunctor, args...)
}

func goalCopy(goal []logic.Term) []logic.Term {
	terms := make([]logic.Term, len(goal), len(goal)+1)
	copy(terms, goal)
	return terms
}

type resolver struct {
	program *logic.Program
}

// resolve returns the search tree for a goal. Solution leaves are produced
// immediately; everything else becomes a node that expands lazily.
func (r *resolver) resolve(goal []logic.Term) Tree {
	if len(goal) > 0 {
		if c, ok := goal[0].(*logic.Comp); ok && c.Functor == reportFunctor {
			return &Solution{Bindings: unpackReport(c), Rest: goal[1:]}
		}
	}
	return NewNode(goal, func() ([]Tree, error) { return r.expand(goal) })
}

// expand produces the children of a goal node: the single continuation of a
// normalization step, or one child per clause whose head unifies with the
// first goal term. No children means the branch failed.
func (r *resolver) expand(goal []logic.Term) ([]Tree, error) {
	if len(goal) == 0 {
		return nil, nil
	}
	normalized, applied, err := normalize(r.program, goal)
	if err != nil {
		return nil, err
	}
	if applied {
		if len(normalized) == 0 {
			return nil, nil
		}
		return []Tree{r.resolve(normalized)}, nil
	}
	return r.resolveClauses(goal)
}

func (r *resolver) resolveClauses(goal []logic.Term) ([]Tree, error) {
	bound := make(map[string]bool)
	for _, x := range logic.Vars(goal...) {
		bound[x.Name] = true
	}
	var children []Tree
	for _, clause := range r.program.Clauses {
		fresh := logic.Rename(bound, clause)
		u, ok := logic.Unify(fresh.Head, goal[0])
		if !ok {
			continue
		}
		next := make([]logic.Term, 0, len(fresh.Body)+len(goal)-1)
		next = append(next, fresh.Body...)
		next = append(next, goal[1:]...)
		children = append(children, r.resolve(u.ApplyGoal(next)))
	}
	return children, nil
}

// unpackReport reads the (name, term) pairs off a report marker.
func unpackReport(marker *logic.Comp) logic.Bindings {
	bindings := make(logic.Bindings, len(marker.Args))
	for i, arg := range marker.Args {
		eq := arg.(*logic.Comp)
		name := eq.Args[0].(*logic.Comp).Functor
		bindings[i] = logic.Binding{Var: logic.Var{Name: name}, Term: eq.Args[1]}
	}
	return bindings
}
