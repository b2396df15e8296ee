package solver

import (
	"github.com/rdmiranda/minilog/logic"
)

// Tree is a node of the resolution search tree. Every path from the root to
// a Solution leaf is one successful proof. Nodes are immutable once
// expanded, so subtrees may be shared between traversals.
type Tree interface {
	isTree()
}

// Solution is a terminal success node.
type Solution struct {
	// Bindings pairs each free variable of the query, in first-occurrence
	// order, with the term it was resolved to.
	Bindings logic.Bindings
	// Rest holds the goals that were left unproven. It is empty except for
	// queries whose conditions never became ground.
	Rest []logic.Term
}

// Node is an intermediate node, labeled with the goal that produced its
// children. A node without children is a dead end.
type Node struct {
	// Goal is the conjunction this node set out to prove.
	Goal []logic.Term

	expand   func() ([]Tree, error)
	children []Tree
	err      error
	expanded bool
}

func (*Solution) isTree() {}
func (*Node) isTree()     {}

// NewNode returns a node whose children are computed by expand on first
// access. A nil expand makes a dead end.
func NewNode(goal []logic.Term, expand func() ([]Tree, error)) *Node {
	return &Node{Goal: goal, expand: expand}
}

// Children expands the node on first access and memoizes the result, so the
// search space is only materialized as far as traversal reaches.
func (n *Node) Children() ([]Tree, error) {
	if !n.expanded {
		if n.expand != nil {
			n.children, n.err = n.expand()
			n.expand = nil
		}
		n.expanded = true
	}
	return n.children, n.err
}

// Strategy selects the order in which the search tree is explored.
type Strategy int

const (
	// DepthFirst explores children left to right, yielding solutions in the
	// order clauses were tried.
	DepthFirst Strategy = iota
	// BreadthFirst explores level by level, yielding solutions roughly in
	// order of proof length.
	BreadthFirst
)

func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	}
	return "unknown"
}

// Solutions iterates over the solutions of a search tree, expanding it on
// demand, so any finite prefix of an infinite solution sequence can be
// extracted. It follows the bufio.Scanner protocol:
//
//	it := solver.Traverse(tree, solver.DepthFirst)
//	for it.Next() {
//	    use(it.Solution())
//	}
//	if err := it.Err(); err != nil { ... }
type Solutions struct {
	strategy Strategy
	pending  []Tree // stack for depth-first, queue for breadth-first
	stop     <-chan struct{}
	cur      *Solution
	err      error
}

// Traverse returns an iterator over the tree's solutions in the given
// strategy's order.
func Traverse(tree Tree, strategy Strategy) *Solutions {
	return &Solutions{strategy: strategy, pending: []Tree{tree}}
}

// Interrupt makes Next return false as soon as stop is closed, even if no
// solution was found yet. It lets a caller bail out of an infinite search.
func (it *Solutions) Interrupt(stop <-chan struct{}) {
	it.stop = stop
}

// Next advances to the next solution, expanding nodes as needed. It returns
// false when the search space is exhausted, a fatal error occurs, or the
// iterator is interrupted; without an interrupt channel it may not return at
// all if the search space is infinite and holds no further solution.
func (it *Solutions) Next() bool {
	if it.err != nil {
		return false
	}
	for len(it.pending) > 0 {
		if it.stopped() {
			return false
		}
		var tree Tree
		if it.strategy == BreadthFirst {
			tree, it.pending = it.pending[0], it.pending[1:]
		} else {
			n := len(it.pending) - 1
			tree, it.pending = it.pending[n], it.pending[:n]
		}
		switch t := tree.(type) {
		case *Solution:
			it.cur = t
			return true
		case *Node:
			children, err := t.Children()
			if err != nil {
				it.err = err
				return false
			}
			if it.strategy == BreadthFirst {
				it.pending = append(it.pending, children...)
			} else {
				for i := len(children) - 1; i >= 0; i-- {
					it.pending = append(it.pending, children[i])
				}
			}
		}
	}
	return false
}

func (it *Solutions) stopped() bool {
	if it.stop == nil {
		return false
	}
	select {
	case <-it.stop:
		return true
	default:
		return false
	}
}

// Solution returns the solution reached by the last call to Next.
func (it *Solutions) Solution() *Solution {
	return it.cur
}

// Err returns the fatal error that stopped iteration, if any.
func (it *Solutions) Err() error {
	return it.err
}

// Take consumes the iterator until n solutions were produced, the search
// space is exhausted, or an error occurs.
func Take(it *Solutions, n int) ([]*Solution, error) {
	var solutions []*Solution
	for len(solutions) < n && it.Next() {
		solutions = append(solutions, it.Solution())
	}
	return solutions, it.Err()
}
