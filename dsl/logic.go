// Package dsl provides compact constructors for logic values, meant for
// tests and for embedding programs in Go code.
package dsl

import (
	"github.com/rdmiranda/minilog/logic"
)

func Terms(terms ...logic.Term) []logic.Term {
	return terms
}

func Atom(name string) *logic.Comp {
	return logic.NewAtom(name)
}

func Int(value int) logic.Int {
	return logic.Int{Value: value}
}

func Var(name string) logic.Var {
	return logic.NewVar(name)
}

func Comp(functor string, args ...logic.Term) *logic.Comp {
	return logic.NewComp(functor, args...)
}

func List(terms ...logic.Term) logic.Term {
	return logic.NewList(terms...)
}

// IList builds an incomplete list, where the last term is the tail.
func IList(terms ...logic.Term) logic.Term {
	n := len(terms)
	return logic.NewIncompleteList(terms[:n-1], terms[n-1])
}

func Clause(head logic.Term, body ...logic.Term) *logic.Clause {
	return logic.NewClause(head, body...)
}

func Clauses(clauses ...*logic.Clause) []*logic.Clause {
	return clauses
}

func Params(names ...string) []logic.Var {
	params := make([]logic.Var, len(names))
	for i, name := range names {
		params[i] = logic.NewVar(name)
	}
	return params
}

func Func(name string, params []logic.Var, body logic.Term) *logic.Function {
	return logic.NewFunction(name, params, body)
}

func Program(clauses []*logic.Clause, functions ...*logic.Function) *logic.Program {
	return logic.NewProgram(clauses, functions...)
}

func Binding(x logic.Var, t logic.Term) logic.Binding {
	return logic.Binding{Var: x, Term: t}
}

func Bindings(bindings ...logic.Binding) logic.Bindings {
	return bindings
}
