package logic

import (
	"fmt"
	"strings"
)

// Binding associates a variable with a term.
type Binding struct {
	Var  Var
	Term Term
}

// Bindings is a substitution: an ordered association list from variables to
// terms. Lookup takes the first match, and Compose appends without
// deduplicating; both are part of the resolution semantics, so the order of
// a bindings list is observable.
type Bindings []Binding

// Bind returns a substitution with the single binding {x -> t}.
func Bind(x Var, t Term) Bindings {
	return Bindings{{x, t}}
}

// Lookup returns the first binding for x.
func (bs Bindings) Lookup(x Var) (Term, bool) {
	for _, b := range bs {
		if b.Var == x {
			return b.Term, true
		}
	}
	return nil, false
}

// Apply replaces every variable bound in bs by its term, recursively.
// Unbound variables are left as-is.
func (bs Bindings) Apply(t Term) Term {
	if len(bs) == 0 {
		return t
	}
	switch t := t.(type) {
	case Var:
		if term, ok := bs.Lookup(t); ok {
			return term
		}
		return t
	case Int:
		return t
	case *Comp:
		if !t.hasVar_ {
			return t
		}
		args := make([]Term, len(t.Args))
		for i, arg := range t.Args {
			args[i] = bs.Apply(arg)
		}
		return NewComp(t.Functor, args...)
	default:
		panic(fmt.Sprintf("logic.Bindings.Apply: unhandled type %T", t))
	}
}

// ApplyGoal applies the substitution to each term of a goal. An empty goal
// is returned as-is, so a fact's nil body stays nil.
func (bs Bindings) ApplyGoal(goal []Term) []Term {
	if len(bs) == 0 || len(goal) == 0 {
		return goal
	}
	terms := make([]Term, len(goal))
	for i, t := range goal {
		terms[i] = bs.Apply(t)
	}
	return terms
}

// Compose returns a substitution equivalent to applying u1, then u2:
//
//	Compose(u1, u2).Apply(t) == u2.Apply(u1.Apply(t))
//
// Every binding of u1 has u2 applied to its term; u2's own bindings are
// appended unchanged after them. A variable bound in both lists is found
// via the transformed u1 entry, never the u2 one.
func Compose(u1, u2 Bindings) Bindings {
	if len(u1) == 0 {
		return u2
	}
	if len(u2) == 0 {
		return u1
	}
	out := make(Bindings, 0, len(u1)+len(u2))
	for _, b := range u1 {
		out = append(out, Binding{b.Var, u2.Apply(b.Term)})
	}
	return append(out, u2...)
}

func (bs Bindings) String() string {
	entries := make([]string, len(bs))
	for i, b := range bs {
		entries[i] = fmt.Sprintf("%v = %v", b.Var, b.Term)
	}
	return strings.Join(entries, ", ")
}
