package logic

import (
	"fmt"
)

// Unify returns the most general substitution that makes t1 and t2
// syntactically equal, or false if there is none.
//
// Whenever a variable faces a non-variable, the binding eliminates the
// variable side. Binding a variable to a term containing itself fails
// (occurs-check), so no infinite term is ever produced.
func Unify(t1, t2 Term) (Bindings, bool) {
	switch u := t1.(type) {
	case Var:
		return bindVar(u, t2)
	case Int:
		switch v := t2.(type) {
		case Var:
			return bindVar(v, t1)
		case Int:
			return nil, u.Value == v.Value
		case *Comp:
			return nil, false
		}
	case *Comp:
		switch v := t2.(type) {
		case Var:
			return bindVar(v, t1)
		case Int:
			return nil, false
		case *Comp:
			return unifyComps(u, v)
		}
	}
	panic(fmt.Sprintf("logic.Unify: unhandled types %T, %T", t1, t2))
}

// bindVar unifies the variable x with t.
func bindVar(x Var, t Term) (Bindings, bool) {
	if y, ok := t.(Var); ok && x == y {
		return nil, true
	}
	if occurs(x, t) {
		return nil, false
	}
	return Bind(x, t), true
}

// occurs reports whether x appears anywhere within t.
func occurs(x Var, t Term) bool {
	switch t := t.(type) {
	case Var:
		return t == x
	case *Comp:
		if !t.hasVar_ {
			return false
		}
		for _, arg := range t.Args {
			if occurs(x, arg) {
				return true
			}
		}
	}
	return false
}

// unifyComps unifies two compound terms argument by argument, left to
// right. The substitution accumulated so far is applied to both sides of
// each later pair before unifying it, which is required whenever later
// args share a variable with earlier ones.
func unifyComps(c1, c2 *Comp) (Bindings, bool) {
	if c1.Functor != c2.Functor || len(c1.Args) != len(c2.Args) {
		return nil, false
	}
	var u Bindings
	for i := range c1.Args {
		ui, ok := Unify(u.Apply(c1.Args[i]), u.Apply(c2.Args[i]))
		if !ok {
			return nil, false
		}
		u = Compose(u, ui)
	}
	return u, true
}
