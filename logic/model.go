// Package logic implements the term model for a restricted Prolog-like
// language, with unification and substitutions over it.
//
// A logic term can fall in one of three categories:
//
// * variable: a term that represents an unbound, yet-to-be-resolved term.
//
// * int: an atomic term holding an immutable integer value.
//
// * complex: a term that contains other terms, recursively. A complex term
// with no args is an atom.
//
// A logic program is composed of clauses of the form 'head :- term1, term2.',
// that must be read as "head holds if term1 and term2 hold". A clause with no
// terms in the body is called a fact. A program may also declare arithmetic
// functions of the form 'name(X) : body.', which are expanded like macros by
// the arithmetic evaluator.
package logic

import (
	"fmt"
	"strings"
)

// ---- Basic types

// Term is a representation of a logic term.
type Term interface {
	fmt.Stringer
	vars(seen map[Var]struct{}, xs []Var) []Var
	hasVar() bool
}

// Var is a variable term.
type Var struct {
	// Name is the identifier for a var.
	Name string
}

// Int is an atomic term representing an integer.
type Int struct {
	// Value is the (immutable) value of an int.
	Value int
}

// Comp is a complex term, representing an immutable compound term.
// A comp with no args is an atom.
type Comp struct {
	// Functor is the primary identifier of a comp.
	Functor string
	// Args is the list of terms within this term.
	Args    []Term
	hasVar_ bool
}

// Clause is the representation of a logic rule.
// Note that Clause is not a Term, so it can't be used within complex terms.
type Clause struct {
	// Head is the consequent of a clause. Must be a comp.
	Head Term
	// Body is the antecedent of a clause.
	Body    []Term
	hasVar_ bool
}

// Function is a named arithmetic definition, expanded like a macro by the
// evaluator. It is not a relation: its body is a term, not a goal.
type Function struct {
	// Name identifies the function in arithmetic expressions.
	Name string
	// Params are the formal parameters, replaced by the call args.
	Params []Var
	// Body is the arithmetic expression to evaluate.
	Body Term
}

// Program is a clause database plus its function declarations. Clause order
// determines resolution order; function names are assumed unique.
type Program struct {
	Clauses   []*Clause
	Functions []*Function
}

// ---- Public vars

var (
	// EmptyList is the atom terminating every proper list.
	EmptyList = NewAtom("[]")
)

// ---- Vars

// NewVar creates a new var.
//
// It panics if the name doesn't start with an uppercase letter or an underscore.
func NewVar(name string) Var {
	if !IsVar(name) {
		panic(fmt.Sprintf("NewVar: invalid name: %q", name))
	}
	return Var{name}
}

// ---- Compound terms

// NewAtom creates an atom, that is, a compound term with no args.
func NewAtom(name string) *Comp {
	return &Comp{Functor: name}
}

// NewComp creates a compound term.
func NewComp(functor string, args ...Term) *Comp {
	var hasVar bool
	for _, arg := range args {
		if arg.hasVar() {
			hasVar = true
			break
		}
	}
	return &Comp{Functor: functor, Args: args, hasVar_: hasVar}
}

// Indicator is a notation for a comp, usually shown as functor/arity, e.g., f/2.
type Indicator struct {
	// Name is the compound term's functor.
	Name string
	// Arity is the compound term's number of args.
	Arity int
}

// Indicator returns the functor's indicator.
func (c *Comp) Indicator() Indicator {
	return Indicator{c.Functor, len(c.Args)}
}

func (ind Indicator) String() string {
	return fmt.Sprintf("%s/%d", ind.Name, ind.Arity)
}

// ---- Lists

// Lists have no variant of their own: they are '.'/2 chains terminated by
// the '[]' atom, as produced by the parser's bracket sugar.

// NewList creates a proper list with the provided terms.
func NewList(terms ...Term) Term {
	return NewIncompleteList(terms, EmptyList)
}

// NewIncompleteList creates a list with the provided terms and tail.
func NewIncompleteList(terms []Term, tail Term) Term {
	list := tail
	for i := len(terms) - 1; i >= 0; i-- {
		list = NewComp(".", terms[i], list)
	}
	return list
}

// ---- Clauses

// NewClause returns a clause with the provided head and terms as body.
func NewClause(head Term, body ...Term) *Clause {
	var hasVar bool
	for _, term := range body {
		if term.hasVar() {
			hasVar = true
			break
		}
	}
	if !hasVar {
		hasVar = head.hasVar()
	}
	return &Clause{Head: head, Body: body, hasVar_: hasVar}
}

// NewFunction returns a function with the provided name, params and body.
func NewFunction(name string, params []Var, body Term) *Function {
	return &Function{Name: name, Params: params, Body: body}
}

// NewProgram returns a program with the provided clauses and functions.
func NewProgram(clauses []*Clause, functions ...*Function) *Program {
	return &Program{Clauses: clauses, Functions: functions}
}

// Function returns the first function declared with the given name.
func (p *Program) Function(name string) (*Function, bool) {
	for _, fn := range p.Functions {
		if fn.Name == name {
			return fn, true
		}
	}
	return nil, false
}

// ---- vars()

// Vars returns a set with the free variables of terms, in first-occurrence
// depth-first order.
func Vars(terms ...Term) []Var {
	var xs []Var
	seen := make(map[Var]struct{})
	for _, term := range terms {
		xs = term.vars(seen, xs)
	}
	return xs
}

func (t Var) vars(seen map[Var]struct{}, xs []Var) []Var {
	if _, ok := seen[t]; ok {
		return xs
	}
	seen[t] = struct{}{}
	return append(xs, t)
}

func (t Int) vars(seen map[Var]struct{}, xs []Var) []Var { return xs }

func (t *Comp) vars(seen map[Var]struct{}, xs []Var) []Var {
	if !t.hasVar_ {
		return xs
	}
	for _, arg := range t.Args {
		xs = arg.vars(seen, xs)
	}
	return xs
}

// Vars returns a set with all variables of the clause, in insertion order.
func (c *Clause) Vars() []Var {
	if !c.hasVar_ {
		return nil
	}
	seen := make(map[Var]struct{})
	var xs []Var
	xs = c.Head.vars(seen, xs)
	for _, term := range c.Body {
		xs = term.vars(seen, xs)
	}
	return xs
}

// ---- hasVar()

func (t Var) hasVar() bool     { return true }
func (t Int) hasVar() bool     { return false }
func (t *Comp) hasVar() bool   { return t.hasVar_ }
func (c *Clause) hasVar() bool { return c.hasVar_ }

// ---- Eq()

// Eq returns whether t1 and t2 are identical terms.
//
// Note that this only takes into account the structure of terms, not whether
// any binding may make them identical.
func Eq(t1, t2 Term) bool {
	switch u := t1.(type) {
	case Var:
		v, ok := t2.(Var)
		return ok && u == v
	case Int:
		v, ok := t2.(Int)
		return ok && u == v
	case *Comp:
		v, ok := t2.(*Comp)
		if !ok || u.Functor != v.Functor || len(u.Args) != len(v.Args) {
			return false
		}
		for i := range u.Args {
			if !Eq(u.Args[i], v.Args[i]) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("logic.Eq: unhandled type %T", t1))
	}
}

// ---- String()

func (t Var) String() string {
	return t.Name
}

func (t Int) String() string {
	return fmt.Sprintf("%d", t.Value)
}

func (t *Comp) String() string {
	if len(t.Args) == 0 {
		return FormatAtom(t.Functor)
	}
	if t.Functor == "." && len(t.Args) == 2 {
		return t.listString()
	}
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", t.Functor, strings.Join(args, ", "))
}

// listString renders a '.'/2 chain with bracket sugar, e.g. [a, b|Tail].
func (t *Comp) listString() string {
	var terms []string
	var term Term = t
	for {
		c, ok := term.(*Comp)
		if !ok || c.Functor != "." || len(c.Args) != 2 {
			break
		}
		terms = append(terms, c.Args[0].String())
		term = c.Args[1]
	}
	xs := strings.Join(terms, ", ")
	if Eq(term, EmptyList) {
		return fmt.Sprintf("[%s]", xs)
	}
	return fmt.Sprintf("[%s|%v]", xs, term)
}

func (c *Clause) String() string {
	head := c.Head.String()
	if len(c.Body) == 0 {
		return head + "."
	}
	body := make([]string, len(c.Body))
	for i, term := range c.Body {
		body[i] = term.String()
	}
	return fmt.Sprintf("%s :-\n  %s.", head, strings.Join(body, ",\n  "))
}

func (fn *Function) String() string {
	params := make([]string, len(fn.Params))
	for i, param := range fn.Params {
		params[i] = param.String()
	}
	return fmt.Sprintf("%s(%s) : %v.", fn.Name, strings.Join(params, ", "), fn.Body)
}
