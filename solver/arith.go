package solver

import (
	"fmt"

	"github.com/rdmiranda/minilog/errors"
	"github.com/rdmiranda/minilog/logic"
)

// eval computes the integer value of a ground arithmetic term.
//
// Expressions are ints, plus/2, or calls to one of the program's declared
// functions. A function call substitutes the (unevaluated) args for the
// params in the function's body and evaluates the result, so recursive
// functions work, and non-ground args propagate symbolically into the body.
//
// Reaching an unbound variable or an undeclared function is a fatal error:
// the program asked to compute with something that has no value.
func eval(p *logic.Program, t logic.Term) (int, error) {
	switch t := t.(type) {
	case logic.Int:
		return t.Value, nil
	case logic.Var:
		return 0, errors.New("non-instantiated arithmetic term: %v", t)
	case *logic.Comp:
		if t.Functor == "plus" && len(t.Args) == 2 {
			a, err := eval(p, t.Args[0])
			if err != nil {
				return 0, err
			}
			b, err := eval(p, t.Args[1])
			if err != nil {
				return 0, err
			}
			return a + b, nil
		}
		return evalFunction(p, t)
	default:
		panic(fmt.Sprintf("solver.eval: unhandled type %T", t))
	}
}

func evalFunction(p *logic.Program, call *logic.Comp) (int, error) {
	fn, ok := p.Function(call.Functor)
	if !ok {
		return 0, errors.New("unknown function: %v", call.Indicator())
	}
	if len(fn.Params) != len(call.Args) {
		return 0, errors.New("function %s called as %v", fn.Name, call.Indicator())
	}
	u := make(logic.Bindings, len(fn.Params))
	for i, param := range fn.Params {
		u[i] = logic.Binding{Var: param, Term: call.Args[i]}
	}
	return eval(p, u.Apply(fn.Body))
}
