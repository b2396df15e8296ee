package solver

import (
	"github.com/rdmiranda/minilog/errors"
	"github.com/rdmiranda/minilog/logic"
)

// Built-in goal forms. This set is closed: 'is' assigns the value of an
// arithmetic expression to a variable, and 'lt' is the only condition.
const (
	isFunctor = "is"
	ltFunctor = "lt"
)

// isCondition reports whether t is a condition goal (lt/2).
func isCondition(t logic.Term) bool {
	c, ok := t.(*logic.Comp)
	return ok && c.Functor == ltFunctor && len(c.Args) == 2
}

// isSymbolic reports whether t is a condition that still contains free
// variables, so it can't be decided yet.
func isSymbolic(t logic.Term) bool {
	return isCondition(t) && len(logic.Vars(t)) > 0
}

// normalize tries to rewrite a goal without consulting the clause database:
// it consumes a leading 'is', decides a leading ground condition, or defers
// leading symbolic conditions until more bindings may ground them.
//
// It returns the rewritten goal and whether any rewrite applied; when none
// does, the caller must fall back to clause resolution. An empty rewritten
// goal means the branch is dead.
func normalize(p *logic.Program, goal []logic.Term) ([]logic.Term, bool, error) {
	if len(goal) == 0 {
		return nil, false, nil
	}
	t1, rest := goal[0], goal[1:]
	c, ok := t1.(*logic.Comp)
	if !ok {
		return nil, false, nil
	}
	switch {
	case c.Functor == isFunctor:
		if len(c.Args) != 2 {
			return nil, false, errors.New("malformed operator: %v", c.Indicator())
		}
		x, ok := c.Args[0].(logic.Var)
		if !ok {
			// Not the built-in form; leave it to clause resolution.
			return nil, false, nil
		}
		value, err := eval(p, c.Args[1])
		if err != nil {
			return nil, false, err
		}
		u := logic.Bind(x, logic.Int{Value: value})
		return u.ApplyGoal(rest), true, nil

	case c.Functor == ltFunctor:
		if len(c.Args) != 2 {
			return nil, false, errors.New("malformed operator: %v", c.Indicator())
		}
		if len(logic.Vars(t1)) == 0 {
			return normalizeGroundCondition(p, c, rest)
		}
		return deferSymbolicConditions(goal), true, nil
	}
	return nil, false, nil
}

// normalizeGroundCondition decides a condition with no free variables:
// if it holds the goal continues without it, else the branch dies.
func normalizeGroundCondition(p *logic.Program, c *logic.Comp, rest []logic.Term) ([]logic.Term, bool, error) {
	a, err := eval(p, c.Args[0])
	if err != nil {
		return nil, false, err
	}
	b, err := eval(p, c.Args[1])
	if err != nil {
		return nil, false, err
	}
	if a < b {
		return rest, true, nil
	}
	return nil, true, nil
}

// deferSymbolicConditions moves the first goal that is not a symbolic
// condition in front of the maximal prefix of symbolic conditions, so that
// resolving it may bind the variables the conditions are waiting for.
//
// For query goals this always finds one: the report marker appended by
// ReportTree is never a condition, so when only symbolic conditions are
// left the marker jumps the queue and the undecided conditions surface as
// the solution's residual goals. Only a hand-built goal of nothing but
// symbolic conditions is returned unchanged, making resolution retry it
// forever.
func deferSymbolicConditions(goal []logic.Term) []logic.Term {
	i := 0
	for i < len(goal) && isSymbolic(goal[i]) {
		i++
	}
	if i == len(goal) {
		return goal
	}
	reordered := make([]logic.Term, 0, len(goal))
	reordered = append(reordered, goal[i])
	reordered = append(reordered, goal[:i]...)
	return append(reordered, goal[i+1:]...)
}
