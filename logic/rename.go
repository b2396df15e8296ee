package logic

import (
	"fmt"
)

// Rename returns a structurally identical clause where every variable whose
// name appears in bound is renamed to one that doesn't. The whole clause is
// renamed with a single substitution, so variables shared between head and
// body remain shared.
//
// A colliding variable v probes the candidates _0_v, _1_v, _2_v, ... in
// order and takes the first one absent from bound, which makes renaming
// deterministic.
func Rename(bound map[string]bool, c *Clause) *Clause {
	if !c.hasVar_ {
		return c
	}
	var u Bindings
	for _, x := range c.Vars() {
		if !bound[x.Name] {
			continue
		}
		u = append(u, Binding{x, freshVar(bound, x)})
	}
	if len(u) == 0 {
		return c
	}
	return NewClause(u.Apply(c.Head), u.ApplyGoal(c.Body)...)
}

func freshVar(bound map[string]bool, x Var) Var {
	for i := 0; ; i++ {
		name := fmt.Sprintf("_%d_%s", i, x.Name)
		if !bound[name] {
			return Var{name}
		}
	}
}
