package solver

import (
	"strings"
	"testing"

	"github.com/rdmiranda/minilog/dsl"
	"github.com/rdmiranda/minilog/logic"
	"github.com/rdmiranda/minilog/test_helpers"

	"github.com/google/go-cmp/cmp"
)

var (
	atom  = dsl.Atom
	int_  = dsl.Int
	var_  = dsl.Var
	comp  = dsl.Comp
	terms = dsl.Terms
)

func arithProgram() *logic.Program {
	return dsl.Program(nil,
		dsl.Func("double", dsl.Params("X"), comp("plus", var_("X"), var_("X"))),
		dsl.Func("inc", dsl.Params("X"), comp("plus", var_("X"), int_(1))))
}

func TestEval(t *testing.T) {
	program := arithProgram()
	tests := []struct {
		term logic.Term
		want int
	}{
		{int_(42), 42},
		{comp("plus", int_(2), int_(3)), 5},
		{comp("plus", comp("plus", int_(1), int_(2)), int_(4)), 7},
		{comp("double", int_(21)), 42},
		{comp("inc", comp("double", int_(3))), 7},
		{comp("double", comp("inc", int_(0))), 2},
	}
	for _, test := range tests {
		got, err := eval(program, test.term)
		if err != nil {
			t.Errorf("eval(%v): got err: %v", test.term, err)
			continue
		}
		if got != test.want {
			t.Errorf("eval(%v) = %d != %d", test.term, got, test.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	program := arithProgram()
	tests := []struct {
		term logic.Term
		want string
	}{
		{var_("X"), "non-instantiated"},
		{comp("plus", int_(1), var_("X")), "non-instantiated"},
		{comp("times", int_(2), int_(3)), "unknown function"},
		{comp("double", int_(1), int_(2)), "called as"},
		// Args are substituted unevaluated, so a var smuggled through a
		// function body is still a fatal error.
		{comp("double", var_("X")), "non-instantiated"},
	}
	for _, test := range tests {
		_, err := eval(program, test.term)
		if err == nil {
			t.Errorf("eval(%v): want error, got none", test.term)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("eval(%v): error %q does not mention %q", test.term, err, test.want)
		}
	}
}

func TestNormalizeIs(t *testing.T) {
	program := arithProgram()
	goal := terms(
		comp("is", var_("Y"), comp("plus", int_(2), int_(3))),
		comp("q", var_("Y"), var_("Z")))
	got, applied, err := normalize(program, goal)
	if err != nil {
		t.Fatalf("got err: %v", err)
	}
	if !applied {
		t.Fatal("normalization did not apply")
	}
	want := terms(comp("q", int_(5), var_("Z")))
	if diff := cmp.Diff(want, got, test_helpers.IgnoreUnexported); diff != "" {
		t.Errorf("(-want, +got)%s", diff)
	}
}

func TestNormalizeGroundCondition(t *testing.T) {
	program := arithProgram()
	rest := comp("q", atom("a"))
	tests := []struct {
		cond *logic.Comp
		want []logic.Term
	}{
		{comp("lt", int_(2), int_(3)), terms(rest)},
		{comp("lt", int_(3), int_(2)), nil},
		{comp("lt", int_(3), int_(3)), nil},
		{comp("lt", comp("double", int_(1)), int_(3)), terms(rest)},
	}
	for _, test := range tests {
		got, applied, err := normalize(program, terms(test.cond, rest))
		if err != nil {
			t.Errorf("normalize(%v): got err: %v", test.cond, err)
			continue
		}
		if !applied {
			t.Errorf("normalize(%v): did not apply", test.cond)
			continue
		}
		if diff := cmp.Diff(test.want, got, test_helpers.IgnoreUnexported); diff != "" {
			t.Errorf("normalize(%v): (-want, +got)%s", test.cond, diff)
		}
	}
}

func TestNormalizeSymbolicConditions(t *testing.T) {
	program := arithProgram()
	goal := terms(
		comp("lt", var_("X"), var_("Y")),
		comp("lt", var_("Y"), int_(9)),
		comp("q", var_("X")),
		comp("r", var_("Y")))
	got, applied, err := normalize(program, goal)
	if err != nil {
		t.Fatalf("got err: %v", err)
	}
	if !applied {
		t.Fatal("normalization did not apply")
	}
	// The first goal that may produce bindings jumps the queue of symbolic
	// conditions.
	want := terms(
		comp("q", var_("X")),
		comp("lt", var_("X"), var_("Y")),
		comp("lt", var_("Y"), int_(9)),
		comp("r", var_("Y")))
	if diff := cmp.Diff(want, got, test_helpers.IgnoreUnexported); diff != "" {
		t.Errorf("(-want, +got)%s", diff)
	}
}

func TestNormalizeAllSymbolic(t *testing.T) {
	program := arithProgram()
	goal := terms(
		comp("lt", var_("X"), var_("Y")),
		comp("lt", var_("Y"), var_("Z")))
	got, applied, err := normalize(program, goal)
	if err != nil {
		t.Fatalf("got err: %v", err)
	}
	if !applied {
		t.Fatal("normalization did not apply")
	}
	if diff := cmp.Diff(goal, got, test_helpers.IgnoreUnexported); diff != "" {
		t.Errorf("goal should be unchanged: (-want, +got)%s", diff)
	}
}

func TestNormalizeNoChange(t *testing.T) {
	program := arithProgram()
	tests := [][]logic.Term{
		terms(comp("q", var_("X"))),
		terms(atom("done")),
		// 'is' with a non-variable left side is not the built-in form.
		terms(comp("is", int_(1), int_(2))),
	}
	for _, goal := range tests {
		_, applied, err := normalize(program, goal)
		if err != nil {
			t.Errorf("normalize(%v): got err: %v", goal, err)
			continue
		}
		if applied {
			t.Errorf("normalize(%v): should not apply", goal)
		}
	}
}

func TestNormalizeMalformedOperator(t *testing.T) {
	program := arithProgram()
	tests := [][]logic.Term{
		terms(comp("lt", int_(1))),
		terms(comp("lt", int_(1), int_(2), int_(3))),
		terms(comp("is", var_("X"))),
	}
	for _, goal := range tests {
		_, _, err := normalize(program, goal)
		if err == nil {
			t.Errorf("normalize(%v): want error, got none", goal)
		}
	}
}
