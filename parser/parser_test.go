package parser_test

import (
	"testing"

	"github.com/rdmiranda/minilog/dsl"
	"github.com/rdmiranda/minilog/logic"
	"github.com/rdmiranda/minilog/parser"
	"github.com/rdmiranda/minilog/test_helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	atom   = dsl.Atom
	int_   = dsl.Int
	var_   = dsl.Var
	comp   = dsl.Comp
	list   = dsl.List
	ilist  = dsl.IList
	clause = dsl.Clause
)

func TestTerm(t *testing.T) {
	tests := []struct {
		text string
		want logic.Term
	}{
		{"bart", atom("bart")},
		{"X", var_("X")},
		{"_tail", var_("_tail")},
		{"42", int_(42)},
		{"f(a)", comp("f", atom("a"))},
		{"sibling(homer, X)", comp("sibling", atom("homer"), var_("X"))},
		{"f( a , X )", comp("f", atom("a"), var_("X"))},
		{"plus(plus(1, 2), 3)", comp("plus", comp("plus", int_(1), int_(2)), int_(3))},
		{"[]", logic.EmptyList},
		{"[1, 2, 3]", list(int_(1), int_(2), int_(3))},
		{"[H|T]", ilist(var_("H"), var_("T"))},
		{"[a, b|Tail]", ilist(atom("a"), atom("b"), var_("Tail"))},
		{"[f(X), [1, 2]]", list(comp("f", var_("X")), list(int_(1), int_(2)))},
	}
	for _, tt := range tests {
		got, err := parser.Term(tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestTermErrors(t *testing.T) {
	tests := []string{
		"",
		")",
		"f(",
		"f()",
		"f(a",
		"f(a))",
		"[1, 2",
		"[1 | ]",
		"f(a) g(b)",
	}
	for _, text := range tests {
		_, err := parser.Term(text)
		assert.Error(t, err, "%q", text)
	}
}

func TestProgram(t *testing.T) {
	text := test_helpers.Dedent(`
        % a tiny family database
        parent(homer, bart).
        parent(homer, lisa).

        sibling(X, Y) :-
          parent(P, X),
          parent(P, Y).

        double(X) : plus(X, X).
    `)
	program, err := parser.Program(text)
	require.NoError(t, err)

	wantClauses := dsl.Clauses(
		clause(comp("parent", atom("homer"), atom("bart"))),
		clause(comp("parent", atom("homer"), atom("lisa"))),
		clause(comp("sibling", var_("X"), var_("Y")),
			comp("parent", var_("P"), var_("X")),
			comp("parent", var_("P"), var_("Y"))),
	)
	assert.Equal(t, wantClauses, program.Clauses)

	require.Len(t, program.Functions, 1)
	want := logic.NewFunction("double", dsl.Params("X"),
		comp("plus", var_("X"), var_("X")))
	assert.Equal(t, want, program.Functions[0])
}

func TestProgramListClause(t *testing.T) {
	program, err := parser.Program("head([H|T], H) :- tail(T).")
	require.NoError(t, err)
	want := clause(
		comp("head", ilist(var_("H"), var_("T")), var_("H")),
		comp("tail", var_("T")))
	require.Len(t, program.Clauses, 1)
	assert.Equal(t, want, program.Clauses[0])
}

func TestProgramErrors(t *testing.T) {
	tests := []string{
		"p(X)",               // missing '.'
		"1.",                 // int head
		"X :- q(X).",         // var head
		"p(X) :- .",          // empty body
		"p(X) q(X).",         // missing separator
		"f(1) : plus(1, 1).", // non-var function param
		"f(X) : plus(X, 1)",  // missing '.'
	}
	for _, text := range tests {
		_, err := parser.Program(text)
		assert.Error(t, err, "%q", text)
	}
}

func TestQuery(t *testing.T) {
	tests := []struct {
		text string
		want []logic.Term
	}{
		{"sibling(homer, X)", dsl.Terms(comp("sibling", atom("homer"), var_("X")))},
		{"?- sibling(homer, X).", dsl.Terms(comp("sibling", atom("homer"), var_("X")))},
		{
			"lt(X, 3), nat(X).",
			dsl.Terms(comp("lt", var_("X"), int_(3)), comp("nat", var_("X"))),
		},
		{
			"is(Y, plus(2, 3))",
			dsl.Terms(comp("is", var_("Y"), comp("plus", int_(2), int_(3)))),
		},
	}
	for _, tt := range tests {
		got, err := parser.Query(tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestQueryErrors(t *testing.T) {
	tests := []string{
		"",
		"?-",
		"p(X), ",
		"p(X). q(X)",
	}
	for _, text := range tests {
		_, err := parser.Query(text)
		assert.Error(t, err, "%q", text)
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := parser.Program("p(a).\nq(]).\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
