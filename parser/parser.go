// Package parser turns source text into logic programs, goals and terms,
// with a hand-written rune scanner and recursive descent.
//
// The grammar, informally:
//
//	program  := (clause | function)*
//	clause   := term '.' | term ':-' terms '.'
//	function := name '(' vars ')' ':' term '.'
//	query    := ['?-'] terms ['.']
//	term     := var | int | atom | name '(' terms ')' | list
//	list     := '[' ']' | '[' terms ('|' term)? ']'
//
// Atoms and functor names start with a lowercase letter, variables with an
// uppercase letter or '_', and integers are unsigned digit sequences.
// Comments run from '%' to the end of the line.
package parser

import (
	"strconv"
	"strings"

	"github.com/rdmiranda/minilog/errors"
	"github.com/rdmiranda/minilog/logic"
	"github.com/rdmiranda/minilog/runes"
)

// Program parses text as a sequence of clauses and function definitions.
func Program(text string) (*logic.Program, error) {
	p := newParser(text)
	program := &logic.Program{}
	for {
		p.skipWhitespace()
		if p.isEOF() {
			return program, nil
		}
		clause, fn, err := p.rule()
		if err != nil {
			return nil, err
		}
		if fn != nil {
			program.Functions = append(program.Functions, fn)
		} else {
			program.Clauses = append(program.Clauses, clause)
		}
	}
}

// Query parses text as a conjunction of terms. A leading '?-' and a
// trailing '.' are both optional.
func Query(text string) ([]logic.Term, error) {
	p := newParser(text)
	p.skipWhitespace()
	if p.peek() == '?' {
		p.next()
		if err := p.expect('-'); err != nil {
			return nil, err
		}
	}
	terms, err := p.terms()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.peek() == '.' {
		p.next()
		p.skipWhitespace()
	}
	if !p.isEOF() {
		return nil, p.errorf("unexpected character %q after query", p.peek())
	}
	return terms, nil
}

// Term parses text as a single term.
func Term(text string) (logic.Term, error) {
	p := newParser(text)
	p.skipWhitespace()
	term, err := p.term()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if !p.isEOF() {
		return nil, p.errorf("unexpected character %q after term", p.peek())
	}
	return term, nil
}

type parser struct {
	chars []rune
	pos   int
}

func newParser(text string) *parser {
	return &parser{chars: []rune(text)}
}

const eof = rune(0)

func (p *parser) peek() rune {
	if p.pos >= len(p.chars) {
		return eof
	}
	return p.chars[p.pos]
}

func (p *parser) next() rune {
	ch := p.peek()
	if ch != eof {
		p.pos++
	}
	return ch
}

func (p *parser) isEOF() bool {
	return p.pos >= len(p.chars)
}

// errorf builds an error pointing at the current position.
func (p *parser) errorf(format string, args ...interface{}) error {
	line, col := 1, 1
	for _, ch := range p.chars[:p.pos] {
		if ch == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	args = append([]interface{}{line, col}, args...)
	return errors.New("line %d, column %d: "+format, args...)
}

func (p *parser) skipWhitespace() {
	for {
		ch := p.peek()
		switch {
		case ch == '%':
			for p.peek() != '\n' && !p.isEOF() {
				p.next()
			}
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			p.next()
		default:
			return
		}
	}
}

func (p *parser) expect(want rune) error {
	if p.peek() != want {
		return p.errorf("expected %q, got %q", want, p.peek())
	}
	p.next()
	return nil
}

// rule parses one clause or function definition, up to its final '.'.
func (p *parser) rule() (*logic.Clause, *logic.Function, error) {
	head, err := p.term()
	if err != nil {
		return nil, nil, err
	}
	if _, ok := head.(*logic.Comp); !ok {
		return nil, nil, p.errorf("clause head must be an atom or compound term, got %v", head)
	}
	p.skipWhitespace()
	switch p.peek() {
	case '.':
		p.next()
		return logic.NewClause(head), nil, nil
	case ':':
		p.next()
		if p.peek() == '-' {
			p.next()
			clause, err := p.clauseBody(head)
			return clause, nil, err
		}
		fn, err := p.functionBody(head.(*logic.Comp))
		return nil, fn, err
	default:
		return nil, nil, p.errorf("expected '.', ':-' or ':' after rule head, got %q", p.peek())
	}
}

func (p *parser) clauseBody(head logic.Term) (*logic.Clause, error) {
	p.skipWhitespace()
	body, err := p.terms()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if err := p.expect('.'); err != nil {
		return nil, err
	}
	return logic.NewClause(head, body...), nil
}

func (p *parser) functionBody(head *logic.Comp) (*logic.Function, error) {
	params := make([]logic.Var, len(head.Args))
	for i, arg := range head.Args {
		x, ok := arg.(logic.Var)
		if !ok {
			return nil, p.errorf("function parameters must be variables, got %v", arg)
		}
		params[i] = x
	}
	p.skipWhitespace()
	body, err := p.term()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if err := p.expect('.'); err != nil {
		return nil, err
	}
	return logic.NewFunction(head.Functor, params, body), nil
}

// terms parses a nonempty comma-separated sequence of terms.
func (p *parser) terms() ([]logic.Term, error) {
	var terms []logic.Term
	for {
		p.skipWhitespace()
		term, err := p.term()
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
		p.skipWhitespace()
		if p.peek() != ',' {
			return terms, nil
		}
		p.next()
	}
}

func (p *parser) term() (logic.Term, error) {
	ch := p.peek()
	switch {
	case runes.IsDigit(ch):
		return p.int()
	case runes.IsVarStart(ch):
		return logic.NewVar(p.ident()), nil
	case ch == '[':
		return p.list()
	case runes.IsAtomStart(ch):
		name := p.ident()
		if p.peek() != '(' {
			return logic.NewAtom(name), nil
		}
		p.next()
		args, err := p.terms()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return logic.NewComp(name, args...), nil
	case ch == eof:
		return nil, p.errorf("unexpected end of input")
	default:
		return nil, p.errorf("unexpected character %q", ch)
	}
}

func (p *parser) ident() string {
	var b strings.Builder
	b.WriteRune(p.next())
	for runes.IsIdent(p.peek()) {
		b.WriteRune(p.next())
	}
	return b.String()
}

func (p *parser) int() (logic.Term, error) {
	var b strings.Builder
	for runes.IsDigit(p.peek()) {
		b.WriteRune(p.next())
	}
	value, err := strconv.Atoi(b.String())
	if err != nil {
		return nil, p.errorf("invalid integer %q: %v", b.String(), err)
	}
	return logic.Int{Value: value}, nil
}

// list parses bracket sugar into a '.'/2 chain: [a, b] and [H|T] become
// .(a, .(b, [])) and .(H, T).
func (p *parser) list() (logic.Term, error) {
	p.next() // '['
	p.skipWhitespace()
	if p.peek() == ']' {
		p.next()
		return logic.EmptyList, nil
	}
	terms, err := p.terms()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	tail := logic.Term(logic.EmptyList)
	if p.peek() == '|' {
		p.next()
		p.skipWhitespace()
		tail, err = p.term()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
	}
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	return logic.NewIncompleteList(terms, tail), nil
}
