package veq

import "strconv"

// Expr    = Term { ('+' | '-') Term }
// Term    = Unary { ('*' | '/' | '%') Unary }
// Unary   = '-' Unary | Power
// Power   = Primary [ '^' Unary ]
// Primary = num | 'x' | 't' | const | func '(' Expr ')' | '(' Expr ')'
//
// '^' is right-associative and binds tighter than unary '-', so "-2^2" is
// "-(2^2)" and "2^3^2" is "2^(3^2)". The exponent is a Unary so that "2^-3"
// parses without parentheses.

// MaxDepth is the maximum nesting depth of an expression. Negations,
// exponents, and parentheses each contribute a level; inputs that exceed the
// limit fail with a DepthError instead of exhausting the call stack.
const MaxDepth = 256

// Expr is a parsed expression that can be evaluated with an x and t binding.
// An Expr is immutable and may be shared freely between goroutines.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// vars records which of x and t the expression references.
	vars [2]bool
}

// Parse parses an equation into an Expr. The error, if any, is a LexError,
// ParseError, NameError, CallError, or DepthError; all of them implement
// InputError and report the 0-based rune column of the problem.
func Parse(src string) (*Expr, error) {
	p := parser{scan: lex(src)}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenEOF {
		return nil, &ParseError{Col: tok.pos, Expected: "end of input", Found: tok.text}
	}
	return &Expr{n: n, vars: p.vars}, nil
}

// Vars returns the names of the variables the expression references, in
// sorted order.
func (e *Expr) Vars() []string {
	var v []string
	if e.vars[varT] {
		v = append(v, "t")
	}
	if e.vars[varX] {
		v = append(v, "x")
	}
	return v
}

// String creates a fully parenthesized representation of the parsed
// expression.
func (e *Expr) String() string {
	return e.n.String()
}

type parser struct {
	scan  *lexer
	depth int
	vars  [2]bool
}

// enter counts a nesting level during recursive descent. Callers must pair
// it with leave on the same path.
func (p *parser) enter(col int) error {
	p.depth++
	if p.depth > MaxDepth {
		return &DepthError{Col: col}
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// expr parses a sequence of terms joined by + and -, left-associative.
func (p *parser) expr() (*node, error) {
	n, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		var kind nodeKind
		switch {
		case tok.kind == tokenOp && tok.text == "+":
			kind = nodeAdd
		case tok.kind == tokenOp && tok.text == "-":
			kind = nodeSub
		default:
			p.scan.push(tok)
			return n, nil
		}
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// term parses a sequence of unary productions joined by *, /, and %,
// left-associative.
func (p *parser) term() (*node, error) {
	n, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		var kind nodeKind
		switch {
		case tok.kind == tokenOp && tok.text == "*":
			kind = nodeMul
		case tok.kind == tokenOp && tok.text == "/":
			kind = nodeDiv
		case tok.kind == tokenOp && tok.text == "%":
			kind = nodeMod
		default:
			p.scan.push(tok)
			return n, nil
		}
		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// unary parses any number of leading negations applied to a power.
func (p *parser) unary() (*node, error) {
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenOp && tok.text == "-" {
		if err := p.enter(tok.pos); err != nil {
			return nil, err
		}
		defer p.leave()
		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, left: rhs}, nil
	}
	p.scan.push(tok)
	return p.power()
}

// power parses an exponentiation. The exponent recurses through unary, which
// makes ^ right-associative and lets it bind tighter than negation.
func (p *parser) power() (*node, error) {
	n, err := p.primary()
	if err != nil {
		return nil, err
	}
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenOp || tok.text != "^" {
		p.scan.push(tok)
		return n, nil
	}
	if err := p.enter(tok.pos); err != nil {
		return nil, err
	}
	defer p.leave()
	rhs, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &node{kind: nodePow, left: n, right: rhs}, nil
}

// primary parses a number, variable, constant, function call, or
// parenthesized subexpression.
func (p *parser) primary() (*node, error) {
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		// The lexer emits only digits and a dot, so the only possible
		// failure is out of range, for which ParseFloat saturates to ±Inf.
		v, _ := strconv.ParseFloat(tok.text, 64)
		return &node{kind: nodeNum, val: v}, nil
	case tokenIdent:
		switch tok.text {
		case "x":
			p.vars[varX] = true
			return &node{kind: nodeVar, vr: varX}, nil
		case "t":
			p.vars[varT] = true
			return &node{kind: nodeVar, vr: varT}, nil
		}
		if v, ok := constants[tok.text]; ok {
			// Constants fold to literals at parse time.
			return &node{kind: nodeNum, val: v}, nil
		}
		if fn := globalfuncs[tok.text]; fn != nil {
			return p.call(tok, fn)
		}
		return nil, &NameError{Col: tok.pos, Name: tok.text}
	case tokenLParen:
		if err := p.enter(tok.pos); err != nil {
			return nil, err
		}
		defer p.leave()
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		return n, p.close()
	case tokenRParen:
		return nil, &ParseError{Col: tok.pos, Expected: "expression", Found: tok.text}
	case tokenOp:
		return nil, &ParseError{Col: tok.pos, Expected: "expression", Found: tok.text}
	case tokenEOF:
		return nil, &ParseError{Col: tok.pos, Expected: "expression", Found: ""}
	default:
		panic("veq: unknown token: " + tok.String())
	}
}

// call parses the parenthesized argument of a function call.
func (p *parser) call(name lexToken, fn *function) (*node, error) {
	open, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if open.kind != tokenLParen {
		return nil, &CallError{Col: name.pos, Func: name.text}
	}
	if err := p.enter(open.pos); err != nil {
		return nil, err
	}
	defer p.leave()
	arg, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.close(); err != nil {
		return nil, err
	}
	return &node{kind: nodeCall, fn: fn, left: arg}, nil
}

// close consumes the ) ending a parenthesized subexpression.
func (p *parser) close() error {
	tok, err := p.scan.next()
	if err != nil {
		return err
	}
	if tok.kind != tokenRParen {
		return &ParseError{Col: tok.pos, Expected: `")"`, Found: tok.text}
	}
	return nil
}
