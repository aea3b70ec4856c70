package veq

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

// diff finds the first in-order node of n that differs from m, or nil, nil if
// the two ASTs are equal. If any node is nodeNone, it is returned.
func (n *node) diff(m *node) (*node, *node) {
	if n == nil {
		if m != nil {
			return n, m
		}
		return nil, nil
	}
	if m == nil {
		return n, m
	}
	if n.kind == nodeNone || m.kind == nodeNone {
		return n, m
	}
	if n.kind != m.kind {
		return n, m
	}
	switch n.kind {
	case nodeNum:
		if n.val != m.val {
			return n, m
		}
	case nodeVar:
		if n.vr != m.vr {
			return n, m
		}
	case nodeCall:
		if n.fn != m.fn {
			return n, m
		}
		if d, e := n.left.diff(m.left); d != nil || e != nil {
			return d, e
		}
	case nodeNeg:
		if d, e := n.left.diff(m.left); d != nil || e != nil {
			return d, e
		}
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow, nodeMod:
		if d, e := n.left.diff(m.left); d != nil || e != nil {
			return d, e
		}
		if d, e := n.right.diff(m.right); d != nil || e != nil {
			return d, e
		}
	default:
		panic("invalid node kind " + n.kind.String())
	}
	return nil, nil
}

func num(v float64) *node { return &node{kind: nodeNum, val: v} }
func vx() *node           { return &node{kind: nodeVar, vr: varX} }
func vt() *node           { return &node{kind: nodeVar, vr: varT} }
func neg(l *node) *node   { return &node{kind: nodeNeg, left: l} }

func bin(k nodeKind, l, r *node) *node {
	return &node{kind: k, left: l, right: r}
}

func call(name string, arg *node) *node {
	return &node{kind: nodeCall, fn: globalfuncs[name], left: arg}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want *node
	}{
		{"num", "1", num(1)},
		{"decimal", "2.5", num(2.5)},
		{"x", "x", vx()},
		{"t", "t", vt()},
		{"pi", "pi", num(math.Pi)},
		{"e", "e", num(math.E)},
		{"g", "g", num(9.81)},
		{"add", "1+2", bin(nodeAdd, num(1), num(2))},
		{"add-left", "1+2+3", bin(nodeAdd, bin(nodeAdd, num(1), num(2)), num(3))},
		{"sub-left", "1-2-3", bin(nodeSub, bin(nodeSub, num(1), num(2)), num(3))},
		{"mul-over-add", "1+2*3", bin(nodeAdd, num(1), bin(nodeMul, num(2), num(3)))},
		{"mul-over-add-2", "1*2+3", bin(nodeAdd, bin(nodeMul, num(1), num(2)), num(3))},
		{"div-left", "4/5/6", bin(nodeDiv, bin(nodeDiv, num(4), num(5)), num(6))},
		{"mod", "5%3", bin(nodeMod, num(5), num(3))},
		{"mod-level", "8%3*2", bin(nodeMul, bin(nodeMod, num(8), num(3)), num(2))},
		{"pow-right", "2^3^2", bin(nodePow, num(2), bin(nodePow, num(3), num(2)))},
		{"pow-over-mul", "2*3^2", bin(nodeMul, num(2), bin(nodePow, num(3), num(2)))},
		{"neg", "-x", neg(vx())},
		{"neg-neg", "--2", neg(neg(num(2)))},
		{"neg-pow", "-2^2", neg(bin(nodePow, num(2), num(2)))},
		{"neg-pow-var", "-x^2", neg(bin(nodePow, vx(), num(2)))},
		{"pow-neg-exp", "2^-3", bin(nodePow, num(2), neg(num(3)))},
		{"neg-mul", "-2*3", bin(nodeMul, neg(num(2)), num(3))},
		{"paren", "(1+2)*3", bin(nodeMul, bin(nodeAdd, num(1), num(2)), num(3))},
		{"paren-pow", "(-2)^2", bin(nodePow, neg(num(2)), num(2))},
		{"call", "sin(x)", call("sin", vx())},
		{"call-expr", "log(x+1)", call("log", bin(nodeAdd, vx(), num(1)))},
		{"call-nested", "abs(sin(t))", call("abs", call("sin", vt()))},
		{"const-fold", "sin(pi)", call("sin", num(math.Pi))},
		{"physics", "g*t^2", bin(nodeMul, num(9.81), bin(nodePow, vt(), num(2)))},
		{"spaces", " 1 + 2 ", bin(nodeAdd, num(1), num(2))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if d, m := e.n.diff(c.want); d != nil || m != nil {
				t.Errorf("%q parsed wrong:\n\twant %v\n\tgot  %v\n\tdiffering at %v vs %v", c.src, c.want, e.n, m, d)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		pos  int
	}{
		{"empty", "", &ParseError{}, 0},
		{"unclosed", "(1+2", &ParseError{}, 4},
		{"unopened", ")", &ParseError{}, 0},
		{"unopened-after", "1+2)", &ParseError{}, 3},
		{"unknown-ident", "q", &NameError{}, 0},
		{"unknown-ident-word", "2*foo", &NameError{}, 2},
		{"bare-letter", "y", &NameError{}, 0},
		{"call-no-paren", "sin 2", &CallError{}, 0},
		{"call-eof", "sin", &CallError{}, 0},
		{"call-empty", "sin()", &ParseError{}, 4},
		{"call-unclosed", "sin(x", &ParseError{}, 5},
		{"missing-rhs", "1+", &ParseError{}, 2},
		{"missing-exp", "2^", &ParseError{}, 2},
		{"bare-op", "*2", &ParseError{}, 0},
		{"trailing-num", "1 2", &ParseError{}, 2},
		{"trailing-ident", "x x", &ParseError{}, 2},
		{"bad-char", "$", &LexError{}, 0},
		{"bad-char-mid", "1+$", &LexError{}, 2},
		{"lone-dot", "1 + .", &LexError{}, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			if err == nil {
				t.Fatalf("%q parsed to %v without error", c.src, e)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Fatalf("%q gave %#v, want a %T", c.src, err, c.err)
			}
			var ie InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%q gave %#v, which is not an InputError", c.src, err)
			}
			if ie.Pos() != c.pos {
				t.Errorf("%q gave error at column %d, want %d: %v", c.src, ie.Pos(), c.pos, err)
			}
		})
	}
}

func TestParseDepthLimit(t *testing.T) {
	deep := strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300)
	if _, err := Parse(deep); err == nil {
		t.Error("deeply parenthesized input parsed without error")
	} else if _, ok := err.(*DepthError); !ok {
		t.Errorf("deeply parenthesized input gave %#v, not *DepthError", err)
	}

	negs := strings.Repeat("-", 300) + "1"
	if _, err := Parse(negs); err == nil {
		t.Error("deeply negated input parsed without error")
	} else if _, ok := err.(*DepthError); !ok {
		t.Errorf("deeply negated input gave %#v, not *DepthError", err)
	}

	pows := strings.TrimSuffix(strings.Repeat("2^", 300), "^")
	if _, err := Parse(pows); err == nil {
		t.Error("deep exponent tower parsed without error")
	} else if _, ok := err.(*DepthError); !ok {
		t.Errorf("deep exponent tower gave %#v, not *DepthError", err)
	}

	// Nesting below the limit parses fine.
	ok := strings.Repeat("(", 100) + "x" + strings.Repeat(")", 100)
	if _, err := Parse(ok); err != nil {
		t.Errorf("nesting below the limit failed: %v", err)
	}
}

func TestVars(t *testing.T) {
	cases := []struct {
		name string
		src  string
		vars []string
	}{
		{"none", "1+2+3", nil},
		{"consts", "pi*e*g", nil},
		{"x", "x", []string{"x"}},
		{"t", "t", []string{"t"}},
		{"both", "x*t", []string{"t", "x"}},
		{"reuse", "x+x+t+x", []string{"t", "x"}},
		{"nested", "sin(cos(t))", []string{"t"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q didn't parse: %v", c.src, err)
			}
			if vars := e.Vars(); !reflect.DeepEqual(vars, c.vars) {
				t.Errorf("%q gave wrong variable names:\n\twant %q\n\tgot  %q", c.src, c.vars, vars)
			}
		})
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1+2*x", "((1) + ((2) * (x)))"},
		{"-t", "(-(t))"},
		{"sin(x)", "(sin(x))"},
		{"5%3", "((5) % (3))"},
	}
	for _, c := range cases {
		e, err := Parse(c.src)
		if err != nil {
			t.Fatalf("%q didn't parse: %v", c.src, err)
		}
		if got := e.String(); got != c.want {
			t.Errorf("%q formatted as %q, want %q", c.src, got, c.want)
		}
	}
}
