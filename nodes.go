package veq

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Nodes are
// never modified after parsing.
type node struct {
	kind nodeKind

	val float64   // nodeNum
	vr  varKind   // nodeVar
	fn  *function // nodeCall

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push val
	nodeVar // push the bound value of vr

	nodeCall // apply fn to left

	nodeNeg // negate left
	nodeAdd // left plus right
	nodeSub // left minus right
	nodeMul // left times right
	nodeDiv // left divided by right
	nodePow // left raised to right
	nodeMod // remainder of left divided by right, sign of left
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

// varKind identifies one of the two runtime variables.
type varKind int8

const (
	varX varKind = iota
	varT
)

func (v varKind) name() string {
	if v == varT {
		return "t"
	}
	return "x"
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes a fully parenthesized rendering of the subtree.
func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
	case nodeVar:
		b.WriteString(n.vr.name())
	case nodeCall:
		b.WriteString(n.fn.name)
		n.left.fmt(b)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeAdd:
		n.left.fmt(b)
		b.WriteString(" + ")
		n.right.fmt(b)
	case nodeSub:
		n.left.fmt(b)
		b.WriteString(" - ")
		n.right.fmt(b)
	case nodeMul:
		n.left.fmt(b)
		b.WriteString(" * ")
		n.right.fmt(b)
	case nodeDiv:
		n.left.fmt(b)
		b.WriteString(" / ")
		n.right.fmt(b)
	case nodePow:
		n.left.fmt(b)
		b.WriteString(" ^ ")
		n.right.fmt(b)
	case nodeMod:
		n.left.fmt(b)
		b.WriteString(" % ")
		n.right.fmt(b)
	default:
		panic("veq: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
