package parsemaths

import (
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. Each node
// exclusively owns its children.
type Node struct {
	Kind NodeKind
	// Value is the value of a NodeNumber.
	Value float64
	// Left is the operand of a NodeNegative, the base of a NodeCaret, or the
	// left operand of another binary node.
	Left *Node
	// Right is the right operand of a binary node, or the exponent of a
	// NodeCaret.
	Right *Node
}

// NodeKind is the kind of a Node.
type NodeKind int8

const (
	nodeNone NodeKind = iota

	NodeNumber   // push value
	NodeNegative // evaluate left, then negate
	NodeAdd      // evaluate left, add right
	NodeSubtract // evaluate left, sub right
	NodeMultiply // evaluate left, mul right
	NodeDivide   // evaluate left, div by right
	NodeCaret    // evaluate left, exp by right
)

func (k NodeKind) String() string {
	switch k {
	case NodeNumber:
		return "Number"
	case NodeNegative:
		return "Negative"
	case NodeAdd:
		return "Add"
	case NodeSubtract:
		return "Subtract"
	case NodeMultiply:
		return "Multiply"
	case NodeDivide:
		return "Divide"
	case NodeCaret:
		return "Caret"
	default:
		return "NodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// String creates a string representation of the tree, with alternating round
// and square brackets grouping each term.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.Kind {
	case NodeNumber:
		b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case NodeNegative:
		b.WriteByte('-')
		n.Left.fmt(b, !square)
	case NodeAdd:
		n.fmtbin(b, " + ", square)
	case NodeSubtract:
		n.fmtbin(b, " - ", square)
	case NodeMultiply:
		n.fmtbin(b, " * ", square)
	case NodeDivide:
		n.fmtbin(b, " / ", square)
	case NodeCaret:
		n.fmtbin(b, " ^ ", square)
	default:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.Left != nil {
			n.Left.fmt(b, !square)
		}
		b.WriteByte('#')
		if n.Right != nil {
			n.Right.fmt(b, !square)
		}
		b.WriteByte('$')
	}
}

func (n *Node) fmtbin(b *strings.Builder, op string, square bool) {
	n.Left.fmt(b, !square)
	b.WriteString(op)
	n.Right.fmt(b, !square)
}
