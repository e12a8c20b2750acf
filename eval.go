package parsemaths

import (
	"io"
	"math"
	"strings"
)

// Eval computes the value of the tree. Evaluation follows IEEE 754, so
// division by zero gives an infinity or NaN instead of an error, and any real
// exponent is allowed. Panics if the tree contains an invalid node, which
// Parse never produces.
func (n *Node) Eval() float64 {
	switch n.Kind {
	case NodeNumber:
		return n.Value
	case NodeNegative:
		return -n.Left.Eval()
	}
	l := n.Left.Eval()
	r := n.Right.Eval()
	switch n.Kind {
	case NodeAdd:
		return l + r
	case NodeSubtract:
		return l - r
	case NodeMultiply:
		return l * r
	case NodeDivide:
		return l / r
	case NodeCaret:
		return math.Pow(l, r)
	default:
		panic("parsemaths: invalid AST node " + n.Kind.String())
	}
}

// Evaluate parses an expression from src and returns its value. If the input
// is not a valid expression, the error is a *ParseError.
func Evaluate(src io.RuneScanner) (float64, error) {
	n, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return n.Eval(), nil
}

// EvaluateString is a shortcut to parse and evaluate a string expression.
func EvaluateString(src string) (float64, error) {
	return Evaluate(strings.NewReader(src))
}
