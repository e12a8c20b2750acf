package parsemaths

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringScanner(s string) io.RuneScanner { return strings.NewReader(s) }

func num(v float64) *Node { return &Node{Kind: NodeNumber, Value: v} }
func neg(n *Node) *Node   { return &Node{Kind: NodeNegative, Left: n} }

func bin(k NodeKind) func(l, r *Node) *Node {
	return func(l, r *Node) *Node { return &Node{Kind: k, Left: l, Right: r} }
}

var (
	add = bin(NodeAdd)
	sub = bin(NodeSubtract)
	mul = bin(NodeMultiply)
	div = bin(NodeDivide)
	pow = bin(NodeCaret)
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want *Node
	}{
		{"num", "1", num(1)},
		{"decimal", "2.25", num(2.25)},
		{"neg", "-1", neg(num(1))},
		{"neg-neg", "--1", neg(neg(num(1)))},
		{"add", "1+2", add(num(1), num(2))},
		{"add-left", "1+2+3", add(add(num(1), num(2)), num(3))},
		{"sub-left", "1-2-3", sub(sub(num(1), num(2)), num(3))},
		{"mul-left", "1*2*3", mul(mul(num(1), num(2)), num(3))},
		{"div-left", "1/2/3", div(div(num(1), num(2)), num(3))},
		{"mixed-left", "1-2+3", add(sub(num(1), num(2)), num(3))},
		{"pow-right", "2^3^2", pow(num(2), pow(num(3), num(2)))},
		{"add-mul", "2+3*4", add(num(2), mul(num(3), num(4)))},
		{"mul-add", "2*3+4", add(mul(num(2), num(3)), num(4))},
		{"mul-pow", "2*3^4", mul(num(2), pow(num(3), num(4)))},
		{"pow-mul", "2^3*4", mul(pow(num(2), num(3)), num(4))},
		{"group", "(2+3)*4", mul(add(num(2), num(3)), num(4))},
		{"nested", "((1))", num(1)},
		{"neg-pow", "-2^2", pow(neg(num(2)), num(2))},
		{"neg-mul", "-2*3", mul(neg(num(2)), num(3))},
		{"pow-neg", "2^-2", pow(num(2), neg(num(2)))},
		{"sub-neg", "1--1", sub(num(1), neg(num(1)))},
		{"neg-group", "-(1+2)", neg(add(num(1), num(2)))},
		{"implicit", "(2+3)(4-1)", mul(add(num(2), num(3)), sub(num(4), num(1)))},
		{"implicit-three", "(1)(2)(3)", mul(num(1), mul(num(2), num(3)))},
		{"implicit-add", "(1)(2)+3", add(mul(num(1), num(2)), num(3))},
		{"implicit-pow", "(1)(2)^3", mul(num(1), pow(num(2), num(3)))},
		{"implicit-mul", "(1)(2)*3", mul(mul(num(1), num(2)), num(3))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseString(c.src)
			require.NoError(t, err)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("parsing %q: wrong tree (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind ErrorKind
		msg  string
	}{
		{"empty", "", UnableToParse, `unable to parse "EOF"`},
		{"trailing-op", "2+", UnableToParse, `unable to parse "EOF"`},
		{"double-op", "2++3", UnableToParse, `unable to parse "+"`},
		{"leading-op", "*3", UnableToParse, `unable to parse "*"`},
		{"close-first", ")", UnableToParse, `unable to parse ")"`},
		{"empty-group", "()", UnableToParse, `unable to parse ")"`},
		{"unclosed", "(2+3", InvalidOperator, `expected ")", got "EOF"`},
		{"unopened", "2)", InvalidOperator, `expected "EOF", got ")"`},
		{"group-num", "(2)3", InvalidOperator, `expected "EOF", got "3"`},
		{"invalid-char", "@", InvalidOperator, "invalid character"},
		{"invalid-later", "1+@", InvalidOperator, "invalid character"},
		{"num-paren", "2(3)", InvalidOperator, "invalid character"},
		{"space", "1 + 2", InvalidOperator, "invalid character"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := ParseString(c.src)
			assert.Nil(t, n)
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "want *ParseError, got %v", err)
			assert.Equal(t, c.kind, perr.Kind)
			assert.Equal(t, c.msg, perr.Msg)
			assert.Equal(t, "error in evaluation: "+c.msg, perr.Error())
		})
	}
}

func TestParseErrorUnwrapsLexError(t *testing.T) {
	_, err := ParseString("12+3.4.5")
	var lerr *LexError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "number", lerr.Kind)
	assert.Equal(t, 7, lerr.Col)
}

func TestNewParserReadsFirstToken(t *testing.T) {
	_, err := NewParser(stringScanner("#"))
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, InvalidOperator, perr.Kind)

	p, err := NewParser(stringScanner("7"))
	require.NoError(t, err)
	assert.Equal(t, Token{Kind: TokenNum, Num: 7}, p.cur)
}

func TestFoldRejectsNonOperators(t *testing.T) {
	p, err := NewParser(stringScanner("(1)"))
	require.NoError(t, err)
	_, err = p.fold(num(1))
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, InvalidOperator, perr.Kind)
	assert.Equal(t, `invalid operator "("`, perr.Msg)
}

func TestNodeString(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1", "(1)"},
		{"-1", "(-[1])"},
		{"1+2*3", "([1] + [(2) * (3)])"},
		{"2^3^2", "([2] ^ [(3) ^ (2)])"},
		{"(2+3)(4-1)", "([(2) + (3)] * [(4) - (1)])"},
		{"0.5/4", "([0.5] / [4])"},
	}
	for _, c := range cases {
		n, err := ParseString(c.src)
		require.NoError(t, err, c.src)
		assert.Equal(t, c.want, n.String(), c.src)
	}
}
