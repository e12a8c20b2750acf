package parsemaths

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	num := func(v float64) Token { return Token{Kind: TokenNum, Num: v} }
	eof := Token{Kind: TokenEOF}
	cases := []struct {
		name   string
		src    string
		tokens []Token
		// col is the column of the error after tokens, or 0 if the source
		// scans without error.
		col int
	}{
		{"empty", "", []Token{eof}, 0},
		{"int", "34", []Token{num(34), eof}, 0},
		{"decimal", "34.5", []Token{num(34.5), eof}, 0},
		{"leading-zeros", "007", []Token{num(7), eof}, 0},
		{"trailing-dot", "5.", []Token{num(5), eof}, 0},
		{"long", "9876543210", []Token{num(9876543210), eof}, 0},
		{"ops", "+-*/^", []Token{{Kind: TokenAdd}, {Kind: TokenSubtract}, {Kind: TokenMultiply}, {Kind: TokenDivide}, {Kind: TokenCaret}, eof}, 0},
		{"brackets", "()", []Token{{Kind: TokenLeftParen}, {Kind: TokenRightParen}, eof}, 0},
		{"expr", "1+2.5*(3)", []Token{num(1), {Kind: TokenAdd}, num(2.5), {Kind: TokenMultiply}, {Kind: TokenLeftParen}, num(3), {Kind: TokenRightParen}, eof}, 0},
		{"neg", "-1", []Token{{Kind: TokenSubtract}, num(1), eof}, 0},
		{"close-after-num", "2)", []Token{num(2), {Kind: TokenRightParen}, eof}, 0},
		{"invalid", "@", nil, 1},
		{"invalid-later", "1+$", []Token{num(1), {Kind: TokenAdd}}, 3},
		{"space", "1 2", []Token{num(1)}, 2},
		{"two-dots", "1.2.3", nil, 4},
		{"num-paren", "2(3)", nil, 2},
		{"leading-dot", ".5", nil, 1},
		{"letters", "e", nil, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scan := NewTokenizer(strings.NewReader(c.src))
			for _, want := range c.tokens {
				got, err := scan.Next()
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
			if c.col == 0 {
				return
			}
			_, err := scan.Next()
			var lerr *LexError
			require.True(t, errors.As(err, &lerr), "want *LexError, got %v", err)
			assert.Equal(t, c.col, lerr.Pos())
		})
	}
}

func TestLexEOFRepeats(t *testing.T) {
	scan := NewTokenizer(strings.NewReader("1"))
	tok, err := scan.Next()
	require.NoError(t, err)
	assert.Equal(t, Token{Kind: TokenNum, Num: 1}, tok)
	for i := 0; i < 3; i++ {
		tok, err := scan.Next()
		require.NoError(t, err)
		assert.Equal(t, Token{Kind: TokenEOF}, tok)
	}
}

func TestLexErrorText(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"#", `invalid token at column 1: "#"`},
		{"12(", `invalid number token at column 3: "12("`},
		{"1.1.", `invalid number token at column 4: "1.1."`},
	}
	for _, c := range cases {
		_, err := NewTokenizer(strings.NewReader(c.src)).Next()
		if assert.Error(t, err, c.src) {
			assert.Equal(t, c.want, err.Error())
		}
	}
}

func TestLexOverflow(t *testing.T) {
	src := strings.Repeat("9", 400)
	_, err := NewTokenizer(strings.NewReader(src)).Next()
	var lerr *LexError
	assert.True(t, errors.As(err, &lerr))
}

func TestTokenPrecedence(t *testing.T) {
	cases := []struct {
		tok  Token
		want Precedence
	}{
		{Token{Kind: TokenAdd}, PrecAddSub},
		{Token{Kind: TokenSubtract}, PrecAddSub},
		{Token{Kind: TokenMultiply}, PrecMulDiv},
		{Token{Kind: TokenDivide}, PrecMulDiv},
		{Token{Kind: TokenCaret}, PrecPower},
		{Token{Kind: TokenNum, Num: 1}, PrecDefaultZero},
		{Token{Kind: TokenLeftParen}, PrecDefaultZero},
		{Token{Kind: TokenRightParen}, PrecDefaultZero},
		{Token{Kind: TokenEOF}, PrecDefaultZero},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.tok.Precedence(), c.tok.String())
	}
	assert.True(t, PrecDefaultZero < PrecAddSub)
	assert.True(t, PrecAddSub < PrecMulDiv)
	assert.True(t, PrecMulDiv < PrecPower)
	assert.True(t, PrecPower < PrecNegative)
}
