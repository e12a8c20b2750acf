package parsemaths

import "strconv"

// Token is one lexical unit of an expression. Tokens compare with ==.
type Token struct {
	// Kind is the kind of token.
	Kind TokenKind
	// Num is the value of a TokenNum. It is always non-negative; a leading
	// minus is the unary operator, not part of the number.
	Num float64
}

// TokenKind is the kind of a Token.
type TokenKind int8

const (
	tokenNone TokenKind = iota

	TokenNum
	TokenAdd
	TokenSubtract
	TokenMultiply
	TokenDivide
	TokenCaret
	TokenLeftParen
	TokenRightParen
	// TokenEOF indicates the end of the input.
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenNum:
		return "Num"
	case TokenAdd:
		return "Add"
	case TokenSubtract:
		return "Subtract"
	case TokenMultiply:
		return "Multiply"
	case TokenDivide:
		return "Divide"
	case TokenCaret:
		return "Caret"
	case TokenLeftParen:
		return "LeftParen"
	case TokenRightParen:
		return "RightParen"
	case TokenEOF:
		return "EOF"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// String formats the token the way it would appear in the input, or EOF.
func (t Token) String() string {
	switch t.Kind {
	case TokenNum:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case TokenAdd:
		return "+"
	case TokenSubtract:
		return "-"
	case TokenMultiply:
		return "*"
	case TokenDivide:
		return "/"
	case TokenCaret:
		return "^"
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenEOF:
		return "EOF"
	default:
		return t.Kind.String()
	}
}

// Precedence is the binding power of an operator. Greater is more binding.
type Precedence int8

const (
	// PrecDefaultZero is the threshold for parsing an entire expression.
	// Tokens which are not operators have this precedence, so they never
	// extend an expression.
	PrecDefaultZero Precedence = iota
	PrecAddSub
	PrecMulDiv
	PrecPower
	// PrecNegative is the precedence of unary minus, which binds more tightly
	// than any binary operator. "-2^2" is "(-2)^2".
	PrecNegative
)

// Precedence returns the binding power of the token as a binary operator.
func (t Token) Precedence() Precedence {
	switch t.Kind {
	case TokenAdd, TokenSubtract:
		return PrecAddSub
	case TokenMultiply, TokenDivide:
		return PrecMulDiv
	case TokenCaret:
		return PrecPower
	default:
		return PrecDefaultZero
	}
}

// rightAssoc is whether the token is a right-associative operator.
func (t Token) rightAssoc() bool {
	return t.Kind == TokenCaret
}

// moreBinding reports whether t, as a binary operator, binds more tightly
// than an expression being parsed at precedence than.
func (t Token) moreBinding(than Precedence) bool {
	p := t.Precedence()
	if p != than {
		return p > than
	}
	return t.rightAssoc()
}
