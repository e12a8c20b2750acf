package parsemaths

import (
	"io"
	"strings"
)

// Expr = num | Neg | Add | Sub | Mul | Div | Pow | Group | Group Group
// Group = '(' Expr ')'
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Pow = Expr '^' Expr

// Parser builds one syntax tree from a tokenizer. A Parser holds exactly one
// token of lookahead. It is not safe to use concurrently.
type Parser struct {
	scan *Tokenizer
	cur  Token
}

// NewParser creates a parser reading from src and scans the first token.
func NewParser(src io.RuneScanner) (*Parser, error) {
	p := Parser{scan: NewTokenizer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Parse parses a complete expression. The entire input must be consumed;
// any token left over after the expression is an error.
func (p *Parser) Parse() (*Node, error) {
	n, err := p.generate(PrecDefaultZero)
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != TokenEOF {
		return nil, unexpected(Token{Kind: TokenEOF}, p.cur)
	}
	return n, nil
}

// Parse is a shortcut to parse an expression from src.
func Parse(src io.RuneScanner) (*Node, error) {
	p, err := NewParser(src)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string) (*Node, error) {
	return Parse(strings.NewReader(src))
}

// advance replaces the current token with the next one from the tokenizer.
func (p *Parser) advance() error {
	tok, err := p.scan.Next()
	if err != nil {
		return lexFailure(err)
	}
	p.cur = tok
	return nil
}

// expect consumes the current token if it is want.
func (p *Parser) expect(want Token) error {
	if p.cur != want {
		return unexpected(want, p.cur)
	}
	return p.advance()
}

// generate parses an expression whose operators all bind more tightly than
// until. On return, the current token is the first one not in the
// expression.
func (p *Parser) generate(until Precedence) (*Node, error) {
	n, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind != TokenEOF && p.cur.moreBinding(until) {
		n, err = p.fold(n)
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

// parsePrimary parses a number, a negation, or a bracketed term, along with
// an implicit multiplication of bracketed terms.
func (p *Parser) parsePrimary() (*Node, error) {
	switch tok := p.cur; tok.Kind {
	case TokenNum:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Node{Kind: NodeNumber, Value: tok.Num}, nil
	case TokenSubtract:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.generate(PrecNegative)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: NodeNegative, Left: operand}, nil
	case TokenLeftParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := p.generate(PrecDefaultZero)
		if err != nil {
			return nil, err
		}
		if err := p.expect(Token{Kind: TokenRightParen}); err != nil {
			return nil, err
		}
		if p.cur.Kind == TokenLeftParen {
			// (a)(b) -> (a) * (b)
			// (a)(b)^c -> (a) * ((b)^c)
			rhs, err := p.generate(PrecMulDiv)
			if err != nil {
				return nil, err
			}
			return &Node{Kind: NodeMultiply, Left: n, Right: rhs}, nil
		}
		return n, nil
	default:
		return nil, unableToParse(tok)
	}
}

// fold consumes the current binary operator and its right operand and
// combines them with lhs.
func (p *Parser) fold(lhs *Node) (*Node, error) {
	op := p.cur
	var kind NodeKind
	switch op.Kind {
	case TokenAdd:
		kind = NodeAdd
	case TokenSubtract:
		kind = NodeSubtract
	case TokenMultiply:
		kind = NodeMultiply
	case TokenDivide:
		kind = NodeDivide
	case TokenCaret:
		kind = NodeCaret
	default:
		return nil, invalidOperator(op)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	// Left-associative operators stop at another operator of their own
	// precedence, leaving it for the loop in generate. ^ does not.
	rhs, err := p.generate(op.Precedence())
	if err != nil {
		return nil, err
	}
	return &Node{Kind: kind, Left: lhs, Right: rhs}, nil
}
