package parsemaths

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Tokenizer produces tokens from a rune source on demand. It only moves
// forward and cannot be restarted.
type Tokenizer struct {
	src io.RuneScanner
	buf strings.Builder
	col int
	eof bool
}

// NewTokenizer creates a tokenizer reading from src.
func NewTokenizer(src io.RuneScanner) *Tokenizer {
	return &Tokenizer{src: src}
}

// readRune reads a rune from the src and updates the tokenizer's position.
func (l *Tokenizer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the tokenizer's
// position. Panics if unreading returns an error.
func (l *Tokenizer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// Next scans the next token. At the end of the input, the result is a
// TokenEOF, and every later call returns TokenEOF again. If the next runes do
// not form a token, the error is a *LexError; errors from the source other
// than io.EOF are returned as they are.
func (l *Tokenizer) Next() (Token, error) {
	if l.eof {
		return Token{Kind: TokenEOF}, nil
	}
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			l.eof = true
			return Token{Kind: TokenEOF}, nil
		}
		return Token{}, err
	}
	switch r {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		l.unreadRune()
		return l.scanNum()
	case '+':
		return Token{Kind: TokenAdd}, nil
	case '-':
		return Token{Kind: TokenSubtract}, nil
	case '*':
		return Token{Kind: TokenMultiply}, nil
	case '/':
		return Token{Kind: TokenDivide}, nil
	case '^':
		return Token{Kind: TokenCaret}, nil
	case '(':
		return Token{Kind: TokenLeftParen}, nil
	case ')':
		return Token{Kind: TokenRightParen}, nil
	}
	// Write the rune so that it shows up in the error message.
	l.buf.Reset()
	l.buf.WriteRune(r)
	return Token{}, l.error("")
}

// scanNum scans a decimal literal with at most one decimal point.
func (l *Tokenizer) scanNum() (Token, error) {
	l.buf.Reset()
	var dot bool
scan:
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		switch {
		case '0' <= r && r <= '9':
			l.buf.WriteRune(r)
		case r == '.':
			l.buf.WriteRune(r)
			if dot {
				return Token{}, l.error("number")
			}
			dot = true
		case r == '(':
			// A bracket directly after a number is not an implicit
			// multiplication. Reject it rather than guess.
			l.buf.WriteRune(r)
			return Token{}, l.error("number")
		default:
			l.unreadRune()
			break scan
		}
	}
	v, err := strconv.ParseFloat(l.buf.String(), 64)
	if err != nil {
		// Only overflow gets here, e.g. a literal with hundreds of digits.
		return Token{}, l.error("number")
	}
	return Token{Kind: TokenNum, Num: v}, nil
}

func (l *Tokenizer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.col,
	}
}

// LexError indicates input that does not form a token.
type LexError struct {
	// Text is the token the tokenizer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the tokenizer was scanning. This is "number"
	// or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the total number of runes scanned up to and including the
	// invalid rune.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + strconv.Quote(err.Text)
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + strconv.Quote(err.Text)
}

// Pos returns the column of the error.
func (err *LexError) Pos() int {
	return err.Col
}
