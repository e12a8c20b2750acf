package parsemaths

import "strconv"

// ErrorKind classifies a ParseError.
type ErrorKind int8

const (
	// UnableToParse indicates that an operand was required but the input
	// did not supply one, e.g. "2+" or "*3".
	UnableToParse ErrorKind = iota + 1
	// InvalidOperator indicates an invalid character, or a token where an
	// operator, a close bracket, or the end of the input was required.
	InvalidOperator
)

func (k ErrorKind) String() string {
	switch k {
	case UnableToParse:
		return "UnableToParse"
	case InvalidOperator:
		return "InvalidOperator"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseError is the error returned for any input that cannot be evaluated.
type ParseError struct {
	// Kind is the classification of the error.
	Kind ErrorKind
	// Msg describes the error, naming the offending token.
	Msg string
	// err is the underlying error, usually a *LexError.
	err error
}

func (err *ParseError) Error() string {
	return "error in evaluation: " + err.Msg
}

// Unwrap returns the error that caused this one, if any. For invalid
// characters, it is a *LexError.
func (err *ParseError) Unwrap() error {
	return err.err
}

func unableToParse(tok Token) error {
	return &ParseError{Kind: UnableToParse, Msg: "unable to parse " + strconv.Quote(tok.String())}
}

func unexpected(want, got Token) error {
	return &ParseError{
		Kind: InvalidOperator,
		Msg:  "expected " + strconv.Quote(want.String()) + ", got " + strconv.Quote(got.String()),
	}
}

func invalidOperator(tok Token) error {
	return &ParseError{Kind: InvalidOperator, Msg: "invalid operator " + strconv.Quote(tok.String())}
}

// lexFailure wraps an error from the tokenizer.
func lexFailure(err error) error {
	msg := "invalid character"
	if _, ok := err.(*LexError); !ok {
		msg = err.Error()
	}
	return &ParseError{Kind: InvalidOperator, Msg: msg, err: err}
}
