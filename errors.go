package rpn

import "strconv"

// Kind classifies a failure. A Kind is itself an error so that callers can
// test for one with errors.Is:
//
//	if errors.Is(err, rpn.DivisionByZero) { ... }
type Kind int8

const (
	kindNone Kind = iota
	// InvalidCharacter is a byte that cannot begin any token.
	InvalidCharacter
	// InvalidNumber is a number literal with more than one decimal point or
	// with no digits.
	InvalidNumber
	// EmptyExpression is an input or parenthesized group with no operand.
	EmptyExpression
	// UnbalancedParentheses is a close parenthesis with no open parenthesis
	// or an open parenthesis that is never closed.
	UnbalancedParentheses
	// MalformedOperatorPlacement is an operator where an operand is needed
	// or an operand where an operator is needed.
	MalformedOperatorPlacement
	// OutputCapacityExceeded means the postfix form does not fit in the
	// output buffer.
	OutputCapacityExceeded
	// DivisionByZero is a division whose divisor is zero.
	DivisionByZero
	// Domain is an exponentiation with no real result.
	Domain
	// MalformedPostfixStack means postfix text does not reduce to exactly
	// one value.
	MalformedPostfixStack
	// BadOffset is an evaluation offset outside the buffer or inside a
	// number token.
	BadOffset
)

func (k Kind) String() string {
	switch k {
	case kindNone:
		return "none"
	case InvalidCharacter:
		return "invalid character"
	case InvalidNumber:
		return "invalid number"
	case EmptyExpression:
		return "empty expression"
	case UnbalancedParentheses:
		return "unbalanced parentheses"
	case MalformedOperatorPlacement:
		return "malformed operator placement"
	case OutputCapacityExceeded:
		return "output capacity exceeded"
	case DivisionByZero:
		return "division by zero"
	case Domain:
		return "domain error"
	case MalformedPostfixStack:
		return "malformed postfix stack"
	case BadOffset:
		return "bad offset"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k Kind) Error() string {
	return k.String()
}

// Error is the error type returned for every failure in this package. It
// implements InputError.
type Error struct {
	// Kind is the failure class.
	Kind Kind
	// Col is the 1-based byte position of the token that caused the error,
	// or the position just past the end of input for errors detected at the
	// end. Col is 0 only for errors with no position.
	Col int
	// Text is the offending token, if any.
	Text string
}

func (err *Error) Error() string {
	msg := err.Kind.String()
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	if err.Col == 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

// Is reports whether target is err's Kind.
func (err *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == err.Kind
}

// Pos returns the 1-based position of the error.
func (err *Error) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// fail creates an *Error for a failure at the 0-based byte offset off.
func fail(kind Kind, off int, text []byte) error {
	return &Error{Kind: kind, Col: off + 1, Text: string(text)}
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based byte offset of
	// the start of the token that caused the error.
	Pos() int
}

var _ InputError = (*Error)(nil)
