package rpn

import (
	"math"
	"strconv"
)

// EvalPostfix evaluates postfix text starting at byte offset offset and
// returns the single resulting value. It is a shortcut for
// new(Machine).EvalPostfix.
func EvalPostfix(postfix []byte, offset int) (float64, error) {
	var m Machine
	return m.EvalPostfix(postfix, offset)
}

// EvalPostfix evaluates postfix text. Tokens are number literals, the
// Operators, and Negate, separated by ASCII whitespace. Binary operators pop
// their right operand, then their left, and push the result. Arithmetic is in
// float64.
//
// Evaluation begins at offset, which allows resuming in the middle of a
// buffer, e.g. after a prefix that has already been consumed. offset must be
// between 0 and len(postfix) inclusive and must not split a number.
//
// The result is meaningful only if the error is nil. Errors are *Error with
// kind DivisionByZero for a zero divisor, Domain for an operation with no
// real result, MalformedPostfixStack if the tokens do not reduce to exactly
// one value, InvalidCharacter or InvalidNumber for bad tokens, or BadOffset.
func (m *Machine) EvalPostfix(postfix []byte, offset int) (float64, error) {
	if offset < 0 || offset > len(postfix) {
		return 0, &Error{Kind: BadOffset, Text: strconv.Itoa(offset)}
	}
	if offset > 0 && offset < len(postfix) && isNumByte(postfix[offset-1]) && isNumByte(postfix[offset]) {
		return 0, fail(BadOffset, offset, postfix[offset:offset+1])
	}
	m.vals = m.vals[:0]
	l := lexer{src: postfix, off: offset, postfix: true}
	for {
		tok, err := l.next()
		if err != nil {
			return 0, err
		}
		switch tok.kind {
		case tokenNum:
			m.push(parseNum(tok.text(postfix)))
		case tokenOp:
			sym := postfix[tok.pos]
			if sym == Negate {
				if len(m.vals) < 1 {
					return 0, fail(MalformedPostfixStack, tok.pos, tok.text(postfix))
				}
				v := m.top()
				*v = -*v
				continue
			}
			if len(m.vals) < 2 {
				return 0, fail(MalformedPostfixStack, tok.pos, tok.text(postfix))
			}
			r := m.pop()
			v := m.top()
			x, kind := apply(sym, *v, r)
			if kind != kindNone {
				return 0, fail(kind, tok.pos, tok.text(postfix))
			}
			*v = x
		case tokenEOF:
			if len(m.vals) != 1 {
				return 0, fail(MalformedPostfixStack, tok.pos, nil)
			}
			return m.vals[0], nil
		}
	}
}

// apply computes x sym y. The Kind is non-zero if there is no real result.
func apply(sym byte, x, y float64) (float64, Kind) {
	var r float64
	switch sym {
	case '+':
		r = x + y
	case '-':
		r = x - y
	case '*':
		r = x * y
	case '/':
		if y == 0 {
			return 0, DivisionByZero
		}
		r = x / y
	case '^':
		if x == 0 && y < 0 {
			return 0, Domain
		}
		r = math.Pow(x, y)
	default:
		panic("rpn: invalid operator " + string(sym))
	}
	// NaN arises from a negative base with a fractional exponent or from
	// combining infinities, e.g. overflowed operands in inf-inf.
	if math.IsNaN(r) {
		return 0, Domain
	}
	return r, kindNone
}

// parseNum converts a number token that the lexer has already checked.
// Integers short enough to be exact in float64 avoid strconv.
func parseNum(b []byte) float64 {
	if len(b) <= 15 {
		var n int64
		for _, c := range b {
			if c == '.' {
				return parseFloat(b)
			}
			n = n*10 + int64(c-'0')
		}
		return float64(n)
	}
	return parseFloat(b)
}

func parseFloat(b []byte) float64 {
	// The only possible error is ErrRange, for which f is ±Inf or ±0, which
	// is the value we want.
	f, _ := strconv.ParseFloat(string(b), 64)
	return f
}
