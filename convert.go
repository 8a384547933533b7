package rpn

import "math"

// Postfix writes the postfix form of the infix expression src into out and
// returns the number of bytes written. Tokens in the output are separated by
// single spaces, and unary negation is written as Negate. len(out) is the
// output capacity; a postfix form exactly len(out) bytes long fits.
//
// If src is malformed or its postfix form does not fit, Postfix returns 0 and
// an *Error, and the contents of out are unspecified. Postfix never writes
// past len(out).
func Postfix(out, src []byte) (int, error) {
	var m Machine
	return m.Postfix(out, src)
}

// AppendPostfix appends the postfix form of src to dst and returns the
// extended slice. If limit is non-negative, at most limit bytes are appended.
// On error, the result is dst with its original length.
func AppendPostfix(dst, src []byte, limit int) ([]byte, error) {
	var m Machine
	return m.AppendPostfix(dst, src, limit)
}

// Postfix is like the package-level Postfix but reuses m's stacks.
func (m *Machine) Postfix(out, src []byte) (int, error) {
	e := emitter{buf: out[:0], limit: len(out)}
	if err := m.convert(&e, src); err != nil {
		return 0, err
	}
	return len(e.buf), nil
}

// AppendPostfix is like the package-level AppendPostfix but reuses m's
// stacks.
func (m *Machine) AppendPostfix(dst, src []byte, limit int) ([]byte, error) {
	e := emitter{buf: dst, start: len(dst), limit: math.MaxInt}
	if limit >= 0 && limit <= math.MaxInt-len(dst) {
		e.limit = len(dst) + limit
	}
	if err := m.convert(&e, src); err != nil {
		return dst, err
	}
	return e.buf, nil
}

// convert runs the shunting-yard algorithm over src. It repeats the
// placement checks of Validate so that unvalidated input fails cleanly.
func (m *Machine) convert(e *emitter, src []byte) error {
	m.ops = m.ops[:0]
	l := lexer{src: src}
	want := true
	depth := 0
	var prev lexToken
	for {
		tok, err := l.next()
		if err != nil {
			return err
		}
		switch tok.kind {
		case tokenNum:
			if !want {
				return fail(MalformedOperatorPlacement, tok.pos, tok.text(src))
			}
			if !e.emit(tok.text(src)) {
				return fail(OutputCapacityExceeded, tok.pos, tok.text(src))
			}
			want = false
		case tokenOp:
			sym := src[tok.pos]
			if want {
				// Prefix operators never pop: nothing to their left is
				// their operand.
				if sym != '-' {
					return fail(MalformedOperatorPlacement, tok.pos, tok.text(src))
				}
				m.pushop(Negate, tok.pos)
				break
			}
			op := opfor(sym)
			for len(m.ops) > 0 {
				top := m.ops[len(m.ops)-1]
				if top.sym == '(' || op.moreBinding(opfor(top.sym)) {
					break
				}
				if err := e.emitop(m.popop()); err != nil {
					return err
				}
			}
			m.pushop(sym, tok.pos)
			want = true
		case tokenOpen:
			if !want {
				return fail(MalformedOperatorPlacement, tok.pos, tok.text(src))
			}
			m.pushop('(', tok.pos)
			depth++
		case tokenClose:
			if depth == 0 {
				return fail(UnbalancedParentheses, tok.pos, tok.text(src))
			}
			if prev.kind == tokenOpen {
				return fail(EmptyExpression, prev.pos, src[prev.pos:tok.end])
			}
			if want {
				return fail(MalformedOperatorPlacement, prev.pos, prev.text(src))
			}
			depth--
			for {
				if len(m.ops) == 0 {
					return fail(UnbalancedParentheses, tok.pos, tok.text(src))
				}
				top := m.popop()
				if top.sym == '(' {
					break
				}
				if err := e.emitop(top); err != nil {
					return err
				}
			}
		case tokenEOF:
			if prev.kind == tokenNone {
				return fail(EmptyExpression, tok.pos, nil)
			}
			if want {
				return fail(MalformedOperatorPlacement, prev.pos, prev.text(src))
			}
			if depth > 0 {
				return fail(UnbalancedParentheses, tok.pos, nil)
			}
			for len(m.ops) > 0 {
				top := m.popop()
				if top.sym == '(' {
					return fail(UnbalancedParentheses, top.pos, []byte{'('})
				}
				if err := e.emitop(top); err != nil {
					return err
				}
			}
			return nil
		}
		prev = tok
	}
}

// emitter writes space-separated tokens to a buffer without growing it past
// limit bytes.
type emitter struct {
	buf []byte
	// start is the length of buf before the first token.
	start int
	limit int
}

// emit appends a token, preceded by a space unless it is the first. The
// result is false if the token does not fit.
func (e *emitter) emit(tok []byte) bool {
	n := len(tok)
	sep := len(e.buf) > e.start
	if sep {
		n++
	}
	if n > e.limit-len(e.buf) {
		return false
	}
	if sep {
		e.buf = append(e.buf, ' ')
	}
	e.buf = append(e.buf, tok...)
	return true
}

// emitop appends an operator popped from the conversion stack.
func (e *emitter) emitop(op stackop) error {
	sym := [1]byte{op.sym}
	if !e.emit(sym[:]) {
		return fail(OutputCapacityExceeded, op.pos, sym[:])
	}
	return nil
}
