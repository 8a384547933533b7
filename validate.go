package rpn

// Validate checks that src is a well-formed infix expression. Allowed bytes
// are digits, '.', the Operators, parentheses, and ASCII whitespace, which
// separates tokens and is otherwise ignored. Operands and binary operators
// must alternate, starting and ending with an operand; '-' in operand
// position is unary negation. Parentheses must balance and must not be
// empty. There is no implicit multiplication, so "2 3" and "2(3)" are
// invalid.
//
// Validate has no side effects. The result is nil or an *Error.
func Validate(src []byte) error {
	l := lexer{src: src}
	// want is whether an operand is expected next.
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
			want = false
		case tokenOp:
			if want {
				if src[tok.pos] != '-' {
					return fail(MalformedOperatorPlacement, tok.pos, tok.text(src))
				}
				break
			}
			want = true
		case tokenOpen:
			if !want {
				return fail(MalformedOperatorPlacement, tok.pos, tok.text(src))
			}
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
		case tokenEOF:
			switch {
			case prev.kind == tokenNone:
				return fail(EmptyExpression, tok.pos, nil)
			case want:
				return fail(MalformedOperatorPlacement, prev.pos, prev.text(src))
			case depth > 0:
				return fail(UnbalancedParentheses, tok.pos, nil)
			}
			return nil
		}
		prev = tok
	}
}

// Validate is the same as the package-level Validate. Validation needs no
// stacks; the method exists so a Machine can stand in for the whole
// pipeline.
func (m *Machine) Validate(src []byte) error {
	return Validate(src)
}

// Valid reports whether src passes Validate.
func Valid(src []byte) bool {
	return Validate(src) == nil
}
