package rpn

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// moreBinding reports whether p, arriving after than, binds its operand
// before than does. An operator on the conversion stack is emitted when the
// incoming operator is not more binding.
func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// opfor gets the operator for a postfix operator symbol. Unary negation sits
// between multiplication and exponentiation, so -2^2 is -(2^2) and -2*3 is
// (-2)*3.
func opfor(sym byte) operator {
	switch sym {
	case '+', '-':
		return operator{1, false}
	case '*', '/':
		return operator{5, false}
	case Negate:
		return operator{10, true}
	case '^':
		return operator{15, true}
	default:
		panic("rpn: invalid operator " + string(sym))
	}
}

// stackop is an entry on the conversion stack: an operator symbol or an
// open parenthesis, with the offset where it appeared.
type stackop struct {
	sym byte
	pos int
}
