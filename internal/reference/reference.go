// Package reference evaluates infix expressions in arbitrary precision by
// precedence climbing, independently of the shunting-yard converter. It is
// slow and allocates freely; it exists to check the float64 pipeline.
package reference

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Eval evaluates an infix expression at the given precision in bits. The
// grammar is the one accepted by rpn.Validate.
func Eval(src string, prec uint) (*big.Float, error) {
	toks, err := tokens(src)
	if err != nil {
		return nil, err
	}
	p := parser{toks: toks, prec: prec}
	r, err := p.term(exprprec)
	if err != nil {
		return nil, err
	}
	if p.k != len(p.toks) {
		return nil, &SyntaxError{Tok: p.toks[p.k], Index: p.k}
	}
	return r, nil
}

// Agree reports whether x is within relative tolerance tol of want, with
// values smaller than 1 in magnitude compared absolutely.
func Agree(x float64, want *big.Float, tol float64) bool {
	if want.IsInf() {
		return math.IsInf(x, want.Sign())
	}
	d := new(big.Float).SetPrec(want.Prec())
	if err := setFloat64(d, x); err != nil {
		return false
	}
	d.Sub(d, want).Abs(d)
	scale := new(big.Float).Abs(want)
	if scale.Cmp(big.NewFloat(1)) < 0 {
		scale.SetFloat64(1)
	}
	scale.Mul(scale, big.NewFloat(tol))
	return d.Cmp(scale) <= 0
}

func setFloat64(z *big.Float, x float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("reference: NaN")
		}
	}()
	z.SetFloat64(x)
	return nil
}

// tokens splits src into numbers, operators, and parentheses.
func tokens(src string) ([]string, error) {
	var toks []string
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ', c == '\t', c == '\n', c == '\r', c == '\v', c == '\f':
			i++
		case '0' <= c && c <= '9', c == '.':
			j := i
			for j < len(src) && ('0' <= src[j] && src[j] <= '9' || src[j] == '.') {
				j++
			}
			toks = append(toks, src[i:j])
			i = j
		case c == '+', c == '-', c == '*', c == '/', c == '^', c == '(', c == ')':
			toks = append(toks, src[i:i+1])
			i++
		default:
			return nil, &SyntaxError{Tok: src[i : i+1], Index: len(toks)}
		}
	}
	return toks, nil
}

type parser struct {
	toks []string
	k    int
	prec uint
}

func (p *parser) peek() string {
	if p.k >= len(p.toks) {
		return ""
	}
	return p.toks[p.k]
}

// term parses operands and any binary operators more binding than until.
func (p *parser) term(until operator) (*big.Float, error) {
	lhs, err := p.lhs(until)
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok == "" || tok == ")" {
			return lhs, nil
		}
		op, ok := binop(tok)
		if !ok {
			return nil, &SyntaxError{Tok: tok, Index: p.k}
		}
		if !op.moreBinding(until) {
			return lhs, nil
		}
		p.k++
		rhs, err := p.term(op)
		if err != nil {
			return nil, err
		}
		if lhs, err = p.apply(tok, lhs, rhs); err != nil {
			return nil, err
		}
	}
}

// lhs parses the first component of a term.
func (p *parser) lhs(until operator) (*big.Float, error) {
	tok := p.peek()
	p.k++
	switch tok {
	case "":
		return nil, &SyntaxError{Index: p.k - 1}
	case "(":
		r, err := p.term(exprprec)
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, &SyntaxError{Tok: p.peek(), Index: p.k}
		}
		p.k++
		return r, nil
	case "-":
		op := negprec
		if !op.moreBinding(until) {
			// x^-y -> x^(-y)
			op = until
		}
		r, err := p.term(op)
		if err != nil {
			return nil, err
		}
		return r.Neg(r), nil
	}
	r, _, err := new(big.Float).SetPrec(p.prec).Parse(tok, 10)
	if err != nil {
		return nil, &SyntaxError{Tok: tok, Index: p.k - 1}
	}
	return r, nil
}

func (p *parser) apply(op string, x, y *big.Float) (*big.Float, error) {
	r := new(big.Float).SetPrec(p.prec)
	switch op {
	case "+":
		return r.Add(x, y), nil
	case "-":
		return r.Sub(x, y), nil
	case "*":
		return r.Mul(x, y), nil
	case "/":
		if y.Sign() == 0 {
			return nil, &DomainError{X: y, Func: "/"}
		}
		return r.Quo(x, y), nil
	case "^":
		return p.pow(r, x, y)
	}
	panic("reference: invalid operator " + strconv.Quote(op))
}

func (p *parser) pow(r, x, y *big.Float) (*big.Float, error) {
	if x.Sign() == 0 && y.Sign() < 0 {
		return nil, &DomainError{X: x, Func: "^"}
	}
	if y.IsInt() {
		return p.powInt(r, x, y), nil
	}
	switch x.Sign() {
	case -1:
		return nil, &DomainError{X: x, Func: "^"}
	case 0:
		return r.SetInt64(0), nil
	}
	// Pow returns a new value instead of using r for some arguments.
	return r.Set(bigfloat.Pow(r, x, y)), nil
}

// powInt computes x^y for integer y exactly up to rounding at p.prec by
// repeated squaring. bigfloat.Pow goes through exp(y log x), which loses all
// accuracy for large y.
func (p *parser) powInt(r, x, y *big.Float) *big.Float {
	n, _ := y.Int(nil)
	neg := n.Sign() < 0
	n.Abs(n)
	b := new(big.Float).SetPrec(p.prec).Set(x)
	r.SetInt64(1)
	for i, l := 0, n.BitLen(); i < l; i++ {
		if n.Bit(i) == 1 {
			r.Mul(r, b)
		}
		if i+1 < l {
			b.Mul(b, b)
		}
	}
	if neg {
		r.Quo(new(big.Float).SetPrec(p.prec).SetInt64(1), r)
	}
	return r
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

func binop(text string) (operator, bool) {
	switch text {
	case "+", "-":
		return operator{1, false}, true
	case "*", "/":
		return operator{5, false}, true
	case "^":
		return operator{15, true}, true
	default:
		return operator{}, false
	}
}

var (
	// negprec is the precedence of unary negation.
	negprec = operator{10, true}
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = operator{-128, true}
)

// SyntaxError is an unexpected token.
type SyntaxError struct {
	// Tok is the token, or empty at the end of input.
	Tok string
	// Index is the token's index.
	Index int
}

func (err *SyntaxError) Error() string {
	if err.Tok == "" {
		return "reference: unexpected end of expression"
	}
	return "reference: unexpected " + strconv.Quote(err.Tok) + " at token " + strconv.Itoa(err.Index)
}

// DomainError is an operation with no real result.
type DomainError struct {
	// X is the out-of-domain argument.
	X *big.Float
	// Func is the operator.
	Func string
}

func (err *DomainError) Error() string {
	return "reference: " + err.X.String() + " outside domain of " + err.Func
}
