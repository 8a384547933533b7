package rpn_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/rpn"
)

func TestEvalPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"frac", "2.5", 2.5},
		{"lead-dot", ".25", 0.25},
		{"trail-dot", "4.", 4},
		{"long", "1234567890123456789", 1234567890123456789},
		{"add", "2 3 +", 5},
		{"sub", "3 2 -", 1},
		{"mul", "2 3 4 * +", 14},
		{"multidigit", "12 3 4 * +", 24},
		{"group", "2 3 + 4 *", 20},
		{"chain", "2 3 2 * + 5 -", 3},
		{"neg-result", "2 3 + 2 5 - *", -15},
		{"div", "2 3 + 5 2 / *", 12.5},
		{"long-chain", "2 3 4 8 + * + 1 + 4 * 5 -", 151},
		{"pow-right", "2 3 2 ^ ^", 512},
		{"pow-left", "2 3 ^ 2 ^", 64},
		{"negate", "5 ~ 2 +", -3},
		{"neg-pow", "2 2 ^ ~", -4},
		{"pow-neg", "2 1 ~ ^", 0.5},
		{"neg-base-int", "2 ~ 3 ^", -8},
		{"spacing", "  1\t2\n+  ", 3},
		{"packed-ops", "1 2 3*+", 7},
		{"overflow", "10 400 ^", math.Inf(1)},
		{"bench", "100 2 10 / + 1 + 1 + 1 + 1 + 1 + 1 + 1 + 1 + 1 + 1 + 1 + 2 + 2 1 ^ +", 115.2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := rpn.EvalPostfix([]byte(c.src), 0)
			if err != nil {
				t.Fatalf("%q: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("%q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvalPostfixErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind rpn.Kind
		col  int
	}{
		{"div-zero", "5 0 /", rpn.DivisionByZero, 5},
		{"div-neg-zero", "5 0 ~ /", rpn.DivisionByZero, 7},
		{"div-zero-zero", "0 0 /", rpn.DivisionByZero, 5},
		{"pow-zero-neg", "0 1 ~ ^", rpn.Domain, 7},
		{"pow-neg-frac", "2 ~ 0.5 ^", rpn.Domain, 9},
		{"inf-inf", "10 400 ^ 10 400 ^ -", rpn.Domain, 19},
		{"empty", "", rpn.MalformedPostfixStack, 1},
		{"blank", "  ", rpn.MalformedPostfixStack, 3},
		{"two-values", "1 2", rpn.MalformedPostfixStack, 4},
		{"underflow", "1 +", rpn.MalformedPostfixStack, 3},
		{"lone-op", "*", rpn.MalformedPostfixStack, 1},
		{"lone-neg", "~", rpn.MalformedPostfixStack, 1},
		{"paren", "1 ( 2 +", rpn.InvalidCharacter, 3},
		{"char", "1 x +", rpn.InvalidCharacter, 3},
		{"number", "1.2.3", rpn.InvalidNumber, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := rpn.EvalPostfix([]byte(c.src), 0)
			if err == nil {
				t.Fatalf("%q gave %g with no error", c.src, r)
			}
			if !errors.Is(err, c.kind) {
				t.Errorf("%q: want %v, got %v", c.src, c.kind, err)
			}
			var e *rpn.Error
			if !errors.As(err, &e) {
				t.Fatalf("%q: %#v is not *rpn.Error", c.src, err)
			}
			if e.Col != c.col {
				t.Errorf("%q: want error at %d, got %d", c.src, c.col, e.Col)
			}
		})
	}
}

func TestEvalPostfixOffset(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		offset int
		r      float64
		kind   rpn.Kind
	}{
		{"zero", "1 2 +", 0, 3, 0},
		{"skip-prefix", "9 9 * 1 2 +", 6, 3, 0},
		{"at-space", "99 1 2 +", 2, 3, 0},
		{"after-op", "1 2 +3 4 +", 5, 7, 0},
		{"end", "1 2 +", 5, 0, rpn.MalformedPostfixStack},
		{"negative", "1", -1, 0, rpn.BadOffset},
		{"past-end", "1", 2, 0, rpn.BadOffset},
		{"mid-number", "123 4 +", 1, 0, rpn.BadOffset},
		{"mid-frac", "1.5", 2, 0, rpn.BadOffset},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := rpn.EvalPostfix([]byte(c.src), c.offset)
			if c.kind != 0 {
				if !errors.Is(err, c.kind) {
					t.Errorf("%q at %d: want %v, got %g, %v", c.src, c.offset, c.kind, r, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("%q at %d: %v", c.src, c.offset, err)
			}
			if r != c.r {
				t.Errorf("%q at %d: want %g, got %g", c.src, c.offset, c.r, r)
			}
		})
	}
}

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "4/5/6", 4.0 / 5.0 / 6.0},
		{"pow", "4^3^2", 262144},
		{"pow-assoc", "2^3^2", 512},
		{"prec", "2+3*4", 2 + 3*4},
		{"group", "(2+3)*4", (2 + 3) * 4},
		{"mixed", "2+3*4/(6-4)+1", 2 + 3*4/(6-4) + 1},
		{"frac", "1.5*4", 6},
		{"neg-pow", "-2^2", -4},
		{"pow-neg", "2^-2", 0.25},
		{"neg-mul", "-2*3", -6},
		{"sub-neg", "1--2", 3},
		{"neg-group", "-(1+2)^2", -9},
		{"bench", "100+2/10+1+1+1+1+1+1+1+1+1+1+1+2+2^1", 115.2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := rpn.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("%q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind rpn.Kind
	}{
		{"div-zero", "5/0", rpn.DivisionByZero},
		{"div-expr-zero", "1/(2-2)", rpn.DivisionByZero},
		{"pow-domain", "(-8)^(1/3)", rpn.Domain},
		{"pow-zero-neg", "0^-1", rpn.Domain},
		{"plus-plus", "1++2", rpn.MalformedOperatorPlacement},
		{"unbalanced", "(1+2", rpn.UnbalancedParentheses},
		{"empty", "", rpn.EmptyExpression},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := rpn.EvalString(c.src)
			if !errors.Is(err, c.kind) {
				t.Errorf("%q: want %v, got %g, %v", c.src, c.kind, r, err)
			}
			if r != 0 {
				t.Errorf("%q: nonzero result %g with error", c.src, r)
			}
		})
	}
}

func TestDivisionByZeroIsNotInf(t *testing.T) {
	r, err := rpn.EvalString("5/0")
	if err == nil {
		t.Fatalf("5/0 evaluated to %g", r)
	}
	if math.IsInf(r, 0) {
		t.Errorf("5/0 gave infinity alongside %v", err)
	}
}
