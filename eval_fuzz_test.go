//go:build go1.18
// +build go1.18

package rpn_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/rpn"
)

func FuzzEvalPostfix(f *testing.F) {
	f.Add("1 2 +", 0)
	f.Add("2 3 2 ^ ^", 2)
	f.Add("5 ~ 0 /", 0)
	f.Fuzz(func(t *testing.T, s string, offset int) {
		_, err := rpn.EvalPostfix([]byte(s), offset)
		if err != nil && !errors.As(err, new(*rpn.Error)) {
			t.Errorf("%q at %d: %#v is not *rpn.Error", s, offset, err)
		}
	})
}
