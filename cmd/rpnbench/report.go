package main

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"golang.org/x/tools/benchmark/parse"

	"github.com/zephyrtronium/rpn"
)

// runCase times loops runs of validate, convert, and evaluate on one
// expression, stopping at the first failure. The result is the benchmark
// measurement and the value of the last evaluation.
func runCase(m *rpn.Machine, c Case, loops, capacity int) (*parse.Benchmark, float64, error) {
	src := []byte(c.Expr)
	buf := make([]byte, capacity)
	var r float64
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()
	for i := 0; i < loops; i++ {
		if err := rpn.Validate(src); err != nil {
			return nil, 0, fmt.Errorf("%s: validate: %w", c.Name, err)
		}
		n, err := m.Postfix(buf, src)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: convert: %w", c.Name, err)
		}
		r, err = m.EvalPostfix(buf[:n], 0)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: evaluate: %w", c.Name, err)
		}
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)
	if c.Want != nil && r != *c.Want {
		return nil, r, fmt.Errorf("%s: result %g, want %g", c.Name, r, *c.Want)
	}
	b := parse.Benchmark{
		Name:     "Benchmark" + c.Name,
		N:        loops,
		Measured: parse.NsPerOp | parse.AllocedBytesPerOp | parse.AllocsPerOp,
	}
	if loops > 0 {
		b.NsPerOp = float64(elapsed.Nanoseconds()) / float64(loops)
		b.AllocedBytesPerOp = (after.TotalAlloc - before.TotalAlloc) / uint64(loops)
		b.AllocsPerOp = (after.Mallocs - before.Mallocs) / uint64(loops)
	}
	return &b, r, nil
}

// compare writes the change in ns/op of each result relative to the first
// baseline measurement of the same name.
func compare(w io.Writer, base parse.Set, results []*parse.Benchmark) {
	for _, b := range results {
		old := base[b.Name]
		if len(old) == 0 || old[0].Measured&parse.NsPerOp == 0 || old[0].NsPerOp == 0 {
			fmt.Fprintf(w, "%s: no baseline\n", b.Name)
			continue
		}
		delta := (b.NsPerOp - old[0].NsPerOp) / old[0].NsPerOp * 100
		fmt.Fprintf(w, "%s: %.2f ns/op -> %.2f ns/op (%+.2f%%)\n", b.Name, old[0].NsPerOp, b.NsPerOp, delta)
	}
}
