package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/zephyrtronium/rpn"
	"github.com/zephyrtronium/rpn/internal/reference"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		nl, echo     bool
		check        bool
		prec, capty  int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print postfix forms")
	flag.BoolVar(&check, "check", false, "cross-check results against an arbitrary-precision evaluation")
	flag.IntVar(&prec, "p", 256, "precision in bits for -check")
	flag.IntVar(&capty, "cap", 256, "postfix buffer capacity in bytes")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}
	if capty <= 0 {
		log.Fatalf("capacity (%d) must be positive", capty)
	}

	var srcs [][]byte
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		if f != os.Stdin {
			defer f.Close()
		}
		s, err := readExprs(f, nl)
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, s...)
	}
	for _, arg := range flag.Args() {
		srcs = append(srcs, []byte(arg))
	}

	c := calc{
		m:     rpn.NewMachine(16),
		buf:   make([]byte, capty),
		verb:  verb + "\n",
		echo:  echo,
		check: check,
		prec:  uint(prec),
	}
	for _, src := range srcs {
		c.run(os.Stdout, src)
	}
}

type calc struct {
	m     *rpn.Machine
	buf   []byte
	verb  string
	echo  bool
	check bool
	prec  uint
}

// run evaluates one expression and prints its result or error to w.
func (c *calc) run(w io.Writer, src []byte) {
	if err := rpn.Validate(src); err != nil {
		fmt.Fprintln(w, err)
		return
	}
	n, err := c.m.Postfix(c.buf, src)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	if c.echo {
		fmt.Fprintf(w, "%s : ", c.buf[:n])
	}
	r, err := c.m.EvalPostfix(c.buf[:n], 0)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintf(w, c.verb, r)
	if c.check {
		want, err := reference.Eval(string(src), c.prec)
		switch {
		case err != nil:
			log.Printf("check %q: %v", src, err)
		case !reference.Agree(r, want, 1e-12):
			log.Printf("check %q: got %g, reference gives %g", src, r, want)
		}
	}
}

// readExprs reads the whole input as one expression, or each non-blank line
// as an expression if lines is true.
func readExprs(r io.Reader, lines bool) ([][]byte, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return [][]byte{b}, nil
	}
	var srcs [][]byte
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		line := bytes.TrimSpace(scan.Bytes())
		if len(line) == 0 {
			continue
		}
		srcs = append(srcs, append([]byte(nil), line...))
	}
	return srcs, scan.Err()
}

func infile(inname string, std bool) (*os.File, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
