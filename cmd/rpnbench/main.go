// Command rpnbench times the rpn pipeline over fixed inputs and prints the
// measurements in Go benchmark format.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/tools/benchmark/parse"

	"github.com/zephyrtronium/rpn"
)

func main() {
	log.SetFlags(0)
	var (
		config, baseline string
		loops            int
	)
	flag.StringVar(&config, "config", "", "YAML scenario file (default a single built-in case)")
	flag.StringVar(&baseline, "baseline", "", "previous output to compare against")
	flag.IntVar(&loops, "loops", 0, "runs per case, overriding the scenario")
	flag.Parse()
	if loops < 0 {
		log.Fatalf("loops (%d) must be positive", loops)
	}

	s, err := selectScenario(config, loops)
	if err != nil {
		log.Fatal(err)
	}

	var base parse.Set
	if baseline != "" {
		f, err := os.Open(baseline)
		if err != nil {
			log.Fatal(err)
		}
		base, err = parse.ParseSet(f)
		f.Close()
		if err != nil {
			log.Fatalf("reading baseline %s: %v", baseline, err)
		}
	}

	m := rpn.NewMachine(16)
	results := make([]*parse.Benchmark, 0, len(s.Cases))
	for _, c := range s.Cases {
		b, r, err := runCase(m, c, s.Loops, s.Capacity)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(b)
		log.Printf("%s: runs %d, time %v, result %g", c.Name, b.N, time.Duration(b.NsPerOp*float64(b.N)), r)
		results = append(results, b)
	}
	if base != nil {
		compare(os.Stdout, base, results)
	}
}
