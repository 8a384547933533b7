package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Scenario is a set of expressions to time.
type Scenario struct {
	// Loops is the number of pipeline runs per case.
	Loops int
	// Capacity is the postfix buffer size in bytes.
	Capacity int
	Cases    []Case
}

// Case is a single timed expression.
type Case struct {
	Name string
	Expr string
	// Want, if non-nil, is the result the expression must produce.
	Want *float64
}

// defaultScenario is timed when no configuration is given.
var defaultScenario = Scenario{
	Loops:    100000,
	Capacity: 100,
	Cases: []Case{
		{Name: "Pipeline", Expr: "100+2/10+1+1+1+1+1+1+1+1+1+1+1+2+2^1"},
	},
}

// selectScenario loads the scenario at path, or a copy of defaultScenario if
// path is empty, and applies a positive loops override.
func selectScenario(path string, loops int) (*Scenario, error) {
	var s *Scenario
	if path == "" {
		d := defaultScenario
		d.Cases = append([]Case(nil), defaultScenario.Cases...)
		s = &d
	} else {
		var err error
		s, err = LoadScenario(path)
		if err != nil {
			return nil, err
		}
	}
	if loops > 0 {
		s.Loops = loops
	}
	return s, nil
}

type scenarioFile struct {
	Loops    int        `yaml:"loops"`
	Capacity int        `yaml:"capacity"`
	Cases    []caseFile `yaml:"cases"`
}

type caseFile struct {
	Name string   `yaml:"name"`
	Expr string   `yaml:"expr"`
	Want *float64 `yaml:"want"`
}

// ValidationError aggregates scenario validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("scenario validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadScenario reads a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open %s: %w", path, err)
	}
	defer file.Close()
	s, err := decodeScenario(file)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return s, nil
}

func decodeScenario(r io.Reader) (*Scenario, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var raw scenarioFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty scenario")
		}
		return nil, fmt.Errorf("parse: %w", err)
	}
	s := raw.toScenario()
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (raw *scenarioFile) toScenario() *Scenario {
	s := Scenario{
		Loops:    raw.Loops,
		Capacity: raw.Capacity,
		Cases:    make([]Case, 0, len(raw.Cases)),
	}
	if s.Loops == 0 {
		s.Loops = defaultScenario.Loops
	}
	if s.Capacity == 0 {
		s.Capacity = defaultScenario.Capacity
	}
	for _, c := range raw.Cases {
		s.Cases = append(s.Cases, Case{Name: strings.TrimSpace(c.Name), Expr: c.Expr, Want: c.Want})
	}
	return &s
}

func (s *Scenario) validate() error {
	var errs ValidationError
	if s.Loops < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("loops must be positive, not %d", s.Loops))
	}
	if s.Capacity < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("capacity must be positive, not %d", s.Capacity))
	}
	if len(s.Cases) == 0 {
		errs.Issues = append(errs.Issues, "at least one case must be provided")
	}
	names := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		switch {
		case c.Name == "":
			errs.Issues = append(errs.Issues, fmt.Sprintf("cases[%d].name must be provided", i))
		case strings.IndexFunc(c.Name, unicode.IsSpace) >= 0:
			errs.Issues = append(errs.Issues, fmt.Sprintf("cases[%d].name %q must not contain spaces", i, c.Name))
		case names[c.Name]:
			errs.Issues = append(errs.Issues, fmt.Sprintf("cases[%d].name %q is a duplicate", i, c.Name))
		}
		names[c.Name] = true
		if strings.TrimSpace(c.Expr) == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("cases[%d].expr must be provided", i))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}
