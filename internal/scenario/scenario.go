// Package scenario loads the YAML files that describe what the rlist driver
// does to each list.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/qjpcpu/rlist/assert"
	"gopkg.in/yaml.v3"
)

// Step operations.
const (
	OpPush      = "push"
	OpPop       = "pop"
	OpIterate   = "iterate"
	OpFilter    = "filter"
	OpShape     = "shape"
	OpJSON      = "json"
	OpSeparator = "separator"
)

// Filter predicates.
const (
	PredicateEven = "even"
	PredicateOdd  = "odd"
)

var (
	ErrUnknownOp        = errors.New("scenario: unknown op")
	ErrUnknownPredicate = errors.New("scenario: unknown predicate")
)

//go:embed default.yaml
var defaultScenario []byte

type Scenario struct {
	Lists []ListSpec `yaml:"lists"`
}

type ListSpec struct {
	Name  string `yaml:"name"`
	Push  []int  `yaml:"push"`
	Steps []Step `yaml:"steps"`
}

type Step struct {
	Op        string `yaml:"op"`
	Value     int    `yaml:"value,omitempty"`
	Predicate string `yaml:"predicate,omitempty"`
}

// Default is the built-in scenario run when no file is given.
func Default() *Scenario {
	sc, err := Parse(defaultScenario)
	assert.ShouldBeNil(err, "scenario: built-in scenario is invalid")
	return sc
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) Validate() error {
	if len(sc.Lists) == 0 {
		return errors.New("scenario: no lists")
	}
	seen := make(map[string]bool)
	for i, l := range sc.Lists {
		if l.Name == "" {
			return fmt.Errorf("scenario: list #%d has no name", i)
		}
		if seen[l.Name] {
			return fmt.Errorf("scenario: duplicate list %q", l.Name)
		}
		seen[l.Name] = true
		for j, st := range l.Steps {
			if err := st.validate(); err != nil {
				return fmt.Errorf("list %q step #%d: %w", l.Name, j, err)
			}
		}
	}
	return nil
}

func (st Step) validate() error {
	switch st.Op {
	case OpPush, OpPop, OpIterate, OpShape, OpJSON, OpSeparator:
		return nil
	case OpFilter:
		switch st.Predicate {
		case PredicateEven, PredicateOdd:
			return nil
		}
		return fmt.Errorf("%w %q", ErrUnknownPredicate, st.Predicate)
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
	}
}
