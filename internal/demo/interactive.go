package demo

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/qjpcpu/rlist/cli"
	"github.com/qjpcpu/rlist/internal/scenario"
	"github.com/qjpcpu/rlist/list"
)

const (
	actionFilterEven = scenario.OpFilter + " " + scenario.PredicateEven
	actionFilterOdd  = scenario.OpFilter + " " + scenario.PredicateOdd
	actionQuit       = "quit"
)

var actions = []string{
	scenario.OpPush,
	scenario.OpPop,
	scenario.OpIterate,
	actionFilterEven,
	actionFilterOdd,
	scenario.OpShape,
	scenario.OpJSON,
	actionQuit,
}

// Prompter asks the user for the next action
type Prompter interface {
	Select(label string, choices []string) (int, string, error)
	Input(label string, validate func(string) error) (string, error)
}

type cliPrompter struct{}

// NewPrompter prompts on the terminal
func NewPrompter() Prompter { return cliPrompter{} }

func (cliPrompter) Select(label string, choices []string) (int, string, error) {
	return cli.FixedSelect(label, choices)
}

func (cliPrompter) Input(label string, validate func(string) error) (string, error) {
	return cli.Input(label, validate)
}

// Interactive applies actions chosen through p to l until the user quits or
// interrupts the prompt.
func (r *Runner) Interactive(name string, l *list.List[int], p Prompter) error {
	for {
		_, choice, err := p.Select(name+" "+l.String(), actions)
		if errors.Is(err, cli.ErrInterrupted) {
			return nil
		} else if err != nil {
			return err
		}
		st, quit, err := r.stepOf(choice, p)
		if errors.Is(err, cli.ErrInterrupted) {
			continue
		} else if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if err := r.Step(name, l, st); err != nil {
			return err
		}
	}
}

func (r *Runner) stepOf(choice string, p Prompter) (st scenario.Step, quit bool, err error) {
	switch choice {
	case scenario.OpPush:
		var text string
		if text, err = p.Input("value", validateInt); err != nil {
			return
		}
		st.Op = scenario.OpPush
		st.Value, err = strconv.Atoi(text)
	case scenario.OpPop, scenario.OpIterate, scenario.OpShape, scenario.OpJSON:
		st.Op = choice
	case actionFilterEven:
		st = scenario.Step{Op: scenario.OpFilter, Predicate: scenario.PredicateEven}
	case actionFilterOdd:
		st = scenario.Step{Op: scenario.OpFilter, Predicate: scenario.PredicateOdd}
	case actionQuit:
		quit = true
	default:
		err = fmt.Errorf("demo: no such action %q", choice)
	}
	return
}

func validateInt(s string) error {
	_, err := strconv.Atoi(s)
	return err
}
