// Package demo drives lists from a scenario or an interactive prompt using
// only the public list API.
package demo

import (
	"fmt"
	"io"

	"github.com/qjpcpu/rlist/cli"
	rfmt "github.com/qjpcpu/rlist/fmt"
	"github.com/qjpcpu/rlist/fp"
	"github.com/qjpcpu/rlist/internal/scenario"
	"github.com/qjpcpu/rlist/list"
)

type Runner struct {
	w     io.Writer
	print rfmt.Printer
	opts  *options
}

func NewRunner(w io.Writer, opts ...Option) *Runner {
	o := newOptions()
	for _, fn := range opts {
		fn(o)
	}
	return &Runner{
		w:     w,
		print: rfmt.NewPrinter(w),
		opts:  o,
	}
}

// Run executes every list of sc in order. Lists are independent of each other.
func (r *Runner) Run(sc *scenario.Scenario) error {
	for i, spec := range sc.Lists {
		if i > 0 {
			r.separator()
		}
		l := list.From(spec.Push...)
		for _, st := range spec.Steps {
			if err := r.Step(spec.Name, l, st); err != nil {
				return err
			}
		}
		if err := l.Validate(); err != nil {
			return fmt.Errorf("list %q: %w", spec.Name, err)
		}
		if r.opts.ShowShape {
			r.renderShape(spec.Name, l)
		}
		if r.opts.ShowJSON {
			rfmt.PrintObject(r.w, l)
		}
	}
	return nil
}

// Step applies one operation to l. Iteration and filtering walk a clone so
// l stays usable.
func (r *Runner) Step(name string, l *list.List[int], st scenario.Step) error {
	switch st.Op {
	case scenario.OpPush:
		l.Push(st.Value)
		r.print("%s push %d", name, st.Value)
	case scenario.OpPop:
		if v, ok := l.Pop(); ok {
			r.print("%d", v)
		} else {
			r.print("%s is empty", name)
		}
	case scenario.OpIterate:
		fp.StreamOf[int](l.Clone().IntoIter()).Foreach(func(v int) {
			r.print("%d", v)
		})
	case scenario.OpFilter:
		pred, err := predicateOf(st.Predicate)
		if err != nil {
			return err
		}
		fp.StreamOf[int](l.Clone().IntoIter()).Filter(pred).Foreach(func(v int) {
			r.print("%d", v)
		})
	case scenario.OpShape:
		r.renderShape(name, l)
	case scenario.OpJSON:
		rfmt.PrintObject(r.w, l)
	case scenario.OpSeparator:
		r.separator()
	default:
		return fmt.Errorf("%w %q", scenario.ErrUnknownOp, st.Op)
	}
	return nil
}

func (r *Runner) separator() {
	if r.opts.Separator != "" {
		r.print(r.opts.Separator)
	}
}

func (r *Runner) renderShape(name string, l *list.List[int]) {
	t := cli.NewTable(r.w).SetTitle(name).SetHeader("depth", "kind", "item")
	items := l.Items()
	for depth, kind := range l.Shape() {
		t.AddRow(depth, kind, items[depth])
	}
	if l.IsEmpty() {
		t.AddRow(0, list.Empty, "")
	}
	t.Render()
}

func predicateOf(name string) (func(int) bool, error) {
	switch name {
	case scenario.PredicateEven:
		return fp.Even[int], nil
	case scenario.PredicateOdd:
		return fp.Odd[int], nil
	default:
		return nil, fmt.Errorf("%w %q", scenario.ErrUnknownPredicate, name)
	}
}
