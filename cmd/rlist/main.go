package main

import (
	"flag"
	"os"

	"github.com/mattn/go-isatty"
	rfmt "github.com/qjpcpu/rlist/fmt"
	"github.com/qjpcpu/rlist/internal/demo"
	"github.com/qjpcpu/rlist/internal/scenario"
	"github.com/qjpcpu/rlist/list"
)

func main() {
	var (
		scenarioFile = flag.String("scenario", "", "yaml scenario file, built-in demo when empty")
		interactive  = flag.Bool("i", false, "interactive session on a single list")
		showShape    = flag.Bool("shape", false, "render each list's cells after its steps")
		showJSON     = flag.Bool("json", false, "print each list as json after its steps")
		noColor      = flag.Bool("no-color", false, "disable colour output")
	)
	flag.Parse()

	rfmt.SetColor(!*noColor && isatty.IsTerminal(os.Stdout.Fd()))

	var opts []demo.Option
	if *showShape {
		opts = append(opts, demo.WithShape())
	}
	if *showJSON {
		opts = append(opts, demo.WithJSON())
	}
	runner := demo.NewRunner(os.Stdout, opts...)

	if *interactive {
		if err := runner.Interactive("list", list.New[int](), demo.NewPrompter()); err != nil {
			fatal(err)
		}
		return
	}

	sc := scenario.Default()
	if *scenarioFile != "" {
		var err error
		if sc, err = scenario.Load(*scenarioFile); err != nil {
			fatal(err)
		}
	}
	if err := runner.Run(sc); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	rfmt.NewPrinter(os.Stderr).PrependTime()("%s", rfmt.Red(err.Error()))
	os.Exit(1)
}
