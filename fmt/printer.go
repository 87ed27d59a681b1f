package fmt

import (
	sysfmt "fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/qjpcpu/rlist/json"
)

var (
	Green      = color.New(color.FgGreen, color.Bold).SprintFunc()
	Cyan       = color.New(color.FgCyan, color.Bold).SprintFunc()
	Magenta    = color.New(color.FgMagenta, color.Bold).SprintFunc()
	Yellow     = color.New(color.FgYellow, color.Bold).SprintFunc()
	Red        = color.New(color.FgRed, color.Bold).SprintFunc()
	colorFuncs = []func(a ...interface{}) string{
		Green,
		Cyan,
		Magenta,
		Yellow,
	}
)

// SetColor turns colour output on or off for every printer
func SetColor(on bool) {
	color.NoColor = !on
}

// Printer prints a format line, colouring each argument
type Printer func(format string, args ...interface{})

// NewPrinter writes to w
func NewPrinter(w io.Writer) Printer {
	return func(format string, args ...interface{}) {
		sysfmt.Fprint(w, colorLine(format, args...))
	}
}

func (p Printer) PrependTime() Printer {
	return func(format string, args ...interface{}) {
		p(timeStr(time.Now())+" "+format, args...)
	}
}

// PrintObject with color
func PrintObject(w io.Writer, v interface{}) {
	sysfmt.Fprintln(w, string(json.PrettyMarshal(v)))
}

// Sprint renders a line the way a Printer would, without writing it
func Sprint(format string, args ...interface{}) string {
	return colorLine(format, args...)
}

func colorLine(format string, args ...interface{}) string {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	if len(args) == 0 {
		return format
	}
	format, verbs := rewriteFormat(format)
	colored := make([]interface{}, len(args))
	for i, v := range args {
		verb := "%v"
		if i < len(verbs) {
			verb = verbs[i]
		}
		colored[i] = colorFuncs[i%len(colorFuncs)](sysfmt.Sprintf(verb, v))
	}
	return sysfmt.Sprintf(format, colored...)
}

// rewriteFormat turns every verb into %s, keeping %% as is, and returns the
// original verbs in order.
func rewriteFormat(format string) (string, []string) {
	var out []rune
	var verbs []string
	runes := []rune(format)
	for i := 0; i < len(runes); {
		if runes[i] == '%' && i < len(runes)-1 && runes[i+1] == '%' {
			out = append(out, runes[i], runes[i+1])
			i += 2
			continue
		}
		if runes[i] == '%' {
			j := i + 1
			for ; j < len(runes); j++ {
				if (runes[j] >= 'A' && runes[j] <= 'Z') || (runes[j] >= 'a' && runes[j] <= 'z') {
					break
				}
			}
			verbs = append(verbs, string(runes[i:min(j+1, len(runes))]))
			out = append(out, '%', 's')
			i = j + 1
			continue
		}
		out = append(out, runes[i])
		i++
	}
	return string(out), verbs
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func timeStr(tm time.Time) string {
	return tm.Format("15:04:05")
}
