package fmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterPlain(t *testing.T) {
	SetColor(false)
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p("pop %d -> %v", 1, true)
	p("100%% done")
	p("no args\n")
	assert.Equal(t, "pop 1 -> true\n100%% done\nno args\n", buf.String())
}

func TestPrinterKeepsVerbs(t *testing.T) {
	SetColor(false)
	assert.Equal(t, "\"a\" 03 50%\n", Sprint("%q %02d 50%%", "a", 3))
}

func TestPrinterColors(t *testing.T) {
	SetColor(true)
	defer SetColor(false)
	out := Sprint("%v", 3)
	assert.Contains(t, out, "3")
	assert.NotEqual(t, "3\n", out)
}

func TestRewriteFormat(t *testing.T) {
	f, verbs := rewriteFormat("%d and %-5s %%")
	assert.Equal(t, "%s and %s %%", f)
	assert.Equal(t, []string{"%d", "%-5s"}, verbs)
}

func TestPrintObject(t *testing.T) {
	SetColor(false)
	var buf bytes.Buffer
	PrintObject(&buf, []int{6, 8})
	assert.Contains(t, buf.String(), "6")
	assert.Contains(t, buf.String(), "8")
}
