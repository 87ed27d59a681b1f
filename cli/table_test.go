package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	out := NewTable(&buf).
		SetTitle("list a").
		SetHeader("depth", "kind", "item").
		AddRow(0, "Link", 3).
		AddRow(1, "Terminal", 4).
		Render()

	assert.Contains(t, out, "list a")
	assert.Contains(t, out, "Terminal")
	assert.Contains(t, buf.String(), "Link")
}
