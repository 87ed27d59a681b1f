package cli

import (
	"io"

	gotable "github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
)

type Table interface {
	SetTitle(title string) Table
	SetHeader(v ...interface{}) Table
	AddRow(v ...interface{}) Table
	SetStyle(Style) Table
	Render() string
}

type Style = gotable.Style

type table struct {
	tw gotable.Writer
}

// NewTable renders to w on every Render
func NewTable(w io.Writer) Table {
	t := &table{
		tw: gotable.NewWriter(),
	}
	style := gotable.StyleLight
	style.Format.Header = text.FormatDefault
	t.tw.SetStyle(style)
	t.tw.SetOutputMirror(w)
	return t
}

func (t *table) SetTitle(title string) Table {
	t.tw.SetTitle("%s", title)
	return t
}

func (t *table) SetStyle(style Style) Table {
	t.tw.SetStyle(style)
	return t
}

func (t *table) SetHeader(v ...interface{}) Table {
	t.tw.AppendHeader(gotable.Row(v))
	return t
}

func (t *table) AddRow(cells ...interface{}) Table {
	t.tw.AppendRows([]gotable.Row{cells})
	return t
}

func (t *table) Render() string {
	return t.tw.Render()
}
