package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// newTable returns a table writer rendering to w in the rounded box style.
// Colors are left off so output stays plain when piped.
func newTable(w io.Writer) table.Writer {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(style)

	return t
}
