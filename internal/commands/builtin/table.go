package builtin

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// renderTable renders rows as a light-bordered table.
func renderTable(header table.Row, rows []table.Row) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRows(rows)
	return t.Render()
}
