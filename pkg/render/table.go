package render

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table create a borderless table for command output.
func Table(out io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeaderLine(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	return table
}
