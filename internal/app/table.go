package app

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/vk/unitgrid/internal/model"
)

// renderReceipts formats receipts as a table with a total row.
func renderReceipts(receipts []model.Receipt) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Payer", "Payee", "Label", "Details", "Amount"})

	var total model.Dollars
	for _, r := range receipts {
		tw.AppendRow(table.Row{r.Payer().String(), r.Payee().String(), r.Label(), r.Details(), r.Amount().String()})
		total = total.Add(r.Amount())
	}
	tw.AppendFooter(table.Row{"", "", "", "Total", total.String()})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}
