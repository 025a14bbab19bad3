// Package sheets mirrors annual reports into a spreadsheet.
package sheets

import (
	"context"
	"fmt"

	"financas/internal/core"
	"financas/internal/report"
)

// ReportWriter replaces the content of a year's report sheet.
type ReportWriter interface {
	WriteReport(ctx context.Context, year int, rows [][]string) error
}

// ReportRows lays out a year as the CSV export rows, a blank row, then
// the monthly block and the yearly totals.
func ReportRows(txs []core.Transaction, rep core.AnnualReport) [][]string {
	rows := report.ExportRows(txs, rep.Year)

	rows = append(rows, []string{}, []string{"Mes", "Entradas", "Saidas", "Economia"})
	for _, m := range rep.Months {
		rows = append(rows, []string{m.Month, m.Income.String(), m.Expense.String(), m.Savings.String()})
	}

	rows = append(rows,
		[]string{},
		[]string{"Total", rep.Summary.Income.String(), rep.Summary.Expense.String(), rep.Summary.Savings.String()},
		[]string{"Taxa de economia", fmt.Sprintf("%.1f%%", rep.Summary.SavingsRate)},
	)
	return rows
}
