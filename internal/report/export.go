package report

import (
	"encoding/csv"
	"fmt"
	"strings"

	"financas/internal/core"
)

// ExportHeader is the header row of an exported report.
var ExportHeader = []string{"Data", "Descricao", "Categoria", "Tipo", "Valor"}

// ExportFileName is the download name of the report of year.
func ExportFileName(year int) string {
	return fmt.Sprintf("relatorio_financeiro_%d.csv", year)
}

// ExportRows returns the header followed by one row per transaction of
// year, in collection order.
func ExportRows(txs []core.Transaction, year int) [][]string {
	rows := [][]string{ExportHeader}
	for _, tx := range InYear(txs, year) {
		rows = append(rows, []string{
			tx.Date.String(),
			tx.Description,
			tx.Category.String(),
			tx.Type.Label(),
			tx.Amount.String(),
		})
	}
	return rows
}

// ExportCSV renders the transactions of year as comma separated text.
// Fields containing commas, quotes or newlines are quoted.
func ExportCSV(txs []core.Transaction, year int) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.WriteAll(ExportRows(txs, year)); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return b.String(), nil
}
