package memory

import (
	"context"
	"sync"

	ports "financas/internal/sheets"
)

// Writer keeps the last report written for each year. It stands in for
// the spreadsheet when none is configured.
type Writer struct {
	mu      sync.Mutex
	reports map[int][][]string
	writes  int
}

var _ ports.ReportWriter = (*Writer)(nil)

func New() *Writer {
	return &Writer{reports: make(map[int][][]string)}
}

func (w *Writer) WriteReport(_ context.Context, year int, rows [][]string) error {
	cp := make([][]string, len(rows))
	for i, row := range rows {
		cp[i] = append([]string(nil), row...)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.reports[year] = cp
	w.writes++
	return nil
}

// Report returns the rows last written for year.
func (w *Writer) Report(year int) ([][]string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	rows, ok := w.reports[year]
	return rows, ok
}

// Writes counts WriteReport calls.
func (w *Writer) Writes() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writes
}
