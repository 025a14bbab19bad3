// Package report derives views from a transaction collection: filtered
// lists, summaries, monthly series, annual reports and CSV exports. Every
// function is pure and leaves its input untouched.
package report

import (
	"sort"
	"strings"

	"financas/internal/core"
)

// Criteria narrows a transaction list. Empty fields and core.FilterAll
// disable the corresponding filter.
type Criteria struct {
	Type     string
	Category string
	Search   string
}

// CriteriaFromView extracts the list filters of a view state.
func CriteriaFromView(v core.ViewState) Criteria {
	return Criteria{Type: v.Type, Category: v.Category, Search: v.Search}
}

func (c Criteria) matches(tx core.Transaction) bool {
	if c.Type != "" && c.Type != core.FilterAll && string(tx.Type) != c.Type {
		return false
	}
	if c.Category != "" && c.Category != core.FilterAll && string(tx.Category) != c.Category {
		return false
	}
	if c.Search != "" && !strings.Contains(strings.ToLower(tx.Description), strings.ToLower(c.Search)) {
		return false
	}
	return true
}

// Filter returns the transactions matching c, most recent first. Records
// sharing a date keep their relative input order.
func Filter(txs []core.Transaction, c Criteria) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if c.matches(tx) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

// InYear returns the transactions dated within year, in input order.
func InYear(txs []core.Transaction, year int) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Date.Year() == year {
			out = append(out, tx)
		}
	}
	return out
}
