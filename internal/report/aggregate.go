package report

import (
	"sort"
	"time"

	"financas/internal/core"
)

// Summarize totals income and expense and derives the balance.
func Summarize(txs []core.Transaction) core.SummaryData {
	var s core.SummaryData
	for _, tx := range txs {
		switch tx.Type {
		case core.Income:
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
		case core.Expense:
			s.TotalExpense = s.TotalExpense.Add(tx.Amount)
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

// CategoryBreakdown sums expenses per category. Categories appear in the
// order of their first expense; categories without expenses are absent.
func CategoryBreakdown(txs []core.Transaction) []core.CategoryShare {
	index := make(map[core.Category]int)
	out := make([]core.CategoryShare, 0)
	for _, tx := range txs {
		if tx.Type != core.Expense {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(out)
			index[tx.Category] = i
			out = append(out, core.CategoryShare{Category: tx.Category})
		}
		out[i].Amount = out[i].Amount.Add(tx.Amount)
	}
	return out
}

// MonthlySeries groups every transaction by its short month label in order
// of first appearance. The label carries no year, so the same month of
// different years lands in one bucket.
func MonthlySeries(txs []core.Transaction) []core.MonthlyPoint {
	index := make(map[string]int)
	out := make([]core.MonthlyPoint, 0)
	for _, tx := range txs {
		label := core.MonthLabel(tx.Date.Month())
		i, ok := index[label]
		if !ok {
			i = len(out)
			index[label] = i
			out = append(out, core.MonthlyPoint{Month: label})
		}
		accumulate(&out[i], tx)
	}
	return out
}

// AnnualSeries returns one zero-filled point per calendar month of year.
func AnnualSeries(txs []core.Transaction, year int) [12]core.MonthlyPoint {
	var months [12]core.MonthlyPoint
	for i := range months {
		months[i].Month = core.MonthLabels[i]
	}
	for _, tx := range txs {
		if tx.Date.Year() != year {
			continue
		}
		accumulate(&months[tx.Date.Month()-1], tx)
	}
	return months
}

func accumulate(p *core.MonthlyPoint, tx core.Transaction) {
	switch tx.Type {
	case core.Income:
		p.Income = p.Income.Add(tx.Amount)
	case core.Expense:
		p.Expense = p.Expense.Add(tx.Amount)
	}
	p.Savings = p.Income.Sub(p.Expense)
}

// CategoryReport sums the expenses of year per category with each
// category's share of the year's total expense, largest first.
func CategoryReport(txs []core.Transaction, year int) []core.CategoryReportData {
	shares := CategoryBreakdown(InYear(txs, year))

	var total int64
	for _, s := range shares {
		total += s.Amount.Cents
	}

	out := make([]core.CategoryReportData, len(shares))
	for i, s := range shares {
		out[i] = core.CategoryReportData{Category: s.Category, Amount: s.Amount}
		if total > 0 {
			out[i].Percentage = float64(s.Amount.Cents) * 100 / float64(total)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.Cents > out[j].Amount.Cents
	})
	return out
}

// AnnualSummarize totals an annual series.
func AnnualSummarize(months [12]core.MonthlyPoint) core.AnnualSummary {
	var s core.AnnualSummary
	for _, m := range months {
		s.Income = s.Income.Add(m.Income)
		s.Expense = s.Expense.Add(m.Expense)
	}
	s.Savings = s.Income.Sub(s.Expense)
	if s.Income.Cents > 0 {
		s.SavingsRate = float64(s.Savings.Cents) * 100 / float64(s.Income.Cents)
	}
	return s
}

// BuildAnnualReport computes the full report view of year.
func BuildAnnualReport(txs []core.Transaction, year int) core.AnnualReport {
	months := AnnualSeries(txs, year)
	return core.AnnualReport{
		Year:       year,
		Months:     months,
		Categories: CategoryReport(txs, year),
		Summary:    AnnualSummarize(months),
	}
}

// AvailableYears lists the distinct years present, newest first. An empty
// collection yields the current year.
func AvailableYears(txs []core.Transaction) []int {
	return AvailableYearsAt(txs, time.Now())
}

// AvailableYearsAt is AvailableYears with an explicit clock.
func AvailableYearsAt(txs []core.Transaction, now time.Time) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, tx := range txs {
		y := tx.Date.Year()
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	if len(years) == 0 {
		return []int{now.Year()}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
