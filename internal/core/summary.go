package core

// MonthLabels are the short pt-BR month names, January first.
var MonthLabels = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// MonthLabel returns the short label of a 1-based month.
func MonthLabel(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return MonthLabels[month-1]
}

// SummaryData holds aggregate totals over a set of transactions.
type SummaryData struct {
	TotalIncome  Money `json:"totalIncome"`
	TotalExpense Money `json:"totalExpense"`
	Balance      Money `json:"balance"`
}

// CategoryShare is the expense total of one category.
type CategoryShare struct {
	Category Category `json:"name"`
	Amount   Money    `json:"value"`
}

// MonthlyPoint is one bucket of a monthly income/expense series.
type MonthlyPoint struct {
	Month   string `json:"month"`
	Income  Money  `json:"income"`
	Expense Money  `json:"expense"`
	Savings Money  `json:"savings"`
}

// CategoryReportData is a category expense total with its share of the
// year's total expense, in percent.
type CategoryReportData struct {
	Category   Category `json:"name"`
	Amount     Money    `json:"value"`
	Percentage float64  `json:"percentage"`
}

type AnnualSummary struct {
	Income      Money   `json:"income"`
	Expense     Money   `json:"expense"`
	Savings     Money   `json:"savings"`
	SavingsRate float64 `json:"savingsRate"`
}

// AnnualReport bundles everything the report view shows for one year.
type AnnualReport struct {
	Year       int                  `json:"year"`
	Months     [12]MonthlyPoint     `json:"months"`
	Categories []CategoryReportData `json:"categories"`
	Summary    AnnualSummary        `json:"summary"`
}
