package report

import (
	"math"
	"reflect"
	"testing"
	"time"

	"financas/internal/core"
)

func tx(id string, typ core.Type, cents int64, date core.Date, cat core.Category) core.Transaction {
	return core.Transaction{
		ID:          id,
		Description: id,
		Amount:      core.Money{Cents: cents},
		Date:        date,
		Type:        typ,
		Category:    cat,
	}
}

func TestSummarize(t *testing.T) {
	txs := []core.Transaction{
		tx("a", core.Income, 500000, core.NewDate(2023, 10, 1), core.Salary),
		tx("b", core.Expense, 150000, core.NewDate(2023, 10, 5), core.Housing),
		tx("c", core.Expense, 80000, core.NewDate(2023, 10, 10), core.Food),
	}
	got := Summarize(txs)
	want := core.SummaryData{
		TotalIncome:  core.Money{Cents: 500000},
		TotalExpense: core.Money{Cents: 230000},
		Balance:      core.Money{Cents: 270000},
	}
	if got != want {
		t.Fatalf("Summarize = %+v, want %+v", got, want)
	}
}

func TestSummarizeBalanceIdentity(t *testing.T) {
	sets := [][]core.Transaction{
		nil,
		core.SeedTransactions(),
		{tx("x", core.Expense, 999, core.NewDate(2024, 1, 1), core.Other)},
	}
	for i, txs := range sets {
		s := Summarize(txs)
		if s.Balance.Cents != s.TotalIncome.Cents-s.TotalExpense.Cents {
			t.Fatalf("set %d: balance %d != %d - %d", i, s.Balance.Cents, s.TotalIncome.Cents, s.TotalExpense.Cents)
		}
	}
}

func TestCategoryBreakdown(t *testing.T) {
	txs := []core.Transaction{
		tx("a", core.Income, 500000, core.NewDate(2023, 10, 1), core.Salary),
		tx("b", core.Expense, 150000, core.NewDate(2023, 10, 5), core.Housing),
		tx("c", core.Expense, 80000, core.NewDate(2023, 10, 10), core.Food),
		tx("d", core.Expense, 1000, core.NewDate(2023, 11, 1), core.Housing),
	}
	got := CategoryBreakdown(txs)
	want := []core.CategoryShare{
		{Category: core.Housing, Amount: core.Money{Cents: 151000}},
		{Category: core.Food, Amount: core.Money{Cents: 80000}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CategoryBreakdown = %+v, want %+v", got, want)
	}
	if got := CategoryBreakdown(nil); len(got) != 0 {
		t.Fatalf("expected no shares for empty input, got %+v", got)
	}
}

func TestMonthlySeries(t *testing.T) {
	txs := []core.Transaction{
		tx("a", core.Expense, 100, core.NewDate(2023, 11, 3), core.Food),
		tx("b", core.Income, 1000, core.NewDate(2023, 10, 1), core.Salary),
		tx("c", core.Expense, 300, core.NewDate(2023, 10, 2), core.Leisure),
		// same month label, different year: shares the "Out" bucket
		tx("d", core.Income, 50, core.NewDate(2022, 10, 9), core.Investments),
	}
	got := MonthlySeries(txs)
	want := []core.MonthlyPoint{
		{Month: "Nov", Expense: core.Money{Cents: 100}, Savings: core.Money{Cents: -100}},
		{Month: "Out", Income: core.Money{Cents: 1050}, Expense: core.Money{Cents: 300}, Savings: core.Money{Cents: 750}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MonthlySeries = %+v, want %+v", got, want)
	}
}

func TestAnnualSeries(t *testing.T) {
	txs := []core.Transaction{
		tx("a", core.Income, 500000, core.NewDate(2023, 10, 1), core.Salary),
		tx("b", core.Expense, 150000, core.NewDate(2023, 10, 5), core.Housing),
		tx("c", core.Expense, 2000, core.NewDate(2023, 1, 31), core.Food),
		tx("d", core.Income, 7000, core.NewDate(2024, 10, 1), core.Salary),
	}

	tests := []struct {
		name        string
		year        int
		wantIncome  int64
		wantExpense int64
	}{
		{"year with data", 2023, 500000, 152000},
		{"other year", 2024, 7000, 0},
		{"empty year", 1999, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			months := AnnualSeries(txs, tt.year)
			if len(months) != 12 {
				t.Fatalf("expected 12 months, got %d", len(months))
			}
			var income, expense int64
			for i, m := range months {
				if m.Month != core.MonthLabels[i] {
					t.Errorf("month %d label = %q", i, m.Month)
				}
				if m.Savings.Cents != m.Income.Cents-m.Expense.Cents {
					t.Errorf("month %s savings mismatch", m.Month)
				}
				income += m.Income.Cents
				expense += m.Expense.Cents
			}
			if income != tt.wantIncome || expense != tt.wantExpense {
				t.Fatalf("income=%d expense=%d, want %d/%d", income, expense, tt.wantIncome, tt.wantExpense)
			}
		})
	}

	months := AnnualSeries(txs, 2023)
	if months[9].Income.Cents != 500000 || months[0].Expense.Cents != 2000 {
		t.Fatalf("unexpected bucket placement: %+v", months)
	}
}

func TestCategoryReport(t *testing.T) {
	txs := []core.Transaction{
		tx("a", core.Expense, 30000, core.NewDate(2024, 2, 1), core.Food),
		tx("b", core.Expense, 70000, core.NewDate(2024, 3, 1), core.Housing),
		tx("c", core.Income, 90000, core.NewDate(2024, 3, 1), core.Salary),
		tx("d", core.Expense, 55500, core.NewDate(2023, 3, 1), core.Leisure),
	}
	got := CategoryReport(txs, 2024)
	want := []core.CategoryReportData{
		{Category: core.Housing, Amount: core.Money{Cents: 70000}, Percentage: 70},
		{Category: core.Food, Amount: core.Money{Cents: 30000}, Percentage: 30},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CategoryReport = %+v, want %+v", got, want)
	}

	if got := CategoryReport(txs, 2030); len(got) != 0 {
		t.Fatalf("expected empty report, got %+v", got)
	}
}

func TestCategoryReportPercentagesSumTo100(t *testing.T) {
	txs := []core.Transaction{
		tx("a", core.Expense, 333, core.NewDate(2024, 1, 1), core.Food),
		tx("b", core.Expense, 333, core.NewDate(2024, 1, 2), core.Housing),
		tx("c", core.Expense, 334, core.NewDate(2024, 1, 3), core.Health),
		tx("d", core.Expense, 17, core.NewDate(2024, 5, 3), core.Education),
	}
	var sum float64
	for _, r := range CategoryReport(txs, 2024) {
		sum += r.Percentage
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("percentages sum to %v", sum)
	}
}

func TestAnnualSummarize(t *testing.T) {
	tests := []struct {
		name     string
		txs      []core.Transaction
		wantRate float64
		savings  int64
	}{
		{
			name: "positive savings",
			txs: []core.Transaction{
				tx("a", core.Income, 100000, core.NewDate(2024, 1, 1), core.Salary),
				tx("b", core.Expense, 25000, core.NewDate(2024, 6, 1), core.Food),
			},
			wantRate: 75,
			savings:  75000,
		},
		{
			name: "no income",
			txs: []core.Transaction{
				tx("b", core.Expense, 25000, core.NewDate(2024, 6, 1), core.Food),
			},
			wantRate: 0,
			savings:  -25000,
		},
		{
			name:     "empty",
			wantRate: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := AnnualSummarize(AnnualSeries(tt.txs, 2024))
			if s.SavingsRate != tt.wantRate {
				t.Errorf("SavingsRate = %v, want %v", s.SavingsRate, tt.wantRate)
			}
			if s.Savings.Cents != tt.savings {
				t.Errorf("Savings = %d, want %d", s.Savings.Cents, tt.savings)
			}
		})
	}
}

func TestBuildAnnualReport(t *testing.T) {
	r := BuildAnnualReport(core.SeedTransactions(), 2023)
	if r.Year != 2023 {
		t.Fatalf("year = %d", r.Year)
	}
	if r.Summary.Income.Cents != 525000 || r.Summary.Expense.Cents != 246000 {
		t.Fatalf("unexpected summary: %+v", r.Summary)
	}
	if len(r.Categories) != 4 || r.Categories[0].Category != core.Housing {
		t.Fatalf("unexpected categories: %+v", r.Categories)
	}
}

func TestAvailableYears(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	txs := []core.Transaction{
		tx("a", core.Income, 1, core.NewDate(2022, 1, 1), core.Salary),
		tx("b", core.Income, 1, core.NewDate(2024, 1, 1), core.Salary),
		tx("c", core.Income, 1, core.NewDate(2022, 5, 1), core.Salary),
		tx("d", core.Income, 1, core.NewDate(2023, 1, 1), core.Salary),
	}
	if got := AvailableYearsAt(txs, now); !reflect.DeepEqual(got, []int{2024, 2023, 2022}) {
		t.Fatalf("AvailableYearsAt = %v", got)
	}
	if got := AvailableYearsAt(nil, now); !reflect.DeepEqual(got, []int{2026}) {
		t.Fatalf("AvailableYearsAt(nil) = %v", got)
	}
	got := AvailableYears(nil)
	if len(got) != 1 || got[0] != time.Now().Year() {
		t.Fatalf("AvailableYears(nil) = %v", got)
	}
}
