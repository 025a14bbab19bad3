package report

import (
	"reflect"
	"testing"

	"financas/internal/core"
)

func ids(txs []core.Transaction) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	txs := core.SeedTransactions()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"no filters sorts newest first", Criteria{}, []string{"6", "5", "4", "3", "2", "1"}},
		{"all keyword", Criteria{Type: core.FilterAll, Category: core.FilterAll}, []string{"6", "5", "4", "3", "2", "1"}},
		{"income only", Criteria{Type: "income"}, []string{"5", "1"}},
		{"category", Criteria{Category: "Moradia"}, []string{"2"}},
		{"search is case insensitive", Criteria{Search: "MERCADO"}, []string{"3"}},
		{"combined", Criteria{Type: "expense", Search: "n"}, []string{"6", "4"}},
		{"no match", Criteria{Type: "income", Category: "Lazer"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(txs, tt.criteria))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Filter = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterStableForEqualDates(t *testing.T) {
	d := core.NewDate(2024, 4, 4)
	txs := []core.Transaction{
		tx("first", core.Expense, 1, d, core.Food),
		tx("older", core.Expense, 1, core.NewDate(2024, 4, 1), core.Food),
		tx("second", core.Expense, 1, d, core.Food),
		tx("third", core.Income, 1, d, core.Salary),
	}
	got := ids(Filter(txs, Criteria{}))
	want := []string{"first", "second", "third", "older"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter = %v, want %v", got, want)
	}
}

func TestFilterIdempotent(t *testing.T) {
	c := Criteria{Type: "expense", Search: "e"}
	once := Filter(core.SeedTransactions(), c)
	twice := Filter(once, c)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filter not idempotent: %v vs %v", ids(once), ids(twice))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	txs := core.SeedTransactions()
	before := ids(txs)
	_ = Filter(txs, Criteria{})
	if !reflect.DeepEqual(ids(txs), before) {
		t.Fatalf("input reordered: %v", ids(txs))
	}
}

func TestCriteriaFromView(t *testing.T) {
	v := core.ViewState{Tab: core.TabTransactions, Type: "income", Category: "Salário", Search: "sal", Year: 2023}
	got := CriteriaFromView(v)
	want := Criteria{Type: "income", Category: "Salário", Search: "sal"}
	if got != want {
		t.Fatalf("CriteriaFromView = %+v, want %+v", got, want)
	}
}
