package core

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2025, 1, 1), true},
		{NewDate(2025, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2023-10-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2023 || d.Month() != 10 || d.Day() != 5 {
		t.Fatalf("got %v", d)
	}
	for _, in := range []string{"", "05/10/2023", "2023-13-01", "2023-10-05T10:00:00Z"} {
		if _, err := ParseDate(in); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("%q expected ErrInvalidDate, got %v", in, err)
		}
	}
}

func TestNewTransactionValidate(t *testing.T) {
	good := NewTransaction{
		Description: "Aluguel",
		Amount:      Money{Cents: 150000},
		Date:        NewDate(2023, 10, 5),
		Type:        Expense,
		Category:    Housing,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*NewTransaction)
		field   string
		wantErr error
	}{
		{"empty description", func(n *NewTransaction) { n.Description = "  " }, "description", ErrEmptyDescription},
		{"long description", func(n *NewTransaction) { n.Description = strings.Repeat("a", 201) }, "description", ErrDescriptionTooLong},
		{"zero amount", func(n *NewTransaction) { n.Amount = Money{} }, "amount", ErrInvalidAmount},
		{"negative amount", func(n *NewTransaction) { n.Amount = Money{Cents: -1} }, "amount", ErrInvalidAmount},
		{"zero date", func(n *NewTransaction) { n.Date = Date{} }, "date", ErrInvalidDate},
		{"bad type", func(n *NewTransaction) { n.Type = "transfer" }, "type", ErrInvalidType},
		{"bad category", func(n *NewTransaction) { n.Category = "Viagem" }, "category", ErrInvalidCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := good
			tt.mutate(&n)
			err := n.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
			}
			if verr.Field != tt.field {
				t.Errorf("field = %q, want %q", verr.Field, tt.field)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseNewTransaction(t *testing.T) {
	n, err := ParseNewTransaction(" Feira ", "45,90", "2024-02-03", "Expense", "Alimentação")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Description != "Feira" || n.Amount.Cents != 4590 || n.Type != Expense || n.Category != Food {
		t.Fatalf("unexpected result: %+v", n)
	}

	tests := []struct {
		name                 string
		desc, amt, date, typ string
		cat                  string
		field                string
	}{
		{"missing description", "", "10", "2024-01-01", "income", "Salário", "description"},
		{"missing amount", "x", "", "2024-01-01", "income", "Salário", "amount"},
		{"bad amount", "x", "abc", "2024-01-01", "income", "Salário", "amount"},
		{"bad date", "x", "10", "01/01/2024", "income", "Salário", "date"},
		{"bad type", "x", "10", "2024-01-01", "gift", "Salário", "type"},
		{"bad category", "x", "10", "2024-01-01", "income", "Presentes", "category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNewTransaction(tt.desc, tt.amt, tt.date, tt.typ, tt.cat)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestTransactionValidate(t *testing.T) {
	for _, tx := range SeedTransactions() {
		if err := tx.Validate(); err != nil {
			t.Fatalf("seed %s invalid: %v", tx.ID, err)
		}
	}
	bad := SeedTransactions()[0]
	bad.ID = ""
	if err := bad.Validate(); !errors.Is(err, ErrEmptyID) {
		t.Fatalf("expected ErrEmptyID, got %v", err)
	}
}

func TestTransactionJSON(t *testing.T) {
	tx := Transaction{
		ID:          "abc",
		Description: "Supermercado",
		Amount:      Money{Cents: 80050},
		Date:        NewDate(2023, 10, 10),
		Type:        Expense,
		Category:    Food,
	}
	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"abc","description":"Supermercado","amount":800.5,"date":"2023-10-10","type":"expense","category":"Alimentação"}`
	if string(data) != want {
		t.Fatalf("got  %s\nwant %s", data, want)
	}

	var decoded Transaction
	if err := json.Unmarshal([]byte(`{"id":"1","description":"Salário Mensal","amount":5000,"date":"2023-10-01","type":"income","category":"Salário"}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Amount.Cents != 500000 || decoded.Date.Year() != 2023 || decoded.Category != Salary {
		t.Fatalf("unexpected decode: %+v", decoded)
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(cats))
	}
	for _, c := range cats {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
		if !strings.HasPrefix(c.Color(), "#") {
			t.Errorf("%s color = %q", c, c.Color())
		}
	}
	if Category("Viagem").Valid() {
		t.Error("unknown category should be invalid")
	}
	cats[0] = "mutated"
	if Categories()[0] != Food {
		t.Error("Categories must return a copy")
	}
}

func TestTypeLabel(t *testing.T) {
	if Income.Label() != "Entrada" || Expense.Label() != "Saida" {
		t.Fatalf("labels = %q/%q", Income.Label(), Expense.Label())
	}
}

func TestSeedTransactions(t *testing.T) {
	seed := SeedTransactions()
	if len(seed) != 6 {
		t.Fatalf("expected 6 seed records, got %d", len(seed))
	}
	for _, tx := range seed {
		if tx.Date.Year() != 2023 || tx.Date.Month() != 10 {
			t.Errorf("seed %s dated %s, want October 2023", tx.ID, tx.Date)
		}
	}
	seed[0].Description = "changed"
	if SeedTransactions()[0].Description != "Salário Mensal" {
		t.Error("SeedTransactions must return a fresh slice")
	}
}

func TestViewState(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	def := DefaultViewState(now)

	v := ViewState{Type: "EXPENSE", Category: "All", Search: "  mercado "}.Normalize(def)
	if v.Tab != TabDashboard || v.Type != "expense" || v.Category != FilterAll || v.Search != "mercado" || v.Year != 2024 {
		t.Fatalf("unexpected normalized state: %+v", v)
	}
	if err := v.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	bads := []ViewState{
		{Tab: "settings", Type: FilterAll, Category: FilterAll, Year: 2024},
		{Tab: TabReports, Type: "gift", Category: FilterAll, Year: 2024},
		{Tab: TabReports, Type: FilterAll, Category: "Viagem", Year: 2024},
		{Tab: TabReports, Type: FilterAll, Category: FilterAll, Year: -1},
	}
	for i, b := range bads {
		if err := b.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
