package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"financas/internal/core"
)

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParseViewState(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		target  string
		want    core.ViewState
		wantErr string
	}{
		{
			name:   "defaults",
			target: "/",
			want:   core.ViewState{Tab: core.TabDashboard, Type: core.FilterAll, Category: core.FilterAll, Year: 2024},
		},
		{
			name:   "all values",
			target: "/?tab=transactions&type=income&category=Sal%C3%A1rio&q=+bonus+&year=2023",
			want:   core.ViewState{Tab: core.TabTransactions, Type: "income", Category: "Salário", Search: "bonus", Year: 2023},
		},
		{
			name:   "search alias",
			target: "/?search=aluguel",
			want:   core.ViewState{Tab: core.TabDashboard, Type: core.FilterAll, Category: core.FilterAll, Search: "aluguel", Year: 2024},
		},
		{
			name:   "category ALL",
			target: "/?category=ALL",
			want:   core.ViewState{Tab: core.TabDashboard, Type: core.FilterAll, Category: core.FilterAll, Year: 2024},
		},
		{name: "bad year", target: "/?year=20x4", wantErr: "year"},
		{name: "year out of range", target: "/?year=10000", wantErr: "year"},
		{name: "bad tab", target: "/?tab=settings", wantErr: "tab"},
		{name: "bad type", target: "/?type=transfer", wantErr: "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseViewState(testContext(tt.target), now)
			if tt.wantErr != "" {
				verr, ok := err.(*core.ValidationError)
				if !ok || verr.Field != tt.wantErr {
					t.Fatalf("expected validation error on %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFlexibleAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"integer", `1500`, "1500", false},
		{"decimal", `12.5`, "12.5", false},
		{"string", `"12,50"`, "12,50", false},
		{"null", `null`, "", false},
		{"bool", `true`, "", true},
		{"object", `{}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a flexibleAmount
			err := json.Unmarshal([]byte(tt.input), &a)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(a) != tt.want {
				t.Errorf("got %q, want %q", a, tt.want)
			}
		})
	}
}

func TestTransactionRequestToNewTransaction(t *testing.T) {
	req := transactionRequest{
		Description: " Feira\x00 ",
		Amount:      "12,50",
		Date:        "2023-10-21",
		Type:        "Expense",
		Category:    "Alimentação",
	}
	n, err := req.toNewTransaction()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Description != "Feira" || n.Amount.Cents != 1250 || n.Type != core.Expense || n.Date.Day() != 21 {
		t.Errorf("unexpected transaction %+v", n)
	}
}

func TestParseYearParam(t *testing.T) {
	tests := []struct {
		param   string
		want    int
		wantErr bool
	}{
		{"2023", 2023, false},
		{" 2024 ", 2024, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			c := testContext("/")
			c.Params = gin.Params{{Key: "year", Value: tt.param}}
			got, err := parseYearParam(c)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"  hello  ", "hello"},
		{"a\x00b\x07c", "abc"},
		{"tab\tkept", "tab\tkept"},
	}
	for _, tt := range tests {
		if got := sanitizeInput(tt.input); got != tt.want {
			t.Errorf("sanitizeInput(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
