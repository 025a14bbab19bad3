package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{"12.344", 1234, true},
		{" 2.50 ", 250, true},
		{"1500", 150000, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"0", 0, false},
		{"0.001", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
		{"1e2", 10000, true},
		{"1e-20000000", 0, false},
		{"1e20000000", 0, false},
		{"0.0000000000000000001", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{150000, "1500.00"},
		{4590, "45.90"},
		{5, "0.05"},
		{0, "0.00"},
		{-2700, "-27.00"},
	}
	for _, tt := range tests {
		if got := (Money{Cents: tt.cents}).String(); got != tt.want {
			t.Errorf("Money{%d}.String() = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestMoneyJSON(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		cents int64
		ok    bool
	}{
		{"integer", `5000`, 500000, true},
		{"fraction", `12.5`, 1250, true},
		{"rounds half up", `0.125`, 13, true},
		{"quoted", `"99.99"`, 9999, true},
		{"null", `null`, 0, true},
		{"garbage", `"abc"`, 0, false},
		{"tiny exponent", `1e-20000000`, 0, false},
		{"huge exponent", `"1e20000000"`, 0, false},
		{"exceeds int64", `1e18`, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			err := json.Unmarshal([]byte(tt.in), &m)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if m.Cents != tt.cents {
				t.Fatalf("cents = %d, want %d", m.Cents, tt.cents)
			}
		})
	}

	out, err := json.Marshal(Money{Cents: 123456})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "1234.56" {
		t.Fatalf("marshal = %s", out)
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
}

func TestMonthLabel(t *testing.T) {
	if MonthLabel(1) != "Jan" || MonthLabel(10) != "Out" || MonthLabel(12) != "Dez" {
		t.Fatalf("unexpected labels")
	}
	if MonthLabel(0) != "" || MonthLabel(13) != "" {
		t.Fatalf("out of range months must yield empty label")
	}
}
