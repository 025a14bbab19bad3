package services

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestReportService_AnnualReportIsMemoized(t *testing.T) {
	store := newStore(t)
	svc := NewReportService(store, 4, time.Hour)

	first := svc.AnnualReport(2023)
	if first.Summary.Income.Cents != 525000 || first.Summary.Expense.Cents != 246000 {
		t.Fatalf("unexpected summary %+v", first.Summary)
	}
	if svc.cache.Size() != 1 {
		t.Fatalf("cache size = %d, want 1", svc.cache.Size())
	}
	svc.AnnualReport(2023)
	if svc.cache.Size() != 1 {
		t.Fatal("second call should hit the cache")
	}
}

func TestReportService_RevisionChangeBypassesCache(t *testing.T) {
	store := newStore(t)
	svc := NewReportService(store, 4, time.Hour)

	svc.AnnualReport(2023)
	if _, err := store.Remove(context.Background(), "1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	rep := svc.AnnualReport(2023)
	if rep.Summary.Income.Cents != 25000 {
		t.Fatalf("income = %d, want 25000 after removing the salary", rep.Summary.Income.Cents)
	}
}

func TestReportService_Invalidate(t *testing.T) {
	svc := NewReportService(newStore(t), 4, time.Hour)
	svc.AnnualReport(2023)
	svc.AnnualReport(2022)
	svc.Invalidate()
	if svc.cache.Size() != 0 {
		t.Fatalf("cache size after Invalidate = %d", svc.cache.Size())
	}
}

func TestReportService_Export(t *testing.T) {
	svc := NewReportService(newStore(t), 4, time.Hour)
	body, name, err := svc.Export(2023)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if name != "relatorio_financeiro_2023.csv" {
		t.Fatalf("name = %q", name)
	}
	if lines := strings.Count(body, "\n"); lines != 7 {
		t.Fatalf("expected header plus 6 rows, got %d lines", lines)
	}
}

func TestReportService_AvailableYears(t *testing.T) {
	svc := NewReportService(newStore(t), 4, time.Hour)
	years := svc.AvailableYears()
	if len(years) != 1 || years[0] != 2023 {
		t.Fatalf("AvailableYears = %v", years)
	}
}
