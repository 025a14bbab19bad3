package services

import (
	"time"

	"financas/internal/cache"
	"financas/internal/core"
	"financas/internal/ledger"
	"financas/internal/report"
)

type reportKey struct {
	revision uint64
	year     int
}

// ReportService memoizes annual reports per store revision.
type ReportService struct {
	store *ledger.Store
	cache *cache.LRUCache[reportKey, core.AnnualReport]
}

func NewReportService(store *ledger.Store, cacheSize int, ttl time.Duration) *ReportService {
	return &ReportService{
		store: store,
		cache: cache.NewLRUCache[reportKey, core.AnnualReport](cacheSize, ttl),
	}
}

// Cache exposes the report cache so it can be registered for cleanup.
func (s *ReportService) Cache() cache.Cleaner {
	return s.cache
}

func (s *ReportService) AnnualReport(year int) core.AnnualReport {
	key := reportKey{revision: s.store.Revision(), year: year}
	rep, _ := s.cache.GetOrCompute(key, func() (core.AnnualReport, error) {
		return report.BuildAnnualReport(s.store.List(), year), nil
	})
	return rep
}

func (s *ReportService) AvailableYears() []int {
	return report.AvailableYears(s.store.List())
}

// Export renders the year's CSV and its download file name.
func (s *ReportService) Export(year int) (string, string, error) {
	body, err := report.ExportCSV(s.store.List(), year)
	if err != nil {
		return "", "", err
	}
	return body, report.ExportFileName(year), nil
}

// Invalidate drops every memoized report.
func (s *ReportService) Invalidate() {
	s.cache.Purge()
}
