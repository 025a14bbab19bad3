package core

import (
	"errors"
	"strings"
	"time"
)

// Tabs of the presentation layer.
const (
	TabDashboard    = "dashboard"
	TabTransactions = "transactions"
	TabReports      = "reports"
)

// FilterAll disables the type or category filter.
const FilterAll = "all"

var ErrInvalidTab = errors.New("invalid tab")

// ViewState is the serializable UI state: the active tab, the transaction
// list filters and the year selected in the report view.
type ViewState struct {
	Tab      string `json:"tab"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Search   string `json:"search"`
	Year     int    `json:"year"`
}

// DefaultViewState is the state of a fresh session.
func DefaultViewState(now time.Time) ViewState {
	return ViewState{
		Tab:      TabDashboard,
		Type:     FilterAll,
		Category: FilterAll,
		Year:     now.Year(),
	}
}

// Normalize fills blank fields from def and canonicalizes case.
func (v ViewState) Normalize(def ViewState) ViewState {
	v.Tab = strings.ToLower(strings.TrimSpace(v.Tab))
	if v.Tab == "" {
		v.Tab = def.Tab
	}
	v.Type = strings.ToLower(strings.TrimSpace(v.Type))
	if v.Type == "" {
		v.Type = def.Type
	}
	v.Category = strings.TrimSpace(v.Category)
	if v.Category == "" || strings.EqualFold(v.Category, FilterAll) {
		v.Category = def.Category
	}
	v.Search = strings.TrimSpace(v.Search)
	if v.Year == 0 {
		v.Year = def.Year
	}
	return v
}

func (v ViewState) Validate() error {
	switch v.Tab {
	case TabDashboard, TabTransactions, TabReports:
	default:
		return invalid("tab", ErrInvalidTab)
	}
	if v.Type != FilterAll && !Type(v.Type).Valid() {
		return invalid("type", ErrInvalidType)
	}
	if v.Category != FilterAll && !Category(v.Category).Valid() {
		return invalid("category", ErrInvalidCategory)
	}
	if v.Year < 1 || v.Year > 9999 {
		return invalid("year", ErrInvalidDate)
	}
	return nil
}
