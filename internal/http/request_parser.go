package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"financas/internal/core"
)

var errInvalidYear = errors.New("invalid year")

// ParseViewState reads the view state from the query string and fills the
// blanks from the defaults at now. Accepted keys are tab, type, category,
// q (or search) and year.
func ParseViewState(c *gin.Context, now time.Time) (core.ViewState, error) {
	v := core.ViewState{
		Tab:      sanitizeInput(c.Query("tab")),
		Type:     sanitizeInput(c.Query("type")),
		Category: sanitizeInput(c.Query("category")),
		Search:   sanitizeInput(c.Query("q")),
	}
	if v.Search == "" {
		v.Search = sanitizeInput(c.Query("search"))
	}
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return core.ViewState{}, &core.ValidationError{Field: "year", Err: errInvalidYear}
		}
		v.Year = year
	}

	v = v.Normalize(core.DefaultViewState(now))
	if err := v.Validate(); err != nil {
		return core.ViewState{}, err
	}
	return v, nil
}

// parseYearParam reads the :year path parameter.
func parseYearParam(c *gin.Context) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(c.Param("year")))
	if err != nil || year < 1 || year > 9999 {
		return 0, errInvalidYear
	}
	return year, nil
}

// flexibleAmount accepts a JSON number or a JSON string.
type flexibleAmount string

func (a *flexibleAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = flexibleAmount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or a string: %w", err)
	}
	*a = flexibleAmount(n.String())
	return nil
}

// transactionRequest is the body of POST /api/transactions.
type transactionRequest struct {
	Description string         `json:"description"`
	Amount      flexibleAmount `json:"amount"`
	Date        string         `json:"date"`
	Type        string         `json:"type"`
	Category    string         `json:"category"`
}

// toNewTransaction validates the request. Every failure is a
// *core.ValidationError.
func (r transactionRequest) toNewTransaction() (core.NewTransaction, error) {
	return core.ParseNewTransaction(
		sanitizeInput(r.Description),
		string(r.Amount),
		r.Date,
		r.Type,
		sanitizeInput(r.Category),
	)
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
