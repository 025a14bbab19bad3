package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Income  Type = "income"
	Expense Type = "expense"
)

const (
	Food        Category = "Alimentação"
	Housing     Category = "Moradia"
	Transport   Category = "Transporte"
	Leisure     Category = "Lazer"
	Health      Category = "Saúde"
	Education   Category = "Educação"
	Salary      Category = "Salário"
	Investments Category = "Investimentos"
	Other       Category = "Outros"
)

// MaxDescriptionLength bounds the free-text label of a transaction.
const MaxDescriptionLength = 200

type (
	// Type decides the sign of a transaction in every aggregation.
	Type string

	Category string

	Date struct {
		time.Time
	}

	// Money is an amount in cents. Stored transactions only hold positive
	// magnitudes; derived values such as a balance may be negative.
	Money struct {
		Cents int64
	}

	Transaction struct {
		ID          string   `json:"id"`
		Description string   `json:"description"`
		Amount      Money    `json:"amount"`
		Date        Date     `json:"date"`
		Type        Type     `json:"type"`
		Category    Category `json:"category"`
	}

	// NewTransaction carries every caller supplied field of a transaction.
	// The store assigns the ID.
	NewTransaction struct {
		Description string
		Amount      Money
		Date        Date
		Type        Type
		Category    Category
	}
)

var (
	ErrEmptyDescription   = errors.New("empty description")
	ErrDescriptionTooLong = fmt.Errorf("description too long (max %d characters)", MaxDescriptionLength)
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrEmptyID            = errors.New("empty transaction id")
)

// ValidationError names the input field that was rejected.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

var categories = []Category{Food, Housing, Transport, Leisure, Health, Education, Salary, Investments, Other}

var categoryColors = map[Category]string{
	Food:        "#f59e0b",
	Housing:     "#3b82f6",
	Transport:   "#6366f1",
	Leisure:     "#ec4899",
	Health:      "#ef4444",
	Education:   "#8b5cf6",
	Salary:      "#10b981",
	Investments: "#06b6d4",
	Other:       "#64748b",
}

// Categories returns the closed category set in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

func (c Category) Valid() bool {
	_, ok := categoryColors[c]
	return ok
}

// Color returns the chart color of the category, or the color of Outros
// for unknown values.
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryColors[Other]
}

func (c Category) String() string {
	return string(c)
}

func (t Type) Valid() bool {
	return t == Income || t == Expense
}

// Label is the pt-BR label used in exported reports.
func (t Type) Label() string {
	if t == Income {
		return "Entrada"
	}
	return "Saida"
}

func (t Type) String() string {
	return string(t)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Month returns the month
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.Time.Year()
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	*d = parsed
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (n NewTransaction) Validate() error {
	desc := strings.TrimSpace(n.Description)
	if desc == "" {
		return invalid("description", ErrEmptyDescription)
	}
	if len([]rune(desc)) > MaxDescriptionLength {
		return invalid("description", ErrDescriptionTooLong)
	}
	if err := n.Amount.Validate(); err != nil {
		return invalid("amount", err)
	}
	if err := n.Date.Validate(); err != nil {
		return invalid("date", err)
	}
	if !n.Type.Valid() {
		return invalid("type", ErrInvalidType)
	}
	if !n.Category.Valid() {
		return invalid("category", ErrInvalidCategory)
	}
	return nil
}

// ParseNewTransaction builds a NewTransaction from raw form values and
// validates it. Every failure is a *ValidationError.
func ParseNewTransaction(description, amount, date, typ, category string) (NewTransaction, error) {
	n := NewTransaction{
		Description: strings.TrimSpace(description),
		Type:        Type(strings.ToLower(strings.TrimSpace(typ))),
		Category:    Category(strings.TrimSpace(category)),
	}
	if n.Description == "" {
		return NewTransaction{}, invalid("description", ErrEmptyDescription)
	}
	m, err := ParseAmount(amount)
	if err != nil {
		return NewTransaction{}, invalid("amount", err)
	}
	n.Amount = m
	d, err := ParseDate(date)
	if err != nil {
		return NewTransaction{}, invalid("date", err)
	}
	n.Date = d
	if err := n.Validate(); err != nil {
		return NewTransaction{}, err
	}
	return n, nil
}

// Validate checks the structural soundness of a stored transaction. It is
// looser than NewTransaction.Validate so that previously persisted records
// remain loadable.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return invalid("id", ErrEmptyID)
	}
	if t.Amount.Cents < 0 {
		return invalid("amount", ErrInvalidAmount)
	}
	if err := t.Date.Validate(); err != nil {
		return invalid("date", err)
	}
	if !t.Type.Valid() {
		return invalid("type", ErrInvalidType)
	}
	if !t.Category.Valid() {
		return invalid("category", ErrInvalidCategory)
	}
	return nil
}

// Signed returns the amount with the sign implied by the transaction type.
func (t Transaction) Signed() Money {
	if t.Type == Expense {
		return Money{Cents: -t.Amount.Cents}
	}
	return t.Amount
}
