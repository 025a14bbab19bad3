package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"financas/internal/core"
	applog "financas/internal/log"
	"financas/internal/report"
)

// Ledger is the mutation and read side of the transaction store.
type Ledger interface {
	Create(ctx context.Context, n core.NewTransaction) (core.Transaction, error)
	Delete(ctx context.Context, id string) (bool, error)
	Transactions() []core.Transaction
	Ping(ctx context.Context) error
}

// Reports serves memoized annual reports and CSV exports.
type Reports interface {
	AnnualReport(year int) core.AnnualReport
	AvailableYears() []int
	Export(year int) (body, filename string, err error)
}

// Insights returns advisory text for a collection. It never fails.
type Insights interface {
	RequestInsights(ctx context.Context, txs []core.Transaction) string
}

// Handler holds the API endpoints.
type Handler struct {
	ledger   Ledger
	reports  Reports
	insights Insights
	now      func() time.Time
}

func NewHandler(ledger Ledger, reports Reports, insights Insights) *Handler {
	return &Handler{
		ledger:   ledger,
		reports:  reports,
		insights: insights,
		now:      time.Now,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Ready pings the slot backend.
func (h *Handler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.ledger.Ping(ctx); err != nil {
		applog.FromContext(ctx).WarnContext(ctx, "Readiness check failed", applog.FieldError, err)
		c.String(http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	c.String(http.StatusOK, "ready")
}

func (h *Handler) Categories(c *gin.Context) {
	cats := core.Categories()
	out := make([]categoryResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, categoryResponse{Name: cat.String(), Color: cat.Color()})
	}
	c.JSON(http.StatusOK, out)
}

// View echoes the normalized view state.
func (h *Handler) View(c *gin.Context) {
	v, err := ParseViewState(c, h.now())
	if err != nil {
		respondError(c, "view", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) ListTransactions(c *gin.Context) {
	v, err := ParseViewState(c, h.now())
	if err != nil {
		respondError(c, applog.OpList, err)
		return
	}

	filtered := report.Filter(h.ledger.Transactions(), report.CriteriaFromView(v))
	c.JSON(http.StatusOK, transactionListResponse{
		Transactions: filtered,
		Summary:      report.Summarize(filtered),
		View:         v,
	})
}

func (h *Handler) CreateTransaction(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, errorBody{Error: "request body too large"})
			return
		}
		badRequest(c, "invalid JSON body")
		return
	}

	n, err := req.toNewTransaction()
	if err != nil {
		respondError(c, applog.OpCreate, err)
		return
	}

	tx, err := h.ledger.Create(c.Request.Context(), n)
	if err != nil {
		respondError(c, applog.OpCreate, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// DeleteTransaction answers 204 whether or not the id existed.
func (h *Handler) DeleteTransaction(c *gin.Context) {
	id := sanitizeInput(c.Param("id"))
	if id == "" {
		badRequest(c, "invalid transaction id")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.ledger.Delete(ctx, id); err != nil {
		respondError(c, applog.OpDelete, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Dashboard bundles the summary, the expense breakdown and the monthly
// series over the whole collection.
func (h *Handler) Dashboard(c *gin.Context) {
	txs := h.ledger.Transactions()
	c.JSON(http.StatusOK, dashboardResponse{
		Summary:    report.Summarize(txs),
		Categories: report.CategoryBreakdown(txs),
		Monthly:    report.MonthlySeries(txs),
	})
}

func (h *Handler) ReportYears(c *gin.Context) {
	c.JSON(http.StatusOK, h.reports.AvailableYears())
}

func (h *Handler) AnnualReport(c *gin.Context) {
	year, err := parseYearParam(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, h.reports.AnnualReport(year))
}

func (h *Handler) ExportReport(c *gin.Context) {
	year, err := parseYearParam(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	body, filename, err := h.reports.Export(year)
	if err != nil {
		respondError(c, applog.OpExport, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}

// Insights always answers 200; failures surface as the fallback text.
func (h *Handler) Insights(c *gin.Context) {
	text := h.insights.RequestInsights(c.Request.Context(), h.ledger.Transactions())
	c.JSON(http.StatusOK, insightsResponse{Text: text})
}
