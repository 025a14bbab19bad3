package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"financas/internal/core"
	applog "financas/internal/log"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// respondError maps err to a status: validation failures are 422 and carry
// the rejected field, anything else is logged and reported as 500.
func respondError(c *gin.Context, operation string, err error) {
	var verr *core.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, errorBody{Error: verr.Error(), Field: verr.Field})
		return
	}

	_ = c.Error(err)
	ctx := c.Request.Context()
	applog.NewStructuredLogger(applog.FromContext(ctx)).
		LogError(ctx, "Request failed", err, applog.ComponentHTTP, operation)
	c.JSON(http.StatusInternalServerError, errorBody{Error: "internal error"})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorBody{Error: message})
}

// categoryResponse describes one entry of the closed category set.
type categoryResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type transactionListResponse struct {
	Transactions []core.Transaction `json:"transactions"`
	Summary      core.SummaryData   `json:"summary"`
	View         core.ViewState     `json:"view"`
}

type dashboardResponse struct {
	Summary    core.SummaryData     `json:"summary"`
	Categories []core.CategoryShare `json:"categories"`
	Monthly    []core.MonthlyPoint  `json:"monthly"`
}

type insightsResponse struct {
	Text string `json:"text"`
}
